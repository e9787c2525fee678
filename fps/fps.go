package fps

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/medcore/med/errs"
	"github.com/medcore/med/globals"
	"github.com/medcore/med/section"
)

var nextOwnerID atomic.Int64

// blockBitmapUnit is the granularity MmapRead tracks residency at: one
// CompressedBlockHeader's worth of bytes, since that's the smallest
// unit a slice read ever needs independently resident.
const blockBitmapUnit = section.BlockHeaderSize

// FPS (File Processing Structure) is the unit of file I/O spec.md §4.2
// describes: a universal header, an open-mode set, and, for on-demand
// reads, a per-block residency bitmap.
type FPS struct {
	Path   string
	Mode   OpenMode
	Header *section.UniversalHeader

	file    *os.File
	ownerID int64

	resident []bool // per-blockBitmapUnit residency, used by MmapRead
	body     []byte // buffered backing store for bytes already read
}

// Open opens path under mode, reading (or, for a fresh file under
// ModeCreate, initializing) its UniversalHeader and acquiring the
// matching shared/exclusive lock from the globals file-lock registry
// (spec.md §4.2: "every FPS respects the global file-lock registry").
func Open(path string, mode OpenMode, typeCode string) (*FPS, error) {
	osFlags := os.O_RDONLY
	switch {
	case mode.Has(ModeWrite) && mode.Has(ModeCreate):
		osFlags = os.O_RDWR | os.O_CREATE
	case mode.Has(ModeWrite):
		osFlags = os.O_RDWR
	}

	if mode.Has(ModeTruncate) {
		osFlags |= os.O_TRUNC
	}

	if mode.Has(ModeAppend) {
		osFlags |= os.O_APPEND
	}

	f, err := os.OpenFile(path, osFlags, 0o660) // group rw default, spec.md §4.2
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.New(errs.FEXIST, path, errs.ErrFileNotFound)
		}

		return nil, errs.New(errs.FOPEN, path, err)
	}

	ownerID := nextOwnerID.Add(1)

	if mode.Has(ModeWrite) {
		if err := globals.WriteLock(path, ownerID, globals.LockTimeout*1000); err != nil {
			f.Close()

			return nil, err
		}
	} else {
		globals.ReadLock(path)
	}

	fp := &FPS{Path: path, Mode: mode, file: f, ownerID: ownerID}

	if info, statErr := f.Stat(); statErr == nil && info.Size() >= section.UniversalHeaderSize {
		buf := make([]byte, section.UniversalHeaderSize)
		if _, readErr := io.ReadFull(f, buf); readErr == nil {
			h := &section.UniversalHeader{}
			if parseErr := h.Parse(buf); parseErr == nil {
				// A file with an existing header must pass the acceptance
				// checks of spec.md §4.1 (byte order, type code, version)
				// and its header/body CRCs before it's trusted for I/O.
				if verr := h.Validate(); verr != nil {
					abortOpen(mode, path, ownerID, f)

					return nil, verr
				}

				if cerr := h.VerifyHeaderCRC(buf); cerr != nil {
					abortOpen(mode, path, ownerID, f)

					return nil, cerr
				}

				if bodySize := info.Size() - section.UniversalHeaderSize; bodySize > 0 {
					body := make([]byte, bodySize)
					if _, err := f.ReadAt(body, section.UniversalHeaderSize); err != nil && err != io.EOF {
						abortOpen(mode, path, ownerID, f)

						return nil, errs.New(errs.FREAD, path, err)
					}

					if cerr := h.VerifyBodyCRC(body); cerr != nil {
						abortOpen(mode, path, ownerID, f)

						return nil, cerr
					}
				}

				fp.Header = h
			}
		}
	}

	if fp.Header == nil && mode.Has(ModeCreate) {
		fp.Header = section.NewUniversalHeader(typeCode)
	}

	return fp, nil
}

// abortOpen releases the lock Open acquired and closes f, used on every
// error path after the lock is held.
func abortOpen(mode OpenMode, path string, ownerID int64, f *os.File) {
	if mode.Has(ModeWrite) {
		globals.WriteUnlock(path, ownerID) //nolint:errcheck
	} else {
		globals.ReadUnlock(path)
	}

	f.Close() //nolint:errcheck
}

// ReadSentinel reads the byte range ResolveOffset computes for s.
func (fp *FPS) ReadSentinel(s Sentinel) ([]byte, error) {
	offset, length := ResolveOffset(s, fp.size())

	return fp.ReadRange(offset, length)
}

// ReadRange reads length bytes starting at offset.
func (fp *FPS) ReadRange(offset, length int64) ([]byte, error) {
	buf := make([]byte, length)
	if _, err := fp.file.ReadAt(buf, offset); err != nil && err != io.EOF {
		return nil, errs.New(errs.FREAD, fp.Path, err)
	}

	return buf, nil
}

// WriteAt writes data at offset.
func (fp *FPS) WriteAt(data []byte, offset int64) error {
	if !fp.Mode.Has(ModeWrite) {
		return errs.New(errs.FWRITE, fp.Path, nil)
	}

	if _, err := fp.file.WriteAt(data, offset); err != nil {
		return errs.New(errs.FWRITE, fp.Path, err)
	}

	return nil
}

// MmapRead ensures [0, nBytes) is resident in fp's internal buffer,
// reading only the blockBitmapUnit-sized blocks not yet resident per
// the bitmap (spec.md §4.2), then returns the requested slice.
func (fp *FPS) MmapRead(nBytes int64) ([]byte, error) {
	units := int((nBytes + blockBitmapUnit - 1) / blockBitmapUnit)
	needed := int64(units) * blockBitmapUnit

	if int64(len(fp.body)) < needed {
		grown := make([]byte, needed)
		copy(grown, fp.body)
		fp.body = grown
	}

	for len(fp.resident) < units {
		fp.resident = append(fp.resident, false)
	}

	for i := 0; i < units; i++ {
		if fp.resident[i] {
			continue
		}

		start := int64(i) * blockBitmapUnit
		if _, err := fp.file.ReadAt(fp.body[start:start+blockBitmapUnit], start); err != nil && err != io.EOF {
			return nil, errs.New(errs.FREAD, fp.Path, err)
		}

		fp.resident[i] = true
	}

	return fp.body[:nBytes], nil
}

// Close finalizes and persists the header (write mode only), releases
// fp's lock, and closes its descriptor (spec.md §4.2: "drops locks,
// frees CPS if present, closes the descriptor" — CPS ownership lives
// one layer up, in hierarchy/cps callers).
func (fp *FPS) Close() error {
	if fp.Mode.Has(ModeWrite) && fp.Header != nil {
		if err := fp.finalizeHeader(); err != nil {
			return err
		}
	}

	if fp.Mode.Has(ModeWrite) {
		if err := globals.WriteUnlock(fp.Path, fp.ownerID); err != nil {
			return err
		}
	} else {
		globals.ReadUnlock(fp.Path)
	}

	return fp.file.Close()
}

// finalizeHeader recomputes BodyCRC/HeaderCRC over what's currently on
// disk and writes the header back to offset 0, so a later Open's CRC
// checks see a header that matches its file's actual contents.
func (fp *FPS) finalizeHeader() error {
	info, err := fp.file.Stat()
	if err != nil {
		return errs.New(errs.FREAD, fp.Path, err)
	}

	bodySize := info.Size() - section.UniversalHeaderSize
	if bodySize < 0 {
		bodySize = 0
	}

	body := make([]byte, bodySize)
	if bodySize > 0 {
		if _, err := fp.file.ReadAt(body, section.UniversalHeaderSize); err != nil && err != io.EOF {
			return errs.New(errs.FREAD, fp.Path, err)
		}
	}

	fp.Header.SetBodyCRC(body)
	fp.Header.SetHeaderCRC()

	if _, err := fp.file.WriteAt(fp.Header.Bytes(), 0); err != nil {
		return errs.New(errs.FWRITE, fp.Path, err)
	}

	return nil
}

func (fp *FPS) size() int64 {
	info, err := fp.file.Stat()
	if err != nil {
		return 0
	}

	return info.Size()
}
