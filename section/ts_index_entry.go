package section

import (
	"bytes"

	"github.com/medcore/med/endian"
	"github.com/medcore/med/errs"
	"github.com/medcore/med/internal/layout"
)

func init() {
	layout.MustSize("TSIndexEntry", new(TSIndexEntry).wireSize(), TSIndexEntrySize)
}

// TSIndexEntry is a 24-byte time-series index entry (spec.md §3.1): one
// per compressed block, giving its file offset, start time, and starting
// sample number. A negative FileOffset marks the block it points at as
// discontinuous from its predecessor (spec.md §3.3). Entries within one
// index are strictly increasing in (|FileOffset|, StartTime,
// StartSampleNumber).
type TSIndexEntry struct {
	FileOffset        int64 // si8; negative encodes the discontinuity bit
	StartTime         int64 // μUTC
	StartSampleNumber int64
}

func (e *TSIndexEntry) wireSize() int { return 8 + 8 + 8 }

// IsDiscontinuous reports whether this block follows a wall-clock gap
// from its predecessor.
func (e TSIndexEntry) IsDiscontinuous() bool { return e.FileOffset < 0 }

// AbsoluteOffset returns the file offset with the discontinuity sign
// stripped.
func (e TSIndexEntry) AbsoluteOffset() int64 {
	if e.FileOffset < 0 {
		return -e.FileOffset
	}

	return e.FileOffset
}

// Bytes serializes the entry with engine (MED writes little-endian only;
// spec.md §4.1).
func (e *TSIndexEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [TSIndexEntrySize]byte
	engine.PutUint64(b[0:8], uint64(e.FileOffset))        //nolint:gosec
	engine.PutUint64(b[8:16], uint64(e.StartTime))        //nolint:gosec
	engine.PutUint64(b[16:24], uint64(e.StartSampleNumber)) //nolint:gosec

	return b[:]
}

// WriteTo appends the entry's bytes to buf.
func (e *TSIndexEntry) WriteTo(buf *bytes.Buffer, engine endian.EndianEngine) {
	buf.Write(e.Bytes(engine))
}

// WriteToSlice writes the entry into data at offset and returns the next
// write position.
func (e *TSIndexEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint64(data[offset:offset+8], uint64(e.FileOffset))          //nolint:gosec
	engine.PutUint64(data[offset+8:offset+16], uint64(e.StartTime))        //nolint:gosec
	engine.PutUint64(data[offset+16:offset+24], uint64(e.StartSampleNumber)) //nolint:gosec

	return offset + TSIndexEntrySize
}

// ParseTSIndexEntry parses a TSIndexEntry from data.
func ParseTSIndexEntry(data []byte, engine endian.EndianEngine) (TSIndexEntry, error) {
	if len(data) < TSIndexEntrySize {
		return TSIndexEntry{}, errs.ErrInvalidIndexEntrySize
	}

	return TSIndexEntry{
		FileOffset:        int64(engine.Uint64(data[0:8])),   //nolint:gosec
		StartTime:         int64(engine.Uint64(data[8:16])),  //nolint:gosec
		StartSampleNumber: int64(engine.Uint64(data[16:24])), //nolint:gosec
	}, nil
}
