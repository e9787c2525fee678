package records

import (
	"errors"
	"io"

	"github.com/medcore/med/crc"
	"github.com/medcore/med/endian"
	"github.com/medcore/med/errs"
	"github.com/medcore/med/section"
	"github.com/medcore/med/security"
)

// termTypeCode marks the terminal RIndexEntry spec.md §6.1 requires at
// the end of a .ridx file: file_offset == length(.rdat), version
// 0xFF/0xFF, no encryption.
var termTypeCode = typeCode("Term")

// Entry pairs a record's decoded Body with the header/index metadata
// that described it on disk.
type Entry struct {
	Header section.RecordHeader
	Body   Body // RawRecord if the type code was unrecognized
}

// Writer accumulates records and serializes them into a .rdat stream
// plus the matching .ridx index, writing both in registration order
// (spec.md leaves cross-file ordering to the writer; this package
// writes records in append order, letting callers sort first if they
// want time-ordered index entries).
type Writer struct {
	engine  endian.EndianEngine
	entries []section.RIndexEntry
	offset  int64
}

// NewWriter creates a Writer.
func NewWriter() *Writer {
	return &Writer{engine: endian.GetLittleEndianEngine()}
}

// Append encodes body, writes its header+body to rdat, and records the
// matching RIndexEntry for a later Finish call. versionMinor may carry
// a compression nibble packed by PackVersionMinor, in which case the
// encoded body is compressed before it's written. The record is
// written unencrypted (EncryptionLevel 0); use AppendEncrypted for a
// record that needs one.
func (w *Writer) Append(rdat io.Writer, startTime int64, versionMajor, versionMinor uint8, body Body) error {
	_, codecType := unpackVersionMinor(versionMinor)

	payload, err := compressBody(body.Encode(), codecType)
	if err != nil {
		return err
	}

	return w.writeEntry(rdat, startTime, versionMajor, versionMinor, body.TypeCode(), 0, payload)
}

// AppendEncrypted behaves like Append, but additionally AES-encrypts
// the compressed body under key and records level in the record's
// header/index EncryptionLevel field (spec.md §4.5: a record can carry
// a non-zero EncryptionLevel, decrypted "if necessary" on read).
func (w *Writer) AppendEncrypted(rdat io.Writer, startTime int64, versionMajor, versionMinor uint8, body Body, level uint8, key [security.KeySize]byte) error {
	_, codecType := unpackVersionMinor(versionMinor)

	payload, err := compressBody(body.Encode(), codecType)
	if err != nil {
		return err
	}

	payload, err = encryptRecordBody(payload, key)
	if err != nil {
		return err
	}

	return w.writeEntry(rdat, startTime, versionMajor, versionMinor, body.TypeCode(), level, payload)
}

// writeEntry serializes one record header+payload to rdat and queues
// its index entry; payload is whatever Append/AppendEncrypted produced
// (compressed and, if applicable, already encrypted).
func (w *Writer) writeEntry(rdat io.Writer, startTime int64, versionMajor, versionMinor uint8, tc [4]byte, level uint8, payload []byte) error {
	total := section.RecordHeaderSize + len(payload)

	h := section.RecordHeader{
		TotalRecordBytes: uint32(total), //nolint:gosec
		StartTime:        startTime,
		TypeCode:         tc,
		VersionMajor:     versionMajor,
		VersionMinor:     versionMinor,
		EncryptionLevel:  level,
	}
	h.RecordCRC = crc.Checksum(payload)

	buf := make([]byte, total)
	copy(buf, h.Bytes(w.engine))
	copy(buf[section.RecordHeaderSize:], payload)

	if _, err := rdat.Write(buf); err != nil {
		return errs.New(errs.FWRITE, "writing record body", err)
	}

	w.entries = append(w.entries, section.RIndexEntry{
		FileOffset:      w.offset,
		StartTime:       startTime,
		TypeCode:        tc,
		VersionMajor:    versionMajor,
		VersionMinor:    versionMinor,
		EncryptionLevel: level,
	})
	w.offset += int64(total)

	return nil
}

// Finish writes every accumulated RIndexEntry to ridx, followed by the
// terminal entry that marks end-of-data.
func (w *Writer) Finish(ridx io.Writer) error {
	for i := range w.entries {
		if _, err := ridx.Write(w.entries[i].Bytes(w.engine)); err != nil {
			return errs.New(errs.FWRITE, "writing record index entry", err)
		}
	}

	term := section.RIndexEntry{
		FileOffset:   w.offset,
		TypeCode:     termTypeCode,
		VersionMajor: 0xFF,
		VersionMinor: 0xFF,
	}

	if _, err := ridx.Write(term.Bytes(w.engine)); err != nil {
		return errs.New(errs.FWRITE, "writing terminal record index entry", err)
	}

	return nil
}

// ReadAll parses every record out of rdat in file order, stopping at
// end-of-stream. Unknown type codes decode to an opaque RawRecord
// rather than aborting the scan, matching spec.md's "unrecognized
// record types are skipped using TotalRecordBytes" rule; a VersionMinor
// carrying a compression nibble (PackVersionMinor) is decompressed
// before the type's Decoder ever sees the bytes.
//
// password derives the key for any record whose header reports a
// non-zero EncryptionLevel (spec.md §4.5: a record's body "decrypts if
// necessary" before decoding); pass "" for a stream holding no
// encrypted records. The CRC stored in each RecordHeader always covers
// what's actually on disk, so it's checked before decryption.
func ReadAll(rdat []byte, password string) ([]Entry, error) {
	engine := endian.GetLittleEndianEngine()

	var entries []Entry

	var key [security.KeySize]byte

	haveKey := false

	for off := 0; off < len(rdat); {
		if off+section.RecordHeaderSize > len(rdat) {
			return nil, errs.ErrShortRead
		}

		h, err := section.ParseRecordHeader(rdat[off:], engine)
		if err != nil {
			return nil, err
		}

		if int(h.TotalRecordBytes) < section.RecordHeaderSize || off+int(h.TotalRecordBytes) > len(rdat) {
			return nil, errs.ErrShortRead
		}

		onDisk := rdat[off+section.RecordHeaderSize : off+int(h.TotalRecordBytes)]
		if got := crc.Checksum(onDisk); got != h.RecordCRC {
			return nil, errs.ErrBlockCRCMismatch
		}

		bodyBytes := onDisk

		if h.EncryptionLevel != 0 {
			if !haveKey {
				if password == "" {
					return nil, errs.ErrNoPasswordSupplied
				}

				key = security.DeriveKey(password, true)
				haveKey = true
			}

			bodyBytes, err = decryptRecordBody(onDisk, key)
			if err != nil {
				return nil, err
			}
		}

		minor, codecType := unpackVersionMinor(h.VersionMinor)

		bodyBytes, err = decompressBody(bodyBytes, codecType)
		if err != nil {
			return nil, err
		}

		body, decErr := Decode(h.TypeCode, bodyBytes, h.VersionMajor, minor)
		if decErr != nil {
			if !errors.Is(decErr, errs.ErrUnknownRecordType) {
				return nil, decErr
			}

			body = RawRecord{Code: h.TypeCode, Data: append([]byte(nil), bodyBytes...)}
		}

		entries = append(entries, Entry{Header: h, Body: body})
		off += int(h.TotalRecordBytes)
	}

	return entries, nil
}

// ShowRecords implements the show_records(rdat, filter) operation
// (spec.md §4.5): it scans rdat's RecordHeaders only — never the
// bodies — and returns the headers whose type code passes filter,
// "by type code alone, without decrypting bodies". filter is the
// type-code vector: a positive entry names a type code to include, a
// negative entry's absolute value names one to exclude. An empty
// filter matches every record. The original API's null terminator has
// no equivalent here; Go slices already carry their own length.
func ShowRecords(rdat []byte, filter []int32) ([]section.RecordHeader, error) {
	engine := endian.GetLittleEndianEngine()
	include, exclude := splitRecordFilter(filter)

	var out []section.RecordHeader

	for off := 0; off < len(rdat); {
		if off+section.RecordHeaderSize > len(rdat) {
			return nil, errs.ErrShortRead
		}

		h, err := section.ParseRecordHeader(rdat[off:], engine)
		if err != nil {
			return nil, err
		}

		if int(h.TotalRecordBytes) < section.RecordHeaderSize || off+int(h.TotalRecordBytes) > len(rdat) {
			return nil, errs.ErrShortRead
		}

		if recordFilterMatches(typeCodeToInt32(h.TypeCode, engine), include, exclude) {
			out = append(out, h)
		}

		off += int(h.TotalRecordBytes)
	}

	return out, nil
}

func splitRecordFilter(filter []int32) (include, exclude map[int32]bool) {
	include = make(map[int32]bool)
	exclude = make(map[int32]bool)

	for _, v := range filter {
		switch {
		case v > 0:
			include[v] = true
		case v < 0:
			exclude[-v] = true
		}
	}

	return include, exclude
}

func recordFilterMatches(code int32, include, exclude map[int32]bool) bool {
	if exclude[code] {
		return false
	}

	if len(include) == 0 {
		return true
	}

	return include[code]
}

// TypeCodeToFilterValue returns the positive filter entry ShowRecords
// matches tc against; negate it to exclude tc instead.
func TypeCodeToFilterValue(tc [4]byte) int32 {
	return typeCodeToInt32(tc, endian.GetLittleEndianEngine())
}

func typeCodeToInt32(tc [4]byte, engine endian.EndianEngine) int32 {
	return int32(engine.Uint32(tc[:])) //nolint:gosec
}

// ReadIndex parses a .ridx stream into its entries, excluding the
// terminal marker.
func ReadIndex(ridx []byte) ([]section.RIndexEntry, error) {
	engine := endian.GetLittleEndianEngine()

	var out []section.RIndexEntry

	for off := 0; off+section.RIndexEntrySize <= len(ridx); off += section.RIndexEntrySize {
		e, err := section.ParseRIndexEntry(ridx[off:], engine)
		if err != nil {
			return nil, err
		}

		if e.TypeCode == termTypeCode {
			break
		}

		out = append(out, e)
	}

	return out, nil
}
