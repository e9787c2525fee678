package section

import (
	"bytes"

	"github.com/medcore/med/endian"
	"github.com/medcore/med/errs"
	"github.com/medcore/med/internal/layout"
)

func init() {
	layout.MustSize("RIndexEntry", new(RIndexEntry).wireSize(), RIndexEntrySize)
}

// RIndexEntry is a 24-byte record index entry (spec.md §3.1). Unlike
// TSIndexEntry, RIndexEntry.FileOffset is never negative: records may be
// unsorted on disk and are only resorted on write when the caller
// directs it (spec.md §3.1).
type RIndexEntry struct {
	FileOffset      int64
	StartTime       int64
	TypeCode        [4]byte // record type, e.g. "Sgmt", "Note"
	VersionMajor    uint8
	VersionMinor    uint8
	EncryptionLevel uint8
	_               uint8 // reserved, keeps the struct 24 bytes
}

func (e *RIndexEntry) wireSize() int { return 8 + 8 + 4 + 1 + 1 + 1 + 1 }

func (e *RIndexEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [RIndexEntrySize]byte
	engine.PutUint64(b[0:8], uint64(e.FileOffset)) //nolint:gosec
	engine.PutUint64(b[8:16], uint64(e.StartTime)) //nolint:gosec
	copy(b[16:20], e.TypeCode[:])
	b[20] = e.VersionMajor
	b[21] = e.VersionMinor
	b[22] = e.EncryptionLevel

	return b[:]
}

func (e *RIndexEntry) WriteTo(buf *bytes.Buffer, engine endian.EndianEngine) {
	buf.Write(e.Bytes(engine))
}

func (e *RIndexEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	copy(data[offset:offset+RIndexEntrySize], e.Bytes(engine))

	return offset + RIndexEntrySize
}

// ParseRIndexEntry parses an RIndexEntry from data.
func ParseRIndexEntry(data []byte, engine endian.EndianEngine) (RIndexEntry, error) {
	if len(data) < RIndexEntrySize {
		return RIndexEntry{}, errs.ErrInvalidIndexEntrySize
	}

	e := RIndexEntry{
		FileOffset:      int64(engine.Uint64(data[0:8])), //nolint:gosec
		StartTime:       int64(engine.Uint64(data[8:16])), //nolint:gosec
		VersionMajor:    data[20],
		VersionMinor:    data[21],
		EncryptionLevel: data[22],
	}
	copy(e.TypeCode[:], data[16:20])

	return e, nil
}
