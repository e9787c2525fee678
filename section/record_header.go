package section

import (
	"github.com/medcore/med/endian"
	"github.com/medcore/med/errs"
	"github.com/medcore/med/internal/layout"
)

func init() {
	layout.MustSize("RecordHeader", new(RecordHeader).wireSize(), RecordHeaderSize)
}

// RecordHeader is the fixed 24-byte header that precedes every record
// body in a .rdat file (spec.md §3.1). TotalRecordBytes includes this
// header, so a reader can skip an unrecognized record type entirely.
type RecordHeader struct {
	RecordCRC        uint32 // covers [RecordHeaderSize:TotalRecordBytes]
	TotalRecordBytes uint32
	StartTime        int64
	TypeCode         [4]byte
	VersionMajor     uint8
	VersionMinor     uint8
	EncryptionLevel  uint8
	_                uint8
}

func (h *RecordHeader) wireSize() int { return 4 + 4 + 8 + 4 + 1 + 1 + 1 + 1 }

// BodySize returns the number of bytes following the header.
func (h *RecordHeader) BodySize() int {
	return int(h.TotalRecordBytes) - RecordHeaderSize
}

func (h *RecordHeader) Bytes(engine endian.EndianEngine) []byte {
	var b [RecordHeaderSize]byte
	engine.PutUint32(b[0:4], h.RecordCRC)
	engine.PutUint32(b[4:8], h.TotalRecordBytes)
	engine.PutUint64(b[8:16], uint64(h.StartTime)) //nolint:gosec
	copy(b[16:20], h.TypeCode[:])
	b[20] = h.VersionMajor
	b[21] = h.VersionMinor
	b[22] = h.EncryptionLevel

	return b[:]
}

// ParseRecordHeader parses a RecordHeader from data.
func ParseRecordHeader(data []byte, engine endian.EndianEngine) (RecordHeader, error) {
	if len(data) < RecordHeaderSize {
		return RecordHeader{}, errs.ErrInvalidHeaderSize
	}

	h := RecordHeader{
		RecordCRC:        engine.Uint32(data[0:4]),
		TotalRecordBytes: engine.Uint32(data[4:8]),
		StartTime:        int64(engine.Uint64(data[8:16])), //nolint:gosec
		VersionMajor:     data[20],
		VersionMinor:     data[21],
		EncryptionLevel:  data[22],
	}
	copy(h.TypeCode[:], data[16:20])

	return h, nil
}
