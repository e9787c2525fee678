package section

import (
	"bytes"

	"github.com/medcore/med/endian"
	"github.com/medcore/med/errs"
	"github.com/medcore/med/internal/layout"
)

func init() {
	layout.MustSize("VIndexEntry", new(VIndexEntry).wireSize(), VIndexEntrySize)
}

// VIndexEntry is a 24-byte video index entry (spec.md §3.1), the video
// analogue of TSIndexEntry: file offset, start time, starting frame
// number, and which numbered video file the frame lives in.
type VIndexEntry struct {
	FileOffset       int64
	StartTime        int64
	StartFrame       int32
	VideoFileNumber  int32
}

func (e *VIndexEntry) wireSize() int { return 8 + 8 + 4 + 4 }

func (e *VIndexEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [VIndexEntrySize]byte
	engine.PutUint64(b[0:8], uint64(e.FileOffset))          //nolint:gosec
	engine.PutUint64(b[8:16], uint64(e.StartTime))          //nolint:gosec
	engine.PutUint32(b[16:20], uint32(e.StartFrame))        //nolint:gosec
	engine.PutUint32(b[20:24], uint32(e.VideoFileNumber))   //nolint:gosec

	return b[:]
}

func (e *VIndexEntry) WriteTo(buf *bytes.Buffer, engine endian.EndianEngine) {
	buf.Write(e.Bytes(engine))
}

func (e *VIndexEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint64(data[offset:offset+8], uint64(e.FileOffset))        //nolint:gosec
	engine.PutUint64(data[offset+8:offset+16], uint64(e.StartTime))      //nolint:gosec
	engine.PutUint32(data[offset+16:offset+20], uint32(e.StartFrame))    //nolint:gosec
	engine.PutUint32(data[offset+20:offset+24], uint32(e.VideoFileNumber)) //nolint:gosec

	return offset + VIndexEntrySize
}

// ParseVIndexEntry parses a VIndexEntry from data.
func ParseVIndexEntry(data []byte, engine endian.EndianEngine) (VIndexEntry, error) {
	if len(data) < VIndexEntrySize {
		return VIndexEntry{}, errs.ErrInvalidIndexEntrySize
	}

	return VIndexEntry{
		FileOffset:      int64(engine.Uint64(data[0:8])),         //nolint:gosec
		StartTime:       int64(engine.Uint64(data[8:16])),        //nolint:gosec
		StartFrame:      int32(engine.Uint32(data[16:20])),       //nolint:gosec
		VideoFileNumber: int32(engine.Uint32(data[20:24])),       //nolint:gosec
	}, nil
}
