package section

import (
	"github.com/medcore/med/endian"
	"github.com/medcore/med/errs"
	"github.com/medcore/med/internal/layout"
)

func init() {
	layout.MustSize("CompressedBlockHeader", new(CompressedBlockHeader).wireSize(), BlockHeaderSize)
}

// CompressedBlockHeader (CMP_FIXED_BH, spec.md §3.1) is the 56-byte
// fixed part of a compressed block; it is followed by up to five
// variable-length regions (records, parameters, protected,
// discretionary, model) whose sizes the header itself carries.
//
// CRC coverage starts at Flags and runs to the end of TotalBlockBytes
// (spec.md §3.3); the leading BlockStartUID/BlockCRC fields are excluded
// so a scanner can resynchronize on the sentinel after a torn write.
type CompressedBlockHeader struct {
	// BlockStartUID is always section.BlockStartUID; a scanner rejects
	// any block whose header doesn't begin with it. Offset 0, 8 bytes.
	BlockStartUID uint64
	// BlockCRC is CRC-32 of [Flags..TotalBlockBytes). Offset 8, 4 bytes.
	BlockCRC uint32
	// Flags packs discontinuity/encrypted/algorithm bits (block_flags.go).
	// Offset 12, 4 bytes.
	Flags uint32
	// StartTime is this block's first sample time, μUTC. Offset 16, 8 bytes.
	StartTime int64
	// AcquisitionChannelNumber ties a block back to its channel in a
	// multiplexed acquisition system. Offset 24, 4 bytes.
	AcquisitionChannelNumber uint32
	// TotalBlockBytes is the header plus every region plus the encoded
	// sample payload. Offset 28, 4 bytes.
	TotalBlockBytes uint32
	// NumberOfSamples is this block's sample count; it also marks where
	// per-block encryption begins (spec.md §3.3). Offset 32, 4 bytes.
	NumberOfSamples uint32
	// ParameterFlags packs which optional parameters the parameter
	// region carries (block_flags.go). Offset 36, 4 bytes.
	ParameterFlags uint32

	// Region byte counts, each 2 bytes, offsets 40-49.
	RecordRegionBytes        uint16
	ParameterRegionBytes     uint16
	ProtectedRegionBytes     uint16
	DiscretionaryRegionBytes uint16
	ModelRegionBytes         uint16

	// TotalHeaderBytes is BlockHeaderSize plus the five region sizes
	// above; it is the offset, from the start of the block, where the
	// encoded sample payload begins. Offset 50, 2 bytes.
	TotalHeaderBytes uint16

	_ [4]byte // reserved, pads the header to 56 bytes
}

func (h *CompressedBlockHeader) wireSize() int {
	return 8 + 4 + 4 + 8 + 4 + 4 + 4 + 4 + 2 + 2 + 2 + 2 + 2 + 2 + 4
}

// RegionBytes returns the sum of every variable region's declared size.
func (h *CompressedBlockHeader) RegionBytes() int {
	return int(h.RecordRegionBytes) + int(h.ParameterRegionBytes) +
		int(h.ProtectedRegionBytes) + int(h.DiscretionaryRegionBytes) + int(h.ModelRegionBytes)
}

// PayloadOffset returns the byte offset, from the start of the block, of
// the first encoded-sample byte.
func (h *CompressedBlockHeader) PayloadOffset() int {
	return int(h.TotalHeaderBytes)
}

// EncryptedRegion returns the [start, end) byte range, relative to the
// start of the block, that per-block AES encryption covers when
// IsEncrypted is true: from NumberOfSamples to TotalBlockBytes-32,
// 16-byte aligned (spec.md §3.3, §4.3).
func (h *CompressedBlockHeader) EncryptedRegion() (start, end int) {
	start = int(h.NumberOfSamples)
	end = int(h.TotalBlockBytes) - 32
	if rem := (end - start) % 16; rem != 0 {
		end -= rem
	}

	return start, end
}

// Parse decodes a CompressedBlockHeader from data and verifies the
// leading sentinel.
func (h *CompressedBlockHeader) Parse(data []byte) error {
	if len(data) < BlockHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	h.BlockStartUID = engine.Uint64(data[0:8])
	if h.BlockStartUID != BlockStartUID {
		return errs.ErrNotMedFile
	}

	h.BlockCRC = engine.Uint32(data[8:12])
	h.Flags = engine.Uint32(data[12:16])
	h.StartTime = int64(engine.Uint64(data[16:24])) //nolint:gosec
	h.AcquisitionChannelNumber = engine.Uint32(data[24:28])
	h.TotalBlockBytes = engine.Uint32(data[28:32])
	h.NumberOfSamples = engine.Uint32(data[32:36])
	h.ParameterFlags = engine.Uint32(data[36:40])
	h.RecordRegionBytes = engine.Uint16(data[40:42])
	h.ParameterRegionBytes = engine.Uint16(data[42:44])
	h.ProtectedRegionBytes = engine.Uint16(data[44:46])
	h.DiscretionaryRegionBytes = engine.Uint16(data[46:48])
	h.ModelRegionBytes = engine.Uint16(data[48:50])
	h.TotalHeaderBytes = engine.Uint16(data[50:52])

	return nil
}

// Bytes serializes the header into a fresh BlockHeaderSize-byte slice.
func (h *CompressedBlockHeader) Bytes() []byte {
	b := make([]byte, BlockHeaderSize)
	h.WriteToSlice(b)

	return b
}

// WriteToSlice writes the header into a pre-allocated BlockHeaderSize-byte slice.
func (h *CompressedBlockHeader) WriteToSlice(data []byte) {
	engine := endian.GetLittleEndianEngine()

	engine.PutUint64(data[0:8], BlockStartUID)
	engine.PutUint32(data[8:12], h.BlockCRC)
	engine.PutUint32(data[12:16], h.Flags)
	engine.PutUint64(data[16:24], uint64(h.StartTime)) //nolint:gosec
	engine.PutUint32(data[24:28], h.AcquisitionChannelNumber)
	engine.PutUint32(data[28:32], h.TotalBlockBytes)
	engine.PutUint32(data[32:36], h.NumberOfSamples)
	engine.PutUint32(data[36:40], h.ParameterFlags)
	engine.PutUint16(data[40:42], h.RecordRegionBytes)
	engine.PutUint16(data[42:44], h.ParameterRegionBytes)
	engine.PutUint16(data[44:46], h.ProtectedRegionBytes)
	engine.PutUint16(data[46:48], h.DiscretionaryRegionBytes)
	engine.PutUint16(data[48:50], h.ModelRegionBytes)
	engine.PutUint16(data[50:52], h.TotalHeaderBytes)
}

// NewCompressedBlockHeader creates a header with the fixed sentinel and
// TotalHeaderBytes set to the fixed part's size; callers add region
// sizes as they populate each region.
func NewCompressedBlockHeader() *CompressedBlockHeader {
	return &CompressedBlockHeader{
		BlockStartUID:    BlockStartUID,
		TotalHeaderBytes: BlockHeaderSize,
	}
}
