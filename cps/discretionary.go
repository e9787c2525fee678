package cps

import (
	"encoding/binary"
	"math"

	"github.com/medcore/med/compress"
	"github.com/medcore/med/errs"
	"github.com/medcore/med/format"
	"github.com/medcore/med/section"
)

// encodeNoiseScores compresses scores (one float64 per sample, a
// per-sample noise estimate) with codec and prefixes the result with a
// one-byte compression-type tag, giving the discretionary region a
// self-describing blob (spec.md's discretionary region has no fixed
// schema; original_source/ shows it carrying aux diagnostic payloads
// like this one).
func encodeNoiseScores(scores []float64, codecType format.CompressionType) ([]byte, error) {
	raw := make([]byte, 8*len(scores))
	for i, s := range scores {
		binary.LittleEndian.PutUint64(raw[i*8:i*8+8], math.Float64bits(s))
	}

	codec, err := compress.GetCodec(codecType)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(raw)
	if err != nil {
		return nil, errs.New(errs.CMP, "compressing noise scores", err)
	}

	blob := make([]byte, 1+len(compressed))
	blob[0] = byte(codecType)
	copy(blob[1:], compressed)

	return blob, nil
}

// decodeNoiseScores reverses encodeNoiseScores.
func decodeNoiseScores(blob []byte) ([]float64, error) {
	if len(blob) < 1 {
		return nil, errs.ErrShortRead
	}

	codec, err := compress.GetCodec(format.CompressionType(blob[0]))
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(blob[1:])
	if err != nil {
		return nil, errs.New(errs.CMP, "decompressing noise scores", err)
	}

	if len(raw)%8 != 0 {
		return nil, errs.ErrShortRead
	}

	scores := make([]float64, len(raw)/8)
	for i := range scores {
		scores[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8 : i*8+8]))
	}

	return scores, nil
}

// discretionaryRegionOf returns the discretionary region bytes of
// block, given its already-parsed header. Region order is fixed:
// records, parameters, protected, discretionary, model (spec.md §3.1).
func discretionaryRegionOf(block []byte, h *section.CompressedBlockHeader) []byte {
	start := section.BlockHeaderSize + int(h.RecordRegionBytes) +
		int(h.ParameterRegionBytes) + int(h.ProtectedRegionBytes)
	end := start + int(h.DiscretionaryRegionBytes)
	if end > len(block) {
		return nil
	}

	return block[start:end]
}
