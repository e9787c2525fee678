package cps

import (
	"github.com/medcore/med/crc"
	"github.com/medcore/med/errs"
	"github.com/medcore/med/regression"
	"github.com/medcore/med/section"
)

// DecodeBlock parses a CompressedBlockHeader from the front of data,
// verifies BlockCRC, and decodes the sample payload with whichever
// algorithm the header's Flags name.
func DecodeBlock(data []byte) ([]int32, *section.CompressedBlockHeader, error) {
	h := &section.CompressedBlockHeader{}
	if err := h.Parse(data); err != nil {
		return nil, nil, err
	}

	if int(h.TotalBlockBytes) > len(data) {
		return nil, nil, errs.ErrShortRead
	}

	block := data[:h.TotalBlockBytes]
	if got := crc.Checksum(block[12:]); got != h.BlockCRC {
		return nil, nil, errs.ErrBlockCRCMismatch
	}

	payload := block[h.PayloadOffset():]
	algo := algorithmFromFlag(h.Algorithm())
	samples := algo.decode(payload, int(h.NumberOfSamples))

	if h.HasParam(section.ParamFlagIntercept) && h.HasParam(section.ParamFlagGradient) {
		line := decodeLineParameters(paramRegionOf(block, h))
		samples = regression.Retrend(samples, line)
	}

	return samples, h, nil
}

// DecodeNoiseScores returns the per-sample noise scores a block's
// discretionary region carries, if WithNoiseScores produced one.
// Callers that don't need this diagnostic can ignore it entirely;
// checking HasParam first avoids decompressing a region that isn't
// present.
func DecodeNoiseScores(block []byte, h *section.CompressedBlockHeader) ([]float64, error) {
	if !h.HasParam(section.ParamFlagNoiseScores) {
		return nil, nil
	}

	return decodeNoiseScores(discretionaryRegionOf(block, h))
}
