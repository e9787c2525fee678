package cps

import (
	"encoding/binary"
	"math"

	"github.com/medcore/med/regression"
	"github.com/medcore/med/section"
)

// parameterRegionSize is the fixed size of the intercept+gradient
// parameter region this package writes: two float64 values. Amplitude
// scale and frequency scale (other ParamFlag bits spec.md §4.4 step 5
// lists) have no producer in this package; noise scores are written to
// the discretionary region instead (see discretionary.go).
const parameterRegionSize = 16

func encodeLineParameters(line regression.Line) []byte {
	buf := make([]byte, parameterRegionSize)
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(line.Intercept))
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(line.Gradient))

	return buf
}

func decodeLineParameters(data []byte) regression.Line {
	if len(data) < parameterRegionSize {
		return regression.Line{}
	}

	return regression.Line{
		Intercept: math.Float64frombits(binary.LittleEndian.Uint64(data[0:8])),
		Gradient:  math.Float64frombits(binary.LittleEndian.Uint64(data[8:16])),
	}
}

// paramRegionOf returns the parameter region bytes of block, given its
// already-parsed header.
func paramRegionOf(block []byte, h *section.CompressedBlockHeader) []byte {
	start := section.BlockHeaderSize + int(h.RecordRegionBytes)
	end := start + int(h.ParameterRegionBytes)
	if end > len(block) {
		return nil
	}

	return block[start:end]
}
