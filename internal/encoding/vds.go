package encoding

import (
	"encoding/binary"

	"github.com/medcore/med/internal/interp"
)

// VDSSubAlgorithm selects which of RED1/PRED1/MBE/RED2/PRED2 compresses
// a VDS block's time and amplitude sub-streams (spec.md §4.4: "each
// with its own sub-algorithm").
type VDSSubAlgorithm uint8

const (
	VDSSubRED1 VDSSubAlgorithm = iota
	VDSSubPRED1
	VDSSubMBE
	VDSSubRED2
	VDSSubPRED2
)

// EncodeVDS implements Vectorized Data Stream encoding: critical
// points (peaks/troughs/zero-crossings) are extracted from samples at
// the given threshold, then their sample-index and amplitude streams
// are each compressed independently with sub. threshold 0 keeps every
// direction change and zero-crossing; samples between critical points
// are rebuilt by interpolation on decode, so the result is approximate
// even at threshold 0.
//
// Wire format: [4-byte point count][4-byte original sample
// count][index stream][amplitude stream], where each stream is
// length-prefixed (4 bytes) and compressed with sub.
func EncodeVDS(samples []int32, threshold float64, sub VDSSubAlgorithm) []byte {
	floatSamples := make([]float64, len(samples))
	for i, v := range samples {
		floatSamples[i] = float64(v)
	}

	points := interp.CriticalPoints(floatSamples, threshold)

	indices := make([]int32, len(points))
	amps := make([]int32, len(points))
	for i, p := range points {
		indices[i] = int32(p.Index) //nolint:gosec
		amps[i] = int32(p.Value)    //nolint:gosec
	}

	idxStream := encodeSubStream(indices, sub)
	ampStream := encodeSubStream(amps, sub)

	out := make([]byte, 8)
	binary.LittleEndian.PutUint32(out[0:4], uint32(len(points)))    //nolint:gosec
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(samples)))   //nolint:gosec
	out = appendLengthPrefixed(out, idxStream)
	out = appendLengthPrefixed(out, ampStream)

	return out
}

// DecodeVDS reverses EncodeVDS, reconstructing n samples from the
// critical-point streams via makima interpolation.
func DecodeVDS(data []byte, sub VDSSubAlgorithm) []int32 {
	if len(data) < 8 {
		return nil
	}

	pointCount := int(binary.LittleEndian.Uint32(data[0:4]))
	sampleCount := int(binary.LittleEndian.Uint32(data[4:8]))

	off := 8
	idxStream, off := readLengthPrefixed(data, off)
	ampStream, _ := readLengthPrefixed(data, off)

	indices := decodeSubStream(idxStream, pointCount, sub)
	amps := decodeSubStream(ampStream, pointCount, sub)

	points := make([]interp.Point, pointCount)
	for i := range points {
		points[i] = interp.Point{Index: int(indices[i]), Value: float64(amps[i])}
	}

	reconstructed := interp.Makima(points, sampleCount)

	out := make([]int32, sampleCount)
	for i, v := range reconstructed {
		out[i] = int32(v) //nolint:gosec
	}

	return out
}

func encodeSubStream(values []int32, sub VDSSubAlgorithm) []byte {
	switch sub {
	case VDSSubPRED1:
		return EncodePRED1(values)
	case VDSSubMBE:
		return EncodeMBE(Differentiate(values, 1))
	case VDSSubRED2:
		return EncodeRED2(values)
	case VDSSubPRED2:
		return EncodePRED2(values)
	default:
		return EncodeRED1(values)
	}
}

func decodeSubStream(data []byte, count int, sub VDSSubAlgorithm) []int32 {
	switch sub {
	case VDSSubPRED1:
		return DecodePRED1(data, count)
	case VDSSubMBE:
		return Integrate(DecodeMBE(data, count), 1)
	case VDSSubRED2:
		return DecodeRED2(data, count)
	case VDSSubPRED2:
		return DecodePRED2(data, count)
	default:
		return DecodeRED1(data, count)
	}
}

func appendLengthPrefixed(out, stream []byte) []byte {
	out = binary.LittleEndian.AppendUint32(out, uint32(len(stream))) //nolint:gosec
	return append(out, stream...)
}

func readLengthPrefixed(data []byte, off int) ([]byte, int) {
	if off+4 > len(data) {
		return nil, off
	}

	n := int(binary.LittleEndian.Uint32(data[off : off+4]))
	off += 4

	if off+n > len(data) {
		return nil, off
	}

	return data[off : off+n], off + n
}
