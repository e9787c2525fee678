package encoding

import (
	"encoding/binary"
	"math/bits"

	"github.com/medcore/med/internal/pool"
)

// mbeHeaderSize is the fixed preamble EncodeMBE writes before the
// packed bit stream: min (int64, 8 bytes) and bits-per-sample (1 byte).
const mbeHeaderSize = 9

// EncodeMBE implements Minimal Bit Encoding (spec.md §4.4 step 4):
// "stores (value - min) in exactly bits_per_sample bits, where
// bits_per_sample = ceil(log2(max-min+1))". It packs bits using
// bitWriter, the same left-aligned bit-buffer idiom as the teacher's
// Gorilla encoder.
func EncodeMBE(derivs []int64) []byte {
	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	if len(derivs) == 0 {
		return nil
	}

	minVal, maxVal := derivs[0], derivs[0]
	for _, v := range derivs[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	bitsPerSample := bitsForRange(minVal, maxVal)

	header := make([]byte, mbeHeaderSize)
	binary.LittleEndian.PutUint64(header[0:8], uint64(minVal)) //nolint:gosec
	header[8] = byte(bitsPerSample)

	out := make([]byte, 0, mbeHeaderSize+(len(derivs)*bitsPerSample+7)/8)
	out = append(out, header...)

	if bitsPerSample == 0 {
		return out // every value equals minVal; nothing else to store
	}

	bw := newBitWriter(buf)
	for _, v := range derivs {
		bw.writeBits(uint64(v-minVal), bitsPerSample) //nolint:gosec
	}
	bw.flush()

	return append(out, buf.Bytes()...)
}

// bitsForRange returns ceil(log2(max-min+1)), the minimum bit width
// that can hold every value in [min, max].
func bitsForRange(minVal, maxVal int64) int {
	span := uint64(maxVal - minVal) //nolint:gosec
	if span == 0 {
		return 0
	}

	return bits.Len64(span)
}

// DecodeMBE reverses EncodeMBE, reconstructing count derivative values.
func DecodeMBE(data []byte, count int) []int64 {
	out := make([]int64, count)
	if count == 0 || len(data) < mbeHeaderSize {
		return out
	}

	minVal := int64(binary.LittleEndian.Uint64(data[0:8])) //nolint:gosec
	bitsPerSample := int(data[8])

	if bitsPerSample == 0 {
		for i := range out {
			out[i] = minVal
		}

		return out
	}

	br := newBitReader(data[mbeHeaderSize:])
	for i := range count {
		valBits, ok := br.readBits(bitsPerSample)
		if !ok {
			break
		}
		out[i] = minVal + int64(valBits) //nolint:gosec
	}

	return out
}
