package encoding

import (
	"encoding/binary"

	"github.com/medcore/med/internal/pool"
)

// EncodeRED1/EncodeRED2 implement Range Encoded Derivatives (spec.md
// §4.4 step 4): a derivative transform (order 1 for RED1, order 2 for
// RED2 — this is where block_flags' separate RED1/RED2 bits come from)
// followed by an adaptive range coder over the zigzag-mapped derivative
// bytes, with large values escaped as literals the way spec.md
// describes ("keysample flag... marks literal... escape values").
//
// Wire format: [4-byte escape count][escapes, 8 bytes each, little-
// endian][range-coded symbol stream].
func EncodeRED1(samples []int32) []byte { return encodeRED(samples, 1) }
func EncodeRED2(samples []int32) []byte { return encodeRED(samples, 2) }

func encodeRED(samples []int32, order int) []byte {
	derivs := Differentiate(samples, order)

	return encodeRangeCoded(derivs, newAdaptiveByteModel())
}

// DecodeRED1/DecodeRED2 reverse EncodeRED1/EncodeRED2.
func DecodeRED1(data []byte, count int) []int32 { return decodeRED(data, count, 1) }
func DecodeRED2(data []byte, count int) []int32 { return decodeRED(data, count, 2) }

func decodeRED(data []byte, count int, order int) []int32 {
	derivs := decodeRangeCoded(data, count, newAdaptiveByteModel())

	return Integrate(derivs, order)
}

// encodeRangeCoded is the shared symbol-stream codec RED1/RED2/PRED1/
// PRED2 all build on; they differ only in how many adaptiveByteModel
// instances they keep and how they pick among them per symbol.
func encodeRangeCoded(derivs []int64, model symbolModel) []byte {
	var escapes []byte
	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	rc := newRangeEncoder(buf)

	for _, d := range derivs {
		z := zigzag(d)

		var sym byte
		if z < escapeSymbol {
			sym = byte(z) //nolint:gosec
		} else {
			sym = escapeSymbol
			escapes = binary.LittleEndian.AppendUint64(escapes, uint64(d)) //nolint:gosec
		}

		model.encode(rc, sym)
	}
	rc.finish()

	out := make([]byte, 4, 4+len(escapes)+buf.Len())
	binary.LittleEndian.PutUint32(out, uint32(len(escapes)/8)) //nolint:gosec
	out = append(out, escapes...)
	out = append(out, buf.Bytes()...)

	return out
}

func decodeRangeCoded(data []byte, count int, model symbolModel) []int64 {
	out := make([]int64, count)
	if len(data) < 4 {
		return out
	}

	escapeCount := int(binary.LittleEndian.Uint32(data[0:4]))
	off := 4

	escapes := make([]int64, 0, escapeCount)
	for range escapeCount {
		if off+8 > len(data) {
			break
		}
		escapes = append(escapes, int64(binary.LittleEndian.Uint64(data[off:off+8]))) //nolint:gosec
		off += 8
	}

	rc := newRangeDecoder(data[off:])
	escapeIdx := 0
	for i := range count {
		sym := model.decode(rc)
		if sym == escapeSymbol {
			if escapeIdx < len(escapes) {
				out[i] = escapes[escapeIdx]
				escapeIdx++
			}

			continue
		}

		out[i] = unzigzag(uint64(sym))
	}

	return out
}

// symbolModel abstracts over a single global adaptiveByteModel (RED) or
// a context-selected set of them (PRED), letting encodeRangeCoded/
// decodeRangeCoded stay shared between both families. Context selection
// (e.g. PRED's previous-symbol-sign bucket) is tracked as state inside
// the model itself, not passed in, since encode/decode are always
// called in stream order.
type symbolModel interface {
	encode(rc *rangeEncoder, sym byte)
	decode(rc *rangeDecoder) byte
}
