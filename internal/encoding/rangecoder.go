package encoding

import "github.com/medcore/med/internal/pool"

// rangeCoder implements a carryless byte-oriented range coder (the
// Subbotin construction), the adaptive entropy stage RED1/RED2/PRED1/
// PRED2 build on (spec.md §4.4 step 4: "Range coding yields a
// bitstream"). It operates over the 256 symbols of a single derivative
// byte; multi-byte derivative values are escaped through
// adaptiveByteModel's keysample mechanism in red.go/pred.go, mirroring
// spec.md's "keysample flag (0x80) marks literal 32-bit escape values".
const (
	rcTop = uint32(1) << 24
	rcBot = uint32(1) << 16
)

type rangeEncoder struct {
	low uint64
	rng uint32
	buf *pool.ByteBuffer
}

func newRangeEncoder(buf *pool.ByteBuffer) *rangeEncoder {
	return &rangeEncoder{rng: 0xFFFFFFFF, buf: buf}
}

// encode narrows [low, low+rng) to the sub-interval [cumFreq, cumFreq+freq)
// scaled against totFreq, renormalizing (emitting bytes) as needed.
func (e *rangeEncoder) encode(cumFreq, freq, totFreq uint32) {
	e.rng /= totFreq
	e.low = (e.low + uint64(cumFreq)*uint64(e.rng)) & 0xFFFFFFFF
	e.rng *= freq

	for {
		if (uint32(e.low)^(uint32(e.low)+e.rng))&0xFF000000 == 0 {
		} else if e.rng < rcBot {
			e.rng = (0 - uint32(e.low)) & (rcBot - 1)
		} else {
			break
		}

		e.buf.MustWrite([]byte{byte(e.low >> 24)})
		e.low = (e.low << 8) & 0xFFFFFFFF
		e.rng <<= 8
	}
}

// finish flushes the remaining state bytes so the decoder's initial
// 4-byte fill has data to read even for a tiny or empty stream.
func (e *rangeEncoder) finish() {
	for range 4 {
		e.buf.MustWrite([]byte{byte(e.low >> 24)}) //nolint:gosec
		e.low = (e.low << 8) & 0xFFFFFFFF
	}
}

type rangeDecoder struct {
	low, rng, code uint32
	data           []byte
	pos            int
}

func newRangeDecoder(data []byte) *rangeDecoder {
	d := &rangeDecoder{rng: 0xFFFFFFFF, data: data}
	for range 4 {
		d.code = (d.code << 8) | uint32(d.nextByte())
	}

	return d
}

func (d *rangeDecoder) nextByte() byte {
	if d.pos >= len(d.data) {
		return 0
	}
	b := d.data[d.pos]
	d.pos++

	return b
}

// getFreq returns the scaled cumulative frequency the decoder's current
// code points into, so the caller can look up which symbol it decodes.
func (d *rangeDecoder) getFreq(totFreq uint32) uint32 {
	d.rng /= totFreq
	v := (d.code - d.low) / d.rng
	if v >= totFreq {
		v = totFreq - 1
	}

	return v
}

// decode consumes the symbol once getFreq has identified it.
func (d *rangeDecoder) decode(cumFreq, freq uint32) {
	d.low += cumFreq * d.rng
	d.rng *= freq

	for {
		if (d.low^(d.low+d.rng))&0xFF000000 == 0 {
		} else if d.rng < rcBot {
			d.rng = (0 - d.low) & (rcBot - 1)
		} else {
			break
		}

		d.code = (d.code << 8) | uint32(d.nextByte())
		d.low <<= 8
		d.rng <<= 8
	}
}
