package records

import (
	"math"

	"github.com/medcore/med/endian"
)

var le = endian.GetLittleEndianEngine()

// putText writes s into dst, null-padding (or truncating) to len(dst).
func putText(dst []byte, s string) {
	n := copy(dst, s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// getText returns the string stored in src up to its first NUL byte.
func getText(src []byte) string {
	for i, b := range src {
		if b == 0 {
			return string(src[:i])
		}
	}

	return string(src)
}

func putFloat64(dst []byte, v float64) { le.PutUint64(dst, math.Float64bits(v)) }
func getFloat64(src []byte) float64    { return math.Float64frombits(le.Uint64(src)) }

func putFloat32(dst []byte, v float32) { le.PutUint32(dst, math.Float32bits(v)) }
func getFloat32(src []byte) float32    { return math.Float32frombits(le.Uint32(src)) }

// requireLen returns ok=false if data is shorter than n, letting each
// record's Decode function return errs.ErrShortRead uniformly.
func requireLen(data []byte, n int) bool { return len(data) >= n }
