package encoding

import (
	"testing"

	"github.com/medcore/med/internal/pool"
	"github.com/stretchr/testify/require"
)

func TestRangeCoder_RoundTripWithAdaptiveModel(t *testing.T) {
	symbols := []byte{0, 0, 1, 2, 2, 2, 255, 10, 10, 10, 10, 0, 1}

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	encModel := newAdaptiveByteModel()
	rc := newRangeEncoder(buf)
	for _, s := range symbols {
		encModel.encodeSymbol(rc, s)
	}
	rc.finish()

	decModel := newAdaptiveByteModel()
	rd := newRangeDecoder(buf.Bytes())

	decoded := make([]byte, len(symbols))
	for i := range decoded {
		decoded[i] = decModel.decodeSymbol(rd)
	}

	require.Equal(t, symbols, decoded)
}

func TestZigzagUnzigzag(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 127, -128, 1 << 40, -(1 << 40)} {
		require.Equal(t, v, unzigzag(zigzag(v)))
	}
}
