package encoding

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func biologicalSignal(n int) []int32 {
	samples := make([]int32, n)
	v := int32(1000)
	r := rand.New(rand.NewSource(1)) //nolint:gosec
	for i := range samples {
		v += int32(r.Intn(11) - 5) //nolint:gosec
		samples[i] = v
	}

	return samples
}

func TestRED1_RoundTrip(t *testing.T) {
	samples := biologicalSignal(200)

	encoded := EncodeRED1(samples)
	decoded := DecodeRED1(encoded, len(samples))

	require.Equal(t, samples, decoded)
}

func TestRED2_RoundTrip(t *testing.T) {
	samples := biologicalSignal(200)

	encoded := EncodeRED2(samples)
	decoded := DecodeRED2(encoded, len(samples))

	require.Equal(t, samples, decoded)
}

func TestRED1_EscapesLargeJumps(t *testing.T) {
	samples := []int32{0, 1_000_000, -1_000_000, 3, 3, 3, 500_000}

	encoded := EncodeRED1(samples)
	decoded := DecodeRED1(encoded, len(samples))

	require.Equal(t, samples, decoded)
}

func TestRED_EmptyAndSingle(t *testing.T) {
	require.Empty(t, DecodeRED1(EncodeRED1(nil), 0))

	one := []int32{7}
	require.Equal(t, one, DecodeRED1(EncodeRED1(one), 1))
	require.Equal(t, one, DecodeRED2(EncodeRED2(one), 1))
}
