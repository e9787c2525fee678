package cps

import (
	"math"
	"math/rand"
	"testing"

	"github.com/medcore/med/format"
	"github.com/medcore/med/section"
	"github.com/stretchr/testify/require"
)

func testSamples(n int) []int32 {
	v := int32(2000)
	r := rand.New(rand.NewSource(7)) //nolint:gosec
	out := make([]int32, n)
	for i := range out {
		v += int32(r.Intn(9) - 4) //nolint:gosec
		out[i] = v
	}

	return out
}

func TestBlockEncoderDecoder_RoundTrip(t *testing.T) {
	samples := testSamples(256)

	enc, err := NewBlockEncoder(WithAlgorithm(RED1), WithFallThrough(false), WithChannelNumber(3))
	require.NoError(t, err)

	block, err := enc.EncodeBlock(samples, 1_700_000_000_000_000, false)
	require.NoError(t, err)

	decoded, h, err := DecodeBlock(block)
	require.NoError(t, err)
	require.Equal(t, samples, decoded)
	require.Equal(t, uint32(3), h.AcquisitionChannelNumber)
	require.Equal(t, int64(1_700_000_000_000_000), h.StartTime)
	require.False(t, h.IsDiscontinuous())
}

func TestBlockEncoder_FallThroughPicksSmallest(t *testing.T) {
	samples := testSamples(256)

	enc, err := NewBlockEncoder(WithAlgorithm(PRED1), WithFallThrough(true))
	require.NoError(t, err)

	block, err := enc.EncodeBlock(samples, 0, false)
	require.NoError(t, err)

	pred1Only, err := NewBlockEncoder(WithAlgorithm(PRED1), WithFallThrough(false))
	require.NoError(t, err)

	pred1Block, err := pred1Only.EncodeBlock(samples, 0, false)
	require.NoError(t, err)
	require.LessOrEqual(t, len(block), len(pred1Block))

	decoded, _, err := DecodeBlock(block)
	require.NoError(t, err)
	require.Equal(t, samples, decoded)
}

func TestBlockEncoderDecoder_Detrend(t *testing.T) {
	samples := make([]int32, 128)
	for i := range samples {
		samples[i] = int32(1000 + 3*i) //nolint:gosec
	}

	enc, err := NewBlockEncoder(WithDetrend(true), WithAlgorithm(RED1))
	require.NoError(t, err)

	block, err := enc.EncodeBlock(samples, 0, false)
	require.NoError(t, err)

	decoded, h, err := DecodeBlock(block)
	require.NoError(t, err)
	require.Equal(t, samples, decoded)
	require.True(t, h.HasParam(section.ParamFlagIntercept))
	require.True(t, h.HasParam(section.ParamFlagGradient))
}

func TestBlockEncoder_RejectsEmpty(t *testing.T) {
	enc, err := NewBlockEncoder()
	require.NoError(t, err)

	_, err = enc.EncodeBlock(nil, 0, false)
	require.Error(t, err)
}

func TestDecodeBlock_DetectsCorruption(t *testing.T) {
	samples := testSamples(64)

	enc, err := NewBlockEncoder()
	require.NoError(t, err)

	block, err := enc.EncodeBlock(samples, 0, false)
	require.NoError(t, err)

	block[len(block)-1] ^= 0xFF

	_, _, err = DecodeBlock(block)
	require.Error(t, err)
}

func TestBlockEncoderDecoder_NoiseScores(t *testing.T) {
	samples := testSamples(64)

	scoreOf := func(samples []int32) []float64 {
		scores := make([]float64, len(samples))
		for i, s := range samples {
			scores[i] = math.Abs(float64(s)) / 1000
		}

		return scores
	}

	enc, err := NewBlockEncoder(WithNoiseScores(scoreOf, format.CompressionZstd))
	require.NoError(t, err)

	block, err := enc.EncodeBlock(samples, 0, false)
	require.NoError(t, err)

	decoded, h, err := DecodeBlock(block)
	require.NoError(t, err)
	require.Equal(t, samples, decoded)
	require.True(t, h.HasParam(section.ParamFlagNoiseScores))

	scores, err := DecodeNoiseScores(block, h)
	require.NoError(t, err)
	require.Equal(t, scoreOf(samples), scores)
}

func TestDecodeNoiseScores_AbsentReturnsNil(t *testing.T) {
	samples := testSamples(16)

	enc, err := NewBlockEncoder()
	require.NoError(t, err)

	block, err := enc.EncodeBlock(samples, 0, false)
	require.NoError(t, err)

	_, h, err := DecodeBlock(block)
	require.NoError(t, err)

	scores, err := DecodeNoiseScores(block, h)
	require.NoError(t, err)
	require.Nil(t, scores)
}

func TestDecodeBlock_MarksDiscontinuity(t *testing.T) {
	samples := testSamples(32)

	enc, err := NewBlockEncoder()
	require.NoError(t, err)

	block, err := enc.EncodeBlock(samples, 0, true)
	require.NoError(t, err)

	_, h, err := DecodeBlock(block)
	require.NoError(t, err)
	require.True(t, h.IsDiscontinuous())
}
