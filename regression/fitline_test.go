package regression

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFitLine_ExactLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{5, 7, 9, 11, 13} // y = 5 + 2x

	line := FitLine(x, y)
	require.InDelta(t, 5.0, line.Intercept, 1e-9)
	require.InDelta(t, 2.0, line.Gradient, 1e-9)
}

func TestFitLine_DegenerateXReturnsMean(t *testing.T) {
	x := []float64{3, 3, 3}
	y := []float64{1, 2, 3}

	line := FitLine(x, y)
	require.Equal(t, 0.0, line.Gradient)
	require.InDelta(t, 2.0, line.Intercept, 1e-9)
}

func TestFitLine_TooFewPoints(t *testing.T) {
	require.Equal(t, Line{}, FitLine([]float64{1}, []float64{1}))
	require.Equal(t, Line{}, FitLine(nil, nil))
}

func TestDetrendRetrend_RoundTrip(t *testing.T) {
	samples := []int32{100, 105, 110, 114, 121, 126}

	line := FitSamples(samples)
	residuals := Detrend(samples, line)
	restored := Retrend(residuals, line)

	require.Equal(t, samples, restored)
}
