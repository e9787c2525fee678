package interp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCriticalPoints_MonotoneKeepsEndpointsOnly(t *testing.T) {
	samples := []float64{1, 2, 3, 4, 5}

	points := CriticalPoints(samples, 0)

	require.Len(t, points, 2)
	require.Equal(t, Point{Index: 0, Value: 1}, points[0])
	require.Equal(t, Point{Index: 4, Value: 5}, points[len(points)-1])
}

func TestCriticalPoints_DetectsPeakAndTrough(t *testing.T) {
	samples := []float64{0, 1, 2, 1, 0, -1, -2, -1, 0}

	points := CriticalPoints(samples, 0)

	var values []float64
	for _, p := range points {
		values = append(values, p.Value)
	}

	require.Contains(t, values, 2.0)
	require.Contains(t, values, -2.0)
}

func TestCriticalPoints_ThresholdMergesSmallWiggles(t *testing.T) {
	samples := make([]float64, 0, 20)
	for i := range 20 {
		v := float64(i)
		if i%2 == 1 {
			v += 0.01
		}
		samples = append(samples, v)
	}

	loose := CriticalPoints(samples, 0)
	tight := CriticalPoints(samples, 5)

	require.GreaterOrEqual(t, len(loose), len(tight))
}

func TestCriticalPoints_EmptyAndTiny(t *testing.T) {
	require.Nil(t, CriticalPoints(nil, 0))
	require.Equal(t, []Point{{Index: 0, Value: 3}}, CriticalPoints([]float64{3}, 0))
}
