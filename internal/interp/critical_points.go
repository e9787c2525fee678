package interp

// Point is a single critical point: an original sample index (time
// axis, in sample counts) and its amplitude.
type Point struct {
	Index int
	Value float64
}

// CriticalPoints finds local peaks, troughs, and zero-crossings of an
// LFP-filtered signal (spec.md §4.4's VDS step 1), the set of points
// VDS's time/amplitude sub-streams encode instead of every raw sample.
// threshold in [0, 10] controls aggressiveness: 0 keeps every
// direction change and zero-crossing (a monotone run between them is
// reduced to its endpoints), higher values merge points whose
// amplitude change is small relative to the signal's dynamic range.
func CriticalPoints(samples []float64, threshold float64) []Point {
	if len(samples) == 0 {
		return nil
	}
	if len(samples) <= 2 {
		return allPoints(samples)
	}

	minV, maxV := samples[0], samples[0]
	for _, v := range samples[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	span := maxV - minV
	minDelta := span * threshold / 100.0

	points := []Point{{Index: 0, Value: samples[0]}}

	prevDir := 0
	for i := 1; i < len(samples)-1; i++ {
		dir := sign(samples[i] - samples[i-1])
		isExtremum := dir != 0 && prevDir != 0 && dir != prevDir
		isZeroCrossing := (samples[i-1] < 0 && samples[i] >= 0) || (samples[i-1] > 0 && samples[i] <= 0)

		if isExtremum || isZeroCrossing {
			last := points[len(points)-1]
			if minDelta == 0 || absf(samples[i]-last.Value) >= minDelta {
				points = append(points, Point{Index: i, Value: samples[i]})
			}
		}

		if dir != 0 {
			prevDir = dir
		}
	}

	points = append(points, Point{Index: len(samples) - 1, Value: samples[len(samples)-1]})

	return points
}

func allPoints(samples []float64) []Point {
	out := make([]Point, len(samples))
	for i, v := range samples {
		out[i] = Point{Index: i, Value: v}
	}

	return out
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
