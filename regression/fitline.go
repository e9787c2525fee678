package regression

// Line is a fitted a + b*x model: Intercept is a, Gradient is b.
type Line struct {
	Intercept float64
	Gradient  float64
}

// At evaluates the fitted line at x.
func (l Line) At(x float64) float64 {
	return l.Intercept + l.Gradient*x
}

// FitLine computes the ordinary-least-squares line through (x[i], y[i])
// pairs, the closed-form sum-of-x/sum-of-y/sum-of-xy/sum-of-x² solve
// every one of the teacher's model fits used internally before
// transforming back to their respective curve shapes.
//
// len(x) must equal len(y) and be at least 2; a degenerate (all-equal
// x) input returns a zero-gradient line through the mean of y.
func FitLine(x, y []float64) Line {
	n := float64(len(x))
	if n < 2 {
		return Line{}
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i, xi := range x {
		yi := y[i]
		sumX += xi
		sumY += yi
		sumXY += xi * yi
		sumX2 += xi * xi
	}

	meanX := sumX / n
	meanY := sumY / n

	denom := sumX2 - n*meanX*meanX
	if denom == 0 {
		return Line{Intercept: meanY}
	}

	b := (sumXY - n*meanX*meanY) / denom
	a := meanY - b*meanX

	return Line{Intercept: a, Gradient: b}
}

// FitSamples fits a line against si4 samples taken at unit time steps
// (x = 0, 1, 2, ...), the shape cps uses to compute a block's
// intercept/gradient parameters before differencing residuals.
func FitSamples(samples []int32) Line {
	x := make([]float64, len(samples))
	y := make([]float64, len(samples))
	for i, v := range samples {
		x[i] = float64(i)
		y[i] = float64(v)
	}

	return FitLine(x, y)
}

// Detrend subtracts the fitted line from samples, returning residuals
// rounded to the nearest integer; Retrend reverses it.
func Detrend(samples []int32, line Line) []int32 {
	out := make([]int32, len(samples))
	for i, v := range samples {
		out[i] = v - int32(roundHalfAwayFromZero(line.At(float64(i)))) //nolint:gosec
	}

	return out
}

func Retrend(residuals []int32, line Line) []int32 {
	out := make([]int32, len(residuals))
	for i, v := range residuals {
		out[i] = v + int32(roundHalfAwayFromZero(line.At(float64(i)))) //nolint:gosec
	}

	return out
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}

	return float64(int64(v - 0.5))
}
