package interp

import "math"

// Makima reconstructs a signal of length n from a set of critical
// points using the modified Akima method: cubic Hermite interpolation
// between knots, with derivatives estimated from a weighted average of
// neighboring secant slopes that's less sensitive to outlier slopes
// than classic Akima (the "makima" variant), matching spec.md §4.4's
// "reconstructs samples by makima/spline interpolation between the
// critical points".
//
// Points must be sorted by Index and span [0, n). Reconstruction
// outside the first/last point's index holds the boundary value.
func Makima(points []Point, n int) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if len(points) == 0 {
		return out
	}
	if len(points) == 1 {
		for i := range out {
			out[i] = points[0].Value
		}

		return out
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.Index)
		ys[i] = p.Value
	}

	derivs := makimaSlopes(xs, ys)

	seg := 0
	last := len(xs) - 1
	for i := range out {
		x := float64(i)

		if x <= xs[0] {
			out[i] = ys[0]
			continue
		}
		if x >= xs[last] {
			out[i] = ys[last]
			continue
		}

		for seg < len(xs)-2 && x > xs[seg+1] {
			seg++
		}

		out[i] = hermite(xs[seg], xs[seg+1], ys[seg], ys[seg+1], derivs[seg], derivs[seg+1], x)
	}

	return out
}

// makimaSlopes computes the secant slope between each adjacent knot
// pair, then the modified-weight derivative at each knot from its four
// surrounding secants. Past either end, where fewer than four secants
// exist, the missing secants are extrapolated linearly from the two
// nearest ones.
func makimaSlopes(xs, ys []float64) []float64 {
	n := len(xs)
	secants := make([]float64, n-1)
	for i := range secants {
		secants[i] = (ys[i+1] - ys[i]) / (xs[i+1] - xs[i])
	}

	get := func(i int) float64 {
		if i < 0 {
			return 2*secants[0] - secantAt(secants, 1)
		}
		if i >= len(secants) {
			return 2*secants[len(secants)-1] - secantAt(secants, len(secants)-2)
		}

		return secants[i]
	}

	derivs := make([]float64, n)
	for i := range derivs {
		m0, m1, m2, m3 := get(i-2), get(i-1), get(i), get(i+1)

		w1 := math.Abs(m3-m2) + math.Abs(m3+m2)/2
		w2 := math.Abs(m1-m0) + math.Abs(m1+m0)/2

		if w1+w2 == 0 {
			derivs[i] = (m1 + m2) / 2
			continue
		}

		derivs[i] = (w1*m1 + w2*m2) / (w1 + w2)
	}

	return derivs
}

func secantAt(secants []float64, i int) float64 {
	if i < 0 {
		return secants[0]
	}
	if i >= len(secants) {
		return secants[len(secants)-1]
	}

	return secants[i]
}

// hermite evaluates the cubic Hermite polynomial on [x0, x1] with
// endpoint values y0/y1 and derivatives d0/d1, at point x.
func hermite(x0, x1, y0, y1, d0, d1, x float64) float64 {
	h := x1 - x0
	if h == 0 {
		return y0
	}

	t := (x - x0) / h
	t2 := t * t
	t3 := t2 * t

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return h00*y0 + h10*h*d0 + h01*y1 + h11*h*d1
}
