package scoring

import "math"

// confidence maps a review count to [0,1] via confidence = 1 - 1/sqrt(1+n/50),
// linearly scaled down below 10 reviews so a handful of reviews never reads
// as confidently as the formula alone would suggest (§4.4 base_quality).
func confidence(n int) float64 {
	c := 1 - 1/math.Sqrt(1+float64(n)/50.0)
	if n < 10 {
		c *= float64(n) / 10.0
	}
	return clamp(c, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
