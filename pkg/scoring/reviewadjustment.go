package scoring

import "math"

// reviewAdjustment is the additive, unweighted review-count-shaped term
// from §4.4: a smooth penalty for very few reviews, two bell-curve bonuses
// rewarding the "sweet spot" volumes, and a smoothed high-volume penalty
// whose cap depends on district tier. Every piece is a sigmoid or Gaussian
// bell rather than a hard cutoff, so no integer increment in review_count
// ever moves the result by more than a few hundredths (§8 invariant 12).
//
// isVolumeException exempts classic fry-shop names (§4.4, §8 scenario 2):
// such records skip the high-volume term entirely.
func reviewAdjustment(reviewCount int, highVolumeCap float64, isVolumeException bool) float64 {
	n := float64(reviewCount)

	lowPenalty := -0.08 * sigmoid(-(n - 15) / 5.0)
	bellSmall := 0.05 * gaussianBell(n, 75, 40)
	bellLarge := 0.04 * gaussianBell(n, 300, 150)

	var highVolume float64
	if !isVolumeException {
		highVolume = highVolumeCap * sigmoid((n-2000)/400.0)
	}

	return lowPenalty + bellSmall + bellLarge + highVolume
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func gaussianBell(x, center, width float64) float64 {
	d := x - center
	return math.Exp(-(d * d) / (2 * width * width))
}
