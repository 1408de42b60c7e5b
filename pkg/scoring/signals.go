package scoring

import (
	"math"
	"strings"

	"localfare/pkg/citycontext"
	"localfare/pkg/corpusstats"
	"localfare/pkg/model"
	"localfare/pkg/textnorm"
)

// baseQuality rewards the raw rating, damped by sample confidence so a
// handful of five-star reviews does not outrank a well-reviewed place.
func baseQuality(r *model.Restaurant, weight float64) float64 {
	c := confidence(r.ReviewCount)
	return weight * (r.Rating / 5.0) * (0.5 + 0.5*c)
}

// mlResidual rewards records the baseline predictor underestimated, scaled
// and clamped so a single outlier residual cannot dominate the composite.
func mlResidual(r *model.Restaurant, weight float64) float64 {
	c := confidence(r.ReviewCount)
	return weight * clamp(r.Residual*2, -1, 1) * c
}

// touristTrapZone reports whether the record sits inside the configured
// tourist zone: a tourist_trap-tier neighborhood, within 150m of the
// epicenter, or inside the explicitly named tourist-trap neighborhood.
func touristTrapZone(r *model.Restaurant, ctx *citycontext.Config) bool {
	if r.Neighborhood != "" {
		if ctx.Neighborhoods[r.Neighborhood].Tier == "tourist_trap" {
			return true
		}
		if r.Neighborhood == ctx.TouristTrapNeighborhood {
			return true
		}
	}
	return ctx.DistanceToTouristEpicenterKm(r.Lat, r.Lng)*1000 < 150
}

// touristTrap computes the raw penalty (before the collinearity guard) and
// the applied penalty after halving it when review_adjustment already
// penalizes volume, avoiding double-counting the same signal (§4.4).
func touristTrap(r *model.Restaurant, ctx *citycontext.Config, reviewAdjustmentIsPenalty bool) (raw, applied float64) {
	if !touristTrapZone(r, ctx) {
		return 0, 0
	}

	epicenterM := ctx.DistanceToTouristEpicenterKm(r.Lat, r.Lng) * 1000

	switch {
	case r.ReviewCount > 1500 && r.Rating < 4.3:
		deficit := clamp((4.3-r.Rating)/1.3, 0, 1)
		raw = 0.4 + 0.3*deficit
	case r.ReviewCount > 1500:
		raw = 0.15
	case r.Rating < 4.3 && epicenterM < 100:
		raw = 0.2
	}

	applied = raw
	if reviewAdjustmentIsPenalty {
		applied *= 0.5
	}
	return raw, applied
}

// diaspora rewards cuisines matching their district's immigrant community,
// per §4.4 "diaspora" with the full filter chain applied in order.
func diaspora(r *model.Restaurant, ctx *citycontext.Config, weight, touristTrapRaw float64) float64 {
	if touristTrapRaw > 0.3 {
		return 0 // §8 invariant 10: diaspora gate
	}
	if r.Rating < 3.5 {
		return 0
	}
	if ctx.HasNonRestaurantLocationKeyword(r.Name, r.Address) {
		return 0
	}

	authenticity := ctx.DiasporaAuthenticity(r.Cuisine, r.District)
	if authenticity == 0 {
		if byCuisine, ok := ctx.DiasporaAuthenticityByCuisine(r.Cuisine); ok && len(byCuisine) > 0 {
			authenticity = 0.2 // floor for a recognized diaspora cuisine outside its typical districts
		} else {
			return 0
		}
	}

	bonus := authenticity
	if r.DiasporaStreet != "" {
		streetCuisines := ctx.DiasporaStreetCuisines(r.DiasporaStreet)
		if textnorm.WordOverlap(strings.Join(streetCuisines, " "), r.Cuisine) {
			bonus = clamp(bonus+0.3, 0, 1)
		}
	}

	if ctx.HasHipsterFusionKeyword(r.Name) {
		bonus *= 0.3
	}
	if r.PriceNumeric == 4 {
		bonus *= 0.2
	}

	return weight * bonus
}

// independentAndChain returns the independence bonus and the separate chain
// penalty: a chain loses the bonus and incurs the penalty (§4.4).
func independentAndChain(r *model.Restaurant, weightIndependent, chainCap float64) (independent, chainPenalty float64) {
	if r.IsChain {
		return 0, chainCap
	}
	return weightIndependent, 0
}

// cuisineRarity rewards cuisines that are locally rare within their
// district: weight × 1/(10·share), so the reward exceeds the weight for
// shares under 10%; a cuisine absent from the district's counts gets
// exactly the weight.
func cuisineRarity(r *model.Restaurant, stats *corpusstats.Stats, weight float64) float64 {
	freq := stats.CuisineShareInDistrict(r.District, r.Cuisine)
	if freq <= 0 {
		return weight * 1.0
	}
	return weight * (1.0 / (10.0 * freq))
}

// expatBubble penalizes records within 1 km of the expat center, more so
// when they also carry price or review-language signals typical of an
// expat clientele.
func expatBubble(r *model.Restaurant, ctx *citycontext.Config, cap float64) float64 {
	distKm := ctx.DistanceToExpatCenterKm(r.Lat, r.Lng)
	if distKm >= 1.0 {
		return 0
	}
	proximity := 1.0 - distKm

	priceSignal := 0.0
	if r.PriceNumeric >= 3 {
		priceSignal = float64(r.PriceNumeric-2) / 2.0
	}

	languageSignal := 0.0
	if share, ok := r.ReviewLanguages["en"]; ok && share > 0.70 {
		languageSignal = 0.5
	}

	return cap * proximity * (0.4*priceSignal + 0.3*languageSignal + 0.3)
}

// priceQuality penalizes premium tiers that underdeliver relative to their
// expected rating; cheaper tiers never incur this penalty.
func priceQuality(r *model.Restaurant, cap float64) float64 {
	switch r.PriceNumeric {
	case 4:
		deficit := clamp(4.5-r.Rating, 0, 4.5)
		return math.Max(cap, -0.10*deficit)
	case 3:
		deficit := clamp(4.3-r.Rating, 0, 4.3)
		return math.Max(cap, -0.06*deficit)
	default:
		return 0
	}
}

// valueBonus rewards budget tiers that overdeliver on rating (§4.4, additive).
func valueBonus(r *model.Restaurant) float64 {
	switch r.PriceNumeric {
	case 1:
		if r.Rating >= 4.5 {
			return 0.04
		}
		if r.Rating >= 4.2 {
			return 0.02
		}
	case 2:
		if r.Rating >= 4.6 {
			return 0.02
		}
		if r.Rating >= 4.4 {
			return 0.01
		}
	}
	return 0
}

// reviewScarcity peaks in the 50-200 review "Goldilocks" band, tapers off
// either side, and is exactly zero outside the defined low/high zones.
func reviewScarcity(reviewCount int) float64 {
	n := float64(reviewCount)
	switch {
	case n >= 50 && n <= 200:
		return 1.0
	case n > 200 && n <= 500:
		return 0.7
	case n >= 35 && n < 50:
		return 0.3 + (n-35)/14.0*0.56
	default:
		return 0
	}
}

// horseshoe rewards both tails of operating-hours intensity (Lark: very
// limited service, graded 0.6-1.0 by how limited; Owl: regularly open past
// 01:00, a flat 0.8), never both at once, and only for records that already
// clear a rating floor.
func horseshoe(r *model.Restaurant) (bonus float64, kind string) {
	if !r.Hours.Known || r.Rating < 4.0 {
		return 0, ""
	}

	if larkScore, isLark := larkIntensity(r.Hours); isLark {
		return larkScore, "lark"
	}
	if r.Hours.ClosesLate {
		return 0.8, "owl"
	}
	return 0, ""
}

// larkIntensity scores how limited a Lark's service is: service-coupe-only
// (lunch service that stops selling well before closing) is the most
// extreme signal, followed by very low weekly hours, then lunch-only, then
// the mildest case of simply being closed three or more days a week.
func larkIntensity(h model.HoursSummary) (score float64, isLark bool) {
	switch {
	case h.HasServiceCoupe:
		return 1.0, true
	case h.TotalWeeklyHours > 0 && h.TotalWeeklyHours < 20:
		return 0.9, true
	case h.TotalWeeklyHours > 0 && h.TotalWeeklyHours < 30:
		return 0.75, true
	case h.IsLunchOnly:
		return 0.7, true
	case h.DaysOpenCount > 0 && h.DaysOpenCount <= 4:
		return 0.6, true
	default:
		return 0, false
	}
}

// scarcity composes the three scarcity sub-signals (§4.4).
func scarcity(r *model.Restaurant, ctx *citycontext.Config, weight float64) (total, reviewSub, horseshoeSub, cuisineGlobalSub float64, horseshoeType string) {
	reviewSub = reviewScarcity(r.ReviewCount)
	horseshoeSub, horseshoeType = horseshoe(r)
	cuisineGlobalSub = ctx.RareCuisineWeight(r.Cuisine)

	total = weight * (0.70*reviewSub + 0.20*horseshoeSub + 0.10*cuisineGlobalSub)
	return total, reviewSub, horseshoeSub, cuisineGlobalSub, horseshoeType
}

// guideRecognition picks the single highest-applicable guide signal; no
// stacking (§4.4, §8 invariant 8).
func guideRecognition(r *model.Restaurant, ctx *citycontext.Config) (score float64, stars int, valueFlag, regionalFlag bool) {
	stars = ctx.MichelinStars(r.Name)
	valueFlag = ctx.HasValueGuide(r.Name)
	regionalFlag = ctx.HasRegionalGuide(r.Name)

	switch {
	case stars >= 2:
		score = 0.08
	case stars == 1:
		score = 0.06
	case valueFlag:
		score = 0.04
	case regionalFlag:
		score = 0.03
	}
	return score, stars, valueFlag, regionalFlag
}

// redditCommunityBaseScore steps by fixed mention-count thresholds.
func redditCommunityBaseScore(mentions int) float64 {
	switch {
	case mentions >= 10:
		return 1.0
	case mentions >= 5:
		return 0.8
	case mentions >= 3:
		return 0.6
	case mentions >= 2:
		return 0.4
	case mentions >= 1:
		return 0.2
	default:
		return 0
	}
}

// redditCommunity rewards community endorsements, exact-matched, scaled by
// the record's own review count: ×1.2 under 200 reviews, ×0.7 over 2000.
func redditCommunity(r *model.Restaurant, ctx *citycontext.Config, weight float64) (float64, int) {
	mentions := ctx.CommunityMentions(r.Name)
	base := redditCommunityBaseScore(mentions)

	sizeMultiplier := 1.0
	switch {
	case r.ReviewCount < 200:
		sizeMultiplier = 1.2
	case r.ReviewCount > 2000:
		sizeMultiplier = 0.7
	}

	return weight * base * sizeMultiplier, mentions
}

// lowReview discounts implausibly high ratings backed by very few reviews;
// it is zero once a record clears the 200-review floor.
func lowReview(r *model.Restaurant, cap float64) float64 {
	if r.ReviewCount >= 200 {
		return 0
	}
	extremity := clamp((r.Rating-4.0)/1.0, 0, 1)
	c := confidence(r.ReviewCount)
	return cap * (1 - c) * extremity
}

// familyName rewards the named family/artisan naming conventions, but only
// for independent places.
func familyName(r *model.Restaurant, ctx *citycontext.Config, weight float64) float64 {
	if r.IsChain {
		return 0
	}
	if ctx.MatchesFamilyNamePattern(r.Name) {
		return weight
	}
	return 0
}

// specificity rewards regionally specific cuisines over generic categories.
func specificity(r *model.Restaurant, ctx *citycontext.Config, weight float64) float64 {
	return weight * ctx.CuisineSpecificity(r.Cuisine)
}

// bruxellois_local: curated local-institution score, raised by the
// district's tier weight (capped at 1) so authentic-district fry-shops land higher than
// the same institution type would elsewhere.
func bruxelloisLocal(r *model.Restaurant, ctx *citycontext.Config, weight float64) float64 {
	inst, ok := ctx.LocalInstitution(r.Name)
	if !ok {
		return 0
	}
	score := inst.Score
	if inst.District != "" && inst.District == r.District {
		score = clamp(score*1.0+ctx.TierWeights[ctx.DistrictTier(r.District)], 0, 1)
	}
	return weight * score
}

// nonRestaurantShopPenalty applies the full cap; in practice such records
// are also removed upstream so this never reaches an emitted record.
func nonRestaurantShopPenalty(r *model.Restaurant, ctx *citycontext.Config, cap float64) float64 {
	if ctx.NonRestaurantShop(r.Name) {
		return cap
	}
	return 0
}
