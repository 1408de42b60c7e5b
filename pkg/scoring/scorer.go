// Package scoring implements the composite restaurant scoring engine
// (§4.4): a pure function of one record, the city context, and corpus
// statistics, producing a score in [0,1] and a fully named breakdown.
package scoring

import (
	"localfare/pkg/citycontext"
	"localfare/pkg/corpusstats"
	"localfare/pkg/model"
)

// Positive-component weights; these sum to exactly 1.0 (§8 invariant 1).
const (
	weightBaseQuality      = 0.32
	weightMLResidual       = 0.18
	weightScarcity         = 0.12
	weightIndependent      = 0.10
	weightGuideRecognition = 0.08
	weightDiaspora         = 0.07
	weightRedditCommunity  = 0.05
	weightBruxelloisLocal  = 0.04
	weightFamilyName       = 0.02
	weightSpecificity      = 0.01
	weightCuisineRarity    = 0.01
)

// Penalty caps (subtractive).
const (
	capTouristTrap   = -0.15
	capChain         = -0.10
	capLowReview     = -0.15
	capExpatBubble   = -0.03
	capPriceQuality  = -0.10
	capNonRestaurant = -0.80
)

// tierMapping defines the composite-score-to-tier thresholds. The later
// calibration (0.55/0.48/0.30) is authoritative per §9's resolved
// open question over the earlier 0.60/0.45/0.30 revision.
var tierMapping = []struct {
	min  float64
	tier string
}{
	{0.55, "Chef's Kiss"},
	{0.48, "Kitchen Approved"},
	{0.30, "Workable"},
	{0.00, "Line Cook Shrug"},
}

// Scorer computes composite scores from immutable inputs only: it holds no
// mutable singleton state, so the same (context, stats) pair always scores
// a given record identically (§8 invariant 3, §9 "no hidden global state").
type Scorer struct {
	ctx   *citycontext.Config
	stats *corpusstats.Stats
}

// New constructs a Scorer bound to one city context and one corpus-stats
// snapshot.
func New(ctx *citycontext.Config, stats *corpusstats.Stats) *Scorer {
	return &Scorer{ctx: ctx, stats: stats}
}

// Score computes the full component breakdown and composite score for one
// record, writing the result onto r.Components, r.CompositeScore, r.Tier
// and r.IsRareCuisine. It assumes r.District/Neighborhood/DiasporaStreet
// were already assigned (§4.5 step 1) and that required fields (rating,
// coordinates) are present.
func (s *Scorer) Score(r *model.Restaurant) {
	var c model.ComponentScores

	c.BaseQuality = baseQuality(r, weightBaseQuality)
	c.MLResidual = mlResidual(r, weightMLResidual)

	highVolumeCap := s.ctx.TierHighVolumeCap(s.ctx.DistrictTier(r.District))
	isException := s.ctx.IsVolumeException(r.Name) && (r.Cuisine == "Belgian" || r.VenueType == "Fast_food")
	c.ReviewAdjustment = reviewAdjustment(r.ReviewCount, highVolumeCap, isException)
	reviewAdjustmentIsPenalty := c.ReviewAdjustment < 0

	raw, applied := touristTrap(r, s.ctx, reviewAdjustmentIsPenalty)
	c.TouristTrapRaw = raw
	c.TouristTrap = -applied
	if c.TouristTrap < capTouristTrap {
		c.TouristTrap = capTouristTrap
	}

	c.Diaspora = diaspora(r, s.ctx, weightDiaspora, c.TouristTrapRaw)

	c.Independent, c.Chain = independentAndChain(r, weightIndependent, capChain)

	c.CuisineRarity = cuisineRarity(r, s.stats, weightCuisineRarity)
	r.IsRareCuisine = s.ctx.IsDiasporaCuisine(r.Cuisine) || s.ctx.RareCuisineWeight(r.Cuisine) >= 0.5

	c.ExpatBubble = expatBubble(r, s.ctx, capExpatBubble)
	c.PriceQuality = priceQuality(r, capPriceQuality)
	c.ValueBonus = valueBonus(r)

	c.Scarcity, c.ScarcityReview, c.ScarcityHorseshoe, c.ScarcityCuisineGlobal, c.HorseshoeType =
		scarcity(r, s.ctx, weightScarcity)

	c.GuideRecognition, c.MichelinStars, c.ValueGuideFlag, c.RegionalGuideFlag = guideRecognition(r, s.ctx)
	c.RedditCommunity, c.CommunityMentions = redditCommunity(r, s.ctx, weightRedditCommunity)
	c.LowReview = lowReview(r, capLowReview)
	c.FamilyName = familyName(r, s.ctx, weightFamilyName)
	c.Specificity = specificity(r, s.ctx, weightSpecificity)
	c.BruxelloisLocal = bruxelloisLocal(r, s.ctx, weightBruxelloisLocal)
	c.HygieneFlag = s.ctx.HygieneFlag(r.Name)
	c.NonRestaurant = nonRestaurantShopPenalty(r, s.ctx, capNonRestaurant)

	r.Components = c
	r.CompositeScore = clamp(composite(c), 0, 1)
	r.Tier = tierOf(r.CompositeScore)
}

// composite sums every additive term: the weighted positive components,
// the capped penalties, and the unweighted additive bonuses.
func composite(c model.ComponentScores) float64 {
	return c.BaseQuality + c.MLResidual + c.Scarcity + c.Independent +
		c.GuideRecognition + c.Diaspora + c.RedditCommunity + c.BruxelloisLocal +
		c.FamilyName + c.Specificity + c.CuisineRarity +
		c.TouristTrap + c.Chain + c.LowReview + c.ExpatBubble + c.PriceQuality + c.NonRestaurant +
		c.ReviewAdjustment + c.ValueBonus
}

func tierOf(score float64) string {
	for _, m := range tierMapping {
		if score >= m.min {
			return m.tier
		}
	}
	return "Line Cook Shrug"
}
