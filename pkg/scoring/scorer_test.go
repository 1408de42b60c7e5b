package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localfare/pkg/citycontext"
	"localfare/pkg/corpusstats"
	"localfare/pkg/model"
)

func newTestScorer() *Scorer {
	ctx := citycontext.BrusselsTemplate()
	stats := corpusstats.Compute(nil)
	return New(ctx, stats)
}

func TestWeightsSumToOne(t *testing.T) {
	sum := weightBaseQuality + weightMLResidual + weightScarcity + weightIndependent +
		weightGuideRecognition + weightDiaspora + weightRedditCommunity + weightBruxelloisLocal +
		weightFamilyName + weightSpecificity + weightCuisineRarity
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestScoreIsBoundedAndDeterministic(t *testing.T) {
	s := newTestScorer()
	r1 := &model.Restaurant{Name: "Le Central", Rating: 4.1, ReviewCount: 340, Cuisine: "French", District: "Bruxelles", PriceNumeric: 2}
	r2 := &model.Restaurant{Name: "Le Central", Rating: 4.1, ReviewCount: 340, Cuisine: "French", District: "Bruxelles", PriceNumeric: 2}

	s.Score(r1)
	s.Score(r2)

	assert.GreaterOrEqual(t, r1.CompositeScore, 0.0)
	assert.LessOrEqual(t, r1.CompositeScore, 1.0)
	assert.Equal(t, r1.CompositeScore, r2.CompositeScore)
	assert.Equal(t, r1.Components, r2.Components)
}

func TestScenarioClassic2Star(t *testing.T) {
	s := newTestScorer()
	r := &model.Restaurant{
		Name: "Comme Chez Soi", Rating: 4.7, ReviewCount: 1800, PriceNumeric: 4,
		IsChain: false, District: "Bruxelles", Cuisine: "French", Residual: 0.3,
	}
	s.Score(r)
	assert.Equal(t, 0.08, r.Components.GuideRecognition)
	assert.Equal(t, 0.0, r.Components.Chain)
	assert.Contains(t, []string{"Chef's Kiss", "Kitchen Approved"}, r.Tier)
}

func TestScenarioClassicFryShopSkipsHighVolumePenalty(t *testing.T) {
	s := newTestScorer()
	r := &model.Restaurant{
		Name: "Maison Antoine", Cuisine: "Belgian", ReviewCount: 3500, Rating: 4.2, District: "Etterbeek",
	}
	s.Score(r)
	assert.InDelta(t, 0.0, r.Components.ReviewAdjustment, 0.02)
}

func TestScenarioTouristTrapCapsTier(t *testing.T) {
	s := newTestScorer()
	r := &model.Restaurant{
		Name: "Le Piège à Touristes", Lat: 50.8490, Lng: 4.3531, Rating: 3.9, ReviewCount: 3000,
		Cuisine: "Belgian", District: "Bruxelles", Neighborhood: "rue_des_bouchers",
	}
	s.Score(r)
	assert.GreaterOrEqual(t, r.Components.TouristTrap, -0.15)
	assert.LessOrEqual(t, r.Components.TouristTrap, -0.10)
	assert.Equal(t, 0.0, r.Components.Diaspora)
	assert.NotEqual(t, "Chef's Kiss", r.Tier)
}

func TestScenarioFamilyDiasporaRestaurant(t *testing.T) {
	s := newTestScorer()
	r := &model.Restaurant{
		Name: "Chez Bibiche", Cuisine: "Congolese", District: "Ixelles",
		DiasporaStreet: "Chaussée de Wavre (Matongé)", Rating: 4.6, ReviewCount: 120, IsChain: false,
	}
	s.Score(r)
	assert.Equal(t, 0.02, r.Components.FamilyName)
	assert.Greater(t, r.Components.Diaspora, 0.065)
	assert.Equal(t, 0.10, r.Components.Independent)
}

func TestScenarioPerfectRatingTrap(t *testing.T) {
	s := newTestScorer()
	r := &model.Restaurant{Name: "New Spot", Rating: 5.0, ReviewCount: 8, Cuisine: "Other"}
	s.Score(r)
	assert.InDelta(t, -0.15, r.Components.LowReview, 0.03)
	assert.Less(t, r.CompositeScore, 0.48)
}

func TestHorseshoeExclusivity(t *testing.T) {
	bonus, kind := horseshoe(&model.Restaurant{
		Rating: 4.5,
		Hours:  model.HoursSummary{Known: true, HasServiceCoupe: true, ClosesLate: true},
	})
	require.NotEqual(t, "", kind)
	assert.Contains(t, []string{"lark", "owl"}, kind)
	assert.Greater(t, bonus, 0.0)
}
