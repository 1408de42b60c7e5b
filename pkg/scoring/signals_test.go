package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"localfare/pkg/model"
)

func TestPriceQualityPenalizesUnderperformingPremiumTiers(t *testing.T) {
	tier4 := priceQuality(&model.Restaurant{PriceNumeric: 4, Rating: 3.5}, capPriceQuality)
	assert.Less(t, tier4, 0.0)
	assert.InDelta(t, -0.10, tier4, 1e-9) // deficit 1.0 hits the cap exactly

	tier3 := priceQuality(&model.Restaurant{PriceNumeric: 3, Rating: 3.3}, capPriceQuality)
	assert.Less(t, tier3, 0.0)
	assert.InDelta(t, -0.06, tier3, 1e-9) // deficit 1.0, below the cap

	assert.Equal(t, 0.0, priceQuality(&model.Restaurant{PriceNumeric: 2, Rating: 3.0}, capPriceQuality))
}

func TestPriceQualityClampsToCap(t *testing.T) {
	got := priceQuality(&model.Restaurant{PriceNumeric: 4, Rating: 1.0}, capPriceQuality)
	assert.Equal(t, capPriceQuality, got)
}

func TestHorseshoeLarkIsGradedNotFlat(t *testing.T) {
	serviceCoupe, kind := horseshoe(&model.Restaurant{
		Rating: 4.5,
		Hours:  model.HoursSummary{Known: true, HasServiceCoupe: true},
	})
	assert.Equal(t, "lark", kind)
	assert.Equal(t, 1.0, serviceCoupe)

	fewDays, kind2 := horseshoe(&model.Restaurant{
		Rating: 4.5,
		Hours:  model.HoursSummary{Known: true, DaysOpenCount: 4},
	})
	assert.Equal(t, "lark", kind2)
	assert.Equal(t, 0.6, fewDays)

	assert.NotEqual(t, serviceCoupe, fewDays)
}
