package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localfare/pkg/citycontext"
	"localfare/pkg/model"
	"localfare/pkg/spatial"
)

func TestInferCuisinePriorityOrder(t *testing.T) {
	assert.Equal(t, "Hawaiian", inferCuisine(&model.Restaurant{Name: "Poke Bowl Schuman", PrimaryType: "french_restaurant"}))
	assert.Equal(t, "French", inferCuisine(&model.Restaurant{Name: "Le Central", PrimaryType: "french_restaurant"}))
	assert.Equal(t, "Belgian", inferCuisine(&model.Restaurant{Name: "Chez Marie", Types: []string{"belgian_restaurant"}}))
	assert.Equal(t, "Congolese", inferCuisine(&model.Restaurant{Name: "Chez Bibiche Matonge"}))
	assert.Equal(t, "Other", inferCuisine(&model.Restaurant{Name: "The Corner Spot"}))
}

func TestInferVenueTypeSubtypeWinsOverGeneric(t *testing.T) {
	assert.Equal(t, "Bakery", inferVenueType(&model.Restaurant{Name: "Sweet Bakery Restaurant", PrimaryType: "bakery"}))
	assert.Equal(t, "Cafe", inferVenueType(&model.Restaurant{Name: "Café des Arts"}))
	assert.Equal(t, "Bar", inferVenueType(&model.Restaurant{Name: "The Corner Bar"}))
	assert.Equal(t, "Restaurant", inferVenueType(&model.Restaurant{Name: "Le Central Restaurant"}))
}

func TestInferPriceNumericDefaultsToModerate(t *testing.T) {
	assert.Equal(t, 3, inferPriceNumeric(&model.Restaurant{PriceTier: 3}))
	assert.Equal(t, 2, inferPriceNumeric(&model.Restaurant{PriceTier: 0}))
}

func TestEngineerDropsOutOfRegionAndNonFood(t *testing.T) {
	ctx := citycontext.BrusselsTemplate()
	grid := spatial.NewGrid()

	raw := []*model.Restaurant{
		{ID: "1", Name: "Chez Bibiche", Lat: 50.8280, Lng: 4.3654, Rating: 4.2, PrimaryType: "restaurant"},
		{ID: "2", Name: "Out Of Town", Lat: 51.5, Lng: 4.3654, Rating: 4.0, PrimaryType: "restaurant"},
		{ID: "3", Name: "Neuhaus Chocolaterie", Lat: 50.8467, Lng: 4.3525, Rating: 4.5, PrimaryType: "store"},
		{ID: "4", Name: "Hotel Amigo", Lat: 50.8467, Lng: 4.3525, Rating: 4.5, PrimaryType: "hotel"},
	}

	res := Engineer(raw, ctx, grid)
	require.Len(t, res.Kept, 1)
	assert.Equal(t, "1", res.Kept[0].ID)
	assert.NotEmpty(t, res.Kept[0].HexCell)
	assert.Equal(t, "Congolese", res.Kept[0].Cuisine)
	assert.Equal(t, 1, res.Dropped.OutOfRegion)
	assert.Equal(t, 1, res.Dropped.NonRestaurant)
	assert.Equal(t, 1, res.Dropped.NonFoodType)
}
