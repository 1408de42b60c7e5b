package reranker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localfare/pkg/baseline"
	"localfare/pkg/citycontext"
	"localfare/pkg/model"
)

func TestRunAssignsDistrictsScoresAndSorts(t *testing.T) {
	ctx := citycontext.BrusselsTemplate()
	records := []*model.Restaurant{
		{ID: "1", Name: "Chez Bibiche", Lat: 50.8280, Lng: 4.3654, Rating: 4.6, ReviewCount: 120, Cuisine: "Congolese", PrimaryType: "restaurant"},
		{ID: "2", Name: "Maison Antoine", Lat: 50.8375, Lng: 4.3897, Rating: 4.2, ReviewCount: 3500, Cuisine: "Belgian", PrimaryType: "restaurant"},
		{ID: "3", Name: "Quick Burger", Lat: 50.8467, Lng: 4.3525, Rating: 3.2, ReviewCount: 900, Cuisine: "Other", PrimaryType: "restaurant"},
	}

	out := Run(records, ctx, baseline.NewMeanPredictor(), Options{WorkerPoolSize: 2})
	require.Len(t, out, 3)

	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].CompositeScore, out[i].CompositeScore)
	}
	for _, r := range out {
		assert.NotEmpty(t, r.District)
	}

	var quick *model.Restaurant
	for _, r := range out {
		if r.ID == "3" {
			quick = r
		}
	}
	require.NotNil(t, quick)
	assert.True(t, quick.IsChain)
}

func TestRunFiltersShopsAndNonFood(t *testing.T) {
	ctx := citycontext.BrusselsTemplate()
	records := []*model.Restaurant{
		{ID: "1", Name: "Neuhaus", Lat: 50.8467, Lng: 4.3525, Rating: 4.5, ReviewCount: 50, PrimaryType: "store"},
		{ID: "2", Name: "Le Central", Lat: 50.8467, Lng: 4.3525, Rating: 4.1, ReviewCount: 80, PrimaryType: "restaurant"},
	}
	out := Run(records, ctx, baseline.NewMeanPredictor(), Options{})
	require.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)
}
