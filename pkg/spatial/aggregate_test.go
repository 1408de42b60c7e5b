package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localfare/pkg/model"
)

func TestAggregateComputesPerCellStats(t *testing.T) {
	records := []*model.Restaurant{
		{HexCell: "cellA", Rating: 4.0, ReviewCount: 10, Cuisine: "French", IsChain: false},
		{HexCell: "cellA", Rating: 4.5, ReviewCount: 20, Cuisine: "Belgian", IsChain: true},
		{HexCell: "cellB", Rating: 3.0, ReviewCount: 5, Cuisine: "French", IsChain: false},
	}

	cells := Aggregate(records)
	require.Len(t, cells, 2)

	var cellA Cell
	for _, c := range cells {
		if c.Index == "cellA" {
			cellA = c
		}
	}
	assert.Equal(t, 2, cellA.RestaurantCount)
	assert.Equal(t, 4.25, cellA.MeanRating)
	assert.Equal(t, 30, cellA.ReviewSum)
	assert.Equal(t, 0.5, cellA.ChainShare)
	assert.Greater(t, cellA.CuisineEntropy, 0.0)
}

func TestAggregateSkipsRecordsWithoutHexCell(t *testing.T) {
	records := []*model.Restaurant{
		{HexCell: "", Rating: 4.0},
		{HexCell: "cellA", Rating: 4.0},
	}
	cells := Aggregate(records)
	require.Len(t, cells, 1)
	assert.Equal(t, 1, cells[0].RestaurantCount)
}

func TestAggregateAssignsClusterLabels(t *testing.T) {
	var records []*model.Restaurant
	for i := 0; i < 10; i++ {
		rating := 3.0
		if i >= 8 {
			rating = 4.8
		}
		records = append(records, &model.Restaurant{
			HexCell:     cellName(i),
			Rating:      rating,
			ReviewCount: 10 * (i + 1),
			Cuisine:     "French",
		})
	}
	cells := Aggregate(records)
	require.Len(t, cells, 10)
	for _, c := range cells {
		assert.NotEmpty(t, c.ClusterLabel)
	}
}

func cellName(i int) string {
	return string(rune('A' + i))
}
