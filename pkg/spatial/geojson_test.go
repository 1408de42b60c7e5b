package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportGeoJSONBuildsFeaturePerCell(t *testing.T) {
	grid := NewGrid()
	index := grid.CellAt(50.8467, 4.3525)
	cells := []Cell{
		{Index: index, MeanRating: 4.12, MeanResidual: 0.031, RestaurantCount: 3, ClusterLabel: "Strong", HubScore: 0.5},
	}

	fc := ExportGeoJSON(cells, grid)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, index, fc.Features[0].Properties["cell_index"])
	assert.Equal(t, "Strong", fc.Features[0].Properties["cluster_label"])
}

func TestExportGeoJSONSkipsUnresolvableCell(t *testing.T) {
	grid := NewGrid()
	cells := []Cell{{Index: "not-a-real-cell"}}
	fc := ExportGeoJSON(cells, grid)
	assert.Empty(t, fc.Features)
}
