package spatial

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ExportGeoJSON renders the aggregated cells as a GeoJSON feature collection
// (§6.3): one polygon feature per cell, with the hex boundary as a closed
// ring in (lng, lat) order and the aggregate statistics as feature
// properties. Cells whose boundary cannot be computed are skipped.
func ExportGeoJSON(cells []Cell, grid *Grid) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range cells {
		ring := grid.Boundary(c.Index)
		if len(ring) == 0 {
			continue
		}

		poly := make(orb.Ring, 0, len(ring))
		for _, pt := range ring {
			poly = append(poly, orb.Point{pt[0], pt[1]})
		}

		f := geojson.NewFeature(orb.Polygon{poly})
		f.Properties = geojson.Properties{
			"cell_index":       c.Index,
			"mean_rating":      c.MeanRating,
			"mean_residual":    c.MeanResidual,
			"restaurant_count": c.RestaurantCount,
			"cluster_label":    c.ClusterLabel,
			"hub_score":        c.HubScore,
		}
		fc.Append(f)
	}
	return fc
}
