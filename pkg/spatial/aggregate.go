package spatial

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"localfare/pkg/model"
)

// Cell is the aggregated view of every restaurant sharing one hex cell
// (§3 "Spatial cell"), the unit emitted by the GeoJSON export (§6.3).
type Cell struct {
	Index           string
	MeanRating      float64
	MeanResidual    float64
	ReviewSum       int
	ReviewMean      float64
	ChainShare      float64
	CuisineEntropy  float64
	RestaurantCount int
	ClusterLabel    string
	HubScore        float64
}

// eliteFraction, strongFraction and everydayFraction order the four labels by the hub-score percentile a
// cell falls into, computed over the whole corpus rather than fixed
// absolute cutoffs, since a PCA component has no natural scale.
const (
	eliteFraction    = 0.10
	strongFraction   = 0.35
	everydayFraction = 0.70
)

// Aggregate groups restaurants by hex cell and computes the per-cell
// statistics named in §3. Records without a hex cell (engineering failed to
// assign one) are skipped.
func Aggregate(records []*model.Restaurant) []Cell {
	byCell := make(map[string][]*model.Restaurant)
	var order []string
	for _, r := range records {
		if r.HexCell == "" {
			continue
		}
		if _, ok := byCell[r.HexCell]; !ok {
			order = append(order, r.HexCell)
		}
		byCell[r.HexCell] = append(byCell[r.HexCell], r)
	}

	cells := make([]Cell, 0, len(order))
	for _, idx := range order {
		cells = append(cells, aggregateOne(idx, byCell[idx]))
	}

	assignHubScores(cells)
	assignClusterLabels(cells)
	return cells
}

func aggregateOne(index string, rs []*model.Restaurant) Cell {
	c := Cell{Index: index, RestaurantCount: len(rs)}

	var ratingSum, residualSum float64
	reviewSum := 0
	chainCount := 0
	cuisineCounts := make(map[string]int)

	for _, r := range rs {
		ratingSum += r.Rating
		residualSum += r.Residual
		reviewSum += r.ReviewCount
		if r.IsChain {
			chainCount++
		}
		cuisineCounts[r.Cuisine]++
	}

	n := float64(len(rs))
	c.MeanRating = round(ratingSum/n, 2)
	c.MeanResidual = round(residualSum/n, 3)
	c.ReviewSum = reviewSum
	c.ReviewMean = round(float64(reviewSum)/n, 2)
	c.ChainShare = float64(chainCount) / n
	c.CuisineEntropy = shannonEntropy(cuisineCounts, len(rs))

	return c
}

// shannonEntropy computes the Shannon entropy, in nats, of the cuisine
// distribution within a cell. A single-cuisine cell has entropy 0.
func shannonEntropy(counts map[string]int, total int) float64 {
	if total == 0 {
		return 0
	}
	var h float64
	for _, n := range counts {
		if n == 0 {
			continue
		}
		p := float64(n) / float64(total)
		h -= p * math.Log(p)
	}
	return h
}

// assignHubScores fits the first principal component over the
// column-centered (not variance-scaled) aggregate feature matrix (mean rating, review volume, chain share,
// cuisine entropy, restaurant count) and uses each cell's projection onto it
// as the hub score. With fewer than two cells PCA is undefined; hub scores
// default to 0.
func assignHubScores(cells []Cell) {
	n := len(cells)
	if n < 2 {
		return
	}

	const numFeatures = 5
	data := mat.NewDense(n, numFeatures, nil)
	for i, c := range cells {
		data.Set(i, 0, c.MeanRating)
		data.Set(i, 1, math.Log1p(float64(c.ReviewSum)))
		data.Set(i, 2, c.ChainShare)
		data.Set(i, 3, c.CuisineEntropy)
		data.Set(i, 4, math.Log1p(float64(c.RestaurantCount)))
	}

	var pc stat.PC
	ok := pc.PrincipalComponents(data, nil)
	if !ok {
		return
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	var proj mat.Dense
	proj.Mul(data, vecs.Slice(0, numFeatures, 0, 1))

	for i := range cells {
		cells[i].HubScore = proj.At(i, 0)
	}
}

// assignClusterLabels buckets cells into {Elite, Strong, Everyday, Emerging}
// by hub-score percentile across the corpus, since the PCA projection has no
// fixed scale to threshold against directly.
func assignClusterLabels(cells []Cell) {
	n := len(cells)
	if n == 0 {
		return
	}
	sorted := make([]float64, n)
	for i, c := range cells {
		sorted[i] = c.HubScore
	}
	sort.Float64s(sorted)

	rank := func(score float64) float64 {
		i := sort.SearchFloat64s(sorted, score)
		return float64(i) / float64(n)
	}

	for i := range cells {
		p := rank(cells[i].HubScore)
		switch {
		case p >= 1-eliteFraction:
			cells[i].ClusterLabel = "Elite"
		case p >= 1-strongFraction:
			cells[i].ClusterLabel = "Strong"
		case p >= 1-everydayFraction:
			cells[i].ClusterLabel = "Everyday"
		default:
			cells[i].ClusterLabel = "Emerging"
		}
	}
}

func round(v float64, decimals int) float64 {
	m := math.Pow(10, float64(decimals))
	return math.Round(v*m) / m
}
