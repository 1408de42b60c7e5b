// Package reranker orchestrates the full build pass (§4.5): district
// assignment, chain reclassification, corpus statistics, scoring, column
// materialization, shop/non-food filtering, and the final stable sort.
package reranker

import (
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"localfare/pkg/baseline"
	"localfare/pkg/citycontext"
	"localfare/pkg/corpusstats"
	"localfare/pkg/model"
	"localfare/pkg/scoring"
)

// Options controls worker-pool sizing for the embarrassingly-parallel
// scoring pass (§5: "implementations MAY scatter scoring over a thread
// pool"). WorkerPoolSize <= 0 means GOMAXPROCS.
type Options struct {
	WorkerPoolSize int
}

// Run executes the full protocol over a feature-engineered corpus and
// returns the final, filtered, sorted result.
func Run(records []*model.Restaurant, ctx *citycontext.Config, predictor baseline.Predictor, opts Options) []*model.Restaurant {
	// Step 1: district assignment.
	assignDistricts(records, ctx)

	// Step 2: chain detection recheck; monotonic over the feature-engineering
	// pass (§8 invariant 4: the post-rerank chain set is a superset).
	newlyChain := recheckChains(records, ctx)
	if newlyChain > 0 {
		slog.Info("chain reclassification", "newly_flagged", newlyChain)
	}

	// Residual source: fit once over the whole corpus before scoring.
	baseline.ApplyResiduals(predictor, records)

	// Step 3: corpus statistics.
	stats := corpusstats.Compute(records)

	// Step 4: score every record, optionally in parallel.
	scoreAll(records, ctx, stats, opts)

	// Steps 5 is implicit: Score already materializes every named column
	// onto the record (district/neighborhood/diaspora_street were set in
	// step 1, hours/cuisine/etc. in feature engineering).

	// Steps 6-7: filter shop and non-food records.
	filtered := records[:0:0]
	for _, r := range records {
		if ctx.NonRestaurantShop(r.Name) {
			continue
		}
		if ctx.IsNonFoodType(r.PrimaryType) {
			continue
		}
		filtered = append(filtered, r)
	}

	// Step 8: stable sort descending by composite score.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CompositeScore > filtered[j].CompositeScore
	})

	return filtered
}

func assignDistricts(records []*model.Restaurant, ctx *citycontext.Config) {
	for _, r := range records {
		if d, ok := ctx.DistrictOf(r.Lat, r.Lng); ok {
			r.District = d
		}
		if n, _, ok := ctx.NeighborhoodOf(r.Lat, r.Lng); ok {
			r.Neighborhood = n
		}
		if s, ok := ctx.OnDiasporaStreet(r.Lat, r.Lng); ok {
			r.DiasporaStreet = s
		}
	}
}

func recheckChains(records []*model.Restaurant, ctx *citycontext.Config) int {
	newlyChain := 0
	for _, r := range records {
		if !r.IsChain && ctx.ChainMatch(r.Name) {
			r.IsChain = true
			newlyChain++
		}
	}
	return newlyChain
}

func scoreAll(records []*model.Restaurant, ctx *citycontext.Config, stats *corpusstats.Stats, opts Options) {
	s := scoring.New(ctx, stats)

	workers := opts.WorkerPoolSize
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan *model.Restaurant, len(records))
	for _, r := range records {
		jobs <- r
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range jobs {
				s.Score(r)
			}
		}()
	}
	wg.Wait()
}
