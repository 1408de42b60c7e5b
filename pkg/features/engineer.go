// Package features transforms raw provider records into the canonical,
// fully-typed form the scoring engine consumes (§4.1).
package features

import (
	"log/slog"
	"math"
	"regexp"
	"strings"

	"localfare/pkg/citycontext"
	"localfare/pkg/model"
	"localfare/pkg/spatial"
)

// cuisineNameOverride is checked first, ahead of type-table lookups, for
// cuisines the provider habitually mislabels (e.g. a Hawaiian-bowl place
// tagged "American").
type cuisineNameOverride struct {
	pattern *regexp.Regexp
	cuisine string
}

// namedCuisinePattern backs the broad name-based heuristics (priority 4):
// a defined, ordered list so that ambiguous tokens ("brasserie" could be
// French or Belgian) resolve via precedence, not map iteration order.
type namedCuisinePattern struct {
	pattern *regexp.Regexp
	cuisine string
}

var cuisineOverrides = []cuisineNameOverride{
	{regexp.MustCompile(`(?i)poke|hawaiian`), "Hawaiian"},
}

// namedCuisinePatterns is ordered: earlier entries win on overlap. French
// precedes Belgian because "brasserie" is ambiguous and French dining
// vocabulary is the more specific claim when both could apply.
var namedCuisinePatterns = []namedCuisinePattern{
	{regexp.MustCompile(`(?i)\bbistro\b|\bbrasserie fran[cç]aise\b|\bfrench\b`), "French"},
	{regexp.MustCompile(`(?i)\bfriterie\b|\bfrituur\b|\bwaffles?\b|\bfrietjes\b|\bbelgian\b|\bbrasserie\b`), "Belgian"},
	{regexp.MustCompile(`(?i)\bmaroc|tagine|couscous`), "Moroccan"},
	{regexp.MustCompile(`(?i)\bcongo|\bkinshasa\b|\bmatonge\b`), "Congolese"},
	{regexp.MustCompile(`(?i)\bkebab\b|\bturkish\b|\bistanbul\b`), "Turkish"},
	{regexp.MustCompile(`(?i)\bsushi\b|\bjapanese\b|\bramen\b|\bizakaya\b`), "Japanese"},
	{regexp.MustCompile(`(?i)\bpho\b|\bvietnam`), "Vietnamese"},
	{regexp.MustCompile(`(?i)\bportugu|\bbacalhau\b`), "Portuguese"},
	{regexp.MustCompile(`(?i)\bbrazil|\bchurrascaria\b`), "Brazilian"},
}

// primaryTypeToCuisine backs priorities (2) and (3): the provider primary
// type, then any secondary type tag, mapped straight to a cuisine.
var primaryTypeToCuisine = map[string]string{
	"french_restaurant":     "French",
	"belgian_restaurant":    "Belgian",
	"moroccan_restaurant":   "Moroccan",
	"turkish_restaurant":    "Turkish",
	"japanese_restaurant":   "Japanese",
	"vietnamese_restaurant": "Vietnamese",
}

// venueTypeOverrides maps specific sub-types that win over the generic
// "restaurant" classification.
var venueTypeOverrides = map[string]string{
	"sandwich_shop": "Sandwich_shop",
	"fast_food":     "Fast_food",
	"bakery":        "Bakery",
	"seafood":       "Seafood",
	"cafe":          "Cafe",
	"bar":           "Bar",
}

var (
	cafeNameRe       = regexp.MustCompile(`(?i)\bcaf(?:e\b|é(?:[^\p{L}\p{N}_]|$))`)
	barNameRe        = regexp.MustCompile(`(?i)\bbar\b`)
	restaurantWordRe = regexp.MustCompile(`(?i)\brestaurant\b`)
)

// Result is the outcome of engineering one raw record: either a kept,
// enriched record or a reason it was dropped.
type Result struct {
	Kept    []*model.Restaurant
	Dropped DropCounts
}

// DropCounts tallies why records were rejected at ingest (§4.1, §7).
type DropCounts struct {
	MissingRequired int
	OutOfRegion     int
	NonRestaurant   int
	NonFoodType     int
}

// Engineer runs the full feature-engineering pass over raw records, given
// the immutable city context. It never panics on malformed input; rows it
// cannot use are dropped with a logged count.
func Engineer(raw []*model.Restaurant, ctx *citycontext.Config, grid *spatial.Grid) Result {
	var res Result

	for _, r := range raw {
		if r.Lat == 0 && r.Lng == 0 && r.Rating == 0 {
			res.Dropped.MissingRequired++
			continue
		}
		if r.Rating < 1.0 || r.Rating > 5.0 {
			res.Dropped.MissingRequired++
			continue
		}
		if !ctx.InCity(r.Lat, r.Lng) {
			res.Dropped.OutOfRegion++
			continue
		}
		if ctx.NonRestaurantShop(r.Name) {
			res.Dropped.NonRestaurant++
			continue
		}
		if ctx.IsNonFoodType(r.PrimaryType) {
			res.Dropped.NonFoodType++
			continue
		}

		engineerOne(r, ctx, grid)
		res.Kept = append(res.Kept, r)
	}

	slog.Info("feature engineering complete",
		"kept", len(res.Kept),
		"dropped_missing_required", res.Dropped.MissingRequired,
		"dropped_out_of_region", res.Dropped.OutOfRegion,
		"dropped_non_restaurant", res.Dropped.NonRestaurant,
		"dropped_non_food_type", res.Dropped.NonFoodType,
	)

	return res
}

func engineerOne(r *model.Restaurant, ctx *citycontext.Config, grid *spatial.Grid) {
	r.Cuisine = inferCuisine(r)
	r.VenueType = inferVenueType(r)
	r.PriceNumeric = inferPriceNumeric(r)
	r.IsChain = ctx.ChainMatch(r.Name)
	r.LogReviewCount = math.Log1p(float64(r.ReviewCount))
	r.Hours = ParseHours(r.OpeningHours)
	if grid != nil {
		r.HexCell = grid.CellAt(r.Lat, r.Lng)
	}
}

// inferCuisine applies the five-step priority order from §4.1.
func inferCuisine(r *model.Restaurant) string {
	for _, o := range cuisineOverrides {
		if o.pattern.MatchString(r.Name) {
			return o.cuisine
		}
	}
	if c, ok := primaryTypeToCuisine[strings.ToLower(r.PrimaryType)]; ok {
		return c
	}
	for _, t := range r.Types {
		if c, ok := primaryTypeToCuisine[strings.ToLower(t)]; ok {
			return c
		}
	}
	for _, p := range namedCuisinePatterns {
		if p.pattern.MatchString(r.Name) {
			return p.cuisine
		}
	}
	return "Other"
}

// inferVenueType applies the sub-type-wins-over-generic rule from §4.1.
func inferVenueType(r *model.Restaurant) string {
	if v, ok := venueTypeOverrides[strings.ToLower(r.PrimaryType)]; ok {
		return v
	}
	for _, t := range r.Types {
		if v, ok := venueTypeOverrides[strings.ToLower(t)]; ok {
			return v
		}
	}
	if !restaurantWordRe.MatchString(r.Name) {
		if cafeNameRe.MatchString(r.Name) {
			return "Cafe"
		}
		if barNameRe.MatchString(r.Name) {
			return "Bar"
		}
	}
	return "Restaurant"
}

// inferPriceNumeric coerces the provider's price tier to the canonical
// [1..4] scale, defaulting to moderate (2) when the provider omitted it.
func inferPriceNumeric(r *model.Restaurant) int {
	if r.PriceTier >= 1 && r.PriceTier <= 4 {
		return r.PriceTier
	}
	return 2
}
