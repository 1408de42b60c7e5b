// Package query exposes a read-only, filterable, sortable, paginated view
// over a scored corpus (§6.1). It is a Go library surface, not a network
// server: a running build swaps in a new immutable Corpus atomically
// between generations (§5).
package query

import (
	"fmt"
	"sort"
	"strings"

	"localfare/pkg/citycontext"
	"localfare/pkg/model"
)

// Kind distinguishes the two error classes the query surface may return
// (§7 "User-visible failures are confined to the query surface").
type Kind int

const (
	// KindUnavailable means the corpus is not yet built or fit for serving.
	KindUnavailable Kind = iota
	// KindInvalidArgument means a filter or sort value was malformed.
	KindInvalidArgument
)

// Error is the structured error returned to query callers.
type Error struct {
	Kind  Kind
	Field string
	Msg   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("query: %s (field=%s)", e.Msg, e.Field)
	}
	return fmt.Sprintf("query: %s", e.Msg)
}

// maxLimit is the hard pagination ceiling (§6.1).
const maxLimit = 500

// SortBy is the closed set of sortable columns.
type SortBy string

const (
	SortByComposite SortBy = "composite_score"
	SortByRating    SortBy = "rating"
	SortByResidual  SortBy = "residual"
)

// Guide is the closed set of guide filter values.
type Guide string

const (
	GuideMultiStar Guide = "multi_star"
	GuideValue     Guide = "value_guide"
	GuideRegional  Guide = "regional_guide"
	GuideCommunity Guide = "community"
	GuideHygiene   Guide = "hygiene"
	GuideAny       Guide = "any_guide"
)

// Filter holds every recognized filter option from §6.1. Zero values mean
// "unset" except where noted.
type Filter struct {
	MinRating    float64
	MaxRating    float64
	HasMinRating bool
	HasMaxRating bool

	Cuisine     string // "" or "all" means unfiltered
	MinReviews  int
	District    string
	DistrictTier string
	VenueType   string
	DiasporaOnly bool
	HasPriceTier bool
	PriceTier   int
	Guide       Guide
	OpenDay     int // 0=Sunday..6=Saturday
	HasOpenDay  bool
	NameContains string

	SortBy SortBy
	Limit  int
}

// Corpus is an immutable, scored snapshot: one writer (the build pipeline),
// many readers (§5).
type Corpus struct {
	records []*model.Restaurant
	ctx     *citycontext.Config
	ready   bool
}

// NewCorpus wraps a scored, reranked record set as a servable snapshot.
func NewCorpus(records []*model.Restaurant, ctx *citycontext.Config) *Corpus {
	return &Corpus{records: records, ctx: ctx, ready: true}
}

// Unavailable returns a Corpus in the "not yet built" state, so queries
// against it return the structured unavailable error rather than an empty
// result (§7).
func Unavailable() *Corpus {
	return &Corpus{ready: false}
}

// Query runs f against the corpus, returning a deterministic, paginated
// slice of matching records.
func (c *Corpus) Query(f Filter) ([]*model.Restaurant, error) {
	if !c.ready {
		return nil, &Error{Kind: KindUnavailable, Msg: "corpus not ready; upstream build has not completed"}
	}

	if err := validate(f); err != nil {
		return nil, err
	}

	limit := f.Limit
	if limit <= 0 || limit > maxLimit {
		limit = maxLimit
	}

	matched := make([]*model.Restaurant, 0, len(c.records))
	for _, r := range c.records {
		if matches(r, f, c.ctx) {
			matched = append(matched, r)
		}
	}

	sortRecords(matched, f.SortBy)

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func validate(f Filter) error {
	if f.HasMinRating && (f.MinRating < 0 || f.MinRating > 5) {
		return &Error{Kind: KindInvalidArgument, Field: "min_rating", Msg: "must be in [0,5]"}
	}
	if f.HasMaxRating && (f.MaxRating < 0 || f.MaxRating > 5) {
		return &Error{Kind: KindInvalidArgument, Field: "max_rating", Msg: "must be in [0,5]"}
	}
	if f.HasPriceTier && (f.PriceTier < 1 || f.PriceTier > 4) {
		return &Error{Kind: KindInvalidArgument, Field: "price_tier", Msg: "must be in [1,4]"}
	}
	if f.HasOpenDay && (f.OpenDay < 0 || f.OpenDay > 6) {
		return &Error{Kind: KindInvalidArgument, Field: "open_day", Msg: "must be in [0,6]"}
	}
	switch f.SortBy {
	case "", SortByComposite, SortByRating, SortByResidual:
	default:
		return &Error{Kind: KindInvalidArgument, Field: "sort_by", Msg: "unrecognized sort key"}
	}
	switch f.Guide {
	case "", GuideMultiStar, GuideValue, GuideRegional, GuideCommunity, GuideHygiene, GuideAny:
	default:
		return &Error{Kind: KindInvalidArgument, Field: "guide", Msg: "unrecognized guide value"}
	}
	return nil
}

func matches(r *model.Restaurant, f Filter, ctx *citycontext.Config) bool {
	if f.HasMinRating && r.Rating < f.MinRating {
		return false
	}
	if f.HasMaxRating && r.Rating > f.MaxRating {
		return false
	}
	if f.Cuisine != "" && !strings.EqualFold(f.Cuisine, "all") && !strings.EqualFold(r.Cuisine, f.Cuisine) {
		return false
	}
	if r.ReviewCount < f.MinReviews {
		return false
	}
	if f.District != "" && r.District != f.District {
		return false
	}
	if f.DistrictTier != "" && ctx.DistrictTier(r.District) != f.DistrictTier {
		return false
	}
	if f.VenueType != "" && !strings.EqualFold(r.VenueType, f.VenueType) {
		return false
	}
	if f.DiasporaOnly && !ctx.IsDiasporaCuisine(r.Cuisine) {
		return false
	}
	if f.HasPriceTier && r.PriceNumeric != f.PriceTier {
		return false
	}
	if f.Guide != "" && !matchesGuide(r, f.Guide) {
		return false
	}
	if f.HasOpenDay && !r.DaysOpen[f.OpenDay] {
		return false
	}
	if f.NameContains != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(f.NameContains)) {
		return false
	}
	return true
}

func matchesGuide(r *model.Restaurant, g Guide) bool {
	c := r.Components
	switch g {
	case GuideMultiStar:
		return c.MichelinStars > 0
	case GuideValue:
		return c.ValueGuideFlag
	case GuideRegional:
		return c.RegionalGuideFlag
	case GuideCommunity:
		return c.CommunityMentions > 0
	case GuideHygiene:
		return c.HygieneFlag
	case GuideAny:
		return c.MichelinStars > 0 || c.ValueGuideFlag || c.RegionalGuideFlag
	}
	return false
}

func sortRecords(records []*model.Restaurant, by SortBy) {
	switch by {
	case SortByRating:
		sort.SliceStable(records, func(i, j int) bool { return records[i].Rating > records[j].Rating })
	case SortByResidual:
		sort.SliceStable(records, func(i, j int) bool { return records[i].Residual > records[j].Residual })
	default:
		sort.SliceStable(records, func(i, j int) bool { return records[i].CompositeScore > records[j].CompositeScore })
	}
}
