package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localfare/pkg/citycontext"
	"localfare/pkg/model"
)

func sampleCorpus() *Corpus {
	ctx := citycontext.BrusselsTemplate()
	records := []*model.Restaurant{
		{ID: "1", Name: "Chez Bibiche", Rating: 4.6, ReviewCount: 120, Cuisine: "Congolese", District: "Ixelles", CompositeScore: 0.6, PriceNumeric: 2, DaysOpen: map[int]bool{1: true}},
		{ID: "2", Name: "Le Central", Rating: 4.1, ReviewCount: 80, Cuisine: "French", District: "Bruxelles", CompositeScore: 0.4, PriceNumeric: 3},
		{ID: "3", Name: "Quick Burger", Rating: 3.2, ReviewCount: 900, Cuisine: "Other", District: "Schuman", CompositeScore: 0.2, PriceNumeric: 1},
	}
	return NewCorpus(records, ctx)
}

func TestQueryUnavailableCorpusReturnsStructuredError(t *testing.T) {
	c := Unavailable()
	_, err := c.Query(Filter{})
	require.Error(t, err)
	qerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindUnavailable, qerr.Kind)
}

func TestQueryInvalidArgument(t *testing.T) {
	c := sampleCorpus()
	_, err := c.Query(Filter{HasMinRating: true, MinRating: 9})
	require.Error(t, err)
	qerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindInvalidArgument, qerr.Kind)
	assert.Equal(t, "min_rating", qerr.Field)
}

func TestQueryUnfilteredSortsByRating(t *testing.T) {
	c := sampleCorpus()
	out, err := c.Query(Filter{SortBy: SortByRating})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "1", out[0].ID)
}

func TestQueryDiasporaOnlyFilter(t *testing.T) {
	c := sampleCorpus()
	out, err := c.Query(Filter{DiasporaOnly: true})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)
}

func TestQueryOpenDayFilter(t *testing.T) {
	c := sampleCorpus()
	out, err := c.Query(Filter{HasOpenDay: true, OpenDay: 1})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)
}

func TestQueryNameContainsIsCaseInsensitive(t *testing.T) {
	c := sampleCorpus()
	out, err := c.Query(Filter{NameContains: "CENTRAL"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)
}

func TestQueryLimitCapsAtHardCeiling(t *testing.T) {
	c := sampleCorpus()
	out, err := c.Query(Filter{Limit: 10000})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), maxLimit)
}
