package persist

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"localfare/pkg/citycontext"
	"localfare/pkg/model"
)

func TestOpenCreatesTableAndReplaceRoundTrips(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "corpus.sqlite")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	ctx := citycontext.BrusselsTemplate()
	records := []*model.Restaurant{
		{ID: "1", Name: "Chez Bibiche", Rating: 4.6, ReviewCount: 120, District: "Ixelles", CompositeScore: 0.6},
	}

	require.NoError(t, store.Replace(records, ctx))

	var count int
	require.NoError(t, store.QueryRow("SELECT COUNT(*) FROM restaurants").Scan(&count))
	require.Equal(t, 1, count)

	var tier string
	require.NoError(t, store.QueryRow("SELECT district_tier FROM restaurants WHERE id = ?", "1").Scan(&tier))
	require.Equal(t, "diaspora_hub", tier)
}
