package citycontext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInCity(t *testing.T) {
	cfg := BrusselsTemplate()
	assert.True(t, cfg.InCity(50.8503, 4.3517))
	assert.False(t, cfg.InCity(51.0, 4.3517))
}

func TestDistrictOfNearestCentroid(t *testing.T) {
	cfg := BrusselsTemplate()
	name, ok := cfg.DistrictOf(50.8335, 4.3660)
	assert.True(t, ok)
	assert.Equal(t, "Ixelles", name)
}

func TestNeighborhoodOfRueDesBouchers(t *testing.T) {
	cfg := BrusselsTemplate()
	name, data, ok := cfg.NeighborhoodOf(50.8490, 4.3531)
	assert.True(t, ok)
	assert.Equal(t, "rue_des_bouchers", name)
	assert.Equal(t, "tourist_trap", data.Tier)
}

func TestOnDiasporaStreet(t *testing.T) {
	cfg := BrusselsTemplate()
	name, ok := cfg.OnDiasporaStreet(50.8280, 4.3654)
	assert.True(t, ok)
	assert.Equal(t, "Chaussée de Wavre (Matongé)", name)
}

func TestPatternBoundaryMatching(t *testing.T) {
	cfg := BrusselsTemplate()
	assert.Equal(t, 1, cfg.MichelinStars("la paix"))
	assert.Equal(t, 0, cfg.MichelinStars("glacier de la paix"))
	assert.Equal(t, 1, cfg.MichelinStars("Restaurant La Paix"))
}

func TestChainMatchCaseInsensitive(t *testing.T) {
	cfg := BrusselsTemplate()
	assert.True(t, cfg.ChainMatch("McDonald's Brussels Central"))
	assert.False(t, cfg.ChainMatch("Comme Chez Soi"))
}

func TestDiasporaAuthenticityMissingPairIsZero(t *testing.T) {
	cfg := BrusselsTemplate()
	assert.Equal(t, 0.0, cfg.DiasporaAuthenticity("Japanese", "Ixelles"))
	assert.Equal(t, 1.0, cfg.DiasporaAuthenticity("Congolese", "Ixelles"))
}

func TestValidateRejectsInvertedBoundingBox(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoundingBox.MinLat, cfg.BoundingBox.MaxLat = 10, 5
	cfg.BoundingBox.MinLng, cfg.BoundingBox.MaxLng = 0, 1
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrConfiguration)
}
