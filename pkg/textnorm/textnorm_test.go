package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "chaussee de wavre", Fold("Chaussée de Wavre"))
	assert.Equal(t, "francoise", Fold("Françoise"))
}

func TestWordsStripsStopwords(t *testing.T) {
	words := Words("Chaussée de Wavre (Matongé)")
	assert.Equal(t, []string{"chaussee", "wavre", "matonge"}, words)
}

func TestWordOverlap(t *testing.T) {
	assert.True(t, WordOverlap("Congolese", "African, Congolese food"))
	assert.False(t, WordOverlap("Japanese", "African, Congolese food"))
}
