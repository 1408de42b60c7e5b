package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHoursSummaryZeroValueIsUnknown(t *testing.T) {
	var h HoursSummary
	assert.False(t, h.Known)
	assert.Equal(t, 0, h.DaysOpenCount)
	assert.False(t, h.HasServiceCoupe)
}

func TestDisplayName(t *testing.T) {
	r := &Restaurant{Name: "Comme Chez Soi"}
	assert.Equal(t, "Comme Chez Soi", r.DisplayName())
}
