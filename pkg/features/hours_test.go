package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHoursClosedLiteral(t *testing.T) {
	h := ParseHours([]string{"Monday: Closed", "Tuesday: 11:00am - 2:00pm"})
	assert.True(t, h.Known)
	assert.Equal(t, 1, h.DaysOpenCount)
}

func TestParseHoursOpen24(t *testing.T) {
	h := ParseHours([]string{"Monday: Open 24 hours"})
	assert.True(t, h.Known)
	assert.Equal(t, 1, h.DaysOpenCount)
}

func TestParseHoursServiceCoupe(t *testing.T) {
	lines := []string{
		"Monday: 11:30am - 2:30pm, 6:00pm - 10:00pm",
		"Tuesday: 11:30am - 2:30pm, 6:00pm - 10:00pm",
		"Wednesday: 11:30am - 2:30pm, 6:00pm - 10:00pm",
	}
	h := ParseHours(lines)
	assert.True(t, h.HasServiceCoupe)
}

func TestParseHoursOvernightClose(t *testing.T) {
	lines := []string{
		"Friday: 6:00pm - 2:00am",
		"Saturday: 6:00pm - 2:00am",
		"Sunday: 6:00pm - 2:00am",
	}
	h := ParseHours(lines)
	assert.True(t, h.ClosesLate)
}

func TestParseHoursUnparseableYieldsUnknown(t *testing.T) {
	h := ParseHours([]string{"garbled nonsense with no day prefix"})
	assert.False(t, h.Known)
}

func TestParseHoursEmptyYieldsUnknown(t *testing.T) {
	h := ParseHours(nil)
	assert.False(t, h.Known)
}
