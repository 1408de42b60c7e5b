package features

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"localfare/pkg/model"
)

// dayNames maps a lowercase weekday prefix to its spec.md index
// (0=Sunday..6=Saturday).
var dayNames = map[string]int{
	"sunday": 0, "sun": 0,
	"monday": 1, "mon": 1,
	"tuesday": 2, "tue": 2, "tues": 2,
	"wednesday": 3, "wed": 3,
	"thursday": 4, "thu": 4, "thur": 4, "thurs": 4,
	"friday": 5, "fri": 5,
	"saturday": 6, "sat": 6,
}

var (
	dayLineRe  = regexp.MustCompile(`(?i)^([A-Za-z]+):\s*(.*)$`)
	shiftRe    = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*([AaPp][Mm])?\s*[\x{2013}\x{2014}-]\s*(\d{1,2})(?::(\d{2}))?\s*([AaPp][Mm])?`)
)

// ParseHours parses the weekday-description list ("Monday: 11:00–14:30,
// 18:00–22:00", "Tuesday: Closed", "Wednesday: Open 24 hours", ...) into a
// structured HoursSummary. Any row it cannot parse is skipped; if nothing
// at all parses, the zero-value "unknown" sentinel is returned so
// hours-dependent scoring bonuses contribute zero rather than the engine
// crashing (§4.1 "parsing failure yields a well-typed unknown summary").
func ParseHours(lines []string) model.HoursSummary {
	closeByDay := make(map[int]float64)
	openByDay := make(map[int]bool)
	shiftsByDay := make(map[int]int)

	for _, line := range lines {
		m := dayLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		dayIdx, ok := dayNames[strings.ToLower(m[1])]
		if !ok {
			continue
		}
		body := strings.TrimSpace(m[2])

		switch {
		case strings.EqualFold(body, "closed"):
			continue
		case strings.Contains(strings.ToLower(body), "24 hours"):
			openByDay[dayIdx] = true
			closeByDay[dayIdx] = 24.0
			shiftsByDay[dayIdx] = 1
			continue
		}

		shifts := shiftRe.FindAllStringSubmatch(body, -1)
		if len(shifts) == 0 {
			continue
		}
		openByDay[dayIdx] = true
		shiftsByDay[dayIdx] = len(shifts)

		var lastClose float64
		for _, sh := range shifts {
			openH := parseShiftHour(sh[1], sh[2], sh[3])
			closeH := parseShiftHour(sh[4], sh[5], sh[6])

			// Infer missing AM/PM on the close time from the adjacent open
			// field when the close clock value looks earlier than open.
			if closeH < openH && sh[6] == "" && closeH+12 >= openH {
				closeH += 12
			}
			// Overnight close: still earlier after the AM/PM fix-up means
			// the shift crosses midnight.
			if closeH < openH {
				closeH += 24
			}
			lastClose = closeH
		}
		closeByDay[dayIdx] = lastClose
	}

	if len(openByDay) == 0 {
		return model.HoursSummary{} // unknown sentinel
	}

	return summarize(openByDay, closeByDay, shiftsByDay)
}

func parseShiftHour(hourStr, minStr, ampm string) float64 {
	hour, _ := strconv.Atoi(hourStr)
	min := 0.0
	if minStr != "" {
		m, _ := strconv.Atoi(minStr)
		min = float64(m)
	}
	h := float64(hour) + min/60.0
	switch strings.ToLower(ampm) {
	case "pm":
		if hour != 12 {
			h += 12
		}
	case "am":
		if hour == 12 {
			h -= 12
		}
	}
	return h
}

func summarize(openByDay map[int]bool, closeByDay map[int]float64, shiftsByDay map[int]int) model.HoursSummary {
	var closes []float64
	var latest float64
	serviceCoupeDays := 0
	lateCloseDays := 0
	lunchOnlyDays := 0
	total := 0.0

	for day, open := range openByDay {
		if !open {
			continue
		}
		c := closeByDay[day]
		closes = append(closes, c)
		if c > latest {
			latest = c
		}
		if c >= 25.0 { // past 01:00 next day
			lateCloseDays++
		}
		if shiftsByDay[day] >= 2 {
			serviceCoupeDays++
		}
		if c <= 17.0 {
			lunchOnlyDays++
		}
		// Weekly-hours estimate: assume lunch service starts ~11:30 and, for
		// single-shift days, counts hours open until close.
		const openHour = 11.5
		if c > openHour {
			total += c - openHour
		}
	}

	sort.Float64s(closes)
	typical := median(closes)

	weekdaysOnly := true
	for _, weekendDay := range []int{0, 6} {
		if openByDay[weekendDay] {
			weekdaysOnly = false
		}
	}

	return model.HoursSummary{
		Known:            true,
		DaysOpenCount:    len(openByDay),
		TypicalCloseHour: typical,
		LatestCloseHour:  latest,
		HasServiceCoupe:  serviceCoupeDays >= 3,
		ClosesLate:       lateCloseDays >= 3,
		IsLunchOnly:      lunchOnlyDays >= 4 && len(openByDay) >= 4,
		TotalWeeklyHours: total,
		WeekdaysOnly:     weekdaysOnly,
		ClosedSunday:     !openByDay[0],
		ClosedWeekends:   !openByDay[0] && !openByDay[6],
	}
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
