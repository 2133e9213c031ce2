package view

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// FormatRating renders an average vote with exactly one decimal.
// A zero rating is indistinguishable from a missing one and renders as "N/A".
func FormatRating(rating float64) string {
	if rating == 0 {
		return NotAvailable
	}
	// Only x.25 and x.75 are exact ties at one decimal; round them away from
	// zero instead of to even.
	if q := rating * 4; q == math.Trunc(q) && math.Mod(q, 2) != 0 {
		rating = math.Copysign(math.Ceil(math.Abs(rating)*10)/10, rating)
	}
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

// FormatYear extracts the calendar year from an ISO date, "TBA" when absent.
func FormatYear(date string) string {
	if date == "" {
		return ToBeAnnounced
	}
	if t, err := time.Parse(time.DateOnly, date); err == nil {
		return strconv.Itoa(t.Year())
	}
	// Partial dates like "2014" or "2014-07".
	if len(date) >= 4 {
		if year, err := strconv.Atoi(date[:4]); err == nil {
			return strconv.Itoa(year)
		}
	}
	return ToBeAnnounced
}

// FormatRuntime renders minutes as "2h 28m".
func FormatRuntime(minutes int) string {
	if minutes <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FormatSeasons renders a season count as "5 Seasons".
func FormatSeasons(seasons int) string {
	if seasons <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%d Seasons", seasons)
}
