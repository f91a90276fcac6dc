// Package openinghours models a restaurant's weekly schedule and decides
// whether it is open at a given moment.
package openinghours

import (
	"strconv"
	"strings"
	"time"
)

// Closed is the display value for a day without service.
const Closed = "Lukket"

// Day pairs a weekday key with its Danish label.
type Day struct {
	Key   string
	Label string
}

// Weekdays lists the schedule keys in display order.
var Weekdays = []Day{
	{Key: "monday", Label: "Mandag"},
	{Key: "tuesday", Label: "Tirsdag"},
	{Key: "wednesday", Label: "Onsdag"},
	{Key: "thursday", Label: "Torsdag"},
	{Key: "friday", Label: "Fredag"},
	{Key: "saturday", Label: "Lørdag"},
	{Key: "sunday", Label: "Søndag"},
}

// Hours maps each weekday to a display string, either "HH:MM - HH:MM" or
// the closed marker.
type Hours struct {
	Monday    string `json:"monday" validate:"max=50"`
	Tuesday   string `json:"tuesday" validate:"max=50"`
	Wednesday string `json:"wednesday" validate:"max=50"`
	Thursday  string `json:"thursday" validate:"max=50"`
	Friday    string `json:"friday" validate:"max=50"`
	Saturday  string `json:"saturday" validate:"max=50"`
	Sunday    string `json:"sunday" validate:"max=50"`
}

// Default returns a schedule with every day left blank.
func Default() Hours {
	return Hours{}
}

// For returns the display string for a weekday.
func (h Hours) For(day time.Weekday) string {
	switch day {
	case time.Monday:
		return h.Monday
	case time.Tuesday:
		return h.Tuesday
	case time.Wednesday:
		return h.Wednesday
	case time.Thursday:
		return h.Thursday
	case time.Friday:
		return h.Friday
	case time.Saturday:
		return h.Saturday
	default:
		return h.Sunday
	}
}

// Key returns the schedule key for a weekday ("monday".."sunday").
func Key(day time.Weekday) string {
	// time.Weekday counts from sunday, Weekdays from monday.
	return Weekdays[(int(day)+6)%7].Key
}

// DayLabel returns the Danish name of a weekday.
func DayLabel(day time.Weekday) string {
	return Weekdays[(int(day)+6)%7].Label
}

// IsOpenNow reports whether the schedule covers now. Missing, blank,
// closed or malformed entries count as closed. A range that ends before
// it starts ("22:00 - 02:00") runs past midnight into the next day.
func IsOpenNow(h Hours, now time.Time) bool {
	current := float64(now.Hour()) + float64(now.Minute())/60

	if from, until, ok := parseRange(h.For(now.Weekday())); ok {
		if until >= from {
			if from <= current && current <= until {
				return true
			}
		} else if current >= from {
			return true
		}
	}

	yesterday := now.AddDate(0, 0, -1).Weekday()
	if from, until, ok := parseRange(h.For(yesterday)); ok && until < from {
		return current <= until
	}
	return false
}

func parseRange(value string) (from, until float64, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, Closed) {
		return 0, 0, false
	}

	parts := strings.Split(value, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}

	from, ok = parseClock(strings.TrimSpace(parts[0]))
	if !ok {
		return 0, 0, false
	}
	until, ok = parseClock(strings.TrimSpace(parts[1]))
	if !ok {
		return 0, 0, false
	}
	return from, until, true
}

// parseClock turns "H:MM" or "HH:MM" into fractional hours.
func parseClock(value string) (float64, bool) {
	hh, mm, found := strings.Cut(value, ":")
	if !found || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return 0, false
	}

	if !digits(hh) || !digits(mm) {
		return 0, false
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours > 24 {
		return 0, false
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes > 59 || (hours == 24 && minutes > 0) {
		return 0, false
	}
	return float64(hours) + float64(minutes)/60, true
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
