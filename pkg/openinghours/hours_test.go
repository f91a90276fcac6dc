package openinghours_test

import (
	"testing"
	"time"

	"takeaway/pkg/openinghours"

	"github.com/stretchr/testify/assert"
)

// 2024-01-01 was a monday.
func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.January, day, hour, minute, 0, 0, time.UTC)
}

func TestIsOpenNow(t *testing.T) {
	tests := []struct {
		name  string
		hours openinghours.Hours
		now   time.Time
		want  bool
	}{
		{"inside range", openinghours.Hours{Monday: "08:00 - 22:00"}, at(1, 10, 0), true},
		{"after close", openinghours.Hours{Monday: "08:00 - 22:00"}, at(1, 23, 0), false},
		{"before open", openinghours.Hours{Monday: "08:00 - 22:00"}, at(1, 7, 59), false},
		{"exactly at open", openinghours.Hours{Monday: "08:00 - 22:00"}, at(1, 8, 0), true},
		{"exactly at close", openinghours.Hours{Monday: "08:00 - 22:00"}, at(1, 22, 0), true},
		{"closed marker", openinghours.Hours{Monday: "Lukket"}, at(1, 10, 0), false},
		{"closed marker any case", openinghours.Hours{Monday: "LUKKET"}, at(1, 10, 0), false},
		{"blank day", openinghours.Hours{Tuesday: "08:00 - 22:00"}, at(1, 10, 0), false},
		{"no separator", openinghours.Hours{Monday: "08:00"}, at(1, 10, 0), false},
		{"too many separators", openinghours.Hours{Monday: "08:00 - 12:00 - 22:00"}, at(1, 10, 0), false},
		{"garbage time", openinghours.Hours{Monday: "8am - 10pm"}, at(1, 10, 0), false},
		{"midnight close", openinghours.Hours{Monday: "18:00 - 24:00"}, at(1, 23, 30), true},
		{"past midnight is not a clock", openinghours.Hours{Monday: "18:00 - 24:59"}, at(1, 23, 30), false},
		{"minutes out of range", openinghours.Hours{Monday: "18:00 - 23:60"}, at(1, 19, 0), false},
		{"single digit hour", openinghours.Hours{Monday: "8:30 - 9:45"}, at(1, 9, 0), true},
		{"no spaces", openinghours.Hours{Monday: "08:00-22:00"}, at(1, 12, 0), true},
		{"sunday uses sunday key", openinghours.Hours{Sunday: "12:00 - 20:00"}, at(7, 13, 0), true},
		{"overnight same evening", openinghours.Hours{Monday: "22:00 - 02:00"}, at(1, 23, 0), true},
		{"overnight next morning", openinghours.Hours{Monday: "22:00 - 02:00"}, at(2, 1, 0), true},
		{"overnight after end", openinghours.Hours{Monday: "22:00 - 02:00"}, at(2, 3, 0), false},
		{"overnight early same day", openinghours.Hours{Monday: "22:00 - 02:00"}, at(1, 1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, openinghours.IsOpenNow(tt.hours, tt.now))
		})
	}
}

func TestKeyAndLabel(t *testing.T) {
	assert.Equal(t, "monday", openinghours.Key(time.Monday))
	assert.Equal(t, "sunday", openinghours.Key(time.Sunday))
	assert.Equal(t, "Lørdag", openinghours.DayLabel(time.Saturday))
	assert.Equal(t, "Søndag", openinghours.DayLabel(time.Sunday))
	assert.Len(t, openinghours.Weekdays, 7)
}

func TestHoursFor(t *testing.T) {
	h := openinghours.Hours{Wednesday: "10:00 - 14:00", Sunday: openinghours.Closed}
	assert.Equal(t, "10:00 - 14:00", h.For(time.Wednesday))
	assert.Equal(t, "Lukket", h.For(time.Sunday))
	assert.Empty(t, h.For(time.Friday))
}
