// Package businesstime calculates elapsed time restricted to configured
// working hours and working weekdays.
package businesstime

import (
	"fmt"
	"strings"
	"time"
)

// weekdayNames maps the canonical English weekday names to time.Weekday.
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Calendar describes a working schedule: the daily work window and the set
// of non-working weekdays. A Calendar is immutable once constructed and safe
// to share across calculations.
type Calendar struct {
	workStartHour int
	workEndHour   int
	weekend       map[time.Weekday]bool
}

// NewCalendar creates a Calendar from a daily work window and a list of
// weekend day names. Hours must be within [0,23] and the start hour must be
// strictly before the end hour. Weekend day names are matched
// case-insensitively against the seven English weekday names; names that
// don't match are dropped.
func NewCalendar(startHour, endHour int, weekendDays []string) (*Calendar, error) {
	if startHour < 0 || startHour > 23 {
		return nil, fmt.Errorf("work start hour %d out of range [0,23]", startHour)
	}
	if endHour < 0 || endHour > 23 {
		return nil, fmt.Errorf("work end hour %d out of range [0,23]", endHour)
	}
	if startHour >= endHour {
		return nil, fmt.Errorf("work start hour %d must be before end hour %d", startHour, endHour)
	}

	weekend := make(map[time.Weekday]bool)
	for _, name := range weekendDays {
		if day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]; ok {
			weekend[day] = true
		}
	}

	return &Calendar{
		workStartHour: startHour,
		workEndHour:   endHour,
		weekend:       weekend,
	}, nil
}

// DefaultCalendar returns a calendar with a 9-to-18 work window and a
// Friday/Saturday weekend.
func DefaultCalendar() *Calendar {
	cal, err := NewCalendar(9, 18, []string{"Friday", "Saturday"})
	if err != nil {
		// The defaults are valid, this cannot happen.
		panic(err)
	}
	return cal
}

// IsWorkday reports whether t falls on a working weekday.
func (c *Calendar) IsWorkday(t time.Time) bool {
	return !c.weekend[t.Weekday()]
}

// WorkWindow returns the start and end of the work window on t's calendar day.
func (c *Calendar) WorkWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), c.workStartHour, 0, 0, 0, t.Location())
	end := time.Date(t.Year(), t.Month(), t.Day(), c.workEndHour, 0, 0, 0, t.Location())
	return start, end
}

// nextWorkStart returns the work-window start on the day after t.
func (c *Calendar) nextWorkStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, c.workStartHour, 0, 0, 0, t.Location())
}
