package filter

import (
	"time"

	"sport-academy/internal/models"
)

// MonthGrid lays out month for a Sunday-first calendar: one nil cell per weekday before
// the 1st, then every day of the month.
func MonthGrid(month time.Time) []*time.Time {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]*time.Time, int(first.Weekday()), int(first.Weekday())+daysInMonth)
	for d := 0; d < daysInMonth; d++ {
		day := first.AddDate(0, 0, d)
		cells = append(cells, &day)
	}
	return cells
}

// EventsOn returns the events held on day, in start-time order.
func EventsOn(events []models.Event, day time.Time) []models.Event {
	var out []models.Event
	for _, e := range events {
		ey, em, ed := e.Date.Date()
		dy, dm, dd := day.Date()
		if ey == dy && em == dm && ed == dd {
			out = append(out, e)
		}
	}
	sortEvents(out)
	return out
}

// EventsInMonth returns the events of month's calendar month, earliest first.
func EventsInMonth(events []models.Event, month time.Time) []models.Event {
	var out []models.Event
	for _, e := range events {
		if e.Date.Year() == month.Year() && e.Date.Month() == month.Month() {
			out = append(out, e)
		}
	}
	sortEvents(out)
	return out
}
