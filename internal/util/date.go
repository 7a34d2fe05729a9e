package util

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

var shortMonthNames = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez",
}

// DayNames are the calendar column headers, Sunday first.
var DayNames = []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// startOfDay returns the start of the day (00:00:00) in local timezone for the given time.
func startOfDay(t time.Time) time.Time {
	localTime := t.Local()
	return time.Date(localTime.Year(), localTime.Month(), localTime.Day(), 0, 0, 0, 0, time.Local)
}

// ParseDateLocal parses a date string in YYYY-MM-DD format and returns it in local timezone.
func ParseDateLocal(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, dateStr, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return startOfDay(t), nil
}

// MustDate is ParseDateLocal for literals known to be valid.
func MustDate(dateStr string) time.Time {
	t, err := ParseDateLocal(dateStr)
	if err != nil {
		panic(fmt.Sprintf("util.MustDate(%q): %v", dateStr, err))
	}
	return t
}

// ParseMonth parses YYYY-MM into the first day of that month.
func ParseMonth(monthStr string) (time.Time, error) {
	return time.ParseInLocation(MonthLayout, monthStr, time.Local)
}

// StartOfMonth returns the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}

// SameDay compares only the calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Age returns the completed years between birth and ref. The year is not counted until
// the birthday's month and day have been reached.
func Age(birth, ref time.Time) int {
	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age
}

// FormatDateBR formats a date as dd/mm/yyyy.
func FormatDateBR(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// MonthName returns the Portuguese month name.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// ShortMonthName returns the abbreviated Portuguese month name.
func ShortMonthName(m time.Month) string {
	return shortMonthNames[m-1]
}

// MonthTitle renders "Setembro 2024".
func MonthTitle(t time.Time) string {
	return fmt.Sprintf("%s %d", MonthName(t.Month()), t.Year())
}
