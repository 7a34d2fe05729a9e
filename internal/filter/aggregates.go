package filter

import (
	"strings"
	"time"
	"unicode/utf8"

	"sport-academy/internal/models"
)

// TotalFee sums the catalog fee of each named sport. Names missing from the catalog add 0.
func TotalFee(sportNames []string, catalog []models.SportModality) float64 {
	fees := make(map[string]float64, len(catalog))
	for _, s := range catalog {
		fees[s.Name] = s.MonthlyFee
	}
	var total float64
	for _, name := range sportNames {
		total += fees[name]
	}
	return total
}

func CountStudentsByStatus(students []models.Student, status models.StudentStatus) int {
	n := 0
	for _, s := range students {
		if s.Status == status {
			n++
		}
	}
	return n
}

func CountActive[T any](list []T, active func(T) bool) int {
	n := 0
	for _, item := range list {
		if active(item) {
			n++
		}
	}
	return n
}

// PaymentsForMonth keeps the payments of one YYYY-MM month.
func PaymentsForMonth(payments []models.Payment, month string) []models.Payment {
	var out []models.Payment
	for _, p := range payments {
		if p.Month == month {
			out = append(out, p)
		}
	}
	return out
}

func PaymentsByStatus(payments []models.Payment, status models.PaymentStatus) []models.Payment {
	var out []models.Payment
	for _, p := range payments {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

func CountPaymentsByStatus(payments []models.Payment, status models.PaymentStatus) int {
	return len(PaymentsByStatus(payments, status))
}

func SumPayments(payments []models.Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

// UsersWithRole counts accounts whose role name equals role.
func UsersWithRole(users []models.User, role string) int {
	n := 0
	for _, u := range users {
		if u.Role == role {
			n++
		}
	}
	return n
}

// Metrics feeds the dashboard cards.
type Metrics struct {
	TotalRevenue     float64
	ProjectedRevenue float64
	DefaultRate      float64
	EnrollmentGrowth float64
	TotalStudents    int
	ActiveStudents   int
}

// DashboardMetrics derives the dashboard cards from the collections as of reference.
//   - TotalRevenue: every paid payment.
//   - ProjectedRevenue: monthly fees of active students.
//   - DefaultRate: share of overdue payments among the reference month's payments.
//   - EnrollmentGrowth: students enrolled during the reference month relative to those
//     enrolled before it.
func DashboardMetrics(students []models.Student, payments []models.Payment, reference time.Time) Metrics {
	m := Metrics{TotalStudents: len(students)}

	monthStart := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	var before, during int
	for _, s := range students {
		if s.Status == models.StudentActive {
			m.ActiveStudents++
			m.ProjectedRevenue += s.MonthlyFee
		}
		switch {
		case s.EnrollmentDate.Before(monthStart):
			before++
		case s.EnrollmentDate.Before(monthEnd):
			during++
		}
	}
	if before > 0 {
		m.EnrollmentGrowth = float64(during) / float64(before) * 100
	}

	m.TotalRevenue = SumPayments(PaymentsByStatus(payments, models.PaymentPaid))

	current := PaymentsForMonth(payments, reference.Format("2006-01"))
	if len(current) > 0 {
		m.DefaultRate = float64(CountPaymentsByStatus(current, models.PaymentOverdue)) / float64(len(current)) * 100
	}
	return m
}

// Initials returns the first letters of the first two words of name, e.g. "LS".
func Initials(name string) string {
	var b strings.Builder
	for i, part := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}
