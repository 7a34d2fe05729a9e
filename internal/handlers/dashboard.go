package handlers

import (
	"net/http"
	"sort"

	"sport-academy/internal/filter"
	"sport-academy/internal/models"
)

const (
	dashboardOverdue  = 5
	dashboardUpcoming = 5
	dashboardRecent   = 6
)

type DashboardHandler struct {
	env *Env
}

func NewDashboardHandler(env *Env) *DashboardHandler {
	return &DashboardHandler{env: env}
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	students := h.env.Repo.Students()
	payments := h.env.Repo.Payments()
	ref := h.env.Reference

	current := filter.PaymentsForMonth(payments, ref.Format("2006-01"))
	overdue := filter.PaymentsByStatus(current, models.PaymentOverdue)
	if len(overdue) > dashboardOverdue {
		overdue = overdue[:dashboardOverdue]
	}

	renderTemplate(w, r, "dashboard.html", map[string]interface{}{
		"Title":     "Dashboard - Academia Esportiva",
		"Nav":       "dashboard",
		"Reference": ref,
		"Metrics":   filter.DashboardMetrics(students, payments, ref),
		"Overdue":   overdue,
		"Upcoming":  filter.UpcomingEvents(h.env.Repo.Events(), ref, dashboardUpcoming),
		"Recent":    recentStudents(students, dashboardRecent),
	})
}

// recentStudents returns the n latest enrollments, newest first.
func recentStudents(students []models.Student, n int) []models.Student {
	sort.SliceStable(students, func(i, j int) bool {
		return students[i].EnrollmentDate.After(students[j].EnrollmentDate)
	})
	if len(students) > n {
		students = students[:n]
	}
	return students
}
