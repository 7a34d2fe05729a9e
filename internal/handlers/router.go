package handlers

import (
	"net/http"

	"sport-academy/internal/middleware"
)

// NewRouter wires every screen. Only the login routes and /healthz are reachable
// without a logged-in session.
func NewRouter(env *Env) http.Handler {
	SetLogger(env.Logger)

	authHandler := NewAuthHandler(env)
	dashboardHandler := NewDashboardHandler(env)
	studentsHandler := NewStudentsHandler(env)
	enrollmentHandler := NewEnrollmentHandler(env)
	teachersHandler := NewTeachersHandler(env)
	financialHandler := NewFinancialHandler(env)
	calendarHandler := NewCalendarHandler(env)
	modalitiesHandler := NewModalitiesHandler(env)
	rolesHandler := NewRolesHandler(env)
	usersHandler := NewUsersHandler(env)

	requireAuth := middleware.RequireAuth(env.Sessions, env.Config.SessionSecret)

	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /login", authHandler.LoginForm)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("POST /logout", authHandler.Logout)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	// Protected routes
	mux.HandleFunc("GET /{$}", requireAuth(dashboardHandler.Dashboard))
	mux.HandleFunc("GET /students", requireAuth(studentsHandler.List))
	mux.HandleFunc("GET /enrollment", requireAuth(enrollmentHandler.Form))
	mux.HandleFunc("POST /enrollment", requireAuth(enrollmentHandler.Submit))
	mux.HandleFunc("GET /teachers", requireAuth(teachersHandler.List))
	mux.HandleFunc("POST /teachers/{id}/delete", requireAuth(teachersHandler.Delete))
	mux.HandleFunc("GET /financial", requireAuth(financialHandler.List))
	mux.HandleFunc("POST /financial/mark-paid", requireAuth(financialHandler.MarkPaid))
	mux.HandleFunc("POST /financial/remind", requireAuth(financialHandler.Remind))
	mux.HandleFunc("GET /calendar", requireAuth(calendarHandler.Calendar))
	mux.HandleFunc("GET /modalities", requireAuth(modalitiesHandler.List))
	mux.HandleFunc("POST /modalities/{id}/delete", requireAuth(modalitiesHandler.Delete))
	mux.HandleFunc("GET /roles", requireAuth(rolesHandler.List))
	mux.HandleFunc("POST /roles/{id}/delete", requireAuth(rolesHandler.Delete))
	mux.HandleFunc("GET /users", requireAuth(usersHandler.List))
	mux.HandleFunc("POST /users/{id}/delete", requireAuth(usersHandler.Delete))

	return middleware.RequestLog(env.Logger, mux)
}
