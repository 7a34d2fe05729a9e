package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"sport-academy/internal/auth"
	"sport-academy/internal/middleware"
)

type AuthHandler struct {
	env *Env
}

func NewAuthHandler(env *Env) *AuthHandler {
	return &AuthHandler{env: env}
}

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// LoginForm renders the login page, or sends an already logged-in browser to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, g, ok := middleware.SessionGate(r, h.env.Sessions, h.env.Config.SessionSecret); ok && g.State() == auth.LoggedIn {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	renderTemplate(w, r, "login.html", map[string]interface{}{
		"Title":    "Login - Academia Esportiva",
		"Username": "",
		"Error":    "",
	})
}

// Login runs the gate for the browser's session, creating one on first use. A rejected
// attempt re-renders the form with the rejection message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	form := loginForm{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}

	var err error
	if verr := validate.Struct(form); verr != nil {
		err = auth.ErrMissingFields
	} else {
		id, g, ok := middleware.SessionGate(r, h.env.Sessions, h.env.Config.SessionSecret)
		if !ok {
			id, g = h.env.Sessions.Create()
		}
		if _, err = g.Login(form.Username, form.Password); err == nil {
			h.env.Logger.Info("user logged in", zap.String("username", form.Username))
			http.SetCookie(w, middleware.CreateSessionCookie(id, h.env.Config.SessionSecret))
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		if !ok {
			// a rejected first attempt leaves no session behind
			h.env.Sessions.Delete(id)
		}
	}

	h.env.Logger.Info("login rejected", zap.String("username", form.Username), zap.Error(err))
	renderTemplate(w, r, "login.html", map[string]interface{}{
		"Title":    "Login - Academia Esportiva",
		"Username": form.Username,
		"Error":    auth.RejectionMessage(err),
	})
}

// Logout moves the session's gate to LoggedOut, forgets the session and clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if id, g, ok := middleware.SessionGate(r, h.env.Sessions, h.env.Config.SessionSecret); ok {
		if u, loggedIn := g.User(); loggedIn {
			h.env.Logger.Info("user logged out", zap.String("username", u.Username))
		}
		g.Logout()
		h.env.Sessions.Delete(id)
	}
	http.SetCookie(w, middleware.ClearSessionCookie())
	http.Redirect(w, r, "/login", http.StatusFound)
}
