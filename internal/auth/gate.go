// Package auth implements the dashboard's login gate. Credentials are compared in
// plaintext against the static user table; there is no hashing, rate limiting or lockout.
package auth

import (
	"errors"
	"sync"

	"sport-academy/internal/models"
)

type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	if s == LoggedIn {
		return "logged_in"
	}
	return "logged_out"
}

var (
	ErrMissingFields      = errors.New("auth: username and password are required")
	ErrInvalidCredentials = errors.New("auth: invalid username or password")
)

// RejectionMessage is the text shown on the login screen for a failed Login.
func RejectionMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingFields):
		return "Por favor, preencha todos os campos"
	default:
		return "Usuário ou senha incorretos"
	}
}

// UserLookup is the part of models.Repository the gate needs.
type UserLookup interface {
	UserByUsername(username string) (models.User, error)
}

// Gate is a two-state machine: LoggedOut until a matching active user logs in, back to
// LoggedOut on Logout.
type Gate struct {
	users UserLookup

	mu    sync.Mutex
	state State
	user  models.User
}

func NewGate(users UserLookup) *Gate {
	return &Gate{users: users}
}

// Login moves the gate to LoggedIn when username and password exactly match an active
// user. A failed attempt leaves the state unchanged.
func (g *Gate) Login(username, password string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, ErrMissingFields
	}

	u, err := g.users.UserByUsername(username)
	if err != nil || u.Password != password || !u.Active {
		return models.User{}, ErrInvalidCredentials
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = LoggedIn
	g.user = u
	return u, nil
}

// Logout always moves the gate to LoggedOut.
func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = LoggedOut
	g.user = models.User{}
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// User returns the logged-in user; ok is false while LoggedOut.
func (g *Gate) User() (models.User, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.user, g.state == LoggedIn
}
