package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sport-academy/internal/models"
)

func store() *models.Store {
	return models.NewStore(models.Dataset{Users: []models.User{
		{ID: "1", Username: "admin", Password: "admin", Role: "Administrador", Active: true},
		{ID: "2", Username: "carlos.silva", Password: "123456", Role: "Professor", Active: true},
		{ID: "9", Username: "former", Password: "secret", Role: "Professor", Active: false},
	}})
}

func TestGateLogin(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		password  string
		wantErr   error
		wantState State
	}{
		{"valid admin", "admin", "admin", nil, LoggedIn},
		{"wrong password", "admin", "wrong", ErrInvalidCredentials, LoggedOut},
		{"unknown user", "ghost", "admin", ErrInvalidCredentials, LoggedOut},
		{"username is case sensitive", "Admin", "admin", ErrInvalidCredentials, LoggedOut},
		{"inactive user", "former", "secret", ErrInvalidCredentials, LoggedOut},
		{"empty password", "admin", "", ErrMissingFields, LoggedOut},
		{"empty username", "", "admin", ErrMissingFields, LoggedOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGate(store())
			u, err := g.Login(tt.username, tt.password)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.username, u.Username)
			}
			assert.Equal(t, tt.wantState, g.State())
		})
	}
}

func TestGateRejectionMessage(t *testing.T) {
	g := NewGate(store())
	_, err := g.Login("admin", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Usuário ou senha incorretos", RejectionMessage(err))
	assert.Equal(t, LoggedOut, g.State())
}

func TestGateLogout(t *testing.T) {
	g := NewGate(store())
	_, err := g.Login("carlos.silva", "123456")
	require.NoError(t, err)

	u, ok := g.User()
	assert.True(t, ok)
	assert.Equal(t, "Professor", u.Role)

	g.Logout()
	assert.Equal(t, LoggedOut, g.State())
	_, ok = g.User()
	assert.False(t, ok)

	// logging out twice is harmless
	g.Logout()
	assert.Equal(t, LoggedOut, g.State())
}

func TestFailedLoginKeepsPreviousSession(t *testing.T) {
	g := NewGate(store())
	_, err := g.Login("admin", "admin")
	require.NoError(t, err)

	_, err = g.Login("admin", "wrong")
	assert.Error(t, err)
	u, ok := g.User()
	assert.True(t, ok)
	assert.Equal(t, "admin", u.Username)
}

func TestSessions(t *testing.T) {
	s := NewSessions(store())

	id, g := s.Create()
	assert.NotEmpty(t, id)
	assert.Equal(t, LoggedOut, g.State())
	assert.Equal(t, 1, s.Len())

	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Same(t, g, got)

	other, _ := s.Create()
	assert.NotEqual(t, id, other)

	s.Delete(id)
	_, ok = s.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestRejectionMessage(t *testing.T) {
	assert.Equal(t, "", RejectionMessage(nil))
	assert.Equal(t, "Por favor, preencha todos os campos", RejectionMessage(ErrMissingFields))
	assert.Equal(t, "Usuário ou senha incorretos", RejectionMessage(ErrInvalidCredentials))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "logged_in", LoggedIn.String())
	assert.Equal(t, "logged_out", LoggedOut.String())
}
