package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sport-academy/internal/auth"
	"sport-academy/internal/config"
	"sport-academy/internal/middleware"
	"sport-academy/internal/mockdata"
	"sport-academy/internal/models"
	"sport-academy/internal/util"
)

const testSecret = "handlers-test-secret"

func newTestEnv(t *testing.T) *Env {
	t.Helper()
	ref := util.MustDate("2024-09-06")
	store := models.NewStore(mockdata.New(42, ref).Generate())
	return &Env{
		Config:    &config.Config{Port: "3000", SessionSecret: testSecret},
		Repo:      store,
		Sessions:  auth.NewSessions(store),
		Logger:    zap.NewNop(),
		Reference: ref,
	}
}

// loginCookie returns the cookie of a session logged in as username.
func loginCookie(t *testing.T, env *Env, username, password string) *http.Cookie {
	t.Helper()
	id, g := env.Sessions.Create()
	_, err := g.Login(username, password)
	require.NoError(t, err)
	return middleware.CreateSessionCookie(id, testSecret)
}

func get(t *testing.T, h http.Handler, target string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func post(t *testing.T, h http.Handler, target string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestProtectedRoutesRedirectToLogin(t *testing.T) {
	router := NewRouter(newTestEnv(t))

	for _, path := range []string{"/", "/students", "/enrollment", "/teachers", "/financial", "/calendar", "/modalities", "/roles", "/users"} {
		t.Run(path, func(t *testing.T) {
			rr := get(t, router, path, nil)
			assert.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, "/login", rr.Header().Get("Location"))
		})
	}
}

func TestHealthz(t *testing.T) {
	rr := get(t, NewRouter(newTestEnv(t)), "/healthz", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestLoginFlow(t *testing.T) {
	env := newTestEnv(t)
	router := NewRouter(env)

	t.Run("form renders", func(t *testing.T) {
		rr := get(t, router, "/login", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `name="username"`)
	})

	t.Run("wrong password stays logged out", func(t *testing.T) {
		rr := post(t, router, "/login", url.Values{"username": {"admin"}, "password": {"wrong"}}, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Usuário ou senha incorretos")
		assert.Empty(t, rr.Result().Cookies())
		assert.Equal(t, 0, env.Sessions.Len())
	})

	t.Run("missing fields", func(t *testing.T) {
		rr := post(t, router, "/login", url.Values{"username": {"admin"}}, nil)
		assert.Contains(t, rr.Body.String(), "Por favor, preencha todos os campos")
	})

	t.Run("valid credentials log in and out", func(t *testing.T) {
		rr := post(t, router, "/login", url.Values{"username": {"admin"}, "password": {"admin"}}, nil)
		require.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		cookie := cookies[0]
		assert.Equal(t, middleware.SessionCookieName, cookie.Name)

		dash := get(t, router, "/", cookie)
		assert.Equal(t, http.StatusOK, dash.Code)
		assert.Contains(t, dash.Body.String(), "Administrador do Sistema")

		// a logged-in browser skips the form
		again := get(t, router, "/login", cookie)
		assert.Equal(t, http.StatusFound, again.Code)

		out := post(t, router, "/logout", url.Values{}, cookie)
		assert.Equal(t, http.StatusFound, out.Code)
		assert.Equal(t, "/login", out.Header().Get("Location"))

		after := get(t, router, "/", cookie)
		assert.Equal(t, http.StatusFound, after.Code)
	})
}

func TestSessionsDoNotSurviveRestart(t *testing.T) {
	env := newTestEnv(t)
	cookie := loginCookie(t, env, "admin", "admin")

	// a new process starts with an empty session map
	restarted := newTestEnv(t)
	rr := get(t, NewRouter(restarted), "/", cookie)
	assert.Equal(t, http.StatusFound, rr.Code)
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)
	rr := get(t, NewRouter(env), "/", loginCookie(t, env, "admin", "admin"))
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, "Receita Total")
	assert.Contains(t, body, "Treino de Futebol - Categoria Sub-12")
	assert.Contains(t, body, "06/09/2024")
	assert.Contains(t, body, "R$ ")
}

func TestStudentsScreen(t *testing.T) {
	env := newTestEnv(t)
	router := NewRouter(env)
	cookie := loginCookie(t, env, "admin", "admin")

	t.Run("search", func(t *testing.T) {
		rr := get(t, router, "/students?q=lucas", cookie)
		require.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Lucas Silva Santos")
		assert.NotContains(t, body, "Ana Carolina Lima")
	})

	t.Run("sport filter", func(t *testing.T) {
		rr := get(t, router, "/students?sport=Nata%C3%A7%C3%A3o&q=ana", cookie)
		body := rr.Body.String()
		assert.Contains(t, body, "Ana Carolina Lima")
		assert.NotContains(t, body, "Lucas Silva Santos")
	})

	t.Run("selected opens the dialog", func(t *testing.T) {
		rr := get(t, router, "/students?selected=1", cookie)
		body := rr.Body.String()
		assert.Contains(t, body, "<dialog open>")
		assert.Contains(t, body, "Maria Silva Santos")
		assert.Contains(t, body, "12 anos")
	})

	t.Run("unknown selected id renders the list only", func(t *testing.T) {
		rr := get(t, router, "/students?selected=999", cookie)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "<dialog open>")
	})

	t.Run("invalid status falls back to all", func(t *testing.T) {
		rr := get(t, router, "/students?status=bogus&q=lucas", cookie)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Lucas Silva Santos")
	})
}

func TestEnrollment(t *testing.T) {
	env := newTestEnv(t)
	router := NewRouter(env)
	cookie := loginCookie(t, env, "admin", "admin")

	form := url.Values{
		"studentName":           {"Clara Nunes"},
		"dateOfBirth":           {"2014-02-10"},
		"cpf":                   {"111.222.333-44"},
		"street":                {"Rua A"},
		"number":                {"10"},
		"city":                  {"São Paulo"},
		"state":                 {"sp"},
		"zipCode":               {"01000-000"},
		"guardianName":          {"Paula Nunes"},
		"guardianCpf":           {"555.666.777-88"},
		"guardianPhone":         {"(11) 90000-0000"},
		"guardianEmail":         {"paula@email.com"},
		"emergencyName":         {"José Nunes"},
		"emergencyRelationship": {"Pai"},
		"emergencyPhone":        {"(11) 91111-1111"},
		"sports":                {"Natação", "Vôlei"},
	}

	t.Run("form renders the catalog", func(t *testing.T) {
		rr := get(t, router, "/enrollment", cookie)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Natação")
	})

	t.Run("valid submission computes the fee", func(t *testing.T) {
		before := len(env.Repo.Students())
		rr := post(t, router, "/enrollment", form, cookie)
		require.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "realizada com sucesso")
		assert.Contains(t, body, "R$ 360,00")
		assert.Equal(t, before, len(env.Repo.Students()))
	})

	t.Run("missing fields are reported", func(t *testing.T) {
		bad := url.Values{"studentName": {"Clara Nunes"}, "guardianEmail": {"not-an-email"}}
		rr := post(t, router, "/enrollment", bad, cookie)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Campo obrigatório: CPF")
		assert.Contains(t, body, "Email do Responsável deve ser um endereço de e-mail válido")
		assert.Contains(t, body, "Selecione ao menos uma opção em Modalidades")
		assert.NotContains(t, body, "Key: &#39;")
	})

	t.Run("rules without a custom text use the locale", func(t *testing.T) {
		bad := url.Values{}
		for k, v := range form {
			bad[k] = v
		}
		bad.Set("state", "SPX")
		bad.Set("dateOfBirth", "10/02/2014")
		rr := post(t, router, "/enrollment", bad, cookie)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Estado deve ter 2 caracteres")
		assert.Contains(t, body, "Data inválida: Data de Nascimento")
		assert.NotContains(t, body, "Valor inválido")
	})

	t.Run("unknown sport is rejected", func(t *testing.T) {
		bad := url.Values{}
		for k, v := range form {
			bad[k] = v
		}
		bad["sports"] = []string{"Natação", "Xadrez"}
		rr := post(t, router, "/enrollment", bad, cookie)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), "Modalidade desconhecida: Xadrez")
		assert.NotContains(t, rr.Body.String(), "realizada com sucesso")
	})
}

func TestTeachersScreen(t *testing.T) {
	env := newTestEnv(t)
	router := NewRouter(env)
	cookie := loginCookie(t, env, "admin", "admin")

	rr := get(t, router, "/teachers?q=mestre", cookie)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Roberto Oliveira Santos")
	assert.NotContains(t, rr.Body.String(), "Ana Paula Rodrigues")

	del := post(t, router, "/teachers/1/delete", url.Values{}, cookie)
	assert.Equal(t, http.StatusSeeOther, del.Code)
	assert.Equal(t, "/teachers?flash=teacher_deleted", del.Header().Get("Location"))
	assert.Len(t, env.Repo.Teachers(), 3)

	flash := get(t, router, "/teachers?flash=teacher_deleted", cookie)
	assert.Contains(t, flash.Body.String(), "Professor excluído com sucesso")

	missing := post(t, router, "/teachers/404/delete", url.Values{}, cookie)
	assert.Equal(t, "/teachers?flash=not_found", missing.Header().Get("Location"))
}

func TestFinancialScreen(t *testing.T) {
	env := newTestEnv(t)
	router := NewRouter(env)
	cookie := loginCookie(t, env, "admin", "admin")

	t.Run("list", func(t *testing.T) {
		rr := get(t, router, "/financial?status=paid&month=2024-04", cookie)
		require.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Setembro 2024")
		assert.Contains(t, body, "Lucas Silva Santos")
		assert.NotContains(t, body, "Nenhum pagamento encontrado")
	})

	t.Run("invalid month is ignored", func(t *testing.T) {
		rr := get(t, router, "/financial?month=september", cookie)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("mark paid is a stub", func(t *testing.T) {
		before := env.Repo.Payments()
		rr := post(t, router, "/financial/mark-paid", url.Values{"ids": {"1-2024-09", "2-2024-09", "nope"}}, cookie)
		assert.Equal(t, http.StatusSeeOther, rr.Code)
		loc, err := url.Parse(rr.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "marked_paid", loc.Query().Get("flash"))
		assert.Equal(t, "2", loc.Query().Get("n"))
		assert.Equal(t, before, env.Repo.Payments())
	})

	t.Run("remind without selection", func(t *testing.T) {
		rr := post(t, router, "/financial/remind", url.Values{}, cookie)
		assert.Equal(t, "/financial?flash=no_selection", rr.Header().Get("Location"))
	})
}

func TestCalendarScreen(t *testing.T) {
	env := newTestEnv(t)
	router := NewRouter(env)
	cookie := loginCookie(t, env, "admin", "admin")

	rr := get(t, router, "/calendar", cookie)
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Setembro 2024")
	assert.Contains(t, body, "month=2024-08")
	assert.Contains(t, body, "month=2024-10")
	assert.Contains(t, body, "Reunião de Pais - Judô")

	filtered := get(t, router, "/calendar?month=2024-09&sport=Futsal", cookie)
	assert.Contains(t, filtered.Body.String(), "Torneio Interno - Futsal")
	assert.NotContains(t, filtered.Body.String(), "Reunião de Pais - Judô")

	empty := get(t, router, "/calendar?month=2024-10", cookie)
	assert.Contains(t, empty.Body.String(), "Nenhum evento neste mês")

	invalid := get(t, router, "/calendar?month=13-2024", cookie)
	assert.Contains(t, invalid.Body.String(), "Setembro 2024")
}

func TestModalitiesScreen(t *testing.T) {
	env := newTestEnv(t)
	router := NewRouter(env)
	cookie := loginCookie(t, env, "admin", "admin")

	rr := get(t, router, "/modalities?q=dan%C3%A7a", cookie)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Balé")
	assert.NotContains(t, rr.Body.String(), "Basquete")

	del := post(t, router, "/modalities/7/delete", url.Values{}, cookie)
	assert.Equal(t, "/modalities?flash=modality_deleted", del.Header().Get("Location"))
	assert.Len(t, env.Repo.Modalities(), 8)
}

func TestRolesScreen(t *testing.T) {
	env := newTestEnv(t)
	router := NewRouter(env)
	cookie := loginCookie(t, env, "admin", "admin")

	rr := get(t, router, "/roles", cookie)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Acesso total")

	t.Run("role in use is refused", func(t *testing.T) {
		rr := post(t, router, "/roles/1/delete", url.Values{}, cookie)
		loc, err := url.Parse(rr.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "role_in_use", loc.Query().Get("flash"))
		assert.Equal(t, "1", loc.Query().Get("n"))

		msg := get(t, router, rr.Header().Get("Location"), cookie)
		assert.Contains(t, msg.Body.String(), "atribuída a 1 usuário(s)")
	})

	t.Run("unused role is a stub", func(t *testing.T) {
		rr := post(t, router, "/roles/4/delete", url.Values{}, cookie)
		assert.Equal(t, "/roles?flash=role_deleted", rr.Header().Get("Location"))
		assert.Len(t, env.Repo.Roles(), 4)
	})
}

func TestUsersScreen(t *testing.T) {
	env := newTestEnv(t)
	router := NewRouter(env)
	cookie := loginCookie(t, env, "admin", "admin")

	rr := get(t, router, "/users?role=Professor", cookie)
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "carlos.silva")
	assert.NotContains(t, body, "maria.santos")

	del := post(t, router, "/users/3/delete", url.Values{}, cookie)
	assert.Equal(t, "/users?flash=user_deleted", del.Header().Get("Location"))
	assert.Len(t, env.Repo.Users(), 3)
}
