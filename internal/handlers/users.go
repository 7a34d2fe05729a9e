package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"sport-academy/internal/filter"
	"sport-academy/internal/middleware"
)

type UsersHandler struct {
	env *Env
}

func NewUsersHandler(env *Env) *UsersHandler {
	return &UsersHandler{env: env}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := filter.UserQuery{
		Search: params.Get("q"),
		Role:   statusOrAll(params.Get("role")),
		Status: statusOrAll(params.Get("status")),
	}
	sanitizeQuery(h.env.Logger, &q, func(string) { q.Status = filter.All })

	all := h.env.Repo.Users()
	renderTemplate(w, r, "users.html", map[string]interface{}{
		"Title": "Usuários - Academia Esportiva",
		"Nav":   "users",
		"Query": q,
		"Users": filter.Users(all, q),
		"Total": len(all),
		"Roles": h.env.Repo.Roles(),
		"Flash": flashMessage(r),
	})
}

// Delete is a logged stub. The account list is never changed.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	u, err := h.env.Repo.User(id)
	if err != nil {
		notFoundLog(h.env.Logger, "users.delete", err)
		redirectWithFlash(w, r, "/users", flashNotFound, 0)
		return
	}
	actor := ""
	if current, ok := middleware.GetUser(r); ok {
		actor = current.Username
	}
	h.env.Logger.Info("stub action", zap.String("op", "users.delete"), zap.String("id", id), zap.String("username", u.Username), zap.String("by", actor))
	redirectWithFlash(w, r, "/users", flashUserDeleted, 0)
}
