package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"sport-academy/internal/filter"
	"sport-academy/internal/models"
)

type RolesHandler struct {
	env *Env
}

func NewRolesHandler(env *Env) *RolesHandler {
	return &RolesHandler{env: env}
}

// roleCard pairs a role with the number of accounts holding it.
type roleCard struct {
	Role  models.Role
	Users int
}

func (h *RolesHandler) List(w http.ResponseWriter, r *http.Request) {
	users := h.env.Repo.Users()
	roles := h.env.Repo.Roles()
	cards := make([]roleCard, 0, len(roles))
	for _, role := range roles {
		cards = append(cards, roleCard{Role: role, Users: filter.UsersWithRole(users, role.Name)})
	}

	renderTemplate(w, r, "roles.html", map[string]interface{}{
		"Title": "Funções - Academia Esportiva",
		"Nav":   "roles",
		"Roles": cards,
		"Flash": flashMessage(r),
	})
}

// Delete refuses roles still assigned to users; otherwise it is a logged stub.
func (h *RolesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	role, err := h.env.Repo.Role(id)
	if err != nil {
		notFoundLog(h.env.Logger, "roles.delete", err)
		redirectWithFlash(w, r, "/roles", flashNotFound, 0)
		return
	}
	if n := filter.UsersWithRole(h.env.Repo.Users(), role.Name); n > 0 {
		h.env.Logger.Info("role delete refused", zap.String("id", id), zap.String("name", role.Name), zap.Int("users", n))
		redirectWithFlash(w, r, "/roles", flashRoleInUse, n)
		return
	}
	h.env.Logger.Info("stub action", zap.String("op", "roles.delete"), zap.String("id", id), zap.String("name", role.Name))
	redirectWithFlash(w, r, "/roles", flashRoleDeleted, 0)
}
