package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"sport-academy/internal/filter"
	"sport-academy/internal/models"
)

type TeachersHandler struct {
	env *Env
}

func NewTeachersHandler(env *Env) *TeachersHandler {
	return &TeachersHandler{env: env}
}

func (h *TeachersHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := filter.TeacherQuery{
		Search: params.Get("q"),
		Status: statusOrAll(params.Get("status")),
		Sport:  statusOrAll(params.Get("sport")),
	}
	sanitizeQuery(h.env.Logger, &q, func(string) { q.Status = filter.All })

	all := h.env.Repo.Teachers()
	data := map[string]interface{}{
		"Title":       "Professores - Academia Esportiva",
		"Nav":         "teachers",
		"Query":       q,
		"Teachers":    filter.Teachers(all, q),
		"Total":       len(all),
		"ActiveCount": filter.CountActive(all, func(t models.Teacher) bool { return t.Active }),
		"Sports":      filter.UniqueTeacherSports(all),
		"Flash":       flashMessage(r),
	}

	if id := params.Get("selected"); id != "" {
		if t, err := h.env.Repo.Teacher(id); err != nil {
			notFoundLog(h.env.Logger, "teachers.selected", err)
		} else {
			data["Selected"] = t
		}
	}

	renderTemplate(w, r, "teachers.html", data)
}

// Delete is a stub: it logs the request and reports success without touching the data.
func (h *TeachersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	t, err := h.env.Repo.Teacher(id)
	if err != nil {
		notFoundLog(h.env.Logger, "teachers.delete", err)
		redirectWithFlash(w, r, "/teachers", flashNotFound, 0)
		return
	}
	h.env.Logger.Info("stub action", zap.String("op", "teachers.delete"), zap.String("id", id), zap.String("name", t.FullName))
	redirectWithFlash(w, r, "/teachers", flashTeacherDeleted, 0)
}
