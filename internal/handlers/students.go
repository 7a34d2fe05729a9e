package handlers

import (
	"net/http"

	"sport-academy/internal/filter"
)

type StudentsHandler struct {
	env *Env
}

func NewStudentsHandler(env *Env) *StudentsHandler {
	return &StudentsHandler{env: env}
}

func (h *StudentsHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := filter.StudentQuery{
		Search: params.Get("q"),
		Status: statusOrAll(params.Get("status")),
		Sport:  statusOrAll(params.Get("sport")),
	}
	sanitizeQuery(h.env.Logger, &q, func(string) { q.Status = filter.All })

	all := h.env.Repo.Students()
	data := map[string]interface{}{
		"Title":     "Alunos - Academia Esportiva",
		"Nav":       "students",
		"Reference": h.env.Reference,
		"Query":     q,
		"Students":  filter.Students(all, q),
		"Total":     len(all),
		"Sports":    filter.UniqueSports(all),
		"Flash":     flashMessage(r),
	}

	if id := params.Get("selected"); id != "" {
		if s, err := h.env.Repo.Student(id); err != nil {
			notFoundLog(h.env.Logger, "students.selected", err)
		} else {
			data["Selected"] = s
		}
	}

	renderTemplate(w, r, "students.html", data)
}
