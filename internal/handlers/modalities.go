package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"sport-academy/internal/filter"
	"sport-academy/internal/models"
)

type ModalitiesHandler struct {
	env *Env
}

func NewModalitiesHandler(env *Env) *ModalitiesHandler {
	return &ModalitiesHandler{env: env}
}

func (h *ModalitiesHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := filter.ModalityQuery{
		Search: params.Get("q"),
		Status: statusOrAll(params.Get("status")),
	}
	sanitizeQuery(h.env.Logger, &q, func(string) { q.Status = filter.All })

	all := h.env.Repo.Modalities()
	renderTemplate(w, r, "modalities.html", map[string]interface{}{
		"Title":       "Modalidades - Academia Esportiva",
		"Nav":         "modalities",
		"Query":       q,
		"Modalities":  filter.Modalities(all, q),
		"Total":       len(all),
		"ActiveCount": filter.CountActive(all, func(m models.SportModality) bool { return m.Active }),
		"Flash":       flashMessage(r),
	})
}

// Delete is a stub behind a confirm dialog; the catalog is never changed.
func (h *ModalitiesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	m, err := h.env.Repo.Modality(id)
	if err != nil {
		notFoundLog(h.env.Logger, "modalities.delete", err)
		redirectWithFlash(w, r, "/modalities", flashNotFound, 0)
		return
	}
	h.env.Logger.Info("stub action", zap.String("op", "modalities.delete"), zap.String("id", id), zap.String("name", m.Name))
	redirectWithFlash(w, r, "/modalities", flashModalityDeleted, 0)
}
