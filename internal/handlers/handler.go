// Package handlers serves the dashboard screens. Every screen is a pure function of the
// read-only repository and the request's query string; POST actions are logged stubs that
// never change the collections.
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"sport-academy/internal/auth"
	"sport-academy/internal/config"
	"sport-academy/internal/filter"
	"sport-academy/internal/models"
)

// Env carries what every handler needs.
type Env struct {
	Config    *config.Config
	Repo      models.Repository
	Sessions  *auth.Sessions
	Logger    *zap.Logger
	Reference time.Time
}

// Flash codes carried on redirects after stub actions.
const (
	flashTeacherDeleted  = "teacher_deleted"
	flashModalityDeleted = "modality_deleted"
	flashRoleDeleted     = "role_deleted"
	flashRoleInUse       = "role_in_use"
	flashUserDeleted     = "user_deleted"
	flashMarkedPaid      = "marked_paid"
	flashReminded        = "reminded"
	flashNoSelection     = "no_selection"
	flashNotFound        = "not_found"
)

var flashMessages = map[string]string{
	flashTeacherDeleted:  "Professor excluído com sucesso",
	flashModalityDeleted: "Modalidade excluída com sucesso",
	flashRoleDeleted:     "Função excluída com sucesso",
	flashRoleInUse:       "Não é possível excluir uma função atribuída a %d usuário(s)",
	flashUserDeleted:     "Usuário excluído com sucesso",
	flashMarkedPaid:      "%d pagamento(s) marcado(s) como pago(s)",
	flashReminded:        "Lembrete enviado para %d pagamento(s)",
	flashNoSelection:     "Nenhum pagamento selecionado",
	flashNotFound:        "Registro não encontrado",
}

// flashMessage turns the flash and n query parameters into the banner text.
func flashMessage(r *http.Request) string {
	msg, ok := flashMessages[r.URL.Query().Get("flash")]
	if !ok {
		return ""
	}
	n, err := strconv.Atoi(r.URL.Query().Get("n"))
	if err != nil {
		n = 0
	}
	if strings.Contains(msg, "%d") {
		return fmt.Sprintf(msg, n)
	}
	return msg
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, path, code string, n int) {
	v := url.Values{}
	v.Set("flash", code)
	if n > 0 {
		v.Set("n", strconv.Itoa(n))
	}
	http.Redirect(w, r, path+"?"+v.Encode(), http.StatusSeeOther)
}

// sanitizeQuery validates a filter query. reset is called with the Go name of each field
// that failed so the caller can fall back to its passthrough value.
func sanitizeQuery(log *zap.Logger, q interface{}, reset func(field string)) {
	var verrs validator.ValidationErrors
	if err := validate.Struct(q); !errors.As(err, &verrs) {
		return
	}
	for _, fe := range verrs {
		log.Debug("ignoring invalid filter value",
			zap.String("field", fe.StructField()),
			zap.Any("value", fe.Value()),
			zap.String("rule", fe.Tag()),
		)
		reset(fe.StructField())
	}
}

// statusOrAll normalizes an empty status filter to "all" so the form selects match.
func statusOrAll(s string) string {
	if s == "" {
		return filter.All
	}
	return s
}

func notFoundLog(log *zap.Logger, op string, err error) {
	var nf *models.NotFoundError
	if errors.As(err, &nf) {
		log.Info("record not found", zap.String("op", op), zap.String("entity", nf.Entity), zap.String("id", nf.ID))
		return
	}
	log.Error("lookup failed", zap.String("op", op), zap.Error(err))
}
