package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"sport-academy/internal/filter"
	"sport-academy/internal/models"
	"sport-academy/internal/util"
)

type FinancialHandler struct {
	env *Env
}

func NewFinancialHandler(env *Env) *FinancialHandler {
	return &FinancialHandler{env: env}
}

// MonthSummary totals one month's payments per status.
type MonthSummary struct {
	PaidCount    int
	PaidTotal    float64
	OverdueCount int
	OverdueTotal float64
	PendingCount int
	PendingTotal float64
	DefaultRate  float64
}

func summarizeMonth(payments []models.Payment) MonthSummary {
	paid := filter.PaymentsByStatus(payments, models.PaymentPaid)
	overdue := filter.PaymentsByStatus(payments, models.PaymentOverdue)
	pending := filter.PaymentsByStatus(payments, models.PaymentPending)

	s := MonthSummary{
		PaidCount:    len(paid),
		PaidTotal:    filter.SumPayments(paid),
		OverdueCount: len(overdue),
		OverdueTotal: filter.SumPayments(overdue),
		PendingCount: len(pending),
		PendingTotal: filter.SumPayments(pending),
	}
	if len(payments) > 0 {
		s.DefaultRate = float64(len(overdue)) / float64(len(payments)) * 100
	}
	return s
}

func (h *FinancialHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := filter.PaymentQuery{
		Search: params.Get("q"),
		Status: statusOrAll(params.Get("status")),
		Month:  params.Get("month"),
	}
	sanitizeQuery(h.env.Logger, &q, func(field string) {
		switch field {
		case "Month":
			q.Month = ""
		default:
			q.Status = filter.All
		}
	})

	payments := h.env.Repo.Payments()
	filtered := filter.Payments(payments, q)
	month := h.env.Reference.Format(util.MonthLayout)

	renderTemplate(w, r, "financial.html", map[string]interface{}{
		"Title":         "Financeiro - Academia Esportiva",
		"Nav":           "financial",
		"Query":         q,
		"Payments":      filtered,
		"FilteredTotal": filter.SumPayments(filtered),
		"MonthTitle":    util.MonthTitle(h.env.Reference),
		"Summary":       summarizeMonth(filter.PaymentsForMonth(payments, month)),
		"Flash":         flashMessage(r),
	})
}

// selectedPayments resolves the posted payment IDs, dropping unknown ones.
func (h *FinancialHandler) selectedPayments(r *http.Request) ([]models.Payment, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	byID := make(map[string]models.Payment)
	for _, p := range h.env.Repo.Payments() {
		byID[p.ID] = p
	}
	var out []models.Payment
	for _, id := range r.PostForm["ids"] {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// MarkPaid is a stub: it logs the selected payments and reports success. The collections
// stay as generated, so the table still shows the old status.
func (h *FinancialHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	h.stub(w, r, "financial.mark_paid", flashMarkedPaid)
}

// Remind is a stub standing in for sending payment reminders.
func (h *FinancialHandler) Remind(w http.ResponseWriter, r *http.Request) {
	h.stub(w, r, "financial.remind", flashReminded)
}

func (h *FinancialHandler) stub(w http.ResponseWriter, r *http.Request, op, flash string) {
	selected, err := h.selectedPayments(r)
	if err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	if len(selected) == 0 {
		redirectWithFlash(w, r, "/financial", flashNoSelection, 0)
		return
	}
	ids := make([]string, 0, len(selected))
	for _, p := range selected {
		ids = append(ids, p.ID)
	}
	h.env.Logger.Info("stub action", zap.String("op", op), zap.Strings("ids", ids), zap.Float64("amount", filter.SumPayments(selected)))
	redirectWithFlash(w, r, "/financial", flash, len(selected))
}
