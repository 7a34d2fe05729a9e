package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"sport-academy/internal/filter"
	"sport-academy/internal/models"
)

// requiredDocuments is the paper checklist handed to the front desk.
var requiredDocuments = []string{
	"RG do aluno",
	"CPF do aluno",
	"Certidão de nascimento",
	"Comprovante de residência",
	"RG do responsável",
	"CPF do responsável",
	"Atestado médico",
	"Foto 3x4",
}

type EnrollmentForm struct {
	StudentName string `label:"Nome Completo" validate:"required"`
	DateOfBirth string `label:"Data de Nascimento" validate:"required,datetime=2006-01-02"`
	CPF         string `label:"CPF" validate:"required"`
	Street      string `label:"Rua" validate:"required"`
	Number      string `label:"Número" validate:"required"`
	City        string `label:"Cidade" validate:"required"`
	State       string `label:"Estado" validate:"required,len=2"`
	ZipCode     string `label:"CEP" validate:"required"`

	GuardianName       string `label:"Nome do Responsável" validate:"required"`
	GuardianCPF        string `label:"CPF do Responsável" validate:"required"`
	GuardianPhone      string `label:"Telefone do Responsável" validate:"required"`
	GuardianEmail      string `label:"Email do Responsável" validate:"required,email"`
	GuardianProfession string

	EmergencyName         string `label:"Nome do Contato de Emergência" validate:"required"`
	EmergencyRelationship string `label:"Parentesco" validate:"required"`
	EmergencyPhone        string `label:"Telefone de Emergência" validate:"required"`
	EmergencyEmail        string `label:"Email de Emergência" validate:"omitempty,email"`

	Allergies     string
	Medications   string
	Restrictions  string
	DoctorContact string
	HealthPlan    string

	Sports    []string `label:"Modalidades" validate:"min=1,dive,catalog_sport"`
	Documents []string
}

func parseEnrollmentForm(r *http.Request) EnrollmentForm {
	v := func(key string) string { return strings.TrimSpace(r.PostFormValue(key)) }
	return EnrollmentForm{
		StudentName:           v("studentName"),
		DateOfBirth:           v("dateOfBirth"),
		CPF:                   v("cpf"),
		Street:                v("street"),
		Number:                v("number"),
		City:                  v("city"),
		State:                 strings.ToUpper(v("state")),
		ZipCode:               v("zipCode"),
		GuardianName:          v("guardianName"),
		GuardianCPF:           v("guardianCpf"),
		GuardianPhone:         v("guardianPhone"),
		GuardianEmail:         v("guardianEmail"),
		GuardianProfession:    v("guardianProfession"),
		EmergencyName:         v("emergencyName"),
		EmergencyRelationship: v("emergencyRelationship"),
		EmergencyPhone:        v("emergencyPhone"),
		EmergencyEmail:        v("emergencyEmail"),
		Allergies:             v("allergies"),
		Medications:           v("medications"),
		Restrictions:          v("restrictions"),
		DoctorContact:         v("doctorContact"),
		HealthPlan:            v("healthPlan"),
		Sports:                r.PostForm["sports"],
		Documents:             r.PostForm["documents"],
	}
}

// validationMessages renders validator errors as the banner lines shown above the form.
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(translator))
	}
	return msgs
}

type EnrollmentHandler struct {
	env *Env
}

func NewEnrollmentHandler(env *Env) *EnrollmentHandler {
	return &EnrollmentHandler{env: env}
}

func (h *EnrollmentHandler) data(form EnrollmentForm) map[string]interface{} {
	catalog := h.env.Repo.Sports()
	return map[string]interface{}{
		"Title":     "Nova Matrícula - Academia Esportiva",
		"Nav":       "enrollment",
		"Form":      form,
		"Sports":    catalog,
		"Documents": requiredDocuments,
		"TotalFee":  filter.TotalFee(form.Sports, catalog),
		"Errors":    []string(nil),
		"Success":   false,
	}
}

func (h *EnrollmentHandler) Form(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "enrollment.html", h.data(EnrollmentForm{}))
}

// Submit validates the form and reports the computed monthly fee. Nothing is stored.
func (h *EnrollmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	form := parseEnrollmentForm(r)
	data := h.data(form)

	ctx := withSportCatalog(r.Context(), data["Sports"].([]models.SportModality))
	if err := validate.StructCtx(ctx, form); err != nil {
		h.env.Logger.Debug("enrollment rejected", zap.Error(err))
		data["Errors"] = validationMessages(err)
		renderTemplateStatus(w, r, http.StatusUnprocessableEntity, "enrollment.html", data)
		return
	}

	h.env.Logger.Info("enrollment submitted",
		zap.String("student", form.StudentName),
		zap.Strings("sports", form.Sports),
		zap.Float64("monthly_fee", data["TotalFee"].(float64)),
		zap.Int("documents", len(form.Documents)),
	)
	data["Success"] = true
	renderTemplate(w, r, "enrollment.html", data)
}
