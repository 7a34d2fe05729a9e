package handlers

import (
	"context"
	"fmt"
	"reflect"

	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_BR_translations "github.com/go-playground/validator/v10/translations/pt_BR"

	"sport-academy/internal/models"
)

var (
	// custom validation tags & texts
	catalogSportTag  = "catalog_sport"
	catalogSportText = "Modalidade desconhecida: {0}"

	requiredTag  = "required"
	requiredText = "Campo obrigatório: {0}"
	minTag       = "min"
	minText      = "Selecione ao menos uma opção em {0}"
	datetimeTag  = "datetime"
	datetimeText = "Data inválida: {0}"
)

var validate, translator = newValidator()

type catalogKey struct{}

// withSportCatalog makes the sport names known to the catalog_sport rule.
func withSportCatalog(ctx context.Context, sports []models.SportModality) context.Context {
	names := make(map[string]bool, len(sports))
	for _, s := range sports {
		names[s.Name] = true
	}
	return context.WithValue(ctx, catalogKey{}, names)
}

// newValidator reports fields by their `label` tag and translates errors to Brazilian
// Portuguese so messages can be shown as-is.
func newValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()

	ptBR := pt_BR.New()
	uni := ut.New(ptBR, ptBR)
	translator, _ := uni.GetTranslator("pt_BR")
	_ = pt_BR_translations.RegisterDefaultTranslations(validate, translator)

	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})

	_ = validate.RegisterValidationCtx(catalogSportTag, catalogSportValidation)
	registerValueTranslation(validate, translator, catalogSportTag, catalogSportText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
	RegisterCustomTranslation(validate, translator, minTag, minText, true)
	RegisterCustomTranslation(validate, translator, datetimeTag, datetimeText)
	return validate, translator
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// registerValueTranslation is RegisterCustomTranslation for messages that name the
// rejected value rather than the field.
func registerValueTranslation(validate *validator.Validate, translator ut.Translator, tag, text string) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, false) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fmt.Sprint(fe.Value()))
			return s
		},
	)
}

// catalogSportValidation accepts names present in the catalog attached by withSportCatalog.
// Without a catalog in the context every name is accepted.
func catalogSportValidation(ctx context.Context, fl validator.FieldLevel) bool {
	names, ok := ctx.Value(catalogKey{}).(map[string]bool)
	if !ok {
		return true
	}
	return names[fl.Field().String()]
}
