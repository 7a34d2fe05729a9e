package handlers

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"sport-academy/internal/filter"
	"sport-academy/internal/middleware"
	"sport-academy/internal/models"
	"sport-academy/internal/util"
	"sport-academy/internal/views"
)

var (
	templates     *template.Template
	templatesOnce sync.Once
	logger        = zap.NewNop()
)

// SetLogger sets the logger used while parsing and rendering templates.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// InitTemplates parses the embedded templates. renderTemplate calls it lazily; calling it
// at startup surfaces template errors before the first request.
func InitTemplates() {
	initTemplates()
}

var funcMap = template.FuncMap{
	"currency":    util.Currency,
	"percent":     util.Percent,
	"initials":    filter.Initials,
	"activeBadge": models.ActiveDisplay,
	"age":         util.Age,
	"date": func(t time.Time) string {
		return util.FormatDateBR(t)
	},
	"join": func(list []string) string {
		return strings.Join(list, ", ")
	},
	"contains": func(list []string, s string) bool {
		for _, item := range list {
			if item == s {
				return true
			}
		}
		return false
	},
	"len": func(slice interface{}) int {
		if slice == nil {
			return 0
		}
		val := reflect.ValueOf(slice)
		if val.Kind() == reflect.Slice || val.Kind() == reflect.Array || val.Kind() == reflect.Map {
			return val.Len()
		}
		return 0
	},
}

func initTemplates() {
	templatesOnce.Do(func() {
		entries, err := fs.ReadDir(views.TemplatesFS, ".")
		if err != nil {
			logger.Error("failed to read template directory", zap.Error(err))
			panic(fmt.Sprintf("Failed to read template directory: %v", err))
		}

		var templateFiles []string
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".html") {
				templateFiles = append(templateFiles, entry.Name())
			}
		}
		if len(templateFiles) == 0 {
			logger.Error("no template files found in embedded filesystem")
			panic("No template files found in embedded filesystem")
		}
		logger.Debug("parsing templates", zap.Strings("files", templateFiles))

		templates, err = template.New("").Funcs(funcMap).ParseFS(views.TemplatesFS, "*.html")
		if err != nil {
			logger.Error("failed to parse templates", zap.Error(err))
			panic(fmt.Sprintf("Failed to parse templates: %v", err))
		}
	})
}

// Map template filenames to their content template names
var contentTemplateMap = map[string]string{
	"login.html":      "login_content",
	"dashboard.html":  "dashboard_content",
	"students.html":   "students_content",
	"enrollment.html": "enrollment_content",
	"teachers.html":   "teachers_content",
	"financial.html":  "financial_content",
	"calendar.html":   "calendar_content",
	"modalities.html": "modalities_content",
	"roles.html":      "roles_content",
	"users.html":      "users_content",
}

// Templates that use auth_layout instead of main layout
var authLayoutTemplates = map[string]bool{
	"login.html": true,
}

func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data map[string]interface{}) {
	renderTemplateStatus(w, r, http.StatusOK, name, data)
}

func renderTemplateStatus(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]interface{}) {
	initTemplates()

	contentTemplateName, exists := contentTemplateMap[name]
	if !exists {
		logger.Error("no content template mapping", zap.String("template", name))
		http.Error(w, fmt.Sprintf("Unknown template %s", name), http.StatusInternalServerError)
		return
	}
	if templates.Lookup(contentTemplateName) == nil {
		logger.Error("content template not found", zap.String("template", contentTemplateName))
		http.Error(w, fmt.Sprintf("Content template '%s' not found", contentTemplateName), http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	data["ContentTemplate"] = contentTemplateName
	for _, key := range []string{"Title", "Nav", "Flash"} {
		if _, ok := data[key]; !ok {
			data[key] = ""
		}
	}
	if _, ok := data["CurrentUser"]; !ok && r != nil {
		if u, ok := middleware.GetUser(r); ok {
			data["CurrentUser"] = u
		}
	}

	layoutName := "layout"
	if authLayoutTemplates[name] {
		layoutName = "auth_layout"
	}

	// Render into a buffer so a failing template still yields a clean 500.
	var buf strings.Builder
	if err := templates.ExecuteTemplate(&buf, layoutName, data); err != nil {
		logger.Error("template execute error", zap.String("template", name), zap.Error(err))
		http.Error(w, fmt.Sprintf("Template execute error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(buf.String()))
}
