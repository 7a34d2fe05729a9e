package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"sport-academy/internal/filter"
	"sport-academy/internal/models"
	"sport-academy/internal/util"
)

type CalendarHandler struct {
	env *Env
}

func NewCalendarHandler(env *Env) *CalendarHandler {
	return &CalendarHandler{env: env}
}

// calendarCell is one square of the month grid. Day is nil for the padding before the 1st.
type calendarCell struct {
	Day    *time.Time
	Events []models.Event
	Today  bool
}

// visibleMonth resolves the month query parameter, falling back to the reference month.
func (h *CalendarHandler) visibleMonth(raw string) time.Time {
	if raw != "" {
		if err := validate.Var(raw, "datetime=2006-01"); err == nil {
			if m, err := util.ParseMonth(raw); err == nil {
				return m
			}
		}
		h.env.Logger.Debug("ignoring invalid month", zap.String("month", raw))
	}
	return util.StartOfMonth(h.env.Reference)
}

func (h *CalendarHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	month := h.visibleMonth(params.Get("month"))
	sport := statusOrAll(params.Get("sport"))

	events := filter.EventsBySport(h.env.Repo.Events(), sport)

	grid := filter.MonthGrid(month)
	cells := make([]calendarCell, len(grid))
	for i, day := range grid {
		if day == nil {
			continue
		}
		cells[i] = calendarCell{
			Day:    day,
			Events: filter.EventsOn(events, *day),
			Today:  util.SameDay(*day, h.env.Reference),
		}
	}

	var sports []string
	for _, s := range h.env.Repo.Sports() {
		sports = append(sports, s.Name)
	}

	renderTemplate(w, r, "calendar.html", map[string]interface{}{
		"Title":      "Agenda - Academia Esportiva",
		"Nav":        "calendar",
		"Month":      month.Format(util.MonthLayout),
		"MonthTitle": util.MonthTitle(month),
		"PrevMonth":  month.AddDate(0, -1, 0).Format(util.MonthLayout),
		"NextMonth":  month.AddDate(0, 1, 0).Format(util.MonthLayout),
		"Sport":      sport,
		"Sports":     sports,
		"DayNames":   util.DayNames,
		"Cells":      cells,
		"Events":     filter.EventsInMonth(events, month),
	})
}
