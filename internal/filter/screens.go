package filter

import (
	"sort"
	"time"

	"sport-academy/internal/models"
)

type StudentQuery struct {
	Search string
	Status string `validate:"omitempty,oneof=all active inactive pending"`
	Sport  string
}

type TeacherQuery struct {
	Search string
	Status string `validate:"omitempty,oneof=all active inactive"`
	Sport  string
}

type PaymentQuery struct {
	Search string
	Status string `validate:"omitempty,oneof=all paid pending overdue"`
	Month  string `validate:"omitempty,datetime=2006-01"`
}

type ModalityQuery struct {
	Search string
	Status string `validate:"omitempty,oneof=all active inactive"`
}

type UserQuery struct {
	Search string
	Role   string
	Status string `validate:"omitempty,oneof=all active inactive"`
}

func Students(list []models.Student, q StudentQuery) []models.Student {
	var out []models.Student
	for _, s := range list {
		if MatchesSearch(q.Search, s.Name) &&
			MatchesStatus(q.Status, string(s.Status)) &&
			MatchesSport(q.Sport, s.Sports) {
			out = append(out, s)
		}
	}
	return out
}

func Teachers(list []models.Teacher, q TeacherQuery) []models.Teacher {
	var out []models.Teacher
	for _, t := range list {
		if MatchesSearch(q.Search, t.FullName, t.Nickname) &&
			MatchesActive(q.Status, t.Active) &&
			MatchesSport(q.Sport, t.Sports) {
			out = append(out, t)
		}
	}
	return out
}

func Payments(list []models.Payment, q PaymentQuery) []models.Payment {
	var out []models.Payment
	for _, p := range list {
		if MatchesSearch(q.Search, p.StudentName, p.Sport) &&
			MatchesStatus(q.Status, string(p.Status)) &&
			MatchesStatus(q.Month, p.Month) {
			out = append(out, p)
		}
	}
	return out
}

func Modalities(list []models.SportModality, q ModalityQuery) []models.SportModality {
	var out []models.SportModality
	for _, m := range list {
		if MatchesSearch(q.Search, m.Name, m.Description) && MatchesActive(q.Status, m.Active) {
			out = append(out, m)
		}
	}
	return out
}

func Users(list []models.User, q UserQuery) []models.User {
	var out []models.User
	for _, u := range list {
		if MatchesSearch(q.Search, u.FullName, u.Username) &&
			MatchesStatus(q.Role, u.Role) &&
			MatchesActive(q.Status, u.Active) {
			out = append(out, u)
		}
	}
	return out
}

// EventsBySport keeps events of one sport, or all of them for "" and "all".
func EventsBySport(list []models.Event, sport string) []models.Event {
	var out []models.Event
	for _, e := range list {
		if MatchesStatus(sport, e.Sport) {
			out = append(out, e)
		}
	}
	return out
}

// UpcomingEvents returns at most n events dated on or after from, earliest first.
func UpcomingEvents(list []models.Event, from time.Time, n int) []models.Event {
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())

	var out []models.Event
	for _, e := range list {
		if !e.Date.Before(day) {
			out = append(out, e)
		}
	}
	sortEvents(out)
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func sortEvents(list []models.Event) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.Before(list[j].Date)
		}
		return list[i].StartTime < list[j].StartTime
	})
}

// UniqueSports lists the sports students are enrolled in, in first-seen order.
func UniqueSports(students []models.Student) []string {
	var lists [][]string
	for _, s := range students {
		lists = append(lists, s.Sports)
	}
	return unique(lists)
}

// UniqueTeacherSports lists the sports teachers are assigned to, in first-seen order.
func UniqueTeacherSports(teachers []models.Teacher) []string {
	var lists [][]string
	for _, t := range teachers {
		lists = append(lists, t.Sports)
	}
	return unique(lists)
}

func unique(lists [][]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range lists {
		for _, s := range l {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}
