// Package filter holds the pure list computations behind every screen: search and
// status/sport predicates, ordering and the aggregates shown on metric cards.
package filter

import (
	"strings"

	"golang.org/x/text/cases"
)

// All is the passthrough value for every enumerated filter.
const All = "all"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var folder = cases.Fold()

func fold(s string) string {
	return folder.String(s)
}

// MatchesSearch reports whether term occurs, ignoring case, in any of the fields.
// An empty term matches everything; whitespace is matched literally.
func MatchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	needle := fold(term)
	for _, f := range fields {
		if strings.Contains(fold(f), needle) {
			return true
		}
	}
	return false
}

// MatchesStatus passes everything for "" or "all", otherwise compares for equality.
func MatchesStatus(filter, status string) bool {
	return isAll(filter) || filter == status
}

// MatchesActive applies an active/inactive filter to a boolean flag.
func MatchesActive(filter string, active bool) bool {
	switch filter {
	case "", All:
		return true
	case StatusActive:
		return active
	case StatusInactive:
		return !active
	default:
		return false
	}
}

// MatchesSport passes everything for "" or "all", otherwise requires membership.
func MatchesSport(filter string, sports []string) bool {
	if isAll(filter) {
		return true
	}
	for _, s := range sports {
		if s == filter {
			return true
		}
	}
	return false
}

func isAll(filter string) bool {
	return filter == "" || filter == All
}
