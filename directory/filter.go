// Package directory filters and orders the lawyer roster for display.
// Nothing here mutates its inputs.
package directory

import (
	"strings"

	"lawbandhu-backend/models"
)

// FilterLawyers keeps the lawyers matching search and every criteria
// dimension, in their original order. Inverted ranges match nothing.
func FilterLawyers(lawyers []models.Lawyer, search string, criteria models.FilterCriteria) []models.Lawyer {
	query := strings.ToLower(search)

	out := make([]models.Lawyer, 0, len(lawyers))
	for _, l := range lawyers {
		if matchesSearch(l, query) && matchesCriteria(l, criteria) {
			out = append(out, l)
		}
	}
	return out
}

func matchesSearch(l models.Lawyer, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Name), query) ||
		strings.Contains(strings.ToLower(l.Specialization), query) ||
		strings.Contains(strings.ToLower(l.Location), query)
}

func matchesCriteria(l models.Lawyer, c models.FilterCriteria) bool {
	if len(c.Specializations) > 0 && !contains(c.Specializations, l.Specialization) {
		return false
	}
	if !c.ExperienceRange.Contains(l.ExperienceYears) {
		return false
	}
	if l.Rating < c.MinRating {
		return false
	}
	if len(c.Languages) > 0 && !containsAny(c.Languages, l.Languages) {
		return false
	}
	if len(c.Locations) > 0 && !contains(c.Locations, l.Location) {
		return false
	}
	return c.FeeRange.Contains(l.ConsultationFee)
}

// CountActiveFilters is the badge count for the filter panel: every selected
// specialization, language and location counts once, and each range that
// differs from its default counts once, whether narrowed or widened.
func CountActiveFilters(c models.FilterCriteria) int {
	n := len(c.Specializations) + len(c.Languages) + len(c.Locations)
	if c.MinRating > 0 {
		n++
	}
	if c.ExperienceRange != models.DefaultExperienceRange {
		n++
	}
	if c.FeeRange != models.DefaultFeeRange {
		n++
	}
	return n
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsAny(set, values []string) bool {
	for _, v := range values {
		if contains(set, v) {
			return true
		}
	}
	return false
}
