package directory

import "lawbandhu-backend/models"

// SortByStarred returns a new slice with starred lawyers first. Relative order
// inside each group is kept.
func SortByStarred(lawyers []models.Lawyer) []models.Lawyer {
	out := make([]models.Lawyer, 0, len(lawyers))
	for _, l := range lawyers {
		if l.IsStarred {
			out = append(out, l)
		}
	}
	for _, l := range lawyers {
		if !l.IsStarred {
			out = append(out, l)
		}
	}
	return out
}

// ToggleStar returns a copy of lawyers with the star flag of id flipped.
// An unknown id yields an unchanged copy.
func ToggleStar(lawyers []models.Lawyer, id int64) []models.Lawyer {
	out := make([]models.Lawyer, len(lawyers))
	copy(out, lawyers)
	for i := range out {
		if out[i].ID == id {
			out[i].IsStarred = !out[i].IsStarred
			break
		}
	}
	return out
}

// FilterAndRank filters first and only then moves starred lawyers to the front.
func FilterAndRank(lawyers []models.Lawyer, search string, criteria models.FilterCriteria) []models.Lawyer {
	return SortByStarred(FilterLawyers(lawyers, search, criteria))
}

// StarredCount returns how many lawyers are starred.
func StarredCount(lawyers []models.Lawyer) int {
	n := 0
	for _, l := range lawyers {
		if l.IsStarred {
			n++
		}
	}
	return n
}

// FindByID returns the lawyer with id, if present.
func FindByID(lawyers []models.Lawyer, id int64) (models.Lawyer, bool) {
	for _, l := range lawyers {
		if l.ID == id {
			return l, true
		}
	}
	return models.Lawyer{}, false
}
