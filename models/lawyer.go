package models

// Lawyer represents a directory record
type Lawyer struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Specialization  string   `json:"specialization"`
	Rating          float64  `json:"rating"`
	ExperienceYears int      `json:"experience_years"`
	Location        string   `json:"location"`
	Languages       []string `json:"languages"`
	ConsultationFee int      `json:"consultation_fee"`
	ImageURL        string   `json:"image_url,omitempty"`
	Bio             *string  `json:"bio,omitempty"`
	Education       []string `json:"education,omitempty"`
	BarCouncilID    *string  `json:"bar_council_id,omitempty"`
	SuccessRate     *int     `json:"success_rate,omitempty"`
	CasesHandled    *int     `json:"cases_handled,omitempty"`
	IsStarred       bool     `json:"is_starred"`
}

// Range represents an inclusive [Min, Max] bound
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v lies within the bound, inclusive
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Default filter bounds
var (
	DefaultExperienceRange = Range{Min: 0, Max: 50}
	DefaultFeeRange        = Range{Min: 0, Max: 10000}
)

// FilterCriteria represents the structured lawyer directory filter
type FilterCriteria struct {
	Specializations []string `json:"specializations"`
	ExperienceRange Range    `json:"experience_range"`
	MinRating       float64  `json:"min_rating"`
	Languages       []string `json:"languages"`
	Locations       []string `json:"locations"`
	FeeRange        Range    `json:"fee_range"`
}

// DefaultFilterCriteria returns criteria that constrain nothing
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Specializations: []string{},
		ExperienceRange: DefaultExperienceRange,
		Languages:       []string{},
		Locations:       []string{},
		FeeRange:        DefaultFeeRange,
	}
}
