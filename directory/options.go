package directory

import "lawbandhu-backend/models"

// TaxLaw is listed in the directory although the classifier never detects it.
const TaxLaw = "Tax Law"

// Languages offered by the language filter.
var Languages = []string{
	"English", "Hindi", "Bengali", "Tamil", "Telugu", "Marathi", "Gujarati", "Kannada",
}

// Locations offered by the location filter.
var Locations = []string{
	"Delhi", "Mumbai", "Bangalore", "Chennai", "Kolkata", "Hyderabad", "Pune", "Ahmedabad",
}

// Specializations lists every practice area a lawyer can be filed under, in
// display order.
func Specializations() []string {
	out := make([]string, 0, len(models.LegalFields)+1)
	for _, f := range models.LegalFields {
		out = append(out, f.String())
	}
	return append(out, TaxLaw)
}

// Options is the vocabulary and default bounds offered by the filter panel.
type Options struct {
	Specializations []string     `json:"specializations"`
	Languages       []string     `json:"languages"`
	Locations       []string     `json:"locations"`
	ExperienceRange models.Range `json:"experience_range"`
	FeeRange        models.Range `json:"fee_range"`
}

// DefaultOptions returns a fresh copy of the filter vocabulary with the default bounds.
func DefaultOptions() Options {
	return Options{
		Specializations: Specializations(),
		Languages:       append([]string(nil), Languages...),
		Locations:       append([]string(nil), Locations...),
		ExperienceRange: models.DefaultExperienceRange,
		FeeRange:        models.DefaultFeeRange,
	}
}
