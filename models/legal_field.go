package models

import "strings"

// LegalField represents a legal practice area
type LegalField string

const (
	FieldProperty             LegalField = "Property Law"
	FieldFamily               LegalField = "Family Law"
	FieldCriminal             LegalField = "Criminal Law"
	FieldContract             LegalField = "Contract Law"
	FieldEmployment           LegalField = "Employment Law"
	FieldConsumer             LegalField = "Consumer Law"
	FieldCivil                LegalField = "Civil Law"
	FieldCorporate            LegalField = "Corporate Law"
	FieldCyber                LegalField = "Cyber Law"
	FieldIntellectualProperty LegalField = "Intellectual Property"
)

// LegalFields lists every practice area in canonical order.
// Field detection breaks ties by this order, so do not reorder it.
var LegalFields = [...]LegalField{
	FieldProperty,
	FieldFamily,
	FieldCriminal,
	FieldContract,
	FieldEmployment,
	FieldConsumer,
	FieldCivil,
	FieldCorporate,
	FieldCyber,
	FieldIntellectualProperty,
}

// String returns the display label
func (f LegalField) String() string {
	return string(f)
}

// Valid reports whether f is one of the known practice areas
func (f LegalField) Valid() bool {
	for _, known := range LegalFields {
		if f == known {
			return true
		}
	}
	return false
}

// ParseLegalField matches a label case-insensitively against the known fields
func ParseLegalField(label string) (LegalField, bool) {
	for _, known := range LegalFields {
		if strings.EqualFold(strings.TrimSpace(label), string(known)) {
			return known, true
		}
	}
	return "", false
}
