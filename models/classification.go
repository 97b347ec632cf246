package models

// Confidence represents how certain a heuristic verdict is
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Rank orders confidence levels: low < medium < high
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	default:
		return 0
	}
}

// LegalityResult represents the verdict on whether a query is legal in nature
type LegalityResult struct {
	IsLegal    bool       `json:"is_legal"`
	Confidence Confidence `json:"confidence"`
}

// IssueResult represents the personal-issue and practice-area verdict for a query
type IssueResult struct {
	IsPersonalIssue bool        `json:"is_personal_issue"`
	LegalField      *LegalField `json:"legal_field"` // nil when no field keyword matched
	Confidence      Confidence  `json:"confidence"`
}

// ClassificationResult combines both verdicts for a single query
type ClassificationResult struct {
	IsLegal         bool        `json:"is_legal"`
	LegalConfidence Confidence  `json:"legal_confidence"`
	IsPersonalIssue bool        `json:"is_personal_issue"`
	LegalField      *LegalField `json:"legal_field"`
	IssueConfidence Confidence  `json:"issue_confidence"`
}
