package classifier

import (
	"strings"

	"lawbandhu-backend/models"
)

// issueSignals are the lexical facts the issue confidence rules look at.
type issueSignals struct {
	patterns  int // personal-issue patterns matched, 0-4
	fieldHits int // keyword hits of the winning field
}

type confidenceRule struct {
	when   func(issueSignals) bool
	result models.Confidence
}

var issueConfidenceRules = []confidenceRule{
	{
		when:   func(s issueSignals) bool { return s.patterns >= 3 && s.fieldHits >= 2 },
		result: models.ConfidenceHigh,
	},
	{
		when:   func(s issueSignals) bool { return s.patterns >= 2 || s.fieldHits >= 1 },
		result: models.ConfidenceMedium,
	},
	{
		when:   func(issueSignals) bool { return true },
		result: models.ConfidenceLow,
	},
}

// DetectField returns the practice area with the most keyword hits and the hit
// count. Ties go to the field listed first in models.LegalFields. A nil field
// means no keyword matched.
func DetectField(text string) (*models.LegalField, int) {
	lowered := strings.ToLower(text)

	var best *models.LegalField
	bestHits := 0
	for i := range models.LegalFields {
		field := models.LegalFields[i]
		hits := fieldKeywords[field].count(lowered)
		if hits > bestHits {
			best = &field
			bestHits = hits
		}
	}
	return best, bestHits
}

// ClassifyIssue decides whether text describes the asker's own legal situation
// and which practice area it belongs to.
//
// Any practice-area vocabulary marks the text as a personal issue even without
// first-person phrasing, so the caller leans towards suggesting a lawyer.
func ClassifyIssue(text string) models.IssueResult {
	field, hits := DetectField(text)
	signals := issueSignals{
		patterns:  matchCount(personalIssuePatterns, text),
		fieldHits: hits,
	}

	result := models.IssueResult{
		IsPersonalIssue: signals.patterns >= 1 || field != nil,
		LegalField:      field,
	}
	for _, rule := range issueConfidenceRules {
		if rule.when(signals) {
			result.Confidence = rule.result
			break
		}
	}
	return result
}

// Classify runs both classifiers over the same text.
func Classify(text string) models.ClassificationResult {
	legality := ClassifyLegality(text)
	issue := ClassifyIssue(text)
	return models.ClassificationResult{
		IsLegal:         legality.IsLegal,
		LegalConfidence: legality.Confidence,
		IsPersonalIssue: issue.IsPersonalIssue,
		LegalField:      issue.LegalField,
		IssueConfidence: issue.Confidence,
	}
}
