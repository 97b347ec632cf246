// Package classifier decides whether free text is a legal question, whether it
// describes the asker's own situation, and which practice area it belongs to.
// Everything here is lexical and side-effect free.
package classifier

import (
	"strings"

	"lawbandhu-backend/models"
)

// legalitySignals are the lexical facts a legality rule may look at.
type legalitySignals struct {
	nonLegal        bool // any refused-topic indicator present
	legalMatches    int  // distinct legal keywords present
	generalQuestion bool // trivia phrasing pattern matched
	words           int
}

type legalityRule struct {
	name   string
	when   func(legalitySignals) bool
	result models.LegalityResult
}

// legalityRules are evaluated top to bottom; the first match wins. The last
// rule always matches.
var legalityRules = []legalityRule{
	{
		name:   "refused topic without legal context",
		when:   func(s legalitySignals) bool { return s.nonLegal && s.legalMatches == 0 },
		result: models.LegalityResult{IsLegal: false, Confidence: models.ConfidenceHigh},
	},
	{
		name:   "several legal keywords",
		when:   func(s legalitySignals) bool { return s.legalMatches >= 2 },
		result: models.LegalityResult{IsLegal: true, Confidence: models.ConfidenceHigh},
	},
	{
		name:   "single legal keyword",
		when:   func(s legalitySignals) bool { return s.legalMatches == 1 },
		result: models.LegalityResult{IsLegal: true, Confidence: models.ConfidenceMedium},
	},
	{
		name:   "general knowledge phrasing",
		when:   func(s legalitySignals) bool { return s.generalQuestion },
		result: models.LegalityResult{IsLegal: false, Confidence: models.ConfidenceMedium},
	},
	{
		name:   "too short to be a legal question",
		when:   func(s legalitySignals) bool { return s.words <= 3 },
		result: models.LegalityResult{IsLegal: false, Confidence: models.ConfidenceMedium},
	},
	{
		name:   "ambiguous, give it a chance",
		when:   func(legalitySignals) bool { return true },
		result: models.LegalityResult{IsLegal: true, Confidence: models.ConfidenceLow},
	},
}

func gatherLegalitySignals(text string) legalitySignals {
	lowered := strings.ToLower(text)
	return legalitySignals{
		nonLegal:        nonLegalIndicators.any(lowered),
		legalMatches:    legalKeywords.count(lowered),
		generalQuestion: matchCount(generalQuestionPatterns, strings.TrimSpace(lowered)) > 0,
		words:           len(strings.Fields(text)),
	}
}

// ClassifyLegality decides whether text falls within the legal assistant's domain.
// Empty text counts as zero words and is rejected with medium confidence.
func ClassifyLegality(text string) models.LegalityResult {
	result, _ := classifyLegality(text)
	return result
}

// classifyLegality also returns the name of the rule that fired.
func classifyLegality(text string) (models.LegalityResult, string) {
	signals := gatherLegalitySignals(text)
	for _, rule := range legalityRules {
		if rule.when(signals) {
			return rule.result, rule.name
		}
	}
	// unreachable: the final rule always matches
	return models.LegalityResult{IsLegal: true, Confidence: models.ConfidenceLow}, ""
}
