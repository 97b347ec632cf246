package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"lawbandhu-backend/classifier"
	"lawbandhu-backend/models"

	"github.com/rs/zerolog/log"
)

// AssistantProvider is the name shown next to AI answers
const AssistantProvider = "Law Bandhu Assistant"

// Completer produces an answer to a legal question
type Completer interface {
	Complete(ctx context.Context, query string) (string, error)
	Name() string
}

// AssistantService answers legal questions, refusing anything outside the legal domain
type AssistantService struct {
	completer Completer
}

// AssistantServiceOption is a functional option for AssistantService
type AssistantServiceOption func(*AssistantService)

// WithCompleter sets the completion backend. A nil completer leaves the assistant unconfigured.
func WithCompleter(c Completer) AssistantServiceOption {
	return func(s *AssistantService) {
		s.completer = c
	}
}

// NewAssistantService creates a new assistant service
func NewAssistantService(opts ...AssistantServiceOption) *AssistantService {
	s := &AssistantService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Classification is the pair of verdicts computed for a query
type Classification struct {
	Legality models.LegalityResult `json:"legality"`
	Issue    models.IssueResult    `json:"issue"`
}

// Classify runs both classifiers without calling the model
func (s *AssistantService) Classify(text string) Classification {
	return Classification{
		Legality: classifier.ClassifyLegality(text),
		Issue:    classifier.ClassifyIssue(text),
	}
}

// AskRequest represents a question for the assistant
type AskRequest struct {
	Query string
}

// Answer represents the assistant's reply
type Answer struct {
	Text            string             `json:"text"`
	Provider        string             `json:"provider"`
	Refused         bool               `json:"refused"`
	IsPersonalIssue bool               `json:"is_personal_issue"`
	LegalField      *models.LegalField `json:"legal_field"`
	Confidence      models.Confidence  `json:"confidence"`
}

// Ask answers a legal question. Non-legal queries are refused without calling
// the model; personal issues get a specialist recommendation appended.
func (s *AssistantService) Ask(ctx context.Context, req AskRequest) (*Answer, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	legality := classifier.ClassifyLegality(query)
	if !legality.IsLegal {
		log.Debug().Str("confidence", string(legality.Confidence)).Msg("Refusing non-legal query")
		return &Answer{
			Text:       classifier.NonLegalRefusalMessage(),
			Provider:   AssistantProvider,
			Refused:    true,
			Confidence: legality.Confidence,
		}, nil
	}

	if !s.IsConfigured() {
		return nil, ErrAINotConfigured
	}

	text, err := s.completer.Complete(ctx, query)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		log.Error().Err(err).Str("provider", s.completer.Name()).Msg("AI completion failed")
		return nil, fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}

	issue := classifier.ClassifyIssue(query)
	answer := &Answer{
		Text:            text,
		Provider:        AssistantProvider,
		IsPersonalIssue: issue.IsPersonalIssue,
		LegalField:      issue.LegalField,
		Confidence:      issue.Confidence,
	}
	if issue.IsPersonalIssue {
		answer.Text += consultationFooter(issue.LegalField)
	}

	return answer, nil
}

func consultationFooter(field *models.LegalField) string {
	specialist := classifier.GenericSpecialist
	if field != nil {
		specialist = classifier.DescribeField(*field)
	}
	return "\n\n⚖️ **Professional Legal Advice Recommended**\n\nBased on your situation, consulting with " +
		specialist + " would be beneficial."
}

// IsConfigured reports whether a completion backend is available
func (s *AssistantService) IsConfigured() bool {
	return s.completer != nil
}

// Providers lists the configured completion backends
func (s *AssistantService) Providers() []string {
	if s.completer == nil {
		return []string{}
	}
	return []string{s.completer.Name()}
}

var aiErrorMessages = []string{
	"Oops! Our AI lawyer just took an unscheduled coffee break ☕",
	"The legal genie went back into the bottle! 🧞‍♂️",
	"Our AI got stage fright in the courtroom 😰",
	"The law books fell on our AI's head... literally 📚💥",
	"AI.exe has stopped working (just like your patience) 🤖",
	"Our digital lawyer ghosted us 👻",
	"The AI went to grab lunch... without telling us 🍔",
	"Houston, we have a legal problem 🚀",
	"The hamster powering our AI stopped running 🐹",
	"Our AI is playing hide and seek (and winning) 🙈",
	"Technical difficulties: AI developed feelings and needs therapy 💭",
	"Error 404: Legal wisdom not found (but we're looking!) 🔍",
}

// AIErrorMessage picks a light-hearted message to show when the assistant fails
func AIErrorMessage() string {
	return aiErrorMessages[rand.IntN(len(aiErrorMessages))]
}
