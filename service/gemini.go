package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const legalSystemPrompt = `You are "Law Bandhu Assistant", an Indian legal assistant. Keep responses CONCISE and ACTIONABLE.

**Response Format (MUST FOLLOW):**
1. **Summary** (2-3 lines max): Quick answer to the query
2. **Key Points** (3-5 bullet points): Most important things to know
3. **Action Steps** (2-3 items): What the user should do next
4. **Disclaimer** (1 line): Remind to consult a lawyer

**Rules:**
- Keep total response under 300 words
- Use simple language, avoid legal jargon
- Cite specific Indian law sections only when critical
- Be direct and helpful
- Format with bullet points for easy reading on mobile`

var errEmptyCompletion = errors.New("model returned no text")

// GeminiConfig configures GeminiCompleter
type GeminiConfig struct {
	APIKey          string
	Models          []string // tried in order
	Temperature     float32
	MaxOutputTokens int32
	RetriesPerModel uint
	Timeout         time.Duration
}

// GeminiCompleter answers questions with Google Gemini, falling back across models
type GeminiCompleter struct {
	client *genai.Client
	cfg    GeminiConfig
}

// NewGeminiCompleter creates a Gemini client
func NewGeminiCompleter(ctx context.Context, cfg GeminiConfig) (*GeminiCompleter, error) {
	if cfg.APIKey == "" {
		return nil, ErrAINotConfigured
	}
	if len(cfg.Models) == 0 {
		return nil, errors.New("no Gemini models configured")
	}
	if cfg.RetriesPerModel == 0 {
		cfg.RetriesPerModel = 1
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompleter{client: client, cfg: cfg}, nil
}

// Name identifies the backend
func (g *GeminiCompleter) Name() string {
	return "Gemini"
}

// Close releases the underlying client
func (g *GeminiCompleter) Close() error {
	return g.client.Close()
}

// Complete asks each configured model in turn until one answers
func (g *GeminiCompleter) Complete(ctx context.Context, query string) (string, error) {
	var errs []error
	for _, name := range g.cfg.Models {
		text, err := g.completeWith(ctx, name, query)
		if err == nil {
			return text, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		log.Warn().Err(err).Str("model", name).Msg("Gemini model failed, trying next")
		errs = append(errs, fmt.Errorf("%s: %w", name, err))
	}
	return "", errors.Join(errs...)
}

func (g *GeminiCompleter) completeWith(ctx context.Context, modelName, query string) (string, error) {
	model := g.client.GenerativeModel(modelName)
	model.SetTemperature(g.cfg.Temperature)
	model.SetMaxOutputTokens(g.cfg.MaxOutputTokens)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(legalSystemPrompt)}}
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockOnlyHigh},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockOnlyHigh},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockOnlyHigh},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockOnlyHigh},
	}

	var text string
	err := retry.Do(
		func() error {
			callCtx := ctx
			if g.cfg.Timeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
				defer cancel()
			}

			resp, err := model.GenerateContent(callCtx, genai.Text(query))
			if err != nil {
				return err
			}
			text = responseText(resp)
			if text == "" {
				return errEmptyCompletion
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(g.cfg.RetriesPerModel),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Debug().Err(err).Str("model", modelName).Uint("attempt", n+1).Msg("Retrying Gemini call")
		}),
	)
	if err != nil {
		return "", err
	}

	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		if cand.FinishReason != genai.FinishReasonStop && cand.FinishReason != genai.FinishReasonUnspecified {
			log.Warn().Str("finish_reason", cand.FinishReason.String()).Msg("Gemini candidate finished early")
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
