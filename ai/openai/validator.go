package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/AlthosKal/ComunnityData/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Validator implements ai.ReportValidator using OpenAI-compatible chat APIs.
type Validator struct {
	client llms.Model
	logger *slog.Logger
}

// validationEntry is an internal type used for JSON unmarshaling.
// It matches the structure the LLM is instructed to produce.
// Legitimate is a pointer so an omitted or null field is distinguishable
// from an explicit false.
type validationEntry struct {
	Id                string `json:"id"`
	BiasDetected      bool   `json:"bias_detected"`
	BiasDescription   string `json:"bias_description"`
	ValidatedCategory string `json:"validated_category"`
	Legitimate        *bool  `json:"legitimate"`
}

// newValidator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newValidator(config *ai.Config) (*Validator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/validation
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ValidatorHost),
		openai.WithToken("none"),
		openai.WithModel(config.ValidatorModel),
	)
	if err != nil {
		return nil, err
	}

	return &Validator{
		client: client,
		logger: slog.Default().With("component", "openai-validator"),
	}, nil
}

// NewValidator creates a new report validator using the provided configuration.
//
// Returns ai.ReportValidator interface to enforce abstraction.
func NewValidator(config *ai.Config) (ai.ReportValidator, error) {
	return newValidator(config)
}

// ValidateReports analyzes a group of reports in one chat completion.
// The model is asked for a JSON array with one entry per report; entries the
// model omits are simply absent from the result.
func (v *Validator) ValidateReports(ctx context.Context, inputs []ai.ValidationInput) ([]ai.ValidationResult, error) {
	if len(inputs) == 0 {
		return []ai.ValidationResult{}, nil
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildValidationSystemPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildValidationUserPrompt(inputs)),
			},
		},
	}

	response, err := v.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		v.logger.Error("failed to generate content", "reports", len(inputs), "err", err)
		return nil, err
	}

	if len(response.Choices) < 1 {
		return nil, fmt.Errorf("validation service returned no choices")
	}

	entries, err := parseValidationResponse(response.Choices[0].Content)
	if err != nil {
		v.logger.Error("failed to parse validation response",
			"reports", len(inputs),
			"err", err)
		return nil, err
	}

	results := resultsFromEntries(entries)

	v.logger.Debug("validated report group",
		"submitted", len(inputs),
		"returned", len(results))

	return results, nil
}

// resultsFromEntries converts parsed entries to validation results. Only an
// explicit false marks a report illegitimate; an entry without the field
// counts as legitimate.
func resultsFromEntries(entries []validationEntry) []ai.ValidationResult {
	results := make([]ai.ValidationResult, 0, len(entries))
	for _, e := range entries {
		results = append(results, ai.ValidationResult{
			Id:                e.Id,
			BiasDetected:      e.BiasDetected,
			BiasDescription:   e.BiasDescription,
			ValidatedCategory: e.ValidatedCategory,
			Legitimate:        e.Legitimate == nil || *e.Legitimate,
		})
	}
	return results
}

// parseValidationResponse extracts and unmarshals the JSON array from a raw
// model response. Markdown code fences and any surrounding prose are stripped
// before parsing.
func parseValidationResponse(raw string) ([]validationEntry, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	// Models sometimes wrap the array in commentary; keep only the array.
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON array in validation response")
	}
	text = text[start : end+1]

	// Try to repair common JSON issues
	text = repairJSON(text)

	var entries []validationEntry
	if err := json.Unmarshal([]byte(text), &entries); err != nil {
		return nil, fmt.Errorf("malformed validation response: %w", err)
	}
	return entries, nil
}
