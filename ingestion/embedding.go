package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/AlthosKal/ComunnityData/ai"
	"github.com/AlthosKal/ComunnityData/core"
	"github.com/AlthosKal/ComunnityData/resilience"
)

// EmbeddingStage attaches a vector embedding to each report's text content.
// Unlike the validation stage it works one report per provider call, so a
// failure only ever affects the single report involved.
type EmbeddingStage struct {
	embedder ai.Embedder
	breaker  *resilience.Breaker
	logger   *slog.Logger
}

// NewEmbeddingStage creates an embedding stage. All service calls go through
// the breaker.
func NewEmbeddingStage(embedder ai.Embedder, breaker *resilience.Breaker) *EmbeddingStage {
	return &EmbeddingStage{
		embedder: embedder,
		breaker:  breaker,
		logger:   slog.Default().With("component", "embedding-stage"),
	}
}

// EmbedReport generates and attaches the embedding for one report, moving it
// to Completed on success. A report with a blank comment is marked Error
// without calling the provider.
func (s *EmbeddingStage) EmbedReport(ctx context.Context, report *core.Report) {
	if strings.TrimSpace(report.Comment) == "" {
		s.logger.Warn("report has no comment, skipping embedding", "id", report.Id)
		report.Status = core.StatusError
		report.ErrorMessage = "no comment to generate embedding from"
		return
	}

	report.Status = core.StatusEmbedding

	text := buildEmbeddingText(report)

	var vector []float32
	err := s.breaker.Do(ctx, func() error {
		var callErr error
		vector, callErr = s.embedder.EmbedText(ctx, text)
		return callErr
	})
	if err != nil {
		message := fmt.Sprintf("embedding generation failed: %v", err)
		if errors.Is(err, resilience.ErrCircuitOpen) {
			message = "embedding service temporarily unavailable"
		}
		s.logger.Error("embedding failed", "id", report.Id, "err", err)
		report.Status = core.StatusError
		report.ErrorMessage = message
		return
	}

	report.Embedding = vector
	report.Status = core.StatusCompleted

	s.logger.Debug("generated embedding", "id", report.Id, "dimensions", len(vector))
}

// buildEmbeddingText enriches the comment with bracketed metadata tags so
// semantically related reports cluster by category, place, and urgency.
func buildEmbeddingText(report *core.Report) string {
	var text strings.Builder
	text.WriteString(report.Comment)

	if name := report.Category.DisplayName(); name != "" {
		fmt.Fprintf(&text, " [Category: %s]", name)
	}
	if report.City != "" {
		fmt.Fprintf(&text, " [City: %s]", report.City)
	}
	if name := report.Urgency.DisplayName(); name != "" {
		fmt.Fprintf(&text, " [Urgency: %s]", name)
	}

	return text.String()
}
