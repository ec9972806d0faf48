package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AlthosKal/ComunnityData/ai"
	"github.com/AlthosKal/ComunnityData/core"
	"github.com/AlthosKal/ComunnityData/resilience"
)

// ValidationStage submits groups of reports to the classification service
// and merges the structured results back by identifier.
type ValidationStage struct {
	validator ai.ReportValidator
	breaker   *resilience.Breaker
	logger    *slog.Logger
}

// NewValidationStage creates a validation stage. All service calls go
// through the breaker.
func NewValidationStage(validator ai.ReportValidator, breaker *resilience.Breaker) *ValidationStage {
	return &ValidationStage{
		validator: validator,
		breaker:   breaker,
		logger:    slog.Default().With("component", "validation-stage"),
	}
}

// ValidateGroup sends one group of reports to the validation service in a
// single call and applies the results in place.
//
// On a service or parse failure every report in the group is marked Error;
// no partial application happens from an unparseable response. Reports the
// service omits from an otherwise parseable response are left in Validating,
// neither validated nor errored. A report the service flags illegitimate
// becomes Error regardless of its bias and category results.
func (s *ValidationStage) ValidateGroup(ctx context.Context, reports []*core.Report) {
	if len(reports) == 0 {
		return
	}

	inputs := make([]ai.ValidationInput, len(reports))
	for i, report := range reports {
		report.Status = core.StatusValidating
		inputs[i] = ai.ValidationInput{
			Id:                report.Id,
			Comment:           report.Comment,
			SuggestedCategory: report.Category.DisplayName(),
			City:              report.City,
		}
	}

	var results []ai.ValidationResult
	err := s.breaker.Do(ctx, func() error {
		var callErr error
		results, callErr = s.validator.ValidateReports(ctx, inputs)
		return callErr
	})
	if err != nil {
		message := fmt.Sprintf("validation failed: %v", err)
		if errors.Is(err, resilience.ErrCircuitOpen) {
			message = "validation service temporarily unavailable"
		}
		s.logger.Error("validation group failed", "reports", len(reports), "err", err)
		for _, report := range reports {
			report.Status = core.StatusError
			report.ErrorMessage = message
		}
		return
	}

	byID := make(map[string]ai.ValidationResult, len(results))
	for _, result := range results {
		byID[result.Id] = result
	}

	matched := 0
	for _, report := range reports {
		result, ok := byID[report.Id]
		if !ok {
			continue
		}
		matched++

		report.BiasDetected = result.BiasDetected
		report.BiasDescription = result.BiasDescription
		if category := core.ParseCategory(result.ValidatedCategory); category != core.CategoryUnspecified {
			report.Category = category
		}

		if !result.Legitimate {
			report.Status = core.StatusError
			report.ErrorMessage = "report flagged as illegitimate"
			continue
		}
		report.Status = core.StatusValidated
	}

	s.logger.Debug("validated report group",
		"reports", len(reports),
		"matched", matched)
}
