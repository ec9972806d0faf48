package core

import "fmt"

// ValidateReport validates a Report according to domain rules.
//
// Validation rules:
//   - Id and BatchId must not be empty
//   - Age, when present, must be within [0, 120]
//   - Embedding may be non-empty only when status is Completed
//
// NOT validated (legitimately absent until processors run):
//   - Category/Urgency/Zone (unspecified is a valid state)
//   - BiasDescription, ErrorMessage
func ValidateReport(report *Report) error {
	if report == nil {
		return fmt.Errorf("%w: report is nil", ErrInvalidReport)
	}

	if report.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidReport, ErrEmptyReportID)
	}

	if report.BatchId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidReport, ErrEmptyBatchID)
	}

	if report.Age != nil && (*report.Age < 0 || *report.Age > 120) {
		return fmt.Errorf("%w: %w: %d", ErrInvalidReport, ErrAgeOutOfRange, *report.Age)
	}

	if len(report.Embedding) > 0 && report.Status != StatusCompleted {
		return fmt.Errorf("%w: %w", ErrInvalidReport, ErrPrematureEmbedding)
	}

	return nil
}
