package ingestion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlthosKal/ComunnityData/ai"
	"github.com/AlthosKal/ComunnityData/ai/mock"
	"github.com/AlthosKal/ComunnityData/core"
	"github.com/AlthosKal/ComunnityData/resilience"
)

func testBreaker() *resilience.Breaker {
	return resilience.NewBreaker(resilience.Config{
		MaxAttempts: 1,
		BaseDelay:   1,
		MinSamples:  1000,
	})
}

func pendingReport(id string) *core.Report {
	return &core.Report{
		Id:       id,
		City:     "Cali",
		Comment:  "no streetlights at night",
		Category: core.CategorySecurity,
		Status:   core.StatusPending,
		BatchId:  "batch-1",
	}
}

func TestValidationStage_AppliesResults(t *testing.T) {
	validator := mock.NewMockValidator()
	validator.ValidateReportsFunc = func(ctx context.Context, inputs []ai.ValidationInput) ([]ai.ValidationResult, error) {
		return []ai.ValidationResult{
			{Id: "r-1", BiasDetected: true, BiasDescription: "political propaganda", ValidatedCategory: "Security", Legitimate: true},
			{Id: "r-2", BiasDetected: false, ValidatedCategory: "Health", Legitimate: true},
		}, nil
	}

	stage := NewValidationStage(validator, testBreaker())
	reports := []*core.Report{pendingReport("r-1"), pendingReport("r-2")}
	stage.ValidateGroup(context.Background(), reports)

	assert.Equal(t, core.StatusValidated, reports[0].Status)
	assert.True(t, reports[0].BiasDetected)
	assert.Equal(t, "political propaganda", reports[0].BiasDescription)
	assert.Equal(t, core.CategorySecurity, reports[0].Category)

	// AI-corrected category is applied
	assert.Equal(t, core.StatusValidated, reports[1].Status)
	assert.Equal(t, core.CategoryHealth, reports[1].Category)
}

func TestValidationStage_IllegitimateBecomesError(t *testing.T) {
	validator := mock.NewMockValidator()
	validator.ValidateReportsFunc = func(ctx context.Context, inputs []ai.ValidationInput) ([]ai.ValidationResult, error) {
		return []ai.ValidationResult{
			{Id: "r-1", BiasDetected: true, BiasDescription: "spam", ValidatedCategory: "Health", Legitimate: false},
		}, nil
	}

	stage := NewValidationStage(validator, testBreaker())
	reports := []*core.Report{pendingReport("r-1")}
	stage.ValidateGroup(context.Background(), reports)

	assert.Equal(t, core.StatusError, reports[0].Status)
	assert.NotEmpty(t, reports[0].ErrorMessage)
	// Bias fields are still written even for illegitimate reports
	assert.True(t, reports[0].BiasDetected)
	assert.Equal(t, "spam", reports[0].BiasDescription)
}

func TestValidationStage_OmittedReportLeftValidating(t *testing.T) {
	validator := mock.NewMockValidator()
	validator.ValidateReportsFunc = func(ctx context.Context, inputs []ai.ValidationInput) ([]ai.ValidationResult, error) {
		// Only r-1 comes back, r-2 is omitted by the service
		return []ai.ValidationResult{
			{Id: "r-1", ValidatedCategory: "Security", Legitimate: true},
		}, nil
	}

	stage := NewValidationStage(validator, testBreaker())
	reports := []*core.Report{pendingReport("r-1"), pendingReport("r-2")}
	stage.ValidateGroup(context.Background(), reports)

	assert.Equal(t, core.StatusValidated, reports[0].Status)
	assert.Equal(t, core.StatusValidating, reports[1].Status)
	assert.Empty(t, reports[1].ErrorMessage)
}

func TestValidationStage_ServiceFailureErrorsWholeGroup(t *testing.T) {
	validator := mock.NewMockValidator()
	validator.ValidateReportsFunc = func(ctx context.Context, inputs []ai.ValidationInput) ([]ai.ValidationResult, error) {
		return nil, errors.New("malformed validation response")
	}

	stage := NewValidationStage(validator, testBreaker())
	reports := []*core.Report{pendingReport("r-1"), pendingReport("r-2"), pendingReport("r-3")}
	stage.ValidateGroup(context.Background(), reports)

	for _, report := range reports {
		assert.Equal(t, core.StatusError, report.Status)
		assert.NotEmpty(t, report.ErrorMessage)
	}
}

func TestValidationStage_CircuitOpenMessage(t *testing.T) {
	validator := mock.NewMockValidator()
	boom := errors.New("service down")
	validator.ValidateReportsFunc = func(ctx context.Context, inputs []ai.ValidationInput) ([]ai.ValidationResult, error) {
		return nil, boom
	}

	// Tiny window so the breaker opens after the first failures
	breaker := resilience.NewBreaker(resilience.Config{
		MaxAttempts:      1,
		BaseDelay:        1,
		FailureThreshold: 0.5,
		MinSamples:       1,
		WindowSize:       2,
	})
	stage := NewValidationStage(validator, breaker)

	first := []*core.Report{pendingReport("r-1")}
	stage.ValidateGroup(context.Background(), first)
	require.Equal(t, core.StatusError, first[0].Status)

	// Breaker is now open: the call short-circuits with a distinct message
	second := []*core.Report{pendingReport("r-2")}
	stage.ValidateGroup(context.Background(), second)
	assert.Equal(t, core.StatusError, second[0].Status)
	assert.Equal(t, "validation service temporarily unavailable", second[0].ErrorMessage)
}

func TestValidationStage_UnrecognizedCategoryKeepsOriginal(t *testing.T) {
	validator := mock.NewMockValidator()
	validator.ValidateReportsFunc = func(ctx context.Context, inputs []ai.ValidationInput) ([]ai.ValidationResult, error) {
		return []ai.ValidationResult{
			{Id: "r-1", ValidatedCategory: "Something Else", Legitimate: true},
		}, nil
	}

	stage := NewValidationStage(validator, testBreaker())
	reports := []*core.Report{pendingReport("r-1")}
	stage.ValidateGroup(context.Background(), reports)

	// Category vocabulary is fixed: an unknown answer never degrades the field
	assert.Equal(t, core.CategorySecurity, reports[0].Category)
	assert.Equal(t, core.StatusValidated, reports[0].Status)
}

func TestValidationStage_EmptyGroup(t *testing.T) {
	validator := mock.NewMockValidator()
	stage := NewValidationStage(validator, testBreaker())

	stage.ValidateGroup(context.Background(), nil)
	assert.Equal(t, 0, validator.CallCount())
}
