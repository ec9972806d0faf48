package mock

import (
	"context"
	"sync"

	"github.com/AlthosKal/ComunnityData/ai"
)

// MockValidator is a test double for ai.ReportValidator.
// It allows custom behavior injection via function fields.
type MockValidator struct {
	// ValidateReportsFunc is called by ValidateReports if set.
	// If nil, uses default behavior: every input is echoed back as a
	// legitimate, unbiased report keeping its suggested category.
	ValidateReportsFunc func(ctx context.Context, inputs []ai.ValidationInput) ([]ai.ValidationResult, error)

	mu        sync.Mutex
	callCount int
	seen      [][]ai.ValidationInput
}

// NewMockValidator creates a mock validator with default pass-through behavior.
// Note: Returns concrete type to allow test assertions via GetMockValidator().
func NewMockValidator() *MockValidator {
	return &MockValidator{}
}

// ValidateReports returns one result per input.
func (m *MockValidator) ValidateReports(ctx context.Context, inputs []ai.ValidationInput) ([]ai.ValidationResult, error) {
	m.mu.Lock()
	m.callCount++
	m.seen = append(m.seen, inputs)
	m.mu.Unlock()

	if m.ValidateReportsFunc != nil {
		return m.ValidateReportsFunc(ctx, inputs)
	}

	results := make([]ai.ValidationResult, len(inputs))
	for i, in := range inputs {
		results[i] = ai.ValidationResult{
			Id:                in.Id,
			BiasDetected:      false,
			ValidatedCategory: in.SuggestedCategory,
			Legitimate:        true,
		}
	}
	return results, nil
}

// CallCount returns the number of times ValidateReports was called.
func (m *MockValidator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Calls returns the input groups of every ValidateReports call, in order.
func (m *MockValidator) Calls() [][]ai.ValidationInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([][]ai.ValidationInput, len(m.seen))
	copy(calls, m.seen)
	return calls
}

// Reset clears the call history and any injected behavior.
func (m *MockValidator) Reset() {
	m.mu.Lock()
	m.callCount = 0
	m.seen = nil
	m.mu.Unlock()
	m.ValidateReportsFunc = nil
}
