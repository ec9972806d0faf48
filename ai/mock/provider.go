package mock

import "github.com/AlthosKal/ComunnityData/ai"

// MockProvider is a test double for ai.AIProvider.
// It aggregates mock embedder and validator instances.
type MockProvider struct {
	embedder  *MockEmbedder
	validator *MockValidator
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.AIProvider interface for consistency with production constructors.
// Use GetMockEmbedder()/GetMockValidator() to access concrete types for test assertions.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		embedder:  NewMockEmbedder(),
		validator: NewMockValidator(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// This allows full control over the behavior of each service.
func NewMockProviderWithServices(embedder *MockEmbedder, validator *MockValidator) ai.AIProvider {
	return &MockProvider{
		embedder:  embedder,
		validator: validator,
	}
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// Validator returns the mock report validator.
func (p *MockProvider) Validator() ai.ReportValidator {
	return p.validator
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the underlying mock embedder for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockValidator returns the underlying mock validator for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockValidator() *MockValidator {
	return p.validator
}
