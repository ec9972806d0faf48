package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text and has
	// the dimensionality the implementation was configured with.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// ReportValidator submits a group of citizen reports to an external
// classification service for bias detection, category validation, and
// legitimacy checking. Implementations must be thread-safe for concurrent use.
type ReportValidator interface {
	// ValidateReports analyzes the given inputs in one service call and
	// returns one result per input identifier found in the service response.
	// The result slice may be shorter than the input slice: the service is
	// allowed to omit entries, and omitted identifiers are simply not present.
	// Returns an error if the call fails or the response cannot be parsed
	// into the expected structure; no partial results are returned in that
	// case.
	ValidateReports(ctx context.Context, inputs []ValidationInput) ([]ValidationResult, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and ReportValidator instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Validator returns the report validation service.
	// The returned ReportValidator is safe for concurrent use.
	Validator() ReportValidator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
