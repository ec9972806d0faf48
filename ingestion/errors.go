package ingestion

import "errors"

var (
	// ErrRepositoryRequired indicates a nil report repository was passed.
	ErrRepositoryRequired = errors.New("report repository is required")

	// ErrAIProviderRequired indicates a nil AI provider was passed.
	ErrAIProviderRequired = errors.New("AI provider is required")

	// ErrBatchNotFound indicates a status query for an unknown batch ID.
	ErrBatchNotFound = errors.New("batch not found")

	// ErrUnbalancedQuotes indicates a CSV row with malformed quoting.
	// The row is skipped; the error never aborts the whole parse.
	ErrUnbalancedQuotes = errors.New("unbalanced quotes in row")
)
