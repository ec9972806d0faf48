package search

import "errors"

var (
	// ErrRepositoryRequired is returned when a report repository is not provided.
	ErrRepositoryRequired = errors.New("report repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrEmptyQuery is returned when the search query is blank.
	ErrEmptyQuery = errors.New("search query is empty")
)
