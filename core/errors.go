package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidReport indicates a Report failed validation.
	ErrInvalidReport = errors.New("invalid report")

	// ErrEmptyReportID indicates the Id field is empty.
	ErrEmptyReportID = errors.New("report id cannot be empty")

	// ErrEmptyBatchID indicates the BatchId field is empty.
	ErrEmptyBatchID = errors.New("batch id cannot be empty")

	// ErrAgeOutOfRange indicates an age outside the 0-120 range.
	ErrAgeOutOfRange = errors.New("age must be between 0 and 120")

	// ErrPrematureEmbedding indicates an embedding present on a report
	// that has not reached StatusCompleted.
	ErrPrematureEmbedding = errors.New("embedding set before completion")
)
