package storage

import (
	"context"
	"strings"
	"time"

	"github.com/AlthosKal/ComunnityData/core"
)

// Filter selects reports in FindReports queries. Zero-valued fields are
// ignored; set fields are combined with AND.
type Filter struct {
	// Ids restricts results to the given report identifiers.
	Ids []string

	// BatchId restricts results to one upload batch.
	BatchId string

	// Category restricts results to one problem category.
	Category core.Category

	// City restricts results to reports from one city (case-insensitive).
	City string

	// Urgency restricts results to one urgency level.
	Urgency core.Urgency

	// Zone restricts results to rural or urban reports.
	Zone core.Zone

	// Status restricts results to reports in one processing status.
	Status core.Status

	// BiasDetected, when set, restricts results by the bias flag.
	BiasDetected *bool

	// GovernmentAttention, when set, restricts results to reports whose
	// attention flag matches. Reports without the flag never match.
	GovernmentAttention *bool

	// MinAge and MaxAge bound the reporter age, inclusive. Reports without
	// an age never match a bounded filter.
	MinAge *int
	MaxAge *int

	// ReportedAfter and ReportedBefore bound the report date, inclusive.
	// Reports without a date never match a bounded filter.
	ReportedAfter  time.Time
	ReportedBefore time.Time

	// Limit caps the number of results; zero means no limit.
	Limit int
}

// Matches reports whether the report satisfies every set field of the filter.
func (f Filter) Matches(report *core.Report) bool {
	if len(f.Ids) > 0 {
		found := false
		for _, id := range f.Ids {
			if report.Id == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.BatchId != "" && report.BatchId != f.BatchId {
		return false
	}
	if f.Category != core.CategoryUnspecified && report.Category != f.Category {
		return false
	}
	if f.City != "" && !strings.EqualFold(report.City, f.City) {
		return false
	}
	if f.Urgency != core.UrgencyUnspecified && report.Urgency != f.Urgency {
		return false
	}
	if f.Zone != core.ZoneUnspecified && report.Zone != f.Zone {
		return false
	}
	if f.Status != core.StatusUnspecified && report.Status != f.Status {
		return false
	}
	if f.BiasDetected != nil && report.BiasDetected != *f.BiasDetected {
		return false
	}
	if f.GovernmentAttention != nil {
		if report.GovernmentAttention == nil || *report.GovernmentAttention != *f.GovernmentAttention {
			return false
		}
	}
	if f.MinAge != nil || f.MaxAge != nil {
		if report.Age == nil {
			return false
		}
		if f.MinAge != nil && *report.Age < *f.MinAge {
			return false
		}
		if f.MaxAge != nil && *report.Age > *f.MaxAge {
			return false
		}
	}
	if !f.ReportedAfter.IsZero() || !f.ReportedBefore.IsZero() {
		if report.ReportDate.IsZero() {
			return false
		}
		if !f.ReportedAfter.IsZero() && report.ReportDate.Before(f.ReportedAfter) {
			return false
		}
		if !f.ReportedBefore.IsZero() && report.ReportDate.After(f.ReportedBefore) {
			return false
		}
	}
	return true
}

// ReportRepository provides operations for managing citizen reports.
// Implementations must be thread-safe and support concurrent access.
type ReportRepository interface {
	// SaveReports inserts or overwrites one or more reports.
	// Sets ImportedAt if not already set and always updates UpdatedAt.
	SaveReports(ctx context.Context, reports ...*core.Report) error

	// GetReport retrieves a single report by ID.
	// Returns ErrNotFound if the report doesn't exist.
	GetReport(ctx context.Context, id string) (*core.Report, error)

	// GetReports retrieves multiple reports by their IDs.
	// Returns only the reports that exist (no error for missing reports).
	GetReports(ctx context.Context, ids ...string) ([]*core.Report, error)

	// GetAllReports retrieves every stored report, ordered by ID.
	GetAllReports(ctx context.Context) ([]*core.Report, error)

	// GetReportsByBatch retrieves all reports belonging to an upload batch.
	// Returns an empty slice for an unknown batch ID.
	GetReportsByBatch(ctx context.Context, batchID string) ([]*core.Report, error)

	// CountByStatus counts the reports of a batch grouped by processing status.
	CountByStatus(ctx context.Context, batchID string) (map[core.Status]int, error)

	// FindReports retrieves the reports matching the filter.
	FindReports(ctx context.Context, filter Filter) ([]*core.Report, error)

	// FindSimilar finds completed reports whose embedding is similar to the
	// given vector. Returns reports with similarity >= minSimilarity, up to
	// limit results, ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the repository and releases resources.
	Close() error
}
