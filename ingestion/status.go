package ingestion

import (
	"context"
	"fmt"

	"github.com/AlthosKal/ComunnityData/core"
	"github.com/AlthosKal/ComunnityData/storage"
)

// Tracker answers batch progress queries. All numbers are derived from the
// persisted report statuses at query time, never from cached counters, so a
// status query always reflects the true state even while a run is in flight.
type Tracker struct {
	repo storage.ReportRepository
}

// NewTracker creates a status tracker over the repository.
func NewTracker(repo storage.ReportRepository) *Tracker {
	return &Tracker{repo: repo}
}

// BatchStatus derives the processing state of one batch.
// Returns ErrBatchNotFound for an unknown batch ID.
//
// The overall state is Completed when every report is Completed,
// CompletedWithErrors when no report remains unprocessed but some are Error,
// and InProgress otherwise.
func (t *Tracker) BatchStatus(ctx context.Context, batchID string) (*core.BatchRun, error) {
	counts, err := t.repo.CountByStatus(ctx, batchID)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, count := range counts {
		total += count
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: %s", ErrBatchNotFound, batchID)
	}

	completed := counts[core.StatusCompleted]
	errored := counts[core.StatusError]

	state := core.RunStateInProgress
	switch {
	case completed == total:
		state = core.RunStateCompleted
	case completed+errored == total:
		state = core.RunStateCompletedWithErrors
	}

	return &core.BatchRun{
		BatchId:          batchID,
		TotalRecords:     total,
		ProcessedRecords: completed + errored,
		CompletedRecords: completed,
		ErroredRecords:   errored,
		PercentComplete:  float64(completed) * 100.0 / float64(total),
		State:            state,
	}, nil
}
