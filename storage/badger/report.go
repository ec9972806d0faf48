package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/AlthosKal/ComunnityData/core"
	"github.com/AlthosKal/ComunnityData/storage"
)

// ReportRepository implements storage.ReportRepository for BadgerDB.
type ReportRepository struct {
	backend *Backend
}

var _ storage.ReportRepository = (*ReportRepository)(nil)

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(backend *Backend) (*ReportRepository, error) {
	return &ReportRepository{backend: backend}, nil
}

// Close releases repository resources. The underlying backend is shared and
// closed separately.
func (r *ReportRepository) Close() error {
	return nil
}

// FindSimilar delegates to the backend.
func (r *ReportRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// WithTransaction delegates to the backend.
func (r *ReportRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveReports inserts or overwrites one or more reports.
func (r *ReportRepository) SaveReports(ctx context.Context, reports ...*core.Report) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, report := range reports {
			if report.Id == "" {
				return core.ErrEmptyReportID
			}

			if report.ImportedAt.IsZero() {
				report.ImportedAt = now
			}
			report.UpdatedAt = now

			// Store primary record
			key := makeReportKey(report.Id)
			value := storage.MarshalReport(report)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update batch index
			if report.BatchId != "" {
				batchKey := makeBatchKey(report.BatchId, report.Id)
				if err := tx.Set(batchKey, []byte(report.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)
}

// GetReport retrieves a single report by ID.
func (r *ReportRepository) GetReport(ctx context.Context, id string) (*core.Report, error) {
	var result *core.Report
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeReportKey(id)
		var err error
		result, err = readReport(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetReports retrieves multiple reports by their IDs.
func (r *ReportRepository) GetReports(ctx context.Context, ids ...string) ([]*core.Report, error) {
	var result []*core.Report
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeReportKey(id)
			report, err := readReport(tx, key)
			if err != nil {
				return err
			}
			if report != nil {
				result = append(result, report)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetAllReports retrieves every stored report, ordered by ID.
func (r *ReportRepository) GetAllReports(ctx context.Context) ([]*core.Report, error) {
	return r.scanReports(func(*core.Report) bool { return true }, 0)
}

// GetReportsByBatch retrieves all reports belonging to an upload batch.
func (r *ReportRepository) GetReportsByBatch(ctx context.Context, batchID string) ([]*core.Report, error) {
	var results []*core.Report
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialBatchKey(batchID)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = startKey
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			// Read the report ID from the index value
			var reportID string
			if err := iter.Item().Value(func(val []byte) error {
				reportID = string(val)
				return nil
			}); err != nil {
				return err
			}

			// Look up the full report
			report, err := readReport(tx, makeReportKey(reportID))
			if err != nil {
				return err
			}
			if report != nil {
				results = append(results, report)
			}
		}
		return nil
	}, false)

	return results, err
}

// CountByStatus counts the reports of a batch grouped by processing status.
func (r *ReportRepository) CountByStatus(ctx context.Context, batchID string) (map[core.Status]int, error) {
	reports, err := r.GetReportsByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	counts := make(map[core.Status]int)
	for _, report := range reports {
		counts[report.Status]++
	}
	return counts, nil
}

// FindReports retrieves the reports matching the filter.
func (r *ReportRepository) FindReports(ctx context.Context, filter storage.Filter) ([]*core.Report, error) {
	// Batch-scoped queries can use the batch index instead of a full scan
	if filter.BatchId != "" {
		reports, err := r.GetReportsByBatch(ctx, filter.BatchId)
		if err != nil {
			return nil, err
		}
		var results []*core.Report
		for _, report := range reports {
			if filter.Matches(report) {
				results = append(results, report)
				if filter.Limit > 0 && len(results) >= filter.Limit {
					break
				}
			}
		}
		return results, nil
	}

	return r.scanReports(filter.Matches, filter.Limit)
}

// scanReports iterates all primary report records and collects those the
// predicate accepts, up to limit (zero means unlimited).
func (r *ReportRepository) scanReports(accept func(*core.Report) bool, limit int) ([]*core.Report, error) {
	var results []*core.Report
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(reportPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var report *core.Report
			err := iter.Item().Value(func(val []byte) error {
				var err error
				report, err = storage.UnmarshalReport(val)
				return err
			})
			if err != nil {
				return err
			}
			if report == nil || !accept(report) {
				continue
			}
			results = append(results, report)
			if limit > 0 && len(results) >= limit {
				break
			}
		}
		return nil
	}, false)

	return results, err
}

// readReport reads a report from the transaction.
// Returns nil (no error) when the key does not exist.
func readReport(tx *badger.Txn, key []byte) (*core.Report, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var report *core.Report
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		report, unmarshalErr = storage.UnmarshalReport(val)
		return unmarshalErr
	})
	return report, err
}
