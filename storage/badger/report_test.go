package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlthosKal/ComunnityData/core"
	"github.com/AlthosKal/ComunnityData/storage"
)

func setupRepo(t *testing.T) storage.ReportRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func makeReport(id, batchID string) *core.Report {
	return &core.Report{
		Id:       id,
		City:     "Bogotá",
		Comment:  "streetlight out for weeks",
		Category: core.CategorySecurity,
		Urgency:  core.UrgencyHigh,
		Zone:     core.ZoneUrban,
		Status:   core.StatusPending,
		BatchId:  batchID,
	}
}

func TestReportRepository_SaveAndGet(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	report := makeReport("r-1", "batch-1")
	require.NoError(t, repo.SaveReports(ctx, report))

	// Timestamps populated on save
	assert.False(t, report.ImportedAt.IsZero())
	assert.False(t, report.UpdatedAt.IsZero())

	got, err := repo.GetReport(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "r-1", got.Id)
	assert.Equal(t, core.CategorySecurity, got.Category)
	assert.Equal(t, "Bogotá", got.City)
}

func TestReportRepository_GetMissing(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetReport(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestReportRepository_SaveOverwrites(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	report := makeReport("r-1", "batch-1")
	require.NoError(t, repo.SaveReports(ctx, report))
	importedAt := report.ImportedAt

	time.Sleep(2 * time.Millisecond)

	report.Status = core.StatusCompleted
	require.NoError(t, repo.SaveReports(ctx, report))

	got, err := repo.GetReport(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, core.StatusCompleted, got.Status)
	// ImportedAt survives the overwrite, UpdatedAt moves forward
	assert.Equal(t, importedAt.UnixMicro(), got.ImportedAt.UnixMicro())
	assert.True(t, got.UpdatedAt.After(got.ImportedAt))
}

func TestReportRepository_SaveEmptyID(t *testing.T) {
	repo := setupRepo(t)

	err := repo.SaveReports(context.Background(), &core.Report{BatchId: "batch-1"})
	assert.ErrorIs(t, err, core.ErrEmptyReportID)
}

func TestReportRepository_GetReports(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveReports(ctx,
		makeReport("r-1", "batch-1"),
		makeReport("r-2", "batch-1")))

	// Missing IDs are skipped, not an error
	got, err := repo.GetReports(ctx, "r-1", "missing", "r-2")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReportRepository_GetReportsByBatch(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveReports(ctx,
		makeReport("r-1", "batch-1"),
		makeReport("r-2", "batch-1"),
		makeReport("r-3", "batch-2")))

	got, err := repo.GetReportsByBatch(ctx, "batch-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.GetReportsByBatch(ctx, "batch-2")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = repo.GetReportsByBatch(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReportRepository_GetAllReports(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveReports(ctx,
		makeReport("b", "batch-1"),
		makeReport("a", "batch-2"),
		makeReport("c", "batch-1")))

	got, err := repo.GetAllReports(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Ordered by ID
	assert.Equal(t, "a", got[0].Id)
	assert.Equal(t, "b", got[1].Id)
	assert.Equal(t, "c", got[2].Id)
}

func TestReportRepository_CountByStatus(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	completed := makeReport("r-1", "batch-1")
	completed.Status = core.StatusCompleted
	errored := makeReport("r-2", "batch-1")
	errored.Status = core.StatusError
	pending := makeReport("r-3", "batch-1")

	require.NoError(t, repo.SaveReports(ctx, completed, errored, pending))

	counts, err := repo.CountByStatus(ctx, "batch-1")
	require.NoError(t, err)
	assert.Equal(t, 1, counts[core.StatusCompleted])
	assert.Equal(t, 1, counts[core.StatusError])
	assert.Equal(t, 1, counts[core.StatusPending])
}

func TestReportRepository_FindReports(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	health := makeReport("r-1", "batch-1")
	health.Category = core.CategoryHealth
	health.City = "Cali"
	security := makeReport("r-2", "batch-1")
	other := makeReport("r-3", "batch-2")

	require.NoError(t, repo.SaveReports(ctx, health, security, other))

	t.Run("by category", func(t *testing.T) {
		got, err := repo.FindReports(ctx, storage.Filter{Category: core.CategoryHealth})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "r-1", got[0].Id)
	})

	t.Run("by city case-insensitive", func(t *testing.T) {
		got, err := repo.FindReports(ctx, storage.Filter{City: "cali"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "r-1", got[0].Id)
	})

	t.Run("by batch and category", func(t *testing.T) {
		got, err := repo.FindReports(ctx, storage.Filter{
			BatchId:  "batch-1",
			Category: core.CategorySecurity,
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "r-2", got[0].Id)
	})

	t.Run("by ids", func(t *testing.T) {
		got, err := repo.FindReports(ctx, storage.Filter{Ids: []string{"r-1", "r-3"}})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("with limit", func(t *testing.T) {
		got, err := repo.FindReports(ctx, storage.Filter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestReportRepository_FindSimilar(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	near := makeReport("r-1", "batch-1")
	near.Status = core.StatusCompleted
	near.Embedding = []float32{1, 0, 0}

	far := makeReport("r-2", "batch-1")
	far.Status = core.StatusCompleted
	far.Embedding = []float32{0, 1, 0}

	unembedded := makeReport("r-3", "batch-1")

	require.NoError(t, repo.SaveReports(ctx, near, far, unembedded))

	results, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, 0.5, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "r-1", results[0].Report.Id)
	assert.InDelta(t, 1.0, results[0].Score, 0.001)
}

func TestReportRepository_FindSimilarOrdering(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	exact := makeReport("r-1", "batch-1")
	exact.Status = core.StatusCompleted
	exact.Embedding = []float32{1, 0}

	close_ := makeReport("r-2", "batch-1")
	close_.Status = core.StatusCompleted
	close_.Embedding = []float32{0.9, 0.1}

	require.NoError(t, repo.SaveReports(ctx, close_, exact))

	results, err := repo.FindSimilar(ctx, []float32{1, 0}, 0.1, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "r-1", results[0].Report.Id, "highest score first")
}
