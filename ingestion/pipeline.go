package ingestion

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/AlthosKal/ComunnityData/ai"
	"github.com/AlthosKal/ComunnityData/core"
	"github.com/AlthosKal/ComunnityData/resilience"
	"github.com/AlthosKal/ComunnityData/storage"
)

const (
	defaultGroupSize   = 50
	defaultWaveSize    = 3
	defaultWaveTimeout = 10 * time.Minute
)

// Pipeline orchestrates the full ingestion flow for one uploaded dataset:
// normalize, persist, validate in groups, embed per record, persist again.
type Pipeline struct {
	repo        storage.ReportRepository
	validation  *ValidationStage
	embedding   *EmbeddingStage
	pool        *ants.Pool
	groupSize   int
	waveSize    int
	waveTimeout time.Duration
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithGroupSize sets how many reports are submitted to the validation
// service in one call. Default is 50.
func WithGroupSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.groupSize = size
		return nil
	}
}

// WithWaveSize sets how many external calls may be in flight at once.
// Default is 3.
func WithWaveSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Replace the worker pool to match
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		p.waveSize = size
		return nil
	}
}

// WithWaveTimeout sets how long the orchestrator waits for a wave of
// external calls before converting the missing results into failures.
// Default is 10 minutes.
func WithWaveTimeout(timeout time.Duration) Option {
	return func(p *Pipeline) error {
		if timeout <= 0 {
			return fmt.Errorf("wave timeout must be positive")
		}
		p.waveTimeout = timeout
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates an ingestion pipeline. Each AI service gets its own
// circuit breaker so an outage of one does not open the other's circuit.
func NewPipeline(repo storage.ReportRepository, provider ai.AIProvider, opts ...Option) (*Pipeline, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	pool, err := ants.NewPool(defaultWaveSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repo:        repo,
		validation:  NewValidationStage(provider.Validator(), resilience.NewBreaker(resilience.DefaultConfig())),
		embedding:   NewEmbeddingStage(provider.Embedder(), resilience.NewBreaker(resilience.DefaultConfig())),
		pool:        pool,
		groupSize:   defaultGroupSize,
		waveSize:    defaultWaveSize,
		waveTimeout: defaultWaveTimeout,
		logger:      slog.Default().With("component", "pipeline"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// Process ingests one CSV stream. Reports are normalized and persisted with
// a fresh batch ID; when processNow is set they are additionally run through
// the validation and embedding stages. Stage-level failures never abort the
// run; only a stream read error does.
func (p *Pipeline) Process(ctx context.Context, r io.Reader, processNow bool) (*core.UploadSummary, error) {
	batchID := uuid.NewString()
	logger := p.logger.With("batchId", batchID)
	logger.Info("starting CSV processing")

	reports, skipped, err := ParseReports(r, batchID)
	if err != nil {
		return nil, fmt.Errorf("processing CSV: %w", err)
	}

	if len(reports) > 0 {
		if err := p.repo.SaveReports(ctx, reports...); err != nil {
			return nil, fmt.Errorf("persisting normalized reports: %w", err)
		}
	}

	summary := &core.UploadSummary{
		Message:           "CSV normalized successfully",
		TotalRecords:      len(reports) + skipped,
		NormalizedRecords: len(reports),
		BatchId:           batchID,
		ProcessingStatus:  core.ProcessingStatusNormalizedOnly,
	}

	if !processNow || len(reports) == 0 {
		return summary, nil
	}

	p.runValidation(ctx, reports, logger)
	if err := p.repo.SaveReports(ctx, reports...); err != nil {
		return nil, fmt.Errorf("persisting validated reports: %w", err)
	}

	// Only reports that survived validation move on to embedding
	var valid []*core.Report
	for _, report := range reports {
		if report.Status != core.StatusError {
			valid = append(valid, report)
		}
	}

	p.runEmbedding(ctx, valid, logger)
	if err := p.repo.SaveReports(ctx, reports...); err != nil {
		return nil, fmt.Errorf("persisting embedded reports: %w", err)
	}

	errored := 0
	for _, report := range reports {
		if report.Status == core.StatusError {
			errored++
		}
	}

	summary.Message = "CSV processed successfully"
	summary.ErrorRecords = errored
	summary.ProcessingStatus = core.ProcessingStatusProcessed

	logger.Info("finished CSV processing",
		"reports", len(reports),
		"errored", errored)
	return summary, nil
}

// partitionReports splits reports into groups of at most size.
func partitionReports(reports []*core.Report, size int) [][]*core.Report {
	var groups [][]*core.Report
	for start := 0; start < len(reports); start += size {
		end := start + size
		if end > len(reports) {
			end = len(reports)
		}
		groups = append(groups, reports[start:end])
	}
	return groups
}

// runValidation drives the validation stage over all reports, one group per
// external call, at most waveSize groups in flight.
func (p *Pipeline) runValidation(ctx context.Context, reports []*core.Report, logger *slog.Logger) {
	groups := partitionReports(reports, p.groupSize)
	logger.Info("validating reports", "reports", len(reports), "groups", len(groups))

	for start := 0; start < len(groups); start += p.waveSize {
		end := start + p.waveSize
		if end > len(groups) {
			end = len(groups)
		}
		p.runWave(ctx, groups[start:end], func(ctx context.Context, group []*core.Report) {
			p.validation.ValidateGroup(ctx, group)
		}, "validation timed out", logger)
	}
}

// runEmbedding drives the embedding stage over the valid reports, one report
// per external call, at most waveSize reports in flight.
func (p *Pipeline) runEmbedding(ctx context.Context, reports []*core.Report, logger *slog.Logger) {
	logger.Info("generating embeddings", "reports", len(reports))

	for start := 0; start < len(reports); start += p.waveSize {
		end := start + p.waveSize
		if end > len(reports) {
			end = len(reports)
		}

		// One single-report group per call keeps the failure blast radius
		// to that report
		wave := make([][]*core.Report, 0, end-start)
		for _, report := range reports[start:end] {
			wave = append(wave, []*core.Report{report})
		}
		p.runWave(ctx, wave, func(ctx context.Context, group []*core.Report) {
			p.embedding.EmbedReport(ctx, group[0])
		}, "embedding timed out", logger)
	}
}

// waveResult carries one finished task's mutated clones, or a submission
// failure, back to the orchestrator.
type waveResult struct {
	index       int
	clones      []*core.Report
	scheduleErr error
}

// runWave submits one wave of groups to the worker pool and blocks until
// every group resolves or the wave timeout fires.
//
// Tasks work on clones, not the originals: a task that outlives the timeout
// keeps running against its clones and its late result is discarded, so the
// originals can be safely marked Error the moment the timer fires. The
// underlying external call is not cancelled.
//
// Submission happens off the orchestrator goroutine and the timer covers it:
// a previous wave's hung tasks can occupy every worker, in which case Submit
// blocks until one frees up. Groups whose submission has not landed when the
// deadline fires are failed like any other unresolved group, so a stuck pool
// never stalls the run.
func (p *Pipeline) runWave(ctx context.Context, wave [][]*core.Report, work func(context.Context, []*core.Report), timeoutMessage string, logger *slog.Logger) {
	// Buffered so late tasks never block on send
	results := make(chan waveResult, len(wave))

	// Clones are taken before the originals can be marked on timeout
	clones := make([][]*core.Report, len(wave))
	for i, group := range wave {
		clones[i] = cloneReports(group)
	}

	timer := time.NewTimer(p.waveTimeout)
	defer timer.Stop()

	go func() {
		for i := range wave {
			index, group := i, clones[i]
			err := p.pool.Submit(func() {
				work(ctx, group)
				results <- waveResult{index: index, clones: group}
			})
			if err != nil {
				logger.Error("failed to submit group to worker pool", "err", err)
				results <- waveResult{index: index, scheduleErr: err}
			}
		}
	}()

	resolved := make([]bool, len(wave))
	received := 0
	timedOut := false

	for received < len(wave) && !timedOut {
		select {
		case result := <-results:
			received++
			resolved[result.index] = true
			if result.scheduleErr != nil {
				for _, report := range wave[result.index] {
					report.Status = core.StatusError
					report.ErrorMessage = fmt.Sprintf("could not schedule processing: %v", result.scheduleErr)
				}
				continue
			}
			for i, clone := range result.clones {
				*wave[result.index][i] = *clone
			}
		case <-timer.C:
			timedOut = true
		case <-ctx.Done():
			timedOut = true
		}
	}

	if !timedOut {
		return
	}

	for i, done := range resolved {
		if done {
			continue
		}
		logger.Warn("wave task did not finish in time", "group", i)
		for _, report := range wave[i] {
			report.Status = core.StatusError
			report.ErrorMessage = timeoutMessage
		}
	}
}

// cloneReports deep-copies the reports of one group so an in-flight task
// never races with the orchestrator marking originals after a timeout.
func cloneReports(group []*core.Report) []*core.Report {
	clones := make([]*core.Report, len(group))
	for i, report := range group {
		clone := *report
		clones[i] = &clone
	}
	return clones
}
