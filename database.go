// Package comunidata wires the citizen-report pipeline together: a Badger
// backed report store, the AI provider, the ingestion pipeline, the status
// tracker, and the semantic searcher.
package comunidata

import (
	"log/slog"

	"github.com/AlthosKal/ComunnityData/ai"
	"github.com/AlthosKal/ComunnityData/ai/openai"
	"github.com/AlthosKal/ComunnityData/ingestion"
	"github.com/AlthosKal/ComunnityData/search"
	"github.com/AlthosKal/ComunnityData/storage"
	"github.com/AlthosKal/ComunnityData/storage/badger"
)

type Database struct {
	backend    *badger.Backend
	reportRepo storage.ReportRepository
	provider   ai.AIProvider
	logger     *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	inMemory bool
}

// WithAIConfig sets the configuration used to build the AI provider.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithAIProvider injects a pre-built provider instead of constructing one
// from configuration. Intended for tests.
func WithAIProvider(provider ai.AIProvider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// WithInMemory opens the backing store in memory, ignoring the file path.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	reportRepo, err := badger.NewReportRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			reportRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:    backend,
		reportRepo: reportRepo,
		provider:   provider,
		logger:     slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	if err := db.reportRepo.Close(); err != nil {
		db.logger.Error("error closing report repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) ReportRepository() storage.ReportRepository {
	return db.reportRepo
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.reportRepo, db.provider, opts...)
}

func (db *Database) NewTracker() *ingestion.Tracker {
	return ingestion.NewTracker(db.reportRepo)
}

func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.reportRepo, db.provider, opts...)
}
