package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	comunidata "github.com/AlthosKal/ComunnityData"
	"github.com/AlthosKal/ComunnityData/ai"
	"github.com/AlthosKal/ComunnityData/config"
	"github.com/AlthosKal/ComunnityData/core"
	"github.com/AlthosKal/ComunnityData/ingestion"
	"github.com/AlthosKal/ComunnityData/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	app := &cli.App{
		Name:  "comunidata",
		Usage: "Citizen report ingestion and enrichment pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the report database directory",
				Value:   cfg.Database.Path,
			},
			&cli.StringFlag{
				Name:  "validator-host",
				Usage: "Validation service host URL",
				Value: cfg.AI.ValidatorHost,
			},
			&cli.StringFlag{
				Name:  "validator-model",
				Usage: "Validation model name",
				Value: cfg.AI.ValidatorModel,
			},
			&cli.StringFlag{
				Name:  "embedding-host",
				Usage: "Embedding service host URL",
				Value: cfg.AI.EmbeddingHost,
			},
			&cli.StringFlag{
				Name:  "embedding-model",
				Usage: "Embedding model name",
				Value: cfg.AI.EmbeddingModel,
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "upload",
				Usage:  "Normalize a CSV file of citizen reports and optionally process it",
				Action: uploadCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the CSV file",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "process",
						Usage: "Run validation and embedding after normalizing",
					},
				},
			},
			{
				Name:   "status",
				Usage:  "Show processing progress of one upload batch",
				Action: statusCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "batch",
						Aliases:  []string{"b"},
						Usage:    "Batch identifier returned by upload",
						Required: true,
					},
				},
			},
			{
				Name:   "export",
				Usage:  "Export processed reports as CSV",
				Action: exportCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output file (defaults to stdout)",
					},
					&cli.StringSliceFlag{
						Name:  "ids",
						Usage: "Export only the reports with these IDs",
					},
				},
			},
			{
				Name:   "search",
				Usage:  "Search processed reports by meaning",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "Free-text search query",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-hits",
						Usage: "Maximum number of results",
						Value: 10,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDatabase(c *cli.Context) (*comunidata.Database, error) {
	aiConfig := ai.NewConfig(
		ai.WithValidatorHost(c.String("validator-host")),
		ai.WithValidatorModel(c.String("validator-model")),
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := comunidata.NewDatabase(c.String("db"), comunidata.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func uploadCommand(c *cli.Context) error {
	ctx := context.Background()

	file, err := os.Open(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	summary, err := pipeline.Process(ctx, file, c.Bool("process"))
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	fmt.Printf("%s\n", summary.Message)
	fmt.Printf("Batch:      %s\n", summary.BatchId)
	fmt.Printf("Total:      %d\n", summary.TotalRecords)
	fmt.Printf("Normalized: %d\n", summary.NormalizedRecords)
	if summary.ProcessingStatus == core.ProcessingStatusProcessed {
		fmt.Printf("Errors:     %d\n", summary.ErrorRecords)
	}
	return nil
}

func statusCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	run, err := db.NewTracker().BatchStatus(context.Background(), c.String("batch"))
	if err != nil {
		return err
	}

	fmt.Printf("Batch:     %s\n", run.BatchId)
	fmt.Printf("State:     %s\n", run.State.DisplayName())
	fmt.Printf("Progress:  %.1f%%\n", run.PercentComplete)
	fmt.Printf("Total:     %d\n", run.TotalRecords)
	fmt.Printf("Completed: %d\n", run.CompletedRecords)
	fmt.Printf("Errored:   %d\n", run.ErroredRecords)
	return nil
}

func exportCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	out := os.Stdout
	if path := c.String("out"); path != "" {
		out, err = os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer out.Close()
	}

	return ingestion.ExportCSV(context.Background(), db.ReportRepository(), out, c.StringSlice("ids"))
}

func searchCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	searcher, err := db.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	results, err := searcher.FindSimilar(context.Background(), c.String("query"), c.Int("max-hits"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No matching reports.")
		return nil
	}

	for _, result := range results {
		report := result.Report
		fmt.Printf("%.2f  %s  [%s/%s]  %s\n",
			result.Score, report.Id,
			report.Category.DisplayName(), report.City,
			report.Comment)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	logger, err := logging.NewLogger(os.Stderr, levelStr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	return nil
}
