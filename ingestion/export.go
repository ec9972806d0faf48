package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/AlthosKal/ComunnityData/core"
	"github.com/AlthosKal/ComunnityData/storage"
)

// exportHeader is the column layout of exported CSV files.
var exportHeader = []string{
	"ID", "Age", "City", "Comment", "Category", "Urgency",
	"ReportDate", "GovernmentAttention", "Zone", "BiasDetected",
}

// ExportCSV writes reports as CSV to w. With an empty ids slice it exports
// every completed, bias-free report; otherwise exactly the reports with the
// given IDs (missing IDs are silently skipped).
func ExportCSV(ctx context.Context, repo storage.ReportRepository, w io.Writer, ids []string) error {
	var reports []*core.Report
	var err error

	if len(ids) == 0 {
		reports, err = repo.FindReports(ctx, storage.Filter{Status: core.StatusCompleted})
		if err == nil {
			// Biased reports are excluded from the default export
			filtered := reports[:0]
			for _, report := range reports {
				if !report.BiasDetected {
					filtered = append(filtered, report)
				}
			}
			reports = filtered
		}
	} else {
		reports, err = repo.GetReports(ctx, ids...)
	}
	if err != nil {
		return fmt.Errorf("loading reports for export: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("writing export header: %w", err)
	}

	for _, report := range reports {
		if err := writer.Write(exportRow(report)); err != nil {
			return fmt.Errorf("writing export row %s: %w", report.Id, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// exportRow renders one report as CSV fields; absent values become empty
// strings.
func exportRow(report *core.Report) []string {
	age := ""
	if report.Age != nil {
		age = strconv.Itoa(*report.Age)
	}

	date := ""
	if !report.ReportDate.IsZero() {
		date = report.ReportDate.Format("2006-01-02")
	}

	attention := ""
	if report.GovernmentAttention != nil {
		attention = strconv.FormatBool(*report.GovernmentAttention)
	}

	return []string{
		report.Id,
		age,
		report.City,
		report.Comment,
		report.Category.DisplayName(),
		report.Urgency.DisplayName(),
		date,
		attention,
		report.Zone.DisplayName(),
		strconv.FormatBool(report.BiasDetected),
	}
}
