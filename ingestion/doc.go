// Package ingestion implements the CSV ingestion and enrichment pipeline for
// citizen reports.
//
// The pipeline runs in stages over one uploaded file:
//
//  1. Normalizer: parses the raw CSV stream into typed, cleaned reports
//     (status Pending). Malformed rows are skipped, never fatal.
//  2. Validation stage: submits fixed-size groups of reports to an external
//     classification service that detects bias, corrects categories, and
//     flags illegitimate reports.
//  3. Embedding stage: attaches a vector embedding to each valid report,
//     one provider call per report.
//
// The Pipeline orchestrator sequences the stages, persisting after each one,
// and runs external calls in bounded waves on a fixed-size worker pool: it
// submits up to the pool size, then blocks until the whole wave resolves
// before submitting more. A hung call is converted into a failure for its
// unit of work by a wave timeout without cancelling siblings.
//
// Failure blast radius is deliberately asymmetric: a validation failure
// errors the whole group it was batched with, while an embedding failure
// errors only the single report involved.
//
// Progress is always derived from persisted report statuses (see Tracker),
// never from in-process counters.
package ingestion
