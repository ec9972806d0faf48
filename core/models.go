package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// IDFromContent generates a deterministic report identifier from raw row
// content using BLAKE2b hashing. It is used as a fallback when an input row
// carries no identifier of its own, so re-importing the same row yields the
// same ID.
func IDFromContent(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// Report is the durable unit of citizen-reported data. It is created by the
// normalizer with status Pending and enriched in place by the validation and
// embedding stages.
type Report struct {
	Id                  string
	Age                 *int   // nil when absent or out of the 0-120 range
	City                string // word-capitalized, "" when absent
	Comment             string // cleaned text
	OriginalComment     string // raw text kept for audit
	Category            Category
	OriginalCategory    string // pre-validation category text, kept for audit
	Urgency             Urgency
	ReportDate          time.Time // zero when absent
	GovernmentAttention *bool     // tri-state: nil when absent
	Zone                Zone
	BiasDetected        bool
	BiasDescription     string
	Embedding           []float32 // populated by the embedding stage, empty until Completed
	Status              Status
	BatchId             string
	BatchIndex          int
	ErrorMessage        string
	ImportedAt          time.Time // When the record was inserted into the database
	UpdatedAt           time.Time // When the record was last updated
}

// BatchRun summarizes the processing state of one uploaded dataset. It is
// always derived from the persisted record statuses, never cached.
type BatchRun struct {
	BatchId          string
	TotalRecords     int
	ProcessedRecords int // completed + errored
	CompletedRecords int
	ErroredRecords   int
	PercentComplete  float64
	State            RunState
}

// UploadSummary is returned to the caller after one upload has been
// normalized and, optionally, processed.
type UploadSummary struct {
	Message           string
	TotalRecords      int // data rows seen, including skipped ones
	NormalizedRecords int
	ErrorRecords      int
	BatchId           string
	ProcessingStatus  string // ProcessingStatusProcessed or ProcessingStatusNormalizedOnly
}

// Coarse upload outcomes reported in UploadSummary.ProcessingStatus.
const (
	ProcessingStatusProcessed      = "Processed"
	ProcessingStatusNormalizedOnly = "NormalizedOnly"
)

// SearchResult represents a report match from vector similarity search.
type SearchResult struct {
	Report *Report
	Score  float32
}
