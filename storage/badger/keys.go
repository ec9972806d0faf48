package badger

import "fmt"

// Key prefixes for different data types
const (
	reportPrefix      = "ctzrep"
	reportBatchPrefix = "ctzrepb"
)

// makeReportKey generates a key for a report by ID.
func makeReportKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", reportPrefix, id))
}

// makeBatchKey generates a composite key for the batch index.
// Format: prefix:batchID:reportID
func makeBatchKey(batchID, reportID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", reportBatchPrefix, batchID, reportID))
}

// makePartialBatchKey generates a partial key for batch scans.
// Format: prefix:batchID:
func makePartialBatchKey(batchID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", reportBatchPrefix, batchID))
}
