package ingestion

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/AlthosKal/ComunnityData/core"
)

// Expected positional columns of an input row. Name, gender, and
// internet-access are read but discarded.
const (
	colID = iota
	colName
	colAge
	colGender
	colCity
	colComment
	colCategory
	colUrgency
	colDate
	colInternetAccess
	colGovernmentAttention
	colRuralFlag
)

// Accepted input date layouts, tried in order. The first successful parse
// wins, so ISO dates are never misread as day-first.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
}

var (
	repeatedSymbols  = regexp.MustCompile(`[#@*_=+\-]{2,}`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
	periodRuns       = regexp.MustCompile(`\.{2,}`)
	exclamationRuns  = regexp.MustCompile(`!{2,}`)
	questionMarkRuns = regexp.MustCompile(`\?{2,}`)
)

// ParseReports parses a CSV stream into normalized reports for one batch.
// The first line is treated as a header and discarded. Rows that fail to
// parse are skipped and counted, never fatal; only a stream read error aborts
// the parse. An empty stream (no header) yields an empty result with no
// error.
func ParseReports(r io.Reader, batchID string) ([]*core.Report, int, error) {
	logger := slog.Default().With("component", "normalizer", "batchId", batchID)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, 0, fmt.Errorf("reading CSV header: %w", err)
		}
		logger.Warn("CSV stream is empty")
		return nil, 0, nil
	}

	var reports []*core.Report
	skipped := 0
	batchIndex := 0

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			skipped++
			continue
		}

		fields, err := splitLine(line)
		if err != nil {
			logger.Error("skipping malformed row", "index", batchIndex+skipped, "err", err)
			skipped++
			continue
		}

		reports = append(reports, normalizeRow(fields, line, batchID, batchIndex))
		batchIndex++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading CSV stream: %w", err)
	}

	logger.Info("normalized reports from CSV", "reports", len(reports), "skipped", skipped)
	return reports, skipped, nil
}

// splitLine splits one CSV row on unescaped commas: commas inside quoted
// fields are not delimiters. Surrounding quotes are stripped and doubled
// quotes inside quoted fields are unescaped.
func splitLine(line string) ([]string, error) {
	var fields []string
	var field strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				// Escaped quote inside a quoted field
				field.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(ch)
		}
	}
	if inQuotes {
		return nil, ErrUnbalancedQuotes
	}
	fields = append(fields, strings.TrimSpace(field.String()))
	return fields, nil
}

// normalizeRow converts raw row fields into a typed report with status
// Pending. Unusable field values become absent, never an error.
func normalizeRow(fields []string, rawLine, batchID string, batchIndex int) *core.Report {
	rawComment := getField(fields, colComment)
	rawCategory := getField(fields, colCategory)

	id := getField(fields, colID)
	if id == "" {
		// Content-derived fallback, stable across re-imports of the same row
		id = core.IDFromContent(rawLine)
	}

	return &core.Report{
		Id:                  id,
		Age:                 normalizeAge(getField(fields, colAge)),
		City:                normalizeCity(getField(fields, colCity)),
		Comment:             normalizeComment(rawComment),
		OriginalComment:     rawComment,
		Category:            core.ParseCategory(rawCategory),
		OriginalCategory:    rawCategory,
		Urgency:             core.ParseUrgency(getField(fields, colUrgency)),
		ReportDate:          normalizeDate(getField(fields, colDate)),
		GovernmentAttention: parseBool(getField(fields, colGovernmentAttention)),
		Zone:                normalizeZone(getField(fields, colRuralFlag)),
		Status:              core.StatusPending,
		BatchId:             batchID,
		BatchIndex:          batchIndex,
	}
}

func getField(fields []string, index int) string {
	if index < len(fields) {
		return fields[index]
	}
	return ""
}

// normalizeAge parses an age in [0,120]. Non-numeric, out-of-range, and
// empty values yield nil.
func normalizeAge(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	age, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("unparseable age", "value", value)
		return nil
	}
	if age < 0 || age > 120 {
		slog.Warn("age out of range", "value", age)
		return nil
	}
	return &age
}

// normalizeCity trims and capitalizes each whitespace-delimited word:
// "santa marta" -> "Santa Marta".
func normalizeCity(value string) string {
	words := strings.Fields(value)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// normalizeComment cleans a comment: trims, strips runs of 2+ decoration
// symbols, collapses whitespace runs, and collapses repeated terminal
// punctuation. Idempotent.
func normalizeComment(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	value = repeatedSymbols.ReplaceAllString(value, "")
	value = whitespaceRuns.ReplaceAllString(value, " ")
	value = periodRuns.ReplaceAllString(value, ".")
	value = exclamationRuns.ReplaceAllString(value, "!")
	value = questionMarkRuns.ReplaceAllString(value, "?")
	return strings.TrimSpace(value)
}

// normalizeDate tries the supported layouts in order. No match yields the
// zero time, never an error.
func normalizeDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	slog.Warn("unparseable report date", "value", value)
	return time.Time{}
}

// parseBool maps boolean-like text to a tri-state value: nil when the text
// is empty or unrecognized.
func parseBool(value string) *bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "sí", "si", "yes", "y":
		v := true
		return &v
	case "0", "false", "no", "n":
		v := false
		return &v
	default:
		return nil
	}
}

// normalizeZone derives the zone from the rural-flag column: boolean mapping
// first (true means rural), then direct string matching as a fallback.
func normalizeZone(value string) core.Zone {
	if value = strings.TrimSpace(value); value == "" {
		return core.ZoneUnspecified
	}
	if isRural := parseBool(value); isRural != nil {
		return core.ZoneFromRural(*isRural)
	}
	return core.ParseZone(value)
}
