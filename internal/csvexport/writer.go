package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"deedcheck/internal/validator"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (9 columns).
var columns = []string{
	"Rule Key",
	"Rule Name",
	"Rule Type",
	"Severity",
	"Passed",
	"Field Path",
	"Expected Value",
	"Actual Value",
	"Message",
}

// Writer wraps csv.Writer for exporting deed validation results as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteResults writes one row per rule result.
func (w *Writer) WriteResults(results []validator.ValidationResultItem) error {
	for i := range results {
		if err := w.csv.Write(resultToRow(&results[i])); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport writes the header followed by every result of the report and flushes.
func (w *Writer) WriteReport(report *validator.Report) error {
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteResults(report.Results); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func resultToRow(r *validator.ValidationResultItem) []string {
	return []string{
		r.RuleKey,
		r.RuleName,
		string(r.RuleType),
		string(r.Severity),
		formatBool(r.Passed),
		r.FieldPath,
		r.ExpectedValue,
		r.ActualValue,
		r.Message,
	}
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a document type for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "deed"
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition header.
// Format: {sanitized_document_type}_validation_{YYYY-MM-DD}.csv
func BuildFilename(documentType string, evaluatedAt time.Time) string {
	return fmt.Sprintf("%s_validation_%s.csv", SanitizeFilename(documentType), evaluatedAt.Format("2006-01-02"))
}
