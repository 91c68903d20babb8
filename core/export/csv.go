// ABOUTME: CSV export of provider rows with the fixed column order consumers rely on
// ABOUTME: Absent optional values are written as empty cells

package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"opencosts-api/core/domain"
)

// Columns is the fixed CSV header, without the optional creation date column.
var Columns = []string{
	"Model name",
	"Model URL",
	"OpenRouter model ID",
	"Provider",
	"Context length",
	"Price/input token",
	"Price/output token",
	"Latency",
	"Throughput",
}

// CreationDateColumn is appended to Columns when creation dates are exported.
const CreationDateColumn = "Creation date"

type csvOptions struct {
	creationDate bool
}

// CSVOption configures WriteCSV
type CSVOption func(*csvOptions)

// WithCreationDate toggles the trailing creation date column. Enabled by default.
func WithCreationDate(enabled bool) CSVOption {
	return func(o *csvOptions) {
		o.creationDate = enabled
	}
}

// Header returns the header row for the given options
func Header(opts ...CSVOption) []string {
	o := applyOptions(opts)
	header := append([]string(nil), Columns...)
	if o.creationDate {
		header = append(header, CreationDateColumn)
	}
	return header
}

// WriteCSV writes the header and one record per row, in row order.
func WriteCSV(w io.Writer, rows []domain.ProviderRow, opts ...CSVOption) error {
	o := applyOptions(opts)
	writer := csv.NewWriter(w)

	if err := writer.Write(Header(opts...)); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.ModelName,
			row.ModelURL,
			row.ModelID,
			row.Provider,
			formatInt(row.ContextLength),
			formatString(row.PriceInputToken),
			formatString(row.PriceOutputToken),
			formatFloat(row.Latency),
			formatFloat(row.Throughput),
		}
		if o.creationDate {
			record = append(record, formatString(row.CreationDate))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func applyOptions(opts []CSVOption) csvOptions {
	o := csvOptions{creationDate: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
