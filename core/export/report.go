// ABOUTME: Compact one-line-per-row text report for terminal output

package export

import (
	"fmt"
	"io"
	"strings"

	"opencosts-api/core/domain"
)

const reportNameWidth = 60

// FormatReport writes a summary line followed by one line per provider row.
func FormatReport(w io.Writer, snapshot *domain.Snapshot) error {
	if _, err := fmt.Fprintf(w, "Found %d matching models; emitting %d provider rows.\n\n",
		len(snapshot.Models), len(snapshot.Rows)); err != nil {
		return err
	}

	for _, row := range snapshot.Rows {
		_, err := fmt.Fprintf(w, "%s | %12s | ctx=%s | in=%s | out=%s | lat=%s | tps=%s | %s\n",
			shorten(row.ModelName, reportNameWidth),
			row.Provider,
			orNone(formatInt(row.ContextLength)),
			orNone(formatString(row.PriceInputToken)),
			orNone(formatString(row.PriceOutputToken)),
			orNone(formatFloat(row.Latency)),
			orNone(formatFloat(row.Throughput)),
			row.ModelURL,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// shorten collapses whitespace and truncates to width runes with a "..." suffix
func shorten(s string, width int) string {
	collapsed := strings.Join(strings.Fields(s), " ")
	runes := []rune(collapsed)
	if len(runes) <= width {
		return collapsed
	}
	return strings.TrimSpace(string(runes[:width-3])) + "..."
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
