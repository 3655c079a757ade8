// Package report renders measured metrics into a markdown report.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/reillywatson/issuetracker/internal/metrics"
)

// Summary bundles everything one report covers: per-item measurements,
// their aggregate statistics, and item counts.
type Summary struct {
	Results       []metrics.IssueMetrics
	FirstResponse *metrics.Stats
	TimeToClose   *metrics.Stats
	TimeToAnswer  *metrics.Stats
	NumOpen       int
	NumClosed     int
}

// WriteMarkdown renders a summary as a markdown report with a statistics
// table and a per-item table. Absent statistics render as "No data" and
// unmeasured items as "None" so empty categories don't fail the report.
func WriteMarkdown(w io.Writer, title string, s *Summary) error {
	if _, err := fmt.Fprintf(w, "# %s\n\n", title); err != nil {
		return err
	}

	fmt.Fprintf(w, "| Metric | Average | Median | 90th percentile |\n")
	fmt.Fprintf(w, "| --- | --- | --- | --- |\n")
	writeStatsRow(w, "Time to first response", s.FirstResponse)
	writeStatsRow(w, "Time to close", s.TimeToClose)
	writeStatsRow(w, "Time to answer", s.TimeToAnswer)

	fmt.Fprintf(w, "\nItems open: %d, items closed: %d\n\n", s.NumOpen, s.NumClosed)

	fmt.Fprintf(w, "| Title | Author | Time to first response | Time to close | Time to answer |\n")
	fmt.Fprintf(w, "| --- | --- | --- | --- | --- |\n")
	for _, item := range s.Results {
		fmt.Fprintf(w, "| [%s](%s) | %s | %s | %s | %s |\n",
			item.Title, item.URL, item.Author,
			FormatDuration(item.TimeToFirstResponse),
			FormatDuration(item.TimeToClose),
			FormatDuration(item.TimeToAnswer))
	}

	return nil
}

func writeStatsRow(w io.Writer, name string, stats *metrics.Stats) {
	if stats == nil {
		fmt.Fprintf(w, "| %s | No data | No data | No data |\n", name)
		return
	}
	fmt.Fprintf(w, "| %s | %s | %s | %s |\n", name,
		formatKnownDuration(stats.Average),
		formatKnownDuration(stats.Median),
		formatKnownDuration(stats.P90))
}

// FormatDuration renders an optional duration as days/hours/minutes, or
// "None" when the metric could not be measured.
func FormatDuration(d *time.Duration) string {
	if d == nil {
		return "None"
	}
	return formatKnownDuration(*d)
}

func formatKnownDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	days := d / (24 * time.Hour)
	hours := (d % (24 * time.Hour)) / time.Hour
	minutes := (d % time.Hour) / time.Minute

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
