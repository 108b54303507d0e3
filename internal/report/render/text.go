package render

import (
	"fmt"
	"strings"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/entity"
)

const (
	reportTitle     = "Failed Query Log Report"
	timestampLayout = "2006-01-02 15:04:05"
	reasonWidth     = 60
	ellipsis        = "..."
)

// SummaryLines lays out the report text, listing at most datasetLimit datasets.
func SummaryLines(stats entity.SummaryStats, datasetLimit int) []string {
	mostRecent := entity.NoReason
	if stats.MostRecent != nil {
		mostRecent = stats.MostRecent.Timestamp.Format(timestampLayout)
	}

	datasets := stats.ByDataset
	if datasetLimit >= 0 && len(datasets) > datasetLimit {
		datasets = datasets[:datasetLimit]
	}

	lines := []string{
		reportTitle,
		fmt.Sprintf("Total failed queries: %d", stats.Count),
		fmt.Sprintf("Most recent failure: %s", mostRecent),
		"",
		fmt.Sprintf("Failures by dataset (top %d):", len(datasets)),
	}
	for _, dc := range datasets {
		lines = append(lines, fmt.Sprintf("  - %s: %d", dc.Dataset, dc.Count))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("Most common error: %s", stats.MostCommonError),
		"",
		fmt.Sprintf("Recent failures (top %d):", len(stats.Recent)),
	)
	for _, row := range stats.Recent {
		dataset := row.Dataset
		if dataset == "" {
			dataset = entity.UnknownDataset
		}
		reason := row.Reason
		if reason == "" {
			reason = entity.NoReason
		}
		lines = append(lines, fmt.Sprintf("  - Date: %s, Dataset: %s, Reason: %s",
			row.Timestamp.Format(timestampLayout), dataset, truncate(reason, reasonWidth)))
	}

	return lines
}

// LimitWords keeps lines whole until budget words have been used, cuts the line
// that crosses it and marks the cut with "...". Lines after the cut are dropped.
func LimitWords(lines []string, budget int) []string {
	if budget <= 0 {
		return lines
	}

	out := make([]string, 0, len(lines))
	used := 0
	for _, line := range lines {
		words := strings.Fields(line)
		if used+len(words) <= budget {
			out = append(out, line)
			used += len(words)
			continue
		}

		keep := budget - used
		cut := ellipsis
		if keep > 0 {
			cut = strings.Join(words[:keep], " ") + ellipsis
		}
		out = append(out, cut)
		break
	}

	return out
}

// WordCount counts whitespace separated words across lines.
func WordCount(lines []string) int {
	n := 0
	for _, line := range lines {
		n += len(strings.Fields(line))
	}
	return n
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width]) + ellipsis
}
