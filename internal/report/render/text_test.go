package render

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/entity"
)

func TestSummaryLines(t *testing.T) {
	latest := entity.LogRow{
		Timestamp: time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC),
		Dataset:   "A",
		Reason:    "timeout",
	}
	stats := entity.SummaryStats{
		Count:           3,
		MostRecent:      &latest,
		MostCommonError: "timeout",
		ByDataset: []entity.DatasetCount{
			{Dataset: "A", Count: 2},
			{Dataset: "B", Count: 1},
		},
		Recent: []entity.LogRow{
			latest,
			{Timestamp: time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC), Dataset: "", Reason: strings.Repeat("x", 70)},
		},
	}

	want := []string{
		"Failed Query Log Report",
		"Total failed queries: 3",
		"Most recent failure: 2025-01-03 09:00:00",
		"",
		"Failures by dataset (top 1):",
		"  - A: 2",
		"",
		"Most common error: timeout",
		"",
		"Recent failures (top 2):",
		"  - Date: 2025-01-03 09:00:00, Dataset: A, Reason: timeout",
		"  - Date: 2025-01-02 09:00:00, Dataset: (unknown), Reason: " + strings.Repeat("x", 60) + "...",
	}

	if diff := cmp.Diff(want, SummaryLines(stats, 1)); diff != "" {
		t.Fatalf("unexpected lines (-want +got):\n%s", diff)
	}
}

func TestSummaryLinesEmpty(t *testing.T) {
	lines := SummaryLines(entity.SummaryStats{MostCommonError: entity.NoReason}, 5)

	if lines[1] != "Total failed queries: 0" {
		t.Fatalf("unexpected total line %q", lines[1])
	}
	if lines[2] != "Most recent failure: N/A" {
		t.Fatalf("unexpected most recent line %q", lines[2])
	}
}

func TestLimitWords(t *testing.T) {
	lines := []string{"one two three", "four five six", "seven"}

	if diff := cmp.Diff(lines, LimitWords(lines, 7)); diff != "" {
		t.Fatalf("within budget must be untouched (-want +got):\n%s", diff)
	}

	want := []string{"one two three", "four..."}
	if diff := cmp.Diff(want, LimitWords(lines, 4)); diff != "" {
		t.Fatalf("unexpected cut (-want +got):\n%s", diff)
	}

	want = []string{"one two three", "..."}
	if diff := cmp.Diff(want, LimitWords(lines, 3)); diff != "" {
		t.Fatalf("unexpected cut at line boundary (-want +got):\n%s", diff)
	}
}

func TestLimitWordsBudgetHolds(t *testing.T) {
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, "  - Date: 2025-01-02 09:00:00, Dataset: A, Reason: timeout")
	}

	got := LimitWords(lines, 300)
	if n := WordCount(got); n > 300 {
		t.Fatalf("expected at most 300 words, got %d", n)
	}
	if last := got[len(got)-1]; !strings.HasSuffix(last, "...") {
		t.Fatalf("expected truncation marker, got %q", last)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 60); got != "short" {
		t.Fatalf("unexpected %q", got)
	}
	if got := truncate("ééééé", 3); got != "ééé..." {
		t.Fatalf("expected rune-safe cut, got %q", got)
	}
}
