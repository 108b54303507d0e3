package usecase

import (
	"slices"
	"sort"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/entity"
)

// Summarize computes the report statistics for table, keeping the k most recent rows.
//
// Ties are broken by first appearance in the sheet, so the result depends only on
// the table contents.
func Summarize(table entity.LogTable, k int) entity.SummaryStats {
	if k < 0 {
		k = 0
	}

	stats := entity.SummaryStats{
		Count:           len(table.Rows),
		MostCommonError: entity.NoReason,
		ByDataset:       countDatasets(table.Rows),
	}

	if len(table.Rows) == 0 {
		stats.Recent = []entity.LogRow{}
		return stats
	}

	latest := 0
	for i, row := range table.Rows {
		if row.Timestamp.After(table.Rows[latest].Timestamp) {
			latest = i
		}
	}
	mostRecent := table.Rows[latest]
	stats.MostRecent = &mostRecent

	if reason, ok := mostCommonReason(table.Rows); ok {
		stats.MostCommonError = reason
	}

	recent := slices.Clone(table.Rows)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Timestamp.After(recent[j].Timestamp)
	})
	stats.Recent = recent[:min(k, len(recent))]

	return stats
}

func countDatasets(rows []entity.LogRow) []entity.DatasetCount {
	out := []entity.DatasetCount{}
	index := make(map[string]int)

	for _, row := range rows {
		name := row.Dataset
		if name == "" {
			name = entity.UnknownDataset
		}

		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, entity.DatasetCount{Dataset: name})
		}
		out[i].Count++
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	return out
}

func mostCommonReason(rows []entity.LogRow) (string, bool) {
	var order []string
	counts := make(map[string]int)

	for _, row := range rows {
		if row.Reason == "" {
			continue
		}
		if _, ok := counts[row.Reason]; !ok {
			order = append(order, row.Reason)
		}
		counts[row.Reason]++
	}

	if len(order) == 0 {
		return "", false
	}

	best := order[0]
	for _, reason := range order[1:] {
		if counts[reason] > counts[best] {
			best = reason
		}
	}

	return best, true
}
