package entity

type DatasetCount struct {
	Dataset string
	Count   int
}

type SummaryStats struct {
	Count           int
	MostRecent      *LogRow
	MostCommonError string
	ByDataset       []DatasetCount
	Recent          []LogRow
}

// Counts returns the per-dataset counts keyed by dataset name.
func (s SummaryStats) Counts() map[string]int {
	m := make(map[string]int, len(s.ByDataset))
	for _, dc := range s.ByDataset {
		m[dc.Dataset] = dc.Count
	}
	return m
}
