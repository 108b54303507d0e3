package usecase

import "github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/entity"

// Options select the files a run reads and writes.
type Options struct {
	FolderID   string
	InputName  string
	OutputName string
	// Sheet is the worksheet to read; empty means the first sheet.
	Sheet string
	// RecentLimit is K, the number of most recent rows kept in the summary.
	RecentLimit int
}

type SummaryResult struct {
	InputFile entity.RemoteFile
	Stats     entity.SummaryStats
}

type PreviewResult struct {
	RunID    int64
	FileName string
	Report   entity.Report
}
