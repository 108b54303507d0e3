package entity

import "time"

type Report struct {
	PDF   []byte
	Chart []byte
	Lines []string
}

// RunResult is the outcome of one successful pipeline run.
type RunResult struct {
	RunID       int64
	InputFileID string
	ReportID    string
	Created     bool
	Stats       SummaryStats
	StartedAt   time.Time
	FinishedAt  time.Time
}

// ReportMeta carries the run details printed alongside the summary.
type ReportMeta struct {
	RunID       int64
	SourceName  string
	GeneratedAt time.Time
}
