package inbound

import (
	"time"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/entity"
)

const timeFormat = time.RFC3339

type Failure struct {
	Row     int               `json:"row"`
	Date    string            `json:"date"`
	Dataset string            `json:"dataset"`
	Reason  string            `json:"reason"`
	Details map[string]string `json:"details,omitempty"`
}

type DatasetCount struct {
	Dataset string `json:"dataset"`
	Count   int    `json:"count"`
}

type Summary struct {
	TotalFailures   int            `json:"total_failures"`
	MostRecent      *Failure       `json:"most_recent"`
	MostCommonError string         `json:"most_common_error"`
	ByDataset       []DatasetCount `json:"by_dataset"`
	Recent          []Failure      `json:"recent"`
}

type GenerateResponse struct {
	RunID       int64   `json:"run_id,string"`
	ReportID    string  `json:"report_id"`
	Created     bool    `json:"created"`
	InputFileID string  `json:"input_file_id"`
	Summary     Summary `json:"summary"`
}

func (r GenerateResponse) Message() string {
	if r.Created {
		return "report created"
	}
	return "report updated"
}

type SummaryResponse struct {
	InputFileID string  `json:"input_file_id"`
	InputName   string  `json:"input_name"`
	Summary     Summary `json:"summary"`
}

func (SummaryResponse) Message() string {
	return "summary computed, nothing published"
}

// PreviewResponse is sent as the raw PDF.
type PreviewResponse struct {
	name string
	data []byte
}

func (PreviewResponse) ContentType() string {
	return entity.MimeTypePDF
}

func (r PreviewResponse) FileName() string {
	return r.name
}

func (r PreviewResponse) Bytes() []byte {
	return r.data
}

func toHTTPSummary(stats entity.SummaryStats) Summary {
	out := Summary{
		TotalFailures:   stats.Count,
		MostCommonError: stats.MostCommonError,
		ByDataset:       make([]DatasetCount, 0, len(stats.ByDataset)),
		Recent:          make([]Failure, 0, len(stats.Recent)),
	}

	if stats.MostRecent != nil {
		f := toHTTPFailure(*stats.MostRecent)
		out.MostRecent = &f
	}
	for _, dc := range stats.ByDataset {
		out.ByDataset = append(out.ByDataset, DatasetCount{Dataset: dc.Dataset, Count: dc.Count})
	}
	for _, row := range stats.Recent {
		out.Recent = append(out.Recent, toHTTPFailure(row))
	}

	return out
}

func toHTTPFailure(row entity.LogRow) Failure {
	return Failure{
		Row:     row.Row,
		Date:    row.Timestamp.Format(timeFormat),
		Dataset: row.Dataset,
		Reason:  row.Reason,
		Details: row.Details,
	}
}
