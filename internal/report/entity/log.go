package entity

import "time"

// LogRow is one failed query taken from the input sheet.
type LogRow struct {
	// Row is the 1-based sheet row the entry was read from.
	Row       int
	Timestamp time.Time
	Dataset   string
	Reason    string
	// Details keeps every non-schema column by its header name.
	Details map[string]string
}

// LogTable is the parsed sheet in input order.
type LogTable struct {
	Headers []string
	Rows    []LogRow
}

func (t LogTable) Len() int {
	return len(t.Rows)
}
