package entity

const (
	MimeTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeTypePDF  = "application/pdf"
)

const (
	// UnknownDataset labels rows whose dataset cell is blank.
	UnknownDataset = "(unknown)"
	// NoReason is reported as the most common error when no row carries a reason.
	NoReason = "N/A"
)

// Required header names of the failed query log sheet, matched case-insensitively.
const (
	ColumnDate    = "date"
	ColumnDataset = "dataset"
	ColumnReason  = "reason"
)
