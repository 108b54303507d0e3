// Package render turns summary statistics into the PDF report.
//
// The page carries a title, the summary figures, the recent failures and a bar
// chart of failures per dataset. Output is reproducible: the same statistics and
// metadata always produce the same bytes.
package render
