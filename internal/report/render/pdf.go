package render

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/go-pdf/fpdf"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/entity"
)

const (
	pageBottom  = 280.0
	marginLeft  = 10.0
	contentW    = 190.0
	lineHeight  = 6.0
	chartImage  = "chart"
	minChartH   = 30.0
	defaultBars = 10
)

type Options struct {
	// DatasetLimit caps the datasets listed in the text.
	DatasetLimit int
	// WordBudget caps the words of the text block; zero disables the cap.
	WordBudget int
	// MaxBars caps the bars drawn in the chart.
	MaxBars int
}

// Renderer builds the single page PDF report.
type Renderer struct {
	opts Options
}

func New(opts Options) *Renderer {
	if opts.MaxBars <= 0 {
		opts.MaxBars = defaultBars
	}
	return &Renderer{opts: opts}
}

func (r *Renderer) Render(stats entity.SummaryStats, meta entity.ReportMeta) (entity.Report, error) {
	lines := LimitWords(SummaryLines(stats, r.opts.DatasetLimit), r.opts.WordBudget)

	png, err := Chart(stats.ByDataset, r.opts.MaxBars)
	if err != nil {
		return entity.Report{}, err
	}

	doc, fit, err := document(lines, png, meta)
	if err != nil {
		return entity.Report{}, err
	}
	if fit.droppedLines > 0 {
		slog.Warn("report text does not fit on the page, lines dropped",
			"run_id", meta.RunID, "dropped", fit.droppedLines, "lines", len(lines))
	}
	if len(png) > 0 && !fit.chartPlaced {
		slog.Warn("report chart does not fit on the page, chart dropped", "run_id", meta.RunID)
	}

	return entity.Report{PDF: doc, Chart: png, Lines: lines}, nil
}

// layout records what document had to leave off the page.
type layout struct {
	droppedLines int
	chartPlaced  bool
}

func document(lines []string, png []byte, meta entity.ReportMeta) ([]byte, layout, error) {
	var fit layout

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(reportTitle, false)
	if !meta.GeneratedAt.IsZero() {
		pdf.SetCreationDate(meta.GeneratedAt)
		pdf.SetModificationDate(meta.GeneratedAt)
	}

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footer := fmt.Sprintf("Run %d", meta.RunID)
		if meta.SourceName != "" {
			footer += " from " + meta.SourceName
		}
		if !meta.GeneratedAt.IsZero() {
			footer += ", generated " + meta.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC")
		}
		pdf.CellFormat(0, 10, tr(footer), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	for i, line := range lines {
		if i == 0 {
			pdf.SetFont("Helvetica", "B", 16)
			pdf.CellFormat(0, 10, tr(line), "", 1, "L", false, 0, "")
			pdf.Ln(2)
			continue
		}
		if line == "" {
			pdf.Ln(lineHeight / 2)
			continue
		}
		if pdf.GetY()+lineHeight > pageBottom-15 {
			fit.droppedLines = len(lines) - i
			break
		}
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, lineHeight, tr(line), "", "L", false)
	}

	if len(png) > 0 {
		fit.chartPlaced = placeChart(pdf, png)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fit, fmt.Errorf("write pdf: %w", err)
	}

	return buf.Bytes(), fit, nil
}

// placeChart draws the chart below the text, shrinking it to the space left on
// the page. A 600x300 chart keeps a 2:1 ratio. It reports whether the chart was drawn.
func placeChart(pdf *fpdf.Fpdf, png []byte) bool {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(chartImage, opts, bytes.NewReader(png))

	y := pdf.GetY() + 4
	height := min(contentW/2, pageBottom-15-y)
	if height < minChartH {
		return false
	}

	pdf.ImageOptions(chartImage, marginLeft, y, height*2, height, false, opts, 0, "")
	return true
}
