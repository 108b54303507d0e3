package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/entity"
)

const (
	chartTitle  = "Failures by Dataset"
	chartWidth  = 600
	chartHeight = 300
	maxBarWidth = 60
	yTickCount  = 5
)

// Chart draws the per-dataset counts as a PNG bar chart. It returns nil when
// there is nothing to plot.
func Chart(counts []entity.DatasetCount, maxBars int) ([]byte, error) {
	if maxBars > 0 && len(counts) > maxBars {
		counts = counts[:maxBars]
	}
	if len(counts) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(counts))
	peak := 0
	for _, dc := range counts {
		bars = append(bars, chart.Value{Label: dc.Dataset, Value: float64(dc.Count)})
		peak = max(peak, dc.Count)
	}

	ticks, top := countTicks(peak)

	graph := chart.BarChart{
		Title:      chartTitle,
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   barWidth(len(bars)),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(top)},
			Ticks: ticks,
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	return buf.Bytes(), nil
}

func barWidth(n int) int {
	w := (chartWidth - 120) / (2 * n)
	return max(4, min(maxBarWidth, w))
}

// countTicks picks whole-number ticks from zero up to at least peak.
func countTicks(peak int) ([]chart.Tick, int) {
	step := max(1, (peak+yTickCount-1)/yTickCount)
	top := ((peak + step - 1) / step) * step

	ticks := make([]chart.Tick, 0, top/step+1)
	for v := 0; v <= top; v += step {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}

	return ticks, top
}
