package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/pgrowth/tppgUtil/internal/tui/styles"
)

// chartHeight is the fixed height for the records-per-day plot.
const chartHeight = 5

// DayChart renders a single-series plot of records created per day, with
// the covered date span and totals underneath. Returns a muted
// placeholder when there is no data.
func DayChart(label string, counts []float64, firstDay, lastDay string, width int) string {
	if len(counts) == 0 {
		return styles.MutedText.Render(label + ": no data")
	}

	// Reserve space for Y-axis labels (number + " ┤" ≈ 9 chars).
	plotWidth := width - 9
	if plotWidth < 10 {
		plotWidth = 10
	}

	chart := asciigraph.Plot(counts,
		asciigraph.Height(chartHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.DodgerBlue),
		asciigraph.LabelColor(asciigraph.Default),
	)

	var total, peak float64
	for _, v := range counts {
		total += v
		if v > peak {
			peak = v
		}
	}

	summary := styles.MutedText.Render(
		fmt.Sprintf("  %s to %s  total: %.0f  peak: %.0f/day", firstDay, lastDay, total, peak),
	)

	header := styles.Label.Render(label)
	return lipgloss.JoinVertical(lipgloss.Left, header, chart, summary)
}
