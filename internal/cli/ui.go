package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/vdobler/funnelplot"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorOrange = lipgloss.Color("208") // Orange - low outliers
	colorGreenB = lipgloss.Color("34")  // Dark green - high outliers
	colorDim    = lipgloss.Color("240") // Dim gray - muted text

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleLabel   = lipgloss.NewStyle().Width(16)
	styleNumber  = lipgloss.NewStyle().Width(10).Align(lipgloss.Right)

	styleSide = map[funnelplot.Class]lipgloss.Style{
		funnelplot.Left:  lipgloss.NewStyle().Foreground(colorOrange).Width(6),
		funnelplot.Right: lipgloss.NewStyle().Foreground(colorGreenB).Width(6),
	}
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

// printSummary writes one line per outlier of result to w.
func printSummary(w io.Writer, result *funnelplot.Result) {
	outliers := result.Outliers()
	fmt.Fprintf(w, "%s %d groups, %d outside the %g%% funnel (%s)\n",
		styleSuccess.Render(iconSuccess), len(result.Points), len(outliers), result.Percentage, result.Mode)
	if len(outliers) == 0 {
		return
	}

	fmt.Fprintln(w, "  "+styleTitle.Render(
		styleLabel.Render("group")+styleNumber.Render("size")+styleNumber.Render("value")+"  side   bounds"))
	for _, pt := range outliers {
		label := pt.Label
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(w, "  %s%s%s  %s %s\n",
			styleLabel.Render(label),
			styleNumber.Render(fmt.Sprintf("%d", pt.Size)),
			styleNumber.Render(fmt.Sprintf("%.4g", pt.Value)),
			styleSide[pt.Class].Render(pt.Class.String()),
			styleDim.Render(fmt.Sprintf("%s [%.4g, %.4g]", iconArrow, pt.Lower, pt.Upper)))
	}
}
