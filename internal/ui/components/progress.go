package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/synthgen/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with a "done/total" counter.
type ProgressBar struct {
	Done  int
	Total int
	Width int
}

// Percent returns the completed fraction in [0, 1]. An empty job is complete.
func (p ProgressBar) Percent() float64 {
	if p.Total <= 0 {
		return 1
	}
	return min(max(float64(p.Done)/float64(p.Total), 0), 1)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	counter := fmt.Sprintf("  %d/%d  %3d%%", p.Done, p.Total, int(p.Percent()*100))

	barWidth := max(p.Width-len(counter), 4)
	filled := min(int(float64(barWidth)*p.Percent()), barWidth)

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled))

	return filledStr + emptyStr + lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)
}
