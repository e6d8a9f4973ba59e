package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/MuhamadTAH/psychology-sub002/internal/ui/theme"
)

// BatchProgress is the one-line status shown while a batch runs.
type BatchProgress struct {
	Current int
	Total   int
	Name    string
	Width   int
}

// View renders "Uploading i of n: name" followed by a bar.
func (p BatchProgress) View() string {
	label := theme.Body.Render(fmt.Sprintf("Uploading %d of %d: %s", p.Current, p.Total, p.Name))

	barWidth := p.Width - lipgloss.Width(label) - 2
	if barWidth < 4 {
		barWidth = 4
	}
	filled := 0
	if p.Total > 0 {
		filled = barWidth * p.Current / p.Total
	}
	if filled > barWidth {
		filled = barWidth
	}

	return label + "  " +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
}
