package tableview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// pagePosition shows how far through the result pages the view is.
type pagePosition struct {
	bar progress.Model
}

func newPagePosition(width int) pagePosition {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = width
	return pagePosition{bar: bar}
}

// View renders the bar for page of total. Nothing is drawn for a single page.
func (p pagePosition) View(page, total int) string {
	if total < 2 {
		return ""
	}
	ratio := min(1.0, float64(page)/float64(total))
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", page, total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}
