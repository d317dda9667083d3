package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// tableStyles returns review table styles.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Header = lipgloss.NewStyle().Padding(0, 1)
		styles.Cell = lipgloss.NewStyle().Padding(0, 1)
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = lipgloss.NewStyle()
	return styles
}

// reviewColumns sizes the review table for a terminal width.
func reviewColumns(width int) []table.Column {
	questionWidth := width - 30
	if questionWidth < 20 {
		questionWidth = 20
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: questionWidth},
		{Title: "Yours", Width: 6},
		{Title: "Answer", Width: 6},
		{Title: "", Width: 3},
	}
}

// reviewRows converts answered questions into table rows.
func reviewRows(answers []answerRecord) []table.Row {
	rows := make([]table.Row, 0, len(answers))
	for _, answer := range answers {
		mark := "✗"
		if answer.right() {
			mark = "✓"
		}
		rows = append(rows, table.Row{
			questionLabel(answer.Index),
			clip(answer.Text, reviewTextLimit),
			answer.Chosen.String(),
			answer.Correct.String(),
			mark,
		})
	}
	return rows
}
