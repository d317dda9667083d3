package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"trivia/internal/ingest"
	"trivia/internal/question"
	"trivia/internal/quiz"
)

const (
	colorTitle   = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("242")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
	colorWarn    = lipgloss.Color("214")
)

// renderLoading renders the loading screen.
func renderLoading(source string, noColor bool) string {
	line := "Loading questions"
	if source != "" {
		line += " from " + source
	}
	return stylize(line+"...", noColor, colorMuted)
}

// renderFault renders the fixed error banner with the fault detail.
func renderFault(fault error, noColor bool) string {
	banner := stylizeBold("Something went wrong while loading the questions.", noColor, colorWrong)
	lines := []string{banner}
	if fault != nil {
		lines = append(lines, "", fault.Error())
	}
	lines = append(lines, "", stylize("Fix the problem and restart the quiz.", noColor, colorMuted))
	return strings.Join(lines, "\n")
}

// renderGuidance renders remediation steps and the diagnostic log.
func renderGuidance(entries []string, notice string, noColor bool) string {
	lines := []string{stylizeBold("No questions available", noColor, colorWarn), ""}
	for i, step := range ingest.RemediationSteps {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, step))
	}
	if len(entries) > 0 {
		lines = append(lines, "", stylize("Diagnostics:", noColor, colorTitle))
		for _, entry := range entries {
			lines = append(lines, "  "+entry)
		}
	}
	if notice != "" {
		lines = append(lines, "", stylize(notice, noColor, colorWarn))
	}
	return strings.Join(lines, "\n")
}

// renderStart renders the start screen.
func renderStart(state quiz.State, notice string, noColor bool) string {
	lines := []string{
		stylizeBold("Trivia", noColor, colorTitle),
		"",
		fmt.Sprintf("%d questions loaded.", state.Total),
		"Press enter to start.",
	}
	if notice != "" {
		lines = append(lines, "", stylize(notice, noColor, colorWarn))
	}
	return strings.Join(lines, "\n")
}

// renderQuestion renders the current question and, while revealing, the verdict.
func renderQuestion(state quiz.State, current question.Question, bar progress.Model, noColor bool) string {
	header := fmt.Sprintf("Question %d/%d | Score %d", state.Index+1, state.Total, state.Score)
	ratio := 0.0
	if state.Total > 0 {
		ratio = float64(state.Index) / float64(state.Total)
	}
	lines := []string{
		stylize(header, noColor, colorTitle),
		bar.ViewAs(ratio),
		"",
		stylizeBold(current.Text, noColor, lipgloss.Color("252")),
		"",
	}
	revealing := state.Phase == quiz.PhaseRevealing
	for index, option := range current.Options {
		lines = append(lines, renderOption(index, option, current, state.Selected, revealing, noColor))
	}
	if revealing {
		verdict := stylize("Wrong! The answer was "+current.Correct.String()+".", noColor, colorWrong)
		if current.IsCorrect(state.Selected) {
			verdict = stylize("Correct!", noColor, colorCorrect)
		}
		lines = append(lines, "", verdict)
	}
	return strings.Join(lines, "\n")
}

// renderOption renders one option line with reveal markers.
func renderOption(index int, text string, current question.Question, selected int, revealing, noColor bool) string {
	letter, _ := question.LetterAt(index)
	line := "  " + letter.String() + ") " + text
	if !revealing {
		return line
	}
	switch {
	case current.IsCorrect(index):
		return stylize("✓ "+line[2:], noColor, colorCorrect)
	case index == selected:
		return stylize("✗ "+line[2:], noColor, colorWrong)
	default:
		return stylize(line, noColor, colorMuted)
	}
}

// renderResult renders the score, tier message and answer review.
func renderResult(state quiz.State, review table.Model, noColor bool) string {
	score := fmt.Sprintf("Score %d/%d (%d%%)", state.Score, state.Total, state.Percent())
	lines := []string{
		stylizeBold("Quiz complete", noColor, colorTitle),
		"",
		score,
		stylizeBold(state.Tier.Message(), noColor, tierColor(state.Tier)),
		"",
		review.View(),
		"",
		"Press enter to return to the start screen.",
	}
	return strings.Join(lines, "\n")
}

// tierColor maps celebration tiers to colors.
func tierColor(tier quiz.Tier) lipgloss.Color {
	switch tier {
	case quiz.TierTop:
		return colorCorrect
	case quiz.TierMid:
		return colorWarn
	default:
		return colorWrong
	}
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// stylizeBold applies optional bold color styling.
func stylizeBold(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}
