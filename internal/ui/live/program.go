package live

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives the model until the user quits and returns the final model.
func Run(ctx context.Context, in io.Reader, out io.Writer, model Model) (Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return model, fmt.Errorf("live ui: %w", err)
	}
	if typed, ok := final.(Model); ok {
		return typed, nil
	}
	return model, nil
}
