package live

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"trivia/internal/ingest"
	"trivia/internal/quiz"
)

// LoadFunc produces the question bank. It runs off the UI goroutine.
type LoadFunc func() (ingest.Bank, error)

// LoadedMsg delivers the ingestion outcome.
type LoadedMsg struct {
	Bank ingest.Bank
	Err  error
}

// advanceMsg fires when a revealed answer's delay has elapsed.
type advanceMsg struct {
	ticket quiz.Ticket
}

// loadBank runs the loader as a Bubble Tea command.
func loadBank(load LoadFunc) tea.Cmd {
	return func() tea.Msg {
		if load == nil {
			return LoadedMsg{}
		}
		bank, err := load()
		return LoadedMsg{Bank: bank, Err: err}
	}
}

// advanceAfter schedules the one-shot advance for ticket.
func advanceAfter(ticket quiz.Ticket) tea.Cmd {
	return tea.Tick(ticket.Delay, func(time.Time) tea.Msg {
		return advanceMsg{ticket: ticket}
	})
}
