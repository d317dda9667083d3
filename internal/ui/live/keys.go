package live

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the live UI bindings.
type keyMap struct {
	Answers [4]key.Binding
	Answer  key.Binding
	Confirm key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Answers: [4]key.Binding{
			key.NewBinding(key.WithKeys("a", "A", "1")),
			key.NewBinding(key.WithKeys("b", "B", "2")),
			key.NewBinding(key.WithKeys("c", "C", "3")),
			key.NewBinding(key.WithKeys("d", "D", "4")),
		},
		Answer:  key.NewBinding(key.WithKeys("a", "b", "c", "d"), key.WithHelp("a-d/1-4", "answer")),
		Confirm: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "continue")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to start")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// option maps a key press to an option index.
func (k keyMap) option(msg tea.KeyMsg) (int, bool) {
	for index, binding := range k.Answers {
		if key.Matches(msg, binding) {
			return index, true
		}
	}
	return 0, false
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Answer, k.Confirm, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
