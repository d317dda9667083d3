package live

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trivia/internal/diag"
	"trivia/internal/question"
	"trivia/internal/quiz"
)

// Model renders the quiz as a Bubble Tea program.
type Model struct {
	opts     Options
	load     LoadFunc
	machine  *quiz.Machine
	loading  bool
	fault    error
	notice   string
	answers  []answerRecord
	keys     keyMap
	help     help.Model
	progress progress.Model
	review   table.Model
}

// Options configures the live UI model.
type Options struct {
	// Source labels the loading screen.
	Source       string
	NoColor      bool
	AdvanceDelay time.Duration
	Log          *diag.Log
	// Recover is handed to the quiz machine for empty-bank recovery.
	Recover func() []question.Question
}

// NewModel constructs a model that loads its bank with load on Init.
func NewModel(load LoadFunc, opts Options) Model {
	bar := progress.New(progress.WithWidth(40), progress.WithoutPercentage())
	if !opts.NoColor {
		bar = progress.New(progress.WithWidth(40), progress.WithoutPercentage(), progress.WithDefaultGradient())
	}
	review := table.New(
		table.WithColumns(reviewColumns(80)),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	review.SetStyles(tableStyles(opts.NoColor))
	return Model{
		opts:     opts,
		load:     load,
		machine:  quiz.New(nil, quiz.Options{AdvanceDelay: opts.AdvanceDelay, Log: opts.Log}),
		loading:  true,
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: bar,
		review:   review,
	}
}

// Init starts loading the question bank.
func (m Model) Init() tea.Cmd {
	return loadBank(m.load)
}

// Screen reports the screen currently shown.
func (m Model) Screen() Screen {
	if m.loading {
		return ScreenLoading
	}
	if m.fault != nil {
		return ScreenFault
	}
	state := m.machine.State()
	switch state.Phase {
	case quiz.PhaseInProgress, quiz.PhaseRevealing:
		return ScreenQuestion
	case quiz.PhaseResult:
		return ScreenResult
	}
	if state.Total == 0 {
		return ScreenGuidance
	}
	return ScreenStart
}

// State exposes the quiz session snapshot.
func (m Model) State() quiz.State {
	return m.machine.State()
}

// Fault returns the ingestion fault, if any.
func (m Model) Fault() error {
	return m.fault
}

// Update consumes load results, key presses and advance timers.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		m.progress.Width = min(max(typed.Width-4, 10), 60)
		m.review.SetColumns(reviewColumns(typed.Width))
		return m, nil
	case LoadedMsg:
		return m.applyLoaded(typed), nil
	case advanceMsg:
		m.machine.Advance(typed.ticket)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(typed, m.keys.Quit) {
			return m, tea.Quit
		}
		return m.handleKey(typed)
	}
	return m, nil
}

// View renders the current screen.
func (m Model) View() string {
	var body string
	switch m.Screen() {
	case ScreenLoading:
		body = renderLoading(m.opts.Source, m.opts.NoColor)
	case ScreenFault:
		body = renderFault(m.fault, m.opts.NoColor)
	case ScreenGuidance:
		body = renderGuidance(m.opts.Log.Entries(), m.notice, m.opts.NoColor)
	case ScreenStart:
		body = renderStart(m.machine.State(), m.notice, m.opts.NoColor)
	case ScreenQuestion:
		current, _ := m.machine.Current()
		body = renderQuestion(m.machine.State(), current, m.progress, m.opts.NoColor)
	case ScreenResult:
		body = renderResult(m.machine.State(), m.review, m.opts.NoColor)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, "", m.help.View(m.keys))
}

// applyLoaded replaces the machine with one over the loaded bank.
func (m Model) applyLoaded(msg LoadedMsg) Model {
	m.loading = false
	if msg.Err != nil {
		m.fault = msg.Err
		return m
	}
	m.machine = quiz.New(msg.Bank.Questions, quiz.Options{
		AdvanceDelay: m.opts.AdvanceDelay,
		Recover:      m.opts.Recover,
		Log:          m.opts.Log,
	})
	return m
}

// handleKey routes a key press according to the current screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Screen() {
	case ScreenGuidance, ScreenStart:
		if !key.Matches(msg, m.keys.Confirm) {
			return m, nil
		}
		if err := m.machine.Start(); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.notice = ""
		m.answers = nil
		m.review.SetRows(nil)
	case ScreenQuestion:
		if key.Matches(msg, m.keys.Back) {
			if err := m.machine.Abandon(); err == nil {
				m.answers = nil
				m.review.SetRows(nil)
			}
			return m, nil
		}
		if index, ok := m.keys.option(msg); ok {
			return m.selectOption(index)
		}
	case ScreenResult:
		if key.Matches(msg, m.keys.Confirm) {
			if err := m.machine.Acknowledge(); err == nil {
				m.answers = nil
				m.review.SetRows(nil)
			}
		}
	}
	return m, nil
}

// selectOption locks in an answer and schedules the advance.
func (m Model) selectOption(index int) (tea.Model, tea.Cmd) {
	current, ok := m.machine.Current()
	if !ok {
		return m, nil
	}
	ticket, err := m.machine.Select(index)
	if err != nil {
		return m, nil
	}
	chosen, _ := question.LetterAt(index)
	m.answers = append(m.answers, answerRecord{
		Index:   m.machine.State().Index,
		Text:    current.Text,
		Chosen:  chosen,
		Correct: current.Correct,
	})
	m.review.SetRows(reviewRows(m.answers))
	m.review.SetHeight(len(m.answers) + 1)
	return m, advanceAfter(ticket)
}
