package quiz

import (
	"time"

	"github.com/google/uuid"

	"trivia/internal/diag"
	"trivia/internal/question"
)

// Options configures a Machine.
type Options struct {
	// AdvanceDelay is carried on every Ticket; defaults to DefaultAdvanceDelay.
	AdvanceDelay time.Duration
	// Recover is consulted on Start when the bank is empty.
	Recover func() []question.Question
	// Log receives session diagnostics; may be nil.
	Log *diag.Log
	// NewSessionID defaults to random UUIDs.
	NewSessionID func() string
}

// Machine drives a quiz session over a read-only question bank. It is not
// safe for concurrent use; events are expected to arrive one at a time.
type Machine struct {
	bank  []question.Question
	opts  Options
	state State

	pending    uint64
	lastTicket uint64
}

// New creates a machine in PhaseStart.
func New(bank []question.Question, opts Options) *Machine {
	if opts.AdvanceDelay <= 0 {
		opts.AdvanceDelay = DefaultAdvanceDelay
	}
	if opts.NewSessionID == nil {
		opts.NewSessionID = uuid.NewString
	}
	m := &Machine{bank: cloneBank(bank), opts: opts}
	m.reset()
	return m
}

// State returns a snapshot of the session.
func (m *Machine) State() State {
	return m.state
}

// Bank returns a copy of the question bank.
func (m *Machine) Bank() []question.Question {
	return cloneBank(m.bank)
}

// Current returns the question being asked or revealed.
func (m *Machine) Current() (question.Question, bool) {
	switch m.state.Phase {
	case PhaseInProgress, PhaseRevealing:
	default:
		return question.Question{}, false
	}
	if m.state.Index < 0 || m.state.Index >= len(m.bank) {
		return question.Question{}, false
	}
	return m.bank[m.state.Index], true
}

// Start begins a new session from PhaseStart. When the bank is empty the
// Recover hook gets one chance to supply questions; if it cannot, the machine
// stays in PhaseStart and ErrEmptyBank is returned.
func (m *Machine) Start() error {
	if m.state.Phase != PhaseStart {
		return ErrWrongPhase
	}
	if len(m.bank) == 0 && m.opts.Recover != nil {
		m.bank = cloneBank(m.opts.Recover())
	}
	if len(m.bank) == 0 {
		return ErrEmptyBank
	}
	m.reset()
	m.state.SessionID = m.opts.NewSessionID()
	m.state.Phase = PhaseInProgress
	m.opts.Log.Appendf("quiz started (session %s)", m.state.SessionID)
	return nil
}

// Select locks in option index for the current question and scores it. The
// returned ticket must be passed to Advance once its delay has elapsed.
func (m *Machine) Select(index int) (Ticket, error) {
	if len(m.bank) == 0 {
		return Ticket{}, ErrEmptyBank
	}
	switch m.state.Phase {
	case PhaseInProgress:
	case PhaseRevealing:
		return Ticket{}, ErrAlreadyAnswered
	default:
		return Ticket{}, ErrWrongPhase
	}
	if _, ok := question.LetterAt(index); !ok {
		return Ticket{}, ErrInvalidOption
	}

	m.state.Selected = index
	m.state.Phase = PhaseRevealing
	if m.bank[m.state.Index].IsCorrect(index) {
		m.state.Score++
	}
	m.lastTicket++
	m.pending = m.lastTicket
	return Ticket{ID: m.pending, Delay: m.opts.AdvanceDelay}, nil
}

// Pending returns the outstanding advance ticket, if any.
func (m *Machine) Pending() (Ticket, bool) {
	if m.pending == 0 {
		return Ticket{}, false
	}
	return Ticket{ID: m.pending, Delay: m.opts.AdvanceDelay}, true
}

// Advance moves past a revealed answer. It reports false and does nothing
// when the ticket is stale.
func (m *Machine) Advance(ticket Ticket) bool {
	if m.pending == 0 || ticket.ID != m.pending || m.state.Phase != PhaseRevealing {
		return false
	}
	m.pending = 0
	m.state.Index++
	m.state.Selected = NoSelection
	if m.state.Index >= len(m.bank) {
		m.state.Index = len(m.bank)
		m.state.Phase = PhaseResult
		m.state.Ratio, m.state.Tier = TierFor(m.state.Score, len(m.bank))
		return true
	}
	m.state.Phase = PhaseInProgress
	return true
}

// Acknowledge returns from PhaseResult to PhaseStart.
func (m *Machine) Acknowledge() error {
	if m.state.Phase != PhaseResult {
		return ErrWrongPhase
	}
	m.reset()
	m.opts.Log.Append("quiz reset")
	return nil
}

// Abandon returns to PhaseStart from an unfinished session, cancelling any
// pending advance.
func (m *Machine) Abandon() error {
	switch m.state.Phase {
	case PhaseInProgress, PhaseRevealing:
	default:
		return ErrWrongPhase
	}
	m.reset()
	m.opts.Log.Append("quiz abandoned")
	return nil
}

// reset restores the initial start configuration and cancels the pending ticket.
func (m *Machine) reset() {
	m.pending = 0
	m.state = State{
		Phase:    PhaseStart,
		Selected: NoSelection,
		Total:    len(m.bank),
	}
}

func cloneBank(bank []question.Question) []question.Question {
	if len(bank) == 0 {
		return nil
	}
	out := make([]question.Question, len(bank))
	copy(out, bank)
	return out
}
