package quiz

import (
	"errors"
	"testing"

	"trivia/internal/diag"
	"trivia/internal/question"
)

func sampleBank() []question.Question {
	return []question.Question{
		{Text: "Capital of France?", Options: [4]string{"Berlin", "Paris", "Rome", "Madrid"}, Correct: question.LetterB},
		{Text: "2+2?", Options: [4]string{"3", "4", "5", "22"}, Correct: question.LetterB},
		{Text: "Largest planet?", Options: [4]string{"Jupiter", "Mars", "Venus", "Earth"}, Correct: question.LetterA},
	}
}

func fixedSession() func() string {
	return func() string { return "session-1" }
}

func answer(t *testing.T, m *Machine, index int) {
	t.Helper()
	ticket, err := m.Select(index)
	if err != nil {
		t.Fatalf("select %d: %v", index, err)
	}
	if !m.Advance(ticket) {
		t.Fatalf("expected advance to apply")
	}
}

// TestMachineFullSession verifies scoring across a complete run.
func TestMachineFullSession(t *testing.T) {
	log := diag.New(nil)
	m := New(sampleBank(), Options{Log: log, NewSessionID: fixedSession()})
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	answer(t, m, 1)
	answer(t, m, 0)
	answer(t, m, 0)

	state := m.State()
	if state.Phase != PhaseResult {
		t.Fatalf("expected result phase, got %s", state.Phase)
	}
	if state.Score != 2 || state.Index != 3 {
		t.Fatalf("expected score 2 at index 3, got score %d index %d", state.Score, state.Index)
	}
	if state.Tier != TierMid || state.Percent() != 67 {
		t.Fatalf("expected mid tier at 67%%, got %s at %d%%", state.Tier, state.Percent())
	}
	entries := log.Entries()
	if len(entries) != 1 || entries[0] != "quiz started (session session-1)" {
		t.Fatalf("unexpected log entries: %q", entries)
	}
}

// TestMachineSelectIsIdempotent verifies a revealed question cannot be scored twice.
func TestMachineSelectIsIdempotent(t *testing.T) {
	m := New(sampleBank(), Options{})
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	ticket, err := m.Select(1)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if ticket.Delay != DefaultAdvanceDelay {
		t.Fatalf("expected default delay, got %v", ticket.Delay)
	}
	before := m.State()
	if _, err := m.Select(2); !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("expected already answered, got %v", err)
	}
	if m.State() != before {
		t.Fatalf("expected state unchanged, got %+v", m.State())
	}
	if before.Score != 1 || before.Selected != 1 || before.Phase != PhaseRevealing {
		t.Fatalf("unexpected revealing state: %+v", before)
	}
}

// TestMachineRejectsInvalidEvents verifies out-of-phase and out-of-range events.
func TestMachineRejectsInvalidEvents(t *testing.T) {
	m := New(sampleBank(), Options{})
	if _, err := m.Select(0); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected wrong phase before start, got %v", err)
	}
	if err := m.Acknowledge(); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected wrong phase for acknowledge, got %v", err)
	}
	if err := m.Abandon(); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected wrong phase for abandon, got %v", err)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := m.Start(); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected wrong phase for second start, got %v", err)
	}
	for _, index := range []int{-1, 4} {
		if _, err := m.Select(index); !errors.Is(err, ErrInvalidOption) {
			t.Fatalf("expected invalid option for %d, got %v", index, err)
		}
	}
	if m.State().Phase != PhaseInProgress {
		t.Fatalf("expected in progress, got %s", m.State().Phase)
	}
}

// TestMachineRoundTripResets verifies result acknowledgement restores the start configuration.
func TestMachineRoundTripResets(t *testing.T) {
	log := diag.New(nil)
	sessions := 0
	m := New(sampleBank(), Options{Log: log, NewSessionID: func() string {
		sessions++
		return []string{"first", "second"}[sessions-1]
	}})
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 3; i++ {
		answer(t, m, 1)
	}
	if err := m.Acknowledge(); err != nil {
		t.Fatalf("acknowledge: %v", err)
	}
	state := m.State()
	if state.Phase != PhaseStart || state.Index != 0 || state.Score != 0 || state.Selected != NoSelection {
		t.Fatalf("expected reset start state, got %+v", state)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	state = m.State()
	if state.SessionID != "second" || state.Index != 0 || state.Score != 0 || state.Selected != NoSelection {
		t.Fatalf("unexpected restarted state: %+v", state)
	}
	entries := log.Entries()
	if len(entries) != 3 || entries[1] != "quiz reset" {
		t.Fatalf("unexpected log entries: %q", entries)
	}
}

// TestMachineStaleTicketIgnored verifies abandoning cancels a pending advance.
func TestMachineStaleTicketIgnored(t *testing.T) {
	m := New(sampleBank(), Options{})
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	ticket, err := m.Select(1)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, ok := m.Pending(); !ok {
		t.Fatalf("expected pending ticket")
	}
	if err := m.Abandon(); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if _, ok := m.Pending(); ok {
		t.Fatalf("expected pending ticket cleared")
	}
	if m.Advance(ticket) {
		t.Fatalf("expected stale ticket to be ignored")
	}
	if err := m.Start(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if m.Advance(ticket) {
		t.Fatalf("expected stale ticket ignored after restart")
	}
	next, err := m.Select(0)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if next.ID == ticket.ID {
		t.Fatalf("expected fresh ticket id")
	}
	if m.Advance(ticket) {
		t.Fatalf("expected old ticket rejected while a new one is pending")
	}
	if !m.Advance(next) {
		t.Fatalf("expected current ticket to apply")
	}
	if m.Advance(next) {
		t.Fatalf("expected ticket to apply only once")
	}
	if m.State().Index != 1 {
		t.Fatalf("expected index 1, got %d", m.State().Index)
	}
}

// TestMachineEmptyBank verifies start is refused without questions.
func TestMachineEmptyBank(t *testing.T) {
	m := New(nil, Options{})
	if err := m.Start(); !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("expected empty bank, got %v", err)
	}
	if _, err := m.Select(0); !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("expected empty bank on select, got %v", err)
	}
	if _, ok := m.Current(); ok {
		t.Fatalf("expected no current question")
	}
	if m.State().Phase != PhaseStart {
		t.Fatalf("expected start phase, got %s", m.State().Phase)
	}
}

// TestMachineRecoversEmptyBank verifies the recovery hook is consulted on start.
func TestMachineRecoversEmptyBank(t *testing.T) {
	calls := 0
	m := New(nil, Options{Recover: func() []question.Question {
		calls++
		return sampleBank()[:1]
	}})
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one recovery call, got %d", calls)
	}
	current, ok := m.Current()
	if !ok || current.Text != "Capital of France?" {
		t.Fatalf("unexpected current question: %+v", current)
	}
	if m.State().Total != 1 {
		t.Fatalf("expected total 1, got %d", m.State().Total)
	}
}

// TestMachineBankIsCopied verifies callers cannot mutate the machine's questions.
func TestMachineBankIsCopied(t *testing.T) {
	bank := sampleBank()
	m := New(bank, Options{})
	bank[0].Text = "changed"
	got := m.Bank()
	got[1].Text = "changed too"
	again := m.Bank()
	if again[0].Text != "Capital of France?" || again[1].Text != "2+2?" {
		t.Fatalf("expected bank isolated from callers, got %+v", again)
	}
}

// TestTierFor verifies tier boundaries.
func TestTierFor(t *testing.T) {
	cases := []struct {
		score, total int
		want         Tier
	}{
		{0, 0, TierNone},
		{0, 5, TierLow},
		{2, 5, TierLow},
		{1, 2, TierMid},
		{3, 5, TierMid},
		{4, 5, TierTop},
		{5, 5, TierTop},
	}
	for _, tc := range cases {
		if _, got := TierFor(tc.score, tc.total); got != tc.want {
			t.Fatalf("TierFor(%d, %d): expected %s, got %s", tc.score, tc.total, tc.want, got)
		}
	}
}
