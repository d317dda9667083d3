package ingest

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"trivia/internal/diag"
	"trivia/internal/question"
	"trivia/internal/testutil"
)

func tableOf(rows ...[]any) *Records {
	return &Records{Header: []string{"question", "A", "B", "C", "D", "answer"}, Rows: rows}
}

func staticTable(table Table, err error) TableLoaderFunc {
	return func(context.Context, string) (Table, error) { return table, err }
}

type countingLines struct {
	calls   atomic.Int32
	lines   []string
	err     error
	wait    <-chan struct{}
	entered chan struct{}
}

func (c *countingLines) LoadLines(ctx context.Context, _ string) ([]string, error) {
	if c.calls.Add(1) == 1 && c.entered != nil {
		close(c.entered)
	}
	if c.wait != nil {
		select {
		case <-c.wait:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return c.lines, c.err
}

// TestParseTableDefaults verifies structured rows are sanitized and defaulted silently.
func TestParseTableDefaults(t *testing.T) {
	table := tableOf(
		[]any{" Q1 ", "a", "b", "c", "d", "b"},
		[]any{nil, "a", "b", "c", "d", nil},
		[]any{"Q3", "a"},
	)
	questions, summary := ParseTable(table, ParseOptions{})
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	if questions[0].Text != "Q1" || questions[0].Correct != question.LetterB {
		t.Fatalf("unexpected first question: %+v", questions[0])
	}
	if questions[1].Text != question.MissingText || questions[1].Correct != question.LetterA {
		t.Fatalf("expected defaults on second question: %+v", questions[1])
	}
	if questions[2].Options[3] != question.MissingOption {
		t.Fatalf("expected missing option placeholder, got %v", questions[2].Options)
	}
	if summary != "structured parse complete, questions: 3" {
		t.Fatalf("unexpected summary %q", summary)
	}
}

// TestParseTableRejectPolicySummary verifies rejected rows are counted in the summary.
func TestParseTableRejectPolicySummary(t *testing.T) {
	table := tableOf(
		[]any{"Q1", "a", "b", "c", "d", "b"},
		[]any{"Q2", "a", "b", "c", "d", "z"},
	)
	questions, summary := ParseTable(table, ParseOptions{AnswerPolicy: question.AnswerReject})
	if len(questions) != 1 || questions[0].Text != "Q1" {
		t.Fatalf("expected only Q1, got %+v", questions)
	}
	if summary != "structured parse complete, questions: 1, rejected: 1" {
		t.Fatalf("unexpected summary %q", summary)
	}
}

// TestIngestStructuredWins verifies the raw-text path is never touched when rows exist.
func TestIngestStructuredWins(t *testing.T) {
	raw := &countingLines{lines: []string{"question,a,b,c,d,answer", "R,a,b,c,d,a"}}
	coordinator := NewCoordinator(staticTable(tableOf([]any{"S", "a", "b", "c", "d", "c"}), nil), raw, nil, ParseOptions{})

	bank, err := coordinator.Ingest(testutil.Context(t), "questions.csv")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if raw.calls.Load() != 0 {
		t.Fatalf("expected raw loader to be skipped, got %d calls", raw.calls.Load())
	}
	if bank.Path != PathStructured || len(bank.Questions) != 1 || bank.Questions[0].Text != "S" {
		t.Fatalf("unexpected bank: %+v", bank)
	}
	entries := coordinator.Log().Entries()
	if last := entries[len(entries)-1]; last != "question bank loaded, questions: 1" {
		t.Fatalf("unexpected final diagnostic %q", last)
	}
}

// TestIngestFallsBackOnEmptyTable verifies an empty structured source triggers the fallback.
func TestIngestFallsBackOnEmptyTable(t *testing.T) {
	raw := &countingLines{lines: []string{"question,a,b,c,d,answer", "R,a,b,c,d,a", "short,row"}}
	coordinator := NewCoordinator(staticTable(tableOf(), nil), raw, diag.New(nil), ParseOptions{})

	bank, err := coordinator.Ingest(testutil.Context(t), "questions.csv")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if bank.Path != PathRaw || len(bank.Questions) != 1 {
		t.Fatalf("unexpected bank: %+v", bank)
	}
	joined := strings.Join(coordinator.Log().Entries(), "\n")
	if !strings.Contains(joined, "parse error 1: line 3") {
		t.Fatalf("expected numbered parse error in log, got:\n%s", joined)
	}
}

// TestIngestBothPathsFail verifies total failure degrades to an empty bank with guidance.
func TestIngestBothPathsFail(t *testing.T) {
	raw := &countingLines{err: errors.New("no such file")}
	coordinator := NewCoordinator(staticTable(nil, errors.New("open failed")), raw, nil, ParseOptions{})

	bank, err := coordinator.Ingest(testutil.Context(t), "missing.csv")
	if err != nil {
		t.Fatalf("expected no fault, got %v", err)
	}
	if !bank.Empty() {
		t.Fatalf("expected empty bank")
	}
	entries := coordinator.Log().Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 diagnostics, got %v", entries)
	}
	if !strings.Contains(entries[1], "no such file") {
		t.Fatalf("expected raw failure to be named, got %q", entries[1])
	}
	if !strings.Contains(entries[2], "question bank is empty") {
		t.Fatalf("expected guidance diagnostic, got %q", entries[2])
	}
}

// TestIngestNilLoaders verifies missing loaders are treated as failed loads.
func TestIngestNilLoaders(t *testing.T) {
	coordinator := NewCoordinator(nil, nil, nil, ParseOptions{})
	bank, err := coordinator.Ingest(context.Background(), "x")
	if err != nil || !bank.Empty() || bank.Path != PathNone {
		t.Fatalf("unexpected result: %+v, %v", bank, err)
	}
}

// TestIngestRecoversFault verifies a panicking loader surfaces as a FaultError.
func TestIngestRecoversFault(t *testing.T) {
	boom := LineLoaderFunc(func(context.Context, string) ([]string, error) {
		panic("decoder exploded")
	})
	coordinator := NewCoordinator(nil, boom, nil, ParseOptions{})

	bank, err := coordinator.Ingest(context.Background(), "questions.csv")
	var fault *FaultError
	if !errors.As(err, &fault) {
		t.Fatalf("expected fault error, got %v", err)
	}
	if fault.Stage != "raw-text load" || !strings.Contains(fault.Detail, "decoder exploded") {
		t.Fatalf("unexpected fault: %+v", fault)
	}
	if !bank.Empty() {
		t.Fatalf("expected empty bank on fault")
	}
}

// TestIngestConcurrentFallbackLoadsOnce verifies re-entrant fallbacks share one load.
func TestIngestConcurrentFallbackLoadsOnce(t *testing.T) {
	release := make(chan struct{})
	raw := &countingLines{
		lines:   []string{"question,a,b,c,d,answer", "R,a,b,c,d,a"},
		wait:    release,
		entered: make(chan struct{}),
	}
	coordinator := NewCoordinator(nil, raw, nil, ParseOptions{})
	ctx := testutil.Context(t)

	var wg sync.WaitGroup
	banks := make([]Bank, 2)
	for i := range banks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			banks[i], _ = coordinator.Ingest(ctx, "questions.csv")
		}(i)
	}
	select {
	case <-raw.entered:
	case <-ctx.Done():
		t.Fatalf("raw loader was never called")
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if raw.calls.Load() != 1 {
		t.Fatalf("expected a single raw load, got %d", raw.calls.Load())
	}
	for i, bank := range banks {
		if len(bank.Questions) != 1 {
			t.Fatalf("bank %d: expected 1 question, got %d", i, len(bank.Questions))
		}
	}
}

// TestReparseUsesLastTable verifies lazy recovery from cached structured data.
func TestReparseUsesLastTable(t *testing.T) {
	coordinator := NewCoordinator(nil, nil, nil, ParseOptions{})
	if got := coordinator.Reparse(); got != nil {
		t.Fatalf("expected nil without a table, got %v", got)
	}
	coordinator.setTable(tableOf([]any{"Q", "a", "b", "c", "d", "d"}))
	got := coordinator.Reparse()
	if len(got) != 1 || got[0].Correct != question.LetterD {
		t.Fatalf("unexpected reparse result: %+v", got)
	}
}
