package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"trivia/internal/diag"
	"trivia/internal/question"
)

// TableLoader supplies a structured source.
type TableLoader interface {
	LoadTable(ctx context.Context, sourceID string) (Table, error)
}

// LineLoader supplies the raw lines of a source.
type LineLoader interface {
	LoadLines(ctx context.Context, sourceID string) ([]string, error)
}

// TableLoaderFunc adapts a function to TableLoader.
type TableLoaderFunc func(ctx context.Context, sourceID string) (Table, error)

// LoadTable calls f.
func (f TableLoaderFunc) LoadTable(ctx context.Context, sourceID string) (Table, error) {
	return f(ctx, sourceID)
}

// LineLoaderFunc adapts a function to LineLoader.
type LineLoaderFunc func(ctx context.Context, sourceID string) ([]string, error)

// LoadLines calls f.
func (f LineLoaderFunc) LoadLines(ctx context.Context, sourceID string) ([]string, error) {
	return f(ctx, sourceID)
}

// ErrNoLoader is reported when a path has no loader configured.
var ErrNoLoader = errors.New("no loader configured")

// Path names the ingestion path that produced a bank.
type Path string

const (
	PathNone       Path = "none"
	PathStructured Path = "structured"
	PathRaw        Path = "raw"
)

// Bank is the outcome of one ingestion attempt.
type Bank struct {
	Questions []question.Question
	Path      Path
}

// Empty reports whether the bank holds no questions.
func (b Bank) Empty() bool {
	return len(b.Questions) == 0
}

// FaultError reports an unexpected failure inside ingestion. Unlike loader
// and parse problems, which only produce diagnostics, a fault blocks the quiz.
type FaultError struct {
	Stage  string
	Detail string
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("ingestion fault during %s: %s", e.Stage, e.Detail)
}

// Coordinator runs the structured load first and falls back to the raw-text
// path when the structured source is unavailable or empty.
type Coordinator struct {
	structured TableLoader
	raw        LineLoader
	opts       ParseOptions
	log        *diag.Log

	fallback singleflight.Group

	mu    sync.Mutex
	table Table
}

// NewCoordinator wires the loaders. Either loader may be nil; a nil loader is
// treated as a failed load.
func NewCoordinator(structured TableLoader, raw LineLoader, log *diag.Log, opts ParseOptions) *Coordinator {
	if log == nil {
		log = diag.New(nil)
	}
	return &Coordinator{
		structured: structured,
		raw:        raw,
		opts:       opts.normalized(),
		log:        log,
	}
}

// Log returns the diagnostic log the coordinator appends to.
func (c *Coordinator) Log() *diag.Log {
	return c.log
}

// Ingest builds a fresh question bank from sourceID. Load and parse problems
// are recorded in the log and degrade to an empty bank; the only error
// returned is a *FaultError for an unexpected failure.
func (c *Coordinator) Ingest(ctx context.Context, sourceID string) (bank Bank, err error) {
	stage := "structured load"
	defer func() {
		if recovered := recover(); recovered != nil {
			detail, _, _ := strings.Cut(fmt.Sprint(recovered), "\n")
			fault := &FaultError{Stage: stage, Detail: detail}
			c.log.Appendf("fault: %v", fault)
			bank = Bank{Path: PathNone}
			err = fault
		}
	}()

	table, tableErr := c.loadTable(ctx, sourceID)
	c.setTable(table)
	switch {
	case tableErr != nil:
		c.log.Appendf("structured load failed, falling back: %v", tableErr)
	case table == nil || table.RowCount() == 0:
		c.log.Appendf("structured load ok but %s has no rows, falling back", sourceID)
	default:
		c.log.Appendf("structured load ok: %s", sourceID)
		stage = "structured parse"
		questions, summary := ParseTable(table, c.opts)
		c.log.Append(summary)
		bank = Bank{Questions: questions, Path: PathStructured}
		c.report(bank)
		return bank, nil
	}

	stage = "raw-text load"
	lines, linesErr := c.loadLines(ctx, sourceID)
	if linesErr != nil {
		c.log.Appendf("raw-text load failed: %v", linesErr)
		bank = Bank{Path: PathNone}
		c.report(bank)
		return bank, nil
	}

	stage = "raw-text parse"
	result := ParseLines(lines, c.opts)
	if len(result.Errors) > 0 {
		for i, message := range result.Errors {
			c.log.Appendf("parse error %d: %s", i+1, message)
		}
	} else {
		c.log.Appendf("raw-text parse ok, questions: %d", len(result.Questions))
	}
	bank = Bank{Questions: result.Questions, Path: PathRaw}
	c.report(bank)
	return bank, nil
}

// Reparse re-runs the structured parser over the last structured source when
// it had rows. It returns nil when there is nothing to recover from.
func (c *Coordinator) Reparse() []question.Question {
	c.mu.Lock()
	table := c.table
	c.mu.Unlock()
	if table == nil || table.RowCount() == 0 {
		return nil
	}
	questions, summary := ParseTable(table, c.opts)
	c.log.Append(summary)
	return questions
}

func (c *Coordinator) loadTable(ctx context.Context, sourceID string) (Table, error) {
	if c.structured == nil {
		return nil, ErrNoLoader
	}
	return c.structured.LoadTable(ctx, sourceID)
}

// loadLines collapses concurrent fallback attempts for the same source into a
// single raw-text load.
func (c *Coordinator) loadLines(ctx context.Context, sourceID string) ([]string, error) {
	if c.raw == nil {
		return nil, ErrNoLoader
	}
	value, err, _ := c.fallback.Do(sourceID, func() (any, error) {
		return c.raw.LoadLines(ctx, sourceID)
	})
	if err != nil {
		return nil, err
	}
	lines, _ := value.([]string)
	return lines, nil
}

func (c *Coordinator) setTable(table Table) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.table = table
}

// RemediationSteps are the operator checks suggested when the bank is empty.
var RemediationSteps = []string{
	"Check that the question file exists at the configured source.",
	"Make sure the header (question,A,B,C,D,answer) is the first non-comment line.",
	"Remove stray comment lines and any byte-order mark before the header.",
	"Save the file as UTF-8 text.",
}

// report appends the post-ingestion verdict.
func (c *Coordinator) report(bank Bank) {
	if bank.Empty() {
		c.log.Append("question bank is empty: check that the source exists, that its first non-comment line is the header (question,A,B,C,D,answer), that comment lines and any BOM are removed, and that it is saved as UTF-8")
		return
	}
	c.log.Appendf("question bank loaded, questions: %d", len(bank.Questions))
}
