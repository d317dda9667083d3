package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"trivia/internal/diag"
	"trivia/internal/ingest"
	"trivia/internal/question"
	"trivia/internal/quiz"
)

// Options configures the line-mode runner.
type Options struct {
	AdvanceDelay time.Duration
	Log          *diag.Log
	Recover      func() []question.Question
	// Sleep waits out the reveal delay; defaults to a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Run plays quiz sessions over a line-oriented terminal until the user
// quits or input ends. It returns the last session state. An empty bank
// prints guidance and returns quiz.ErrEmptyBank.
func Run(ctx context.Context, in io.Reader, out io.Writer, bank []question.Question, opts Options) (quiz.State, error) {
	if opts.Sleep == nil {
		opts.Sleep = sleep
	}
	machine := quiz.New(bank, quiz.Options{
		AdvanceDelay: opts.AdvanceDelay,
		Recover:      opts.Recover,
		Log:          opts.Log,
	})
	reader := bufio.NewReader(in)

	for {
		if err := ctx.Err(); err != nil {
			return machine.State(), err
		}
		if machine.State().Total > 0 {
			fmt.Fprintf(out, "%d questions loaded. Press enter to start (q to quit): ", machine.State().Total)
			line, ok := readLine(reader)
			if !ok || isQuit(line) {
				return machine.State(), nil
			}
		}
		if err := machine.Start(); err != nil {
			if errors.Is(err, quiz.ErrEmptyBank) {
				printGuidance(out, opts.Log)
			}
			return machine.State(), err
		}

		finished, err := playSession(ctx, reader, out, machine, opts)
		if err != nil || !finished {
			return machine.State(), err
		}

		state := machine.State()
		fmt.Fprintf(out, "\nScore %d/%d (%d%%)\n%s\n\n", state.Score, state.Total, state.Percent(), state.Tier.Message())
		again, ok := promptYesNo(reader, out, "Play again? (y/n): ")
		if err := machine.Acknowledge(); err != nil {
			return state, err
		}
		if !ok || !again {
			return state, nil
		}
	}
}

// playSession asks every question. It reports false when the user quits early.
func playSession(ctx context.Context, reader *bufio.Reader, out io.Writer, machine *quiz.Machine, opts Options) (bool, error) {
	for machine.State().Phase == quiz.PhaseInProgress {
		current, _ := machine.Current()
		state := machine.State()
		fmt.Fprintf(out, "\nQuestion %d/%d: %s\n", state.Index+1, state.Total, current.Text)
		for index, option := range current.Options {
			letter, _ := question.LetterAt(index)
			fmt.Fprintf(out, "  %s) %s\n", letter, option)
		}

		index, ok := promptAnswer(reader, out)
		if !ok {
			_ = machine.Abandon()
			return false, nil
		}
		ticket, err := machine.Select(index)
		if err != nil {
			return false, fmt.Errorf("select option: %w", err)
		}
		if current.IsCorrect(index) {
			fmt.Fprintln(out, "Correct!")
		} else {
			fmt.Fprintf(out, "Wrong! The answer was %s) %s.\n", current.Correct, current.Options[current.Correct.Index()])
		}
		if err := opts.Sleep(ctx, ticket.Delay); err != nil {
			_ = machine.Abandon()
			return false, err
		}
		machine.Advance(ticket)
	}
	return machine.State().Phase == quiz.PhaseResult, nil
}

func printGuidance(out io.Writer, log *diag.Log) {
	fmt.Fprintln(out, "No questions available.")
	for i, step := range ingest.RemediationSteps {
		fmt.Fprintf(out, "  %d. %s\n", i+1, step)
	}
	entries := log.Entries()
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(out, "Diagnostics:")
	for _, entry := range entries {
		fmt.Fprintf(out, "  %s\n", entry)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
