package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"trivia/internal/config"
	"trivia/internal/diag"
	"trivia/internal/ingest"
	"trivia/internal/quiz"
	"trivia/internal/ui/live"
	"trivia/internal/ui/plain"
)

// runLive is a test seam for the Bubble Tea program.
var runLive = live.Run

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) runFunc {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		flags := addSourceFlags(fs, true)
		uiMode := fs.String("ui", "", "UI mode: auto, live or plain")
		noColor := fs.Bool("no-color", false, "Disable colors in the live UI")
		delay := fs.Duration("delay", 0, "How long a revealed answer stays on screen")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadSettings(fs, flags)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		if *uiMode != "" {
			cfg.UI.Mode = *uiMode
		}
		if *noColor {
			cfg.UI.NoColor = true
		}
		if *delay > 0 {
			cfg.AdvanceDelay = *delay
		}

		plan, err := chooseUI(cfg.UI.Mode, cfg.Verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if plan.note != "" {
			fmt.Fprintln(stderr, plan.note)
		}

		log := diag.New(verboseSink(cfg.Verbose, stderr))
		coordinator := newCoordinator(cfg, log)
		ctx := context.Background()
		if plan.live {
			return playLive(ctx, cfg, coordinator, stdout, stderr)
		}
		return playPlain(ctx, cfg, coordinator, stdout, stderr)
	}
}

func playLive(ctx context.Context, cfg config.Config, coordinator *ingest.Coordinator, stdout, stderr io.Writer) int {
	model := live.NewModel(func() (ingest.Bank, error) {
		return coordinator.Ingest(ctx, cfg.Source)
	}, live.Options{
		Source:       cfg.Source,
		NoColor:      cfg.UI.NoColor,
		AdvanceDelay: cfg.AdvanceDelay,
		Log:          coordinator.Log(),
		Recover:      coordinator.Reparse,
	})
	final, err := runLive(ctx, stdin, stdout, model)
	if err != nil {
		fmt.Fprintf(stderr, "Play failed: %v\n", err)
		return ExitError
	}
	if fault := final.Fault(); fault != nil {
		fmt.Fprintf(stderr, "Play failed: %v\n", fault)
		return ExitError
	}
	return ExitOK
}

func playPlain(ctx context.Context, cfg config.Config, coordinator *ingest.Coordinator, stdout, stderr io.Writer) int {
	bank, err := coordinator.Ingest(ctx, cfg.Source)
	if err != nil {
		fmt.Fprintf(stderr, "Something went wrong while loading the questions.\n%v\n", err)
		return ExitError
	}
	_, err = plain.Run(ctx, stdin, stdout, bank.Questions, plain.Options{
		AdvanceDelay: cfg.AdvanceDelay,
		Log:          coordinator.Log(),
		Recover:      coordinator.Reparse,
	})
	if errors.Is(err, quiz.ErrEmptyBank) {
		return ExitError
	}
	if err != nil {
		fmt.Fprintf(stderr, "Play failed: %v\n", err)
		return ExitError
	}
	return ExitOK
}
