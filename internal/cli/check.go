package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"trivia/internal/diag"
)

// runCheck builds the handler for the check command.
func runCheck(cmd *Command) runFunc {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		flags := addSourceFlags(fs, false)
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadSettings(fs, flags)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}

		log := diag.New(func(entry string) {
			fmt.Fprintln(stdout, entry)
		})
		bank, err := newCoordinator(cfg, log).Ingest(context.Background(), cfg.Source)
		if err != nil {
			fmt.Fprintf(stderr, "Check failed: %v\n", err)
			return ExitError
		}
		if bank.Empty() {
			fmt.Fprintf(stderr, "Check failed: no questions loaded from %s\n", cfg.Source)
			return ExitError
		}
		fmt.Fprintf(stdout, "Bank OK: %d questions via %s path\n", len(bank.Questions), bank.Path)
		return ExitOK
	}
}
