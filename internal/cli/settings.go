package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"trivia/internal/config"
	"trivia/internal/diag"
	"trivia/internal/ingest"
	"trivia/internal/source"
)

// stdin is the quiz input; tests replace it.
var stdin io.Reader = os.Stdin

// sourceFlags are the config overrides shared by play and check.
type sourceFlags struct {
	configPath   *string
	source       *string
	loader       *string
	answerPolicy *string
	verbose      *bool
}

// addSourceFlags registers the shared overrides. --verbose is only offered by
// commands that stream diagnostics on request; check always prints them.
func addSourceFlags(fs *flag.FlagSet, withVerbose bool) sourceFlags {
	flags := sourceFlags{
		configPath:   fs.String("config", "", "Path to config file (default: ./"+config.DefaultFileName+" if present)"),
		source:       fs.String("source", "", "Question source path or http(s) URL"),
		loader:       fs.String("loader", "", "Structured loader: csv, duckdb, yaml or none"),
		answerPolicy: fs.String("answer-policy", "", "Blank or unknown answers: default or reject"),
	}
	if withVerbose {
		flags.verbose = fs.Bool("verbose", false, "Echo diagnostics to stderr")
	}
	return flags
}

// loadSettings resolves config and applies explicitly set flags on top.
func loadSettings(fs *flag.FlagSet, flags sourceFlags) (config.Config, error) {
	cfg, err := config.Load(*flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			cfg.Source = *flags.source
		case "loader":
			cfg.StructuredLoader = *flags.loader
		case "answer-policy":
			cfg.AnswerPolicy = *flags.answerPolicy
		case "verbose":
			cfg.Verbose = *flags.verbose
		}
	})
	config.Normalize(&cfg)
	if err := config.Validate(&cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// verboseSink echoes diagnostics with the [verbose] prefix.
func verboseSink(enabled bool, w io.Writer) func(string) {
	if !enabled || w == nil {
		return nil
	}
	return func(entry string) {
		fmt.Fprintf(w, "[verbose] %s\n", entry)
	}
}

// newCoordinator wires the configured loaders into an ingestion coordinator.
func newCoordinator(cfg config.Config, log *diag.Log) *ingest.Coordinator {
	var structured ingest.TableLoader
	switch cfg.StructuredLoader {
	case config.LoaderCSV:
		structured = withTableTimeout(source.CSVTable{Delimiter: cfg.Delimiter, CommentPrefix: cfg.CommentPrefix}, cfg.LoadTimeout)
	case config.LoaderDuckDB:
		structured = withTableTimeout(source.DuckDBTable{Delimiter: cfg.Delimiter, CommentPrefix: cfg.CommentPrefix}, cfg.LoadTimeout)
	case config.LoaderYAML:
		structured = withTableTimeout(source.YAMLTable{}, cfg.LoadTimeout)
	}
	raw := withLineTimeout(source.Lines{}, cfg.LoadTimeout)
	return ingest.NewCoordinator(structured, raw, log, cfg.ParseOptions())
}

func withTableTimeout(loader ingest.TableLoader, timeout time.Duration) ingest.TableLoader {
	return ingest.TableLoaderFunc(func(ctx context.Context, sourceID string) (ingest.Table, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return loader.LoadTable(ctx, sourceID)
	})
}

func withLineTimeout(loader ingest.LineLoader, timeout time.Duration) ingest.LineLoader {
	return ingest.LineLoaderFunc(func(ctx context.Context, sourceID string) ([]string, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return loader.LoadLines(ctx, sourceID)
	})
}

// parseFlags parses args, printing usage on failure. It returns false with
// the exit code when the command should stop.
func parseFlags(cmd *Command, fs *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}
