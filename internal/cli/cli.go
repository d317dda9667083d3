package cli

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type runFunc func(args []string, stdout, stderr io.Writer) int

// Command is one trivia subcommand.
type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     runFunc
}

var commands = []*Command{
	command("play", "Load the question bank and play the quiz", runPlay,
		"trivia play [--config <path>] [--source <path|url>] [--ui auto|live|plain] [--delay <duration>] [--verbose]"),
	command("check", "Load the question bank and print ingestion diagnostics", runCheck,
		"trivia check [--config <path>] [--source <path|url>] [--loader csv|duckdb|yaml|none]"),
	command("init", "Scaffold .trivia.yml and a sample questions.csv", runInit,
		"trivia init [--dir <path>]"),
}

// command binds a runner to its own Command so it can print its usage.
func command(name, summary string, bind func(*Command) runFunc, usage ...string) *Command {
	cmd := &Command{Name: name, Summary: summary, Usage: usage}
	cmd.Run = bind(cmd)
	return cmd
}

// Run dispatches args to a command and returns the process exit code.
// "trivia help <command>" prints that command's usage.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printOverview(stdout)
		return ExitUsage
	}
	name, rest := args[0], args[1:]
	if name == "help" || isHelpFlag(name) {
		if len(rest) > 0 {
			if cmd := lookup(rest[0]); cmd != nil {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
		}
		printOverview(stdout)
		return ExitOK
	}
	cmd := lookup(name)
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", name)
		printOverview(stderr)
		return ExitUsage
	}
	return cmd.Run(rest, stdout, stderr)
}

func lookup(name string) *Command {
	i := slices.IndexFunc(commands, func(cmd *Command) bool { return cmd.Name == name })
	if i < 0 {
		return nil
	}
	return commands[i]
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help"
}

func wantsHelp(args []string) bool {
	return slices.ContainsFunc(args, isHelpFlag)
}

func printOverview(w io.Writer) {
	fmt.Fprint(w, "Usage:\n  trivia <command> [options]\n\nCommands:\n")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, cmd := range commands {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Name, cmd.Summary)
	}
	tw.Flush()
	fmt.Fprint(w, "\nRun \"trivia help <command>\" for command options.\n")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintln(w, "  "+line)
	}
	fmt.Fprintf(w, "\n%s\n", cmd.Summary)
}
