package cli

import (
	"fmt"
	"io"

	"golang.org/x/term"

	"trivia/internal/config"
)

// uiPlan is the outcome of matching the configured UI mode to the terminal.
type uiPlan struct {
	live bool
	note string
}

// isTerminal is swapped in tests.
var isTerminal = func(w io.Writer) bool {
	fd, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(fd.Fd()))
}

// chooseUI maps a mode to live or plain output. Verbose diagnostics are
// written line by line to stderr, which the alternate screen would hide, so
// verbose always plays in plain mode.
func chooseUI(mode string, verbose bool, stdout io.Writer) (uiPlan, error) {
	switch mode {
	case config.UIModePlain:
		return uiPlan{}, nil
	case config.UIModeAuto, "":
		return uiPlan{live: !verbose && isTerminal(stdout)}, nil
	case config.UIModeLive:
		if verbose {
			return uiPlan{note: "Verbose output needs plain mode; ignoring the live UI request."}, nil
		}
		if !isTerminal(stdout) {
			return uiPlan{note: "Live UI requested but stdout is not a terminal; using plain output."}, nil
		}
		return uiPlan{live: true}, nil
	}
	return uiPlan{}, fmt.Errorf("invalid ui mode %q (expected %s|%s|%s)", mode, config.UIModeAuto, config.UIModeLive, config.UIModePlain)
}
