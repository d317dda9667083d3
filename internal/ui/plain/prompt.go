package plain

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"trivia/internal/question"
)

// promptAnswer asks until a valid option is entered. It reports false on
// quit or end of input.
func promptAnswer(reader *bufio.Reader, out io.Writer) (int, bool) {
	for {
		fmt.Fprint(out, "Your answer (A-D, q to quit): ")
		line, ok := readLine(reader)
		if !ok || isQuit(line) {
			return 0, false
		}
		if index, ok := parseAnswer(line); ok {
			return index, true
		}
		fmt.Fprintln(out, "Please answer A, B, C or D.")
	}
}

// parseAnswer accepts a letter (any case) or a 1-based option number.
func parseAnswer(line string) (int, bool) {
	if letter, ok := question.ParseLetter(line); ok {
		return letter.Index(), true
	}
	value := strings.TrimSpace(line)
	if len(value) == 1 && value[0] >= '1' && value[0] <= '0'+question.OptionCount {
		return int(value[0] - '1'), true
	}
	return 0, false
}

func promptYesNo(reader *bufio.Reader, out io.Writer, prompt string) (bool, bool) {
	for {
		fmt.Fprint(out, prompt)
		line, ok := readLine(reader)
		if !ok {
			return false, false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, true
		case "n", "no", "q":
			return false, true
		default:
			fmt.Fprintln(out, "Please answer yes or no.")
		}
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is still returned.
func readLine(reader *bufio.Reader) (string, bool) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func isQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "q", "quit", "exit":
		return true
	default:
		return false
	}
}
