package ingest

import (
	"errors"
	"fmt"
	"strings"

	"trivia/internal/question"
)

// Parse defaults.
const (
	DefaultDelimiter     = ","
	DefaultCommentPrefix = "//"
)

// ParseOptions configures both parsers.
type ParseOptions struct {
	Delimiter     string
	CommentPrefix string
	AnswerPolicy  question.AnswerPolicy
}

func (opts ParseOptions) normalized() ParseOptions {
	if opts.Delimiter == "" {
		opts.Delimiter = DefaultDelimiter
	}
	if opts.CommentPrefix == "" {
		opts.CommentPrefix = DefaultCommentPrefix
	}
	return opts
}

// Diagnostics produced by the raw-text parser.
const (
	msgEmptySource    = "source is empty or has no readable lines"
	msgHeaderNotFound = "header not found: the first non-blank, non-comment line must look like question,A,B,C,D,answer"
)

// LineResult is the outcome of ParseLines.
type LineResult struct {
	Questions []question.Question
	Errors    []string
	// HeaderIndex is the zero-based index of the header line, -1 when absent.
	HeaderIndex int
}

// ParseLines parses delimiter-separated lines. It locates the header itself,
// skips blank and comment lines, and reports every malformed row in Errors
// while keeping the rows that parsed. It never fails outright.
func ParseLines(lines []string, opts ParseOptions) LineResult {
	opts = opts.normalized()
	result := LineResult{HeaderIndex: -1}
	if len(lines) == 0 {
		result.Errors = append(result.Errors, msgEmptySource)
		return result
	}

	result.HeaderIndex = findHeader(lines, opts.CommentPrefix)
	if result.HeaderIndex == -1 {
		result.Errors = append(result.Errors, msgHeaderNotFound)
		return result
	}

	for i := result.HeaderIndex + 1; i < len(lines); i++ {
		raw := lines[i]
		line := question.Clean(raw)
		if skipLine(line, opts.CommentPrefix) {
			continue
		}
		lineNo := i + 1
		parts := strings.Split(line, opts.Delimiter)
		if len(parts) < question.FieldCount {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: expected at least %d fields, got %d: %s", lineNo, question.FieldCount, len(parts), raw))
			continue
		}
		fields := make([]any, len(parts))
		for j, part := range parts {
			fields[j] = part
		}
		q, subs, err := question.Build(fields, opts.AnswerPolicy)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v, row skipped: %s", lineNo, err, raw))
			continue
		}
		if subs.Answer != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %s, defaulting to A: %s", lineNo, answerReason(subs.Answer), raw))
		}
		q.SourceLine = raw
		result.Questions = append(result.Questions, q)
	}
	return result
}

// findHeader returns the index of the first qualifying header line or -1.
func findHeader(lines []string, commentPrefix string) int {
	for i, raw := range lines {
		line := question.Clean(raw)
		if skipLine(line, commentPrefix) {
			continue
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "question") && strings.Contains(lower, "answer") {
			return i
		}
	}
	return -1
}

func skipLine(line, commentPrefix string) bool {
	return line == "" || strings.HasPrefix(line, commentPrefix)
}

func answerReason(err error) string {
	if errors.Is(err, question.ErrMissingAnswer) {
		return "answer missing"
	}
	return "answer not one of A-D"
}
