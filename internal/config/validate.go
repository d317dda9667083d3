package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"trivia/internal/question"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Source == "" {
		collector.add("source", "is required")
	}
	validateEnum(collector, "structured_loader", cfg.StructuredLoader, LoaderCSV, LoaderDuckDB, LoaderYAML, LoaderNone)
	validateEnum(collector, "ui.mode", cfg.UI.Mode, UIModeAuto, UIModeLive, UIModePlain)

	if utf8.RuneCountInString(cfg.Delimiter) != 1 {
		collector.add("delimiter", fmt.Sprintf("must be a single character, got %q", cfg.Delimiter))
	} else if strings.ContainsAny(cfg.Delimiter, "\"\r\n") {
		collector.add("delimiter", fmt.Sprintf("%q cannot be used as a delimiter", cfg.Delimiter))
	}
	if cfg.CommentPrefix == "" {
		collector.add("comment_prefix", "is required")
	} else if cfg.CommentPrefix == cfg.Delimiter {
		collector.add("comment_prefix", "must differ from delimiter")
	}
	if _, err := question.ParseAnswerPolicy(cfg.AnswerPolicy); err != nil {
		collector.add("answer_policy", err.Error())
	}
	if cfg.AdvanceDelay <= 0 {
		collector.add("advance_delay", "must be > 0")
	}
	if cfg.LoadTimeout <= 0 {
		collector.add("load_timeout", "must be > 0")
	}

	return collector.result()
}

func validateEnum(collector *issueCollector, field, value string, allowed ...string) {
	for _, candidate := range allowed {
		if value == candidate {
			return
		}
	}
	collector.add(field, fmt.Sprintf("unsupported value %q (expected %s)", value, strings.Join(allowed, "|")))
}
