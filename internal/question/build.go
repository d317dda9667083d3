package question

import (
	"errors"
	"fmt"
	"strings"
)

// Positional layout of a question row.
const (
	FieldText   = 0
	FieldAnswer = 5
	FieldCount  = 6
)

// AnswerPolicy controls how a blank or unrecognized answer field is handled.
type AnswerPolicy int

const (
	// AnswerDefault substitutes option A.
	AnswerDefault AnswerPolicy = iota
	// AnswerReject refuses the row.
	AnswerReject
)

func (p AnswerPolicy) String() string {
	if p == AnswerReject {
		return "reject"
	}
	return "default"
}

// ParseAnswerPolicy maps a config value to a policy.
func ParseAnswerPolicy(value string) (AnswerPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "default":
		return AnswerDefault, nil
	case "reject":
		return AnswerReject, nil
	default:
		return AnswerDefault, fmt.Errorf("unknown answer policy %q (expected default|reject)", value)
	}
}

// ErrMissingAnswer indicates the answer field was blank.
var ErrMissingAnswer = errors.New("missing answer")

// ErrUnknownAnswer indicates the answer field was not one of A-D.
var ErrUnknownAnswer = errors.New("answer is not one of A-D")

// Substitutions records which values Build had to default.
type Substitutions struct {
	Text    bool
	Options int
	// Answer is ErrMissingAnswer or ErrUnknownAnswer when the answer was
	// replaced by option A, nil otherwise.
	Answer error
}

// Build sanitizes a row of fields into a Question. Missing trailing fields are
// treated as absent. Under AnswerReject a blank or unrecognized answer returns
// the corresponding sentinel error instead of a record.
func Build(fields []any, policy AnswerPolicy) (Question, Substitutions, error) {
	var subs Substitutions
	field := func(index int) string {
		if index < 0 || index >= len(fields) {
			return ""
		}
		return Clean(fields[index])
	}

	q := Question{Text: field(FieldText)}
	if q.Text == "" {
		q.Text = MissingText
		subs.Text = true
	}
	for i := range q.Options {
		q.Options[i] = field(FieldText + 1 + i)
		if q.Options[i] == "" {
			q.Options[i] = MissingOption
			subs.Options++
		}
	}

	raw := field(FieldAnswer)
	letter, ok := ParseLetter(raw)
	if !ok {
		reason := ErrUnknownAnswer
		if raw == "" {
			reason = ErrMissingAnswer
		}
		if policy == AnswerReject {
			return Question{}, subs, reason
		}
		letter = LetterA
		subs.Answer = reason
	}
	q.Correct = letter
	return q, subs, nil
}
