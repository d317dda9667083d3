package question

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Placeholders substituted for missing values.
const (
	MissingText   = "(question missing - check file encoding or header)"
	MissingOption = "(option missing)"
)

// Question is a single multiple-choice record. Records are built once during
// ingestion and never mutated afterwards.
type Question struct {
	Text       string
	Options    [OptionCount]string
	Correct    Letter
	SourceLine string
}

// IsCorrect reports whether the option at index is the correct one.
func (q Question) IsCorrect(index int) bool {
	letter, ok := LetterAt(index)
	return ok && letter == q.Correct
}
