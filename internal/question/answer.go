package question

import "strings"

// Letter identifies one of the four answer options.
type Letter byte

// Option letters.
const (
	LetterA Letter = 'A'
	LetterB Letter = 'B'
	LetterC Letter = 'C'
	LetterD Letter = 'D'
)

// String returns the letter as a one-character string.
func (l Letter) String() string {
	return string(rune(l))
}

// Index returns the zero-based option index for the letter.
func (l Letter) Index() int {
	return int(l - LetterA)
}

// Valid reports whether the letter is one of A-D.
func (l Letter) Valid() bool {
	return l >= LetterA && l <= LetterD
}

// LetterAt maps an option index to its letter.
func LetterAt(index int) (Letter, bool) {
	if index < 0 || index >= OptionCount {
		return 0, false
	}
	return LetterA + Letter(index), true
}

// ParseLetter reads an answer field. Matching is case-insensitive and ignores
// surrounding whitespace; anything other than a single A-D letter is rejected.
func ParseLetter(value string) (Letter, bool) {
	normalized := strings.ToUpper(Clean(value))
	if len(normalized) != 1 {
		return 0, false
	}
	letter := Letter(normalized[0])
	if !letter.Valid() {
		return 0, false
	}
	return letter, true
}
