package ingest

import (
	"fmt"

	"trivia/internal/question"
)

// Row gives positional access to the fields of one tabular row. Out-of-range
// fields are reported as nil.
type Row interface {
	Field(index int) any
}

// Table is a pre-parsed tabular source, header already removed.
type Table interface {
	RowCount() int
	Row(index int) Row
}

// Records is an in-memory Table.
type Records struct {
	Header []string
	Rows   [][]any
}

type record []any

func (r record) Field(index int) any {
	if index < 0 || index >= len(r) {
		return nil
	}
	return r[index]
}

// RowCount returns the number of data rows.
func (r *Records) RowCount() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

// Row returns the row at index.
func (r *Records) Row(index int) Row {
	if r == nil || index < 0 || index >= len(r.Rows) {
		return record(nil)
	}
	return record(r.Rows[index])
}

// ParseTable converts every row of a structured source into a question, in
// row order. It returns the questions together with a one-line summary for
// the diagnostic log. Rows are only dropped under question.AnswerReject.
func ParseTable(table Table, opts ParseOptions) ([]question.Question, string) {
	opts = opts.normalized()
	if table == nil {
		return nil, "structured parse complete, questions: 0"
	}
	count := table.RowCount()
	questions := make([]question.Question, 0, count)
	rejected := 0
	for r := 0; r < count; r++ {
		row := table.Row(r)
		fields := make([]any, question.FieldCount)
		for i := range fields {
			fields[i] = row.Field(i)
		}
		q, _, err := question.Build(fields, opts.AnswerPolicy)
		if err != nil {
			rejected++
			continue
		}
		questions = append(questions, q)
	}
	summary := fmt.Sprintf("structured parse complete, questions: %d", len(questions))
	if rejected > 0 {
		summary += fmt.Sprintf(", rejected: %d", rejected)
	}
	return questions, summary
}
