package source

import (
	"testing"

	"trivia/internal/ingest"
	"trivia/internal/question"
	"trivia/internal/testutil"
)

// TestDuckDBTableReadsCSV verifies DuckDB loads every column as text and pads short rows.
func TestDuckDBTableReadsCSV(t *testing.T) {
	path := testutil.WriteLines(t, "questions.csv",
		"question,A,B,C,D,answer",
		"Capital of France?,Berlin,Paris,Rome,Madrid,b",
		"2+2?,3,4,5,22,",
	)
	table, err := DuckDBTable{}.LoadTable(testutil.Context(t), path)
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	if table.RowCount() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.RowCount())
	}
	questions, _ := ingest.ParseTable(table, ingest.ParseOptions{})
	if questions[0].Text != "Capital of France?" || questions[0].Correct != question.LetterB {
		t.Fatalf("unexpected first question: %+v", questions[0])
	}
	if questions[1].Options[3] != "22" {
		t.Fatalf("expected numeric option kept as text, got %q", questions[1].Options[3])
	}
	if questions[1].Correct != question.LetterA {
		t.Fatalf("expected NULL answer to default to A, got %v", questions[1].Correct)
	}
}

// TestDuckDBTableMissingFile verifies read errors are returned.
func TestDuckDBTableMissingFile(t *testing.T) {
	_, err := DuckDBTable{}.LoadTable(testutil.Context(t), "does-not-exist.csv")
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

// TestDuckDBTableSkipsComments verifies comment lines before and after the header are ignored.
func TestDuckDBTableSkipsComments(t *testing.T) {
	path := testutil.WriteLines(t, "questions.csv",
		"// sample bank",
		"question,A,B,C,D,answer",
		"Q1,a,b,c,d,C",
		"// mid comment",
		"Q3,a,b",
	)
	table, err := DuckDBTable{CommentPrefix: "//"}.LoadTable(testutil.Context(t), path)
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	if table.RowCount() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.RowCount())
	}
	questions, _ := ingest.ParseTable(table, ingest.ParseOptions{})
	if questions[0].Text != "Q1" || questions[0].Correct != question.LetterC {
		t.Fatalf("unexpected first question: %+v", questions[0])
	}
	if questions[1].Text != "Q3" || questions[1].Options[2] != question.MissingOption {
		t.Fatalf("unexpected second question: %+v", questions[1])
	}
}
