package cucumber

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"trivia/internal/ingest"
)

func (s *featureState) theRawLines(doc *godog.DocString) error {
	s.lines = strings.Split(doc.Content, "\n")
	return nil
}

func (s *featureState) theRawLinesAreParsed() error {
	s.result = ingest.ParseLines(s.lines, ingest.ParseOptions{})
	return nil
}

func (s *featureState) theHeaderIsAtIndex(index int) error {
	if s.result.HeaderIndex != index {
		return fmt.Errorf("expected header at %d, got %d", index, s.result.HeaderIndex)
	}
	return nil
}

func (s *featureState) questionsAreProduced(count int) error {
	if len(s.result.Questions) != count {
		return fmt.Errorf("expected %d questions, got %d", count, len(s.result.Questions))
	}
	return nil
}

func (s *featureState) questionHasAnswer(number int, letter string) error {
	if number < 1 || number > len(s.result.Questions) {
		return fmt.Errorf("question %d not produced", number)
	}
	if got := s.result.Questions[number-1].Correct.String(); got != letter {
		return fmt.Errorf("expected answer %s, got %s", letter, got)
	}
	return nil
}

func (s *featureState) thereAreParseErrors(count int) error {
	if len(s.result.Errors) != count {
		return fmt.Errorf("expected %d parse errors, got %q", count, s.result.Errors)
	}
	return nil
}

func (s *featureState) parseErrorMentions(number int, text string) error {
	if number < 1 || number > len(s.result.Errors) {
		return fmt.Errorf("parse error %d not reported", number)
	}
	if !strings.Contains(s.result.Errors[number-1], text) {
		return fmt.Errorf("expected %q in %q", text, s.result.Errors[number-1])
	}
	return nil
}

func (s *featureState) aStructuredSourceWithRows(count int) error {
	records := &ingest.Records{Header: []string{"question", "A", "B", "C", "D", "answer"}}
	for i := 0; i < count; i++ {
		records.Rows = append(records.Rows, []any{fmt.Sprintf("S%d", i+1), "a", "b", "c", "d", "C"})
	}
	s.structured = ingest.TableLoaderFunc(func(context.Context, string) (ingest.Table, error) {
		return records, nil
	})
	return nil
}

func (s *featureState) aFailingStructuredSource() error {
	s.structured = ingest.TableLoaderFunc(func(context.Context, string) (ingest.Table, error) {
		return nil, errors.New("file not found")
	})
	return nil
}

func (s *featureState) aRawTextSourceWithQuestions(count int) error {
	lines := []string{"question,A,B,C,D,answer"}
	for i := 0; i < count; i++ {
		lines = append(lines, fmt.Sprintf("R%d,a,b,c,d,A", i+1))
	}
	s.raw = ingest.LineLoaderFunc(func(context.Context, string) ([]string, error) {
		s.rawCalls++
		return lines, nil
	})
	return nil
}

func (s *featureState) aFailingRawTextSource() error {
	s.raw = ingest.LineLoaderFunc(func(context.Context, string) ([]string, error) {
		s.rawCalls++
		return nil, errors.New("permission denied")
	})
	return nil
}

func (s *featureState) theBankIsIngested() error {
	bank, err := ingest.NewCoordinator(s.structured, s.raw, s.log, ingest.ParseOptions{}).
		Ingest(context.Background(), "questions.csv")
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	s.bank = bank
	return nil
}

func (s *featureState) theBankHasQuestionsFromPath(count int, path string) error {
	if len(s.bank.Questions) != count {
		return fmt.Errorf("expected %d questions, got %d", count, len(s.bank.Questions))
	}
	if string(s.bank.Path) != path {
		return fmt.Errorf("expected %s path, got %s", path, s.bank.Path)
	}
	return nil
}

func (s *featureState) theBankIsEmpty() error {
	if !s.bank.Empty() {
		return fmt.Errorf("expected empty bank, got %d questions", len(s.bank.Questions))
	}
	return nil
}

func (s *featureState) theRawTextLoaderWasNotCalled() error {
	if s.rawCalls != 0 {
		return fmt.Errorf("expected raw-text loader unused, called %d times", s.rawCalls)
	}
	return nil
}

func (s *featureState) theLogContains(text string) error {
	for _, entry := range s.log.Entries() {
		if strings.Contains(entry, text) {
			return nil
		}
	}
	return fmt.Errorf("expected %q in log %q", text, s.log.Entries())
}
