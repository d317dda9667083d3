package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"trivia/internal/ingest"
	"trivia/internal/question"
)

// CSVTable loads a structured source with encoding/csv. The first record is
// the header; records may have any number of fields. Records whose first
// field starts with CommentPrefix are dropped.
type CSVTable struct {
	Delimiter     string
	CommentPrefix string
	Client        *http.Client
}

// LoadTable reads sourceID into memory.
func (l CSVTable) LoadTable(ctx context.Context, sourceID string) (ingest.Table, error) {
	comma, err := delimiterRune(l.Delimiter)
	if err != nil {
		return nil, err
	}
	reader, err := Open(ctx, l.Client, sourceID)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	csvReader := csv.NewReader(reader)
	csvReader.Comma = comma
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	records := &ingest.Records{}
	for {
		fields, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv %s: %w", sourceID, err)
		}
		if len(fields) > 0 && isComment(fields[0], l.CommentPrefix) {
			continue
		}
		if records.Header == nil {
			records.Header = fields
			continue
		}
		row := make([]any, len(fields))
		for i, field := range fields {
			row[i] = field
		}
		records.Rows = append(records.Rows, row)
	}
	return records, nil
}

// isComment reports whether a record's first field starts with prefix.
func isComment(first any, prefix string) bool {
	return prefix != "" && strings.HasPrefix(question.Clean(first), prefix)
}

func delimiterRune(delimiter string) (rune, error) {
	if delimiter == "" {
		return ',', nil
	}
	r, size := utf8.DecodeRuneInString(delimiter)
	if r == utf8.RuneError || size != len(delimiter) {
		return 0, fmt.Errorf("delimiter %q must be a single character", delimiter)
	}
	return r, nil
}
