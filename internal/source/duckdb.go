package source

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"

	"trivia/internal/ingest"
	"trivia/internal/question"
)

// ErrRemoteSource is returned by loaders that only read local files.
var ErrRemoteSource = errors.New("remote sources are not supported by this loader")

// DuckDBTable loads a structured source through DuckDB's CSV reader. Every
// column is read as text and short rows are padded with NULLs. Blank and
// comment lines before the header are skipped by read_csv; comment rows after
// it are dropped while scanning.
type DuckDBTable struct {
	// DSN is the DuckDB database to open; empty means in-memory.
	DSN           string
	Delimiter     string
	CommentPrefix string
}

// LoadTable runs read_csv over sourceID.
func (l DuckDBTable) LoadTable(ctx context.Context, sourceID string) (ingest.Table, error) {
	if IsRemote(sourceID) {
		return nil, ErrRemoteSource
	}
	if _, err := delimiterRune(l.Delimiter); err != nil {
		return nil, err
	}
	skip, err := leadingSkip(sourceID, l.CommentPrefix)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("duckdb", l.DSN)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, readCSVQuery(sourceID, l.Delimiter, skip))
	if err != nil {
		return nil, fmt.Errorf("read_csv %s: %w", sourceID, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	records := &ingest.Records{Header: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		targets := make([]any, len(columns))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(records.Rows)+1, err)
		}
		if len(values) > 0 && isComment(values[0], l.CommentPrefix) {
			continue
		}
		records.Rows = append(records.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return records, nil
}

func readCSVQuery(path, delimiter string, skip int) string {
	if delimiter == "" {
		delimiter = ","
	}
	options := fmt.Sprintf("header = true, all_varchar = true, null_padding = true, delim = %s", sqlLiteral(delimiter))
	if skip > 0 {
		options += fmt.Sprintf(", skip = %d", skip)
	}
	return fmt.Sprintf("SELECT * FROM read_csv(%s, %s)", sqlLiteral(path), options)
}

// leadingSkip counts the blank and comment lines before the header.
func leadingSkip(path, commentPrefix string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	skip := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := question.Clean(scanner.Text())
		if line != "" && (commentPrefix == "" || !strings.HasPrefix(line, commentPrefix)) {
			break
		}
		skip++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("scan %s: %w", path, err)
	}
	return skip, nil
}

func sqlLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
