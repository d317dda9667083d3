package source

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strings"
)

const maxLineBytes = 1 << 20

// Lines loads a source as raw text lines. Line endings (LF or CRLF) are
// removed; nothing else is touched.
type Lines struct {
	Client *http.Client
}

// LoadLines reads every line of sourceID.
func (l Lines) LoadLines(ctx context.Context, sourceID string) ([]string, error) {
	reader, err := Open(ctx, l.Client, sourceID)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var lines []string
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", sourceID, err)
	}
	return lines, nil
}
