package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// IsRemote reports whether sourceID is an http(s) URL.
func IsRemote(sourceID string) bool {
	lower := strings.ToLower(strings.TrimSpace(sourceID))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Open returns a reader for a local path or an http(s) URL.
func Open(ctx context.Context, client *http.Client, sourceID string) (io.ReadCloser, error) {
	sourceID = strings.TrimSpace(sourceID)
	if sourceID == "" {
		return nil, fmt.Errorf("source is empty")
	}
	if !IsRemote(sourceID) {
		file, err := os.Open(sourceID)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", sourceID, err)
		}
		return file, nil
	}

	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceID, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", sourceID, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: unexpected status %s", sourceID, resp.Status)
	}
	return resp.Body, nil
}
