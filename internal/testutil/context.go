package testutil

import (
	"context"
	"testing"
	"time"
)

// LoadTimeout bounds a single source load or ingestion in tests.
const LoadTimeout = 5 * time.Second

// Context returns a context cancelled after LoadTimeout or when the test ends.
func Context(t testing.TB) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(t.Context(), LoadTimeout)
	t.Cleanup(cancel)
	return ctx
}
