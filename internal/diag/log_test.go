package diag

import "testing"

// TestLogAppendAndSink verifies ordering, copying, and sink echoing.
func TestLogAppendAndSink(t *testing.T) {
	var echoed []string
	log := New(func(line string) { echoed = append(echoed, line) })
	log.Append("first")
	log.Appendf("second %d", 2)

	entries := log.Entries()
	if len(entries) != 2 || entries[0] != "first" || entries[1] != "second 2" {
		t.Fatalf("unexpected entries: %v", entries)
	}
	entries[0] = "mutated"
	if log.Entries()[0] != "first" {
		t.Fatalf("expected Entries to return a copy")
	}
	if len(echoed) != 2 {
		t.Fatalf("expected sink to receive 2 lines, got %d", len(echoed))
	}
}

// TestNilLogIsSafe verifies a nil log ignores writes.
func TestNilLogIsSafe(t *testing.T) {
	var log *Log
	log.Append("ignored")
	if log.Len() != 0 || log.Entries() != nil {
		t.Fatalf("expected nil log to stay empty")
	}
}
