package diag

import (
	"fmt"
	"sync"
)

// Log is an append-only, ordered list of operator-facing diagnostics.
type Log struct {
	mu      sync.Mutex
	entries []string
	sink    func(string)
}

// New returns an empty log. When sink is non-nil every appended entry is also
// passed to it (used for verbose echoing).
func New(sink func(string)) *Log {
	return &Log{sink: sink}
}

// Append records a message.
func (l *Log) Append(message string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, message)
	if l.sink != nil {
		l.sink(message)
	}
}

// Appendf records a formatted message.
func (l *Log) Appendf(format string, args ...any) {
	l.Append(fmt.Sprintf(format, args...))
}

// Entries returns a copy of the recorded messages.
func (l *Log) Entries() []string {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
