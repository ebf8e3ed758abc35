// Package logbuffer keeps a bounded, thread-safe ring of recent log entries
// so the admin activity endpoint can serve them without touching disk.
package logbuffer

import (
	"fmt"
	"sync"
	"time"
)

type Ring struct {
	mu      sync.Mutex
	entries []string
	max     int
}

func New(max int) *Ring {
	if max < 1 {
		max = 1
	}
	return &Ring{max: max}
}

// Add formats and appends an entry, dropping the oldest one once the ring is
// full.
func (r *Ring) Add(format string, args ...any) {
	entry := fmt.Sprintf("[%s] %s", time.Now().UTC().Format(time.RFC3339), fmt.Sprintf(format, args...))

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	if len(r.entries) > r.max {
		r.entries = r.entries[len(r.entries)-r.max:]
	}
}

// Last returns up to n entries, newest last. The returned slice is a copy.
func (r *Ring) Last(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n < 0 {
		n = 0
	}
	if n > len(r.entries) {
		n = len(r.entries)
	}
	out := make([]string, n)
	copy(out, r.entries[len(r.entries)-n:])
	return out
}

func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
