// Package state provides thread-safe session state for the planner.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-missionplan/internal/mission"
)

// Entry is one evaluation recorded in the session log.
type Entry struct {
	Seq       int
	Timestamp time.Time
	Result    *mission.Result
	SavedTo   string // report path, if the result was saved
}

// Manager keeps the most recent evaluations of a session in a ring buffer.
type Manager struct {
	mu sync.RWMutex

	entries    []Entry
	maxEntries int
	writeAt    int
	nextSeq    int
	feasible   int
	total      int

	now func() time.Time
}

// Config holds configuration for the state manager.
type Config struct {
	MaxEntries int // 0 or less uses 20
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	limit := cfg.MaxEntries
	if limit <= 0 {
		limit = 20
	}
	return &Manager{
		entries:    make([]Entry, 0, limit),
		maxEntries: limit,
		nextSeq:    1,
		now:        time.Now,
	}
}

// Add records an evaluation and returns its sequence number.
func (m *Manager) Add(res *mission.Result) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := Entry{
		Seq:       m.nextSeq,
		Timestamp: m.now(),
		Result:    res,
	}
	m.nextSeq++
	m.total++
	if res != nil && res.Success {
		m.feasible++
	}

	if len(m.entries) < m.maxEntries {
		m.entries = append(m.entries, e)
	} else {
		m.entries[m.writeAt] = e
		m.writeAt = (m.writeAt + 1) % m.maxEntries
	}
	return e.Seq
}

// MarkSaved records the report path for an entry still in the buffer.
func (m *Manager) MarkSaved(seq int, path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.entries {
		if m.entries[i].Seq == seq {
			m.entries[i].SavedTo = path
			return true
		}
	}
	return false
}

// Snapshot represents an immutable snapshot of the session.
type Snapshot struct {
	Entries  []Entry // oldest first
	Total    int     // evaluations since start, including evicted ones
	Feasible int
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		Entries:  m.ordered(),
		Total:    m.total,
		Feasible: m.feasible,
	}
}

// ordered returns entries in chronological order.
func (m *Manager) ordered() []Entry {
	if len(m.entries) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.entries) < m.maxEntries {
		result := make([]Entry, len(m.entries))
		copy(result, m.entries)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Entry, m.maxEntries)
	for i := 0; i < m.maxEntries; i++ {
		result[i] = m.entries[(m.writeAt+i)%m.maxEntries]
	}
	return result
}

// Last returns the most recent entry.
func (m *Manager) Last() (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.ordered()
	if len(all) == 0 {
		return Entry{}, false
	}
	return all[len(all)-1], true
}
