// Package cache provides the process-local response cache for answered
// questions. The interface exists so a bounded or TTL-aware implementation can
// replace the in-memory map without touching callers.
package cache

import (
	"strings"
	"sync"
)

// ResponseCache is an exact-match cache keyed by normalized question text.
type ResponseCache interface {
	Get(question string) (string, bool)
	Put(question, answer string)
	Clear()
	Len() int
}

// Memory is the default ResponseCache: an unbounded map guarded by a RWMutex.
// Entries live for the process lifetime; there is no eviction and no TTL.
// Ingestion clears the cache wholesale, which keeps growth in check for the
// expected workload.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

func (m *Memory) Get(question string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	answer, ok := m.entries[Normalize(question)]
	return answer, ok
}

func (m *Memory) Put(question, answer string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[Normalize(question)] = answer
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]string)
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Normalize maps case and surrounding-whitespace variants of a question to a
// single cache key.
func Normalize(question string) string {
	return strings.ToLower(strings.TrimSpace(question))
}
