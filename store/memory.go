package store

import "sync"

// MemStore is a map-backed KeyValue. It records how many writes each key has
// seen, which tests use to count debounced flushes, and can be forced to
// fail to exercise the swallow-everything error paths.
type MemStore struct {
	mu     sync.Mutex
	data   map[string]string
	writes map[string]int

	// Fail, when non-nil, is returned by every operation.
	Fail error
}

func NewMemStore() *MemStore {
	return &MemStore{
		data:   make(map[string]string),
		writes: make(map[string]int),
	}
}

func (m *MemStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return "", false, m.Fail
	}
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *MemStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	m.data[key] = value
	m.writes[key]++
	return nil
}

func (m *MemStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	delete(m.data, key)
	return nil
}

// SetCount reports how many times key has been written.
func (m *MemStore) SetCount(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[key]
}
