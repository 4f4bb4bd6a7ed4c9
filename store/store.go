package store

import "time"

const (
	// HistoryLimit caps how many entries a history list retains.
	HistoryLimit = 20
	// DebounceWait is the quiet window a debounced append waits out before
	// writing.
	DebounceWait = 1500 * time.Millisecond
	// DebounceMaxWait bounds how long continuous calls can keep postponing a
	// debounced write.
	DebounceMaxWait = 3000 * time.Millisecond
)

// KeyValue is the persistence contract the history runs on: raw string
// payloads addressed by key. Get reports absence separately from failure so
// that a missing payload is not an error.
type KeyValue interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}
