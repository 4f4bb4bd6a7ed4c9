package store

import (
	"sync"
	"time"

	"github.com/hamidzr/recents/model"
	"github.com/sirupsen/logrus"
)

// History maintains a capacity-bounded, most-recent-first list of search
// queries per key on top of a KeyValue store. Persistence failures are
// swallowed: reads degrade to an empty list and writes are dropped, so a
// broken history can never block the search itself.
type History struct {
	kv KeyValue

	// Wait, MaxWait, and Limit default to the package constants. Set them
	// before the first AppendDebounced call for a key.
	Wait    time.Duration
	MaxWait time.Duration
	Limit   int

	mu         sync.Mutex
	debouncers map[string]*debouncer
}

func NewHistory(kv KeyValue) *History {
	return &History{
		kv:         kv,
		Wait:       DebounceWait,
		MaxWait:    DebounceMaxWait,
		Limit:      HistoryLimit,
		debouncers: make(map[string]*debouncer),
	}
}

// Load returns the persisted entries for key, most recent first. A missing
// or corrupt payload yields an empty list, never an error.
func (h *History) Load(key string) []model.RecentEntry {
	raw, ok, err := h.kv.Get(key)
	if err != nil {
		logrus.WithError(err).Debug("recent history read failed, treating as empty")
		return nil
	}
	if !ok {
		return nil
	}
	return model.DecodeEntries(raw)
}

// Clear removes the persisted list for key. Clearing an empty or missing
// list succeeds silently, as does a failed removal.
func (h *History) Clear(key string) {
	if err := h.kv.Remove(key); err != nil {
		logrus.WithError(err).Debug("recent history clear dropped")
	}
}

// Append records text as the newest entry for key, truncating to the
// capacity. Empty or whitespace-only text is a no-op. The load-modify-write
// below is unlocked on purpose: overlapping appends on the same key race and
// the last write wins. Callers must tolerate that; do not add locking here
// without revisiting everyone relying on the non-blocking behavior.
func (h *History) Append(key, text string) {
	entry := model.NewRecentEntry(text)
	if !entry.IsValid() {
		return
	}
	entries := append([]model.RecentEntry{entry}, h.Load(key)...)
	if len(entries) > h.Limit {
		entries = entries[:h.Limit]
	}
	raw, err := model.EncodeEntries(entries)
	if err != nil {
		logrus.WithError(err).Debug("recent history encode failed, write dropped")
		return
	}
	if err := h.kv.Set(key, raw); err != nil {
		logrus.WithError(err).Debug("recent history write dropped")
	}
}

// AppendDebounced coalesces a burst of calls for key into one Append of the
// last submitted text once the burst has been quiet for Wait, flushing early
// if calls keep arriving for longer than MaxWait. With immediate set it
// appends synchronously instead.
func (h *History) AppendDebounced(key, text string, immediate bool) {
	if immediate {
		h.Append(key, text)
		return
	}
	h.debouncerFor(key).call(text)
}

func (h *History) debouncerFor(key string) *debouncer {
	h.mu.Lock()
	defer h.mu.Unlock()
	d, ok := h.debouncers[key]
	if !ok {
		d = newDebouncer(h.Wait, h.MaxWait, func(text string) {
			h.Append(key, text)
		})
		h.debouncers[key] = d
	}
	return d
}

// Flush writes any pending debounced appends immediately. Teardown paths
// call this so a pending write is committed rather than dropped.
func (h *History) Flush() {
	h.mu.Lock()
	debouncers := make([]*debouncer, 0, len(h.debouncers))
	for _, d := range h.debouncers {
		debouncers = append(debouncers, d)
	}
	h.mu.Unlock()
	for _, d := range debouncers {
		d.flush()
	}
}

// Close shuts the history down, committing any pending debounced writes.
func (h *History) Close() {
	h.Flush()
}
