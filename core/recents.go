package core

import (
	"strings"
	"sync"

	fbcore "github.com/frostbyte73/core"
	"github.com/hamidzr/recents/model"
	"github.com/hamidzr/recents/store"
)

// Recents owns the UI-facing view of one recent-search list: the cached
// entries, a loading flag, and change notifications for re-rendering. The
// renderer itself lives with the caller; this type only feeds it state.
type Recents struct {
	history *store.History
	key     string

	mu        sync.Mutex
	entries   []model.RecentEntry
	isLoading bool
	listeners []func()

	// closed suppresses in-flight loads that resolve after teardown, so they
	// do not revive dead state. The underlying store mutations still land.
	closed fbcore.Fuse
}

// NewRecents wires a view to one history key. The view starts in the loading
// state; call Refresh to populate it.
func NewRecents(history *store.History, key string) *Recents {
	return &Recents{
		history:   history,
		key:       key,
		isLoading: true,
	}
}

// Entries returns a copy of the cached entries and whether a load is still
// in flight. Callers may mutate the returned slice freely.
func (r *Recents) Entries() ([]model.RecentEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		return nil, r.isLoading
	}
	entries := make([]model.RecentEntry, len(r.entries))
	copy(entries, r.entries)
	return entries, r.isLoading
}

// Subscribe registers a callback invoked after every state change. The menu
// frontend uses this to re-render its rows.
func (r *Recents) Subscribe(fn func()) {
	r.mu.Lock()
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}

func (r *Recents) notify() {
	r.mu.Lock()
	listeners := make([]func(), len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

// Refresh reloads the cached entries on its own goroutine. A refresh that
// resolves after Close is discarded.
func (r *Recents) Refresh() {
	r.mu.Lock()
	r.isLoading = true
	r.mu.Unlock()
	r.notify()

	go func() {
		entries := r.history.Load(r.key)
		if r.closed.IsBroken() {
			return
		}
		r.mu.Lock()
		r.entries = entries
		r.isLoading = false
		r.mu.Unlock()
		r.notify()
	}()
}

// Append records a query. Immediate appends write through and refresh the
// view; debounced appends persist once the typing burst quiets down and show
// up on the next refresh.
func (r *Recents) Append(text string, immediate bool) {
	if strings.TrimSpace(text) == "" {
		return
	}
	r.history.AppendDebounced(r.key, text, immediate)
	if immediate {
		r.Refresh()
	}
}

// ClearAll wipes the persisted list, empties the cached view, and invokes
// resetUI so the collaborator can drop any active filter or selection state.
func (r *Recents) ClearAll(resetUI func()) {
	r.history.Clear(r.key)
	r.mu.Lock()
	r.entries = nil
	r.isLoading = false
	r.mu.Unlock()
	if resetUI != nil {
		resetUI()
	}
	r.notify()
}

// Filter narrows the cached entries to those matching query, best match
// first. An empty query returns the cached order unchanged.
func (r *Recents) Filter(query string) []model.RecentEntry {
	entries, _ := r.Entries()
	return FilterEntries(entries, query)
}

// Close tears the view down. Pending debounced writes are flushed rather
// than dropped; loads still in flight complete without touching the view.
func (r *Recents) Close() {
	r.closed.Break()
	r.history.Flush()
}
