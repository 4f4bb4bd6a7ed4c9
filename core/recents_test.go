package core

import (
	"testing"
	"time"

	"github.com/hamidzr/recents/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-view"

func newTestRecents() (*Recents, *store.MemStore) {
	kv := store.NewMemStore()
	history := store.NewHistory(kv)
	history.Wait = 20 * time.Millisecond
	history.MaxWait = 200 * time.Millisecond
	return NewRecents(history, testKey), kv
}

func TestEntriesLoadingUntilFirstRefresh(t *testing.T) {
	rec, _ := newTestRecents()
	entries, isLoading := rec.Entries()
	assert.True(t, isLoading)
	assert.Empty(t, entries)
}

// TestFreshViewTeardown closes a view that was never refreshed; the fuse must
// work from its zero value.
func TestFreshViewTeardown(t *testing.T) {
	rec, _ := newTestRecents()
	rec.Close()

	_, isLoading := rec.Entries()
	assert.True(t, isLoading)
}

// TestEntriesReturnsACopy mutates the returned slice and verifies the cached
// view is unaffected.
func TestEntriesReturnsACopy(t *testing.T) {
	rec, _ := newTestRecents()
	rec.Append("foo", true)
	assert.Eventually(t, func() bool {
		entries, isLoading := rec.Entries()
		return !isLoading && len(entries) == 1
	}, time.Second, 5*time.Millisecond)

	entries, _ := rec.Entries()
	require.Len(t, entries, 1)
	entries[0].Text = "mangled"

	fresh, _ := rec.Entries()
	require.Len(t, fresh, 1)
	assert.Equal(t, "foo", fresh[0].Text)
}

func TestRefreshPopulatesView(t *testing.T) {
	rec, kv := newTestRecents()
	require.NoError(t, kv.Set(testKey, `[{"text":"foo","timestamp":"2021-01-01T00:00:00Z"}]`))

	rec.Refresh()

	assert.Eventually(t, func() bool {
		entries, isLoading := rec.Entries()
		return !isLoading && len(entries) == 1 && entries[0].Text == "foo"
	}, time.Second, 5*time.Millisecond)
}

func TestSubscribersNotifiedOnRefresh(t *testing.T) {
	rec, _ := newTestRecents()
	notified := make(chan struct{}, 8)
	rec.Subscribe(func() { notified <- struct{}{} })

	rec.Refresh()

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("subscriber was never notified")
	}
}

func TestImmediateAppendRefreshesView(t *testing.T) {
	rec, _ := newTestRecents()

	rec.Append("foo", true)

	assert.Eventually(t, func() bool {
		entries, isLoading := rec.Entries()
		return !isLoading && len(entries) == 1 && entries[0].Text == "foo"
	}, time.Second, 5*time.Millisecond)
}

func TestAppendIgnoresBlankText(t *testing.T) {
	rec, kv := newTestRecents()

	rec.Append("", true)
	rec.Append("   ", true)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, kv.SetCount(testKey))
}

func TestClearAllResetsViewAndFilterState(t *testing.T) {
	rec, _ := newTestRecents()
	rec.Append("foo", true)
	assert.Eventually(t, func() bool {
		entries, _ := rec.Entries()
		return len(entries) == 1
	}, time.Second, 5*time.Millisecond)

	resetCalled := false
	rec.ClearAll(func() { resetCalled = true })

	entries, isLoading := rec.Entries()
	assert.Empty(t, entries)
	assert.False(t, isLoading)
	assert.True(t, resetCalled)
}

func TestClearAllNilCallback(t *testing.T) {
	rec, _ := newTestRecents()
	rec.ClearAll(nil)
	entries, _ := rec.Entries()
	assert.Empty(t, entries)
}

// TestCloseSuppressesLateLoad verifies a load resolving after Close does not
// update the dead view.
func TestCloseSuppressesLateLoad(t *testing.T) {
	kv := store.NewMemStore()
	require.NoError(t, kv.Set(testKey, `[{"text":"late","timestamp":"2021-01-01T00:00:00Z"}]`))
	slow := &slowStore{MemStore: kv, delay: 50 * time.Millisecond}
	rec := NewRecents(store.NewHistory(slow), testKey)

	rec.Refresh()
	rec.Close()

	time.Sleep(150 * time.Millisecond)
	entries, isLoading := rec.Entries()
	assert.Empty(t, entries)
	assert.True(t, isLoading)
}

func TestCloseFlushesPendingDebouncedWrite(t *testing.T) {
	kv := store.NewMemStore()
	history := store.NewHistory(kv)
	history.Wait = time.Hour
	history.MaxWait = 2 * time.Hour
	rec := NewRecents(history, testKey)

	rec.Append("pending", false)
	assert.Zero(t, kv.SetCount(testKey))

	rec.Close()
	assert.Equal(t, 1, kv.SetCount(testKey))
}

// slowStore delays reads to let tests interleave teardown with a load.
type slowStore struct {
	*store.MemStore
	delay time.Duration
}

func (s *slowStore) Get(key string) (string, bool, error) {
	time.Sleep(s.delay)
	return s.MemStore.Get(key)
}
