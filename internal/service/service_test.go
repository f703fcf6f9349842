package service

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wardrobeapp/wardrobe-server/internal/search"
	"github.com/wardrobeapp/wardrobe-server/internal/store"
	"github.com/wardrobeapp/wardrobe-server/internal/validation"
)

// spyKV counts backend calls so tests can assert nothing reached the store.
type spyKV struct {
	store.KV
	reads  atomic.Int32
	writes atomic.Int32
}

func (s *spyKV) Read(ctx context.Context, key string) ([]byte, bool, error) {
	s.reads.Add(1)
	return s.KV.Read(ctx, key)
}

func (s *spyKV) Write(ctx context.Context, key string, data []byte) error {
	s.writes.Add(1)
	return s.KV.Write(ctx, key, data)
}

// testClock is a settable clock.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type testEnv struct {
	store     *store.Store
	kv        *spyKV
	mem       *store.MemoryKV
	clock     *testClock
	closet    *ClosetService
	outfits   *OutfitService
	history   *HistoryService
	dashboard *DashboardService
	search    *SearchService
}

// setupTestServices wires every service over an in-memory store and, when
// withIndex is set, a memory-only search index.
func setupTestServices(t *testing.T, withIndex bool) *testEnv {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	mem := store.NewMemoryKV()
	kv := &spyKV{KV: mem}
	clock := &testClock{now: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)}
	s := store.New(kv, logger, store.WithClock(clock.Now))

	var index *search.SearchIndex
	if withIndex {
		var err error
		index, err = search.NewSearchIndex(search.Options{Logger: logger})
		require.NoError(t, err)
		t.Cleanup(func() { _ = index.Close() })
	}

	v := validation.New()
	searchService := NewSearchService(index, s, logger)

	return &testEnv{
		store:     s,
		kv:        kv,
		mem:       mem,
		clock:     clock,
		closet:    NewClosetService(s, searchService, v, logger),
		outfits:   NewOutfitService(s, v, logger),
		history:   NewHistoryService(s),
		dashboard: NewDashboardService(s),
		search:    searchService,
	}
}

const testPhoto = "data:image/png;base64,iVBORw0KGgo="
