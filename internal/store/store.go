// Package store is the wardrobe repository: three JSON collections in a KV
// backend, with typed CRUD and the wear-recording operation that keeps an
// outfit's lastWorn in step with the wear history.
package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
)

// Store wraps a KV backend with the three wardrobe collections.
type Store struct {
	kv     KV
	logger *slog.Logger
	now    func() time.Time

	Items   *Collection[domain.ClothingItem]
	Outfits *Collection[domain.Outfit]
	History *Collection[domain.WearRecord]
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for wear records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a Store over kv. The Store owns kv and closes it on Close.
func New(kv KV, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Store{
		kv:     kv,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Items = NewCollection(kv, KeyClothingItems,
		func(c *domain.ClothingItem) string { return c.ID }, logger)
	s.Outfits = NewCollection(kv, KeyOutfits,
		func(o *domain.Outfit) string { return o.ID }, logger)
	s.History = NewCollection(kv, KeyWearHistory,
		func(w *domain.WearRecord) string { return w.ID }, logger)

	return s
}

// Now returns the store clock's current time, normalized for storage.
func (s *Store) Now() time.Time {
	return Timestamp(s.now())
}

// Ping verifies the backend can serve a read.
func (s *Store) Ping(ctx context.Context) error {
	_, _, err := s.kv.Read(ctx, KeyClothingItems)
	return err
}

// Close gracefully closes the backend.
func (s *Store) Close() error {
	return s.kv.Close()
}

// Timestamp normalizes t to UTC without a monotonic reading, so that a value
// survives a JSON round trip unchanged.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Round(0)
}
