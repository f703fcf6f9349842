package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	domainerrors "github.com/wardrobeapp/wardrobe-server/internal/errors"
)

// Collection provides whole-collection CRUD for one key holding a JSON array of T.
// Every operation loads the full array; mutations write the full array back.
type Collection[T any] struct {
	kv     KV
	key    string
	idOf   func(*T) string
	logger *slog.Logger
}

// NewCollection creates a Collection for the given key.
// idOf extracts the identifier used by Update, Delete and Find.
func NewCollection[T any](kv KV, key string, idOf func(*T) string, logger *slog.Logger) *Collection[T] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Collection[T]{
		kv:     kv,
		key:    key,
		idOf:   idOf,
		logger: logger,
	}
}

// Key returns the store key backing this collection.
func (c *Collection[T]) Key() string {
	return c.key
}

// GetAll returns every entity in insertion order.
// A missing key or a payload that is not a JSON array of T yields an empty slice.
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	data, ok, err := c.kv.Read(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.key, err)
	}
	if !ok {
		return []T{}, nil
	}

	var entities []T
	if err := json.Unmarshal(data, &entities); err != nil {
		c.logger.Warn("discarding malformed collection",
			"key", c.key,
			"bytes", len(data),
			"error", err,
		)
		return []T{}, nil
	}
	if entities == nil {
		entities = []T{}
	}
	return entities, nil
}

// SaveAll replaces the stored collection with entities in one write.
// On failure the previously stored value is left as it was.
func (c *Collection[T]) SaveAll(ctx context.Context, entities []T) error {
	data, err := c.encode(entities)
	if err != nil {
		return err
	}
	if err := c.kv.Write(ctx, c.key, data); err != nil {
		return domainerrors.StoreWrite(err, c.key)
	}
	return nil
}

// Add appends entity. The caller guarantees its id is fresh.
func (c *Collection[T]) Add(ctx context.Context, entity T) error {
	entities, err := c.GetAll(ctx)
	if err != nil {
		return err
	}
	return c.SaveAll(ctx, append(entities, entity))
}

// Update replaces the first entity whose id matches, keeping its position.
// An unknown id is a silent no-op and nothing is written.
func (c *Collection[T]) Update(ctx context.Context, id string, entity T) error {
	entities, err := c.GetAll(ctx)
	if err != nil {
		return err
	}

	idx := c.indexOf(entities, id)
	if idx < 0 {
		c.logger.Debug("update target not found", "key", c.key, "id", id)
		return nil
	}

	entities[idx] = entity
	return c.SaveAll(ctx, entities)
}

// Delete removes every entity with the given id.
// When nothing matches, the stored value is left untouched.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	entities, err := c.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := make([]T, 0, len(entities))
	for i := range entities {
		if c.idOf(&entities[i]) != id {
			kept = append(kept, entities[i])
		}
	}
	if len(kept) == len(entities) {
		c.logger.Debug("delete target not found", "key", c.key, "id", id)
		return nil
	}
	return c.SaveAll(ctx, kept)
}

// Find returns the first entity with the given id.
// Returns an error matching errors.ErrNotFound if there is none.
func (c *Collection[T]) Find(ctx context.Context, id string) (*T, error) {
	entities, err := c.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := c.indexOf(entities, id)
	if idx < 0 {
		return nil, domainerrors.NotFoundf("%s: id %s not found", c.key, id)
	}
	return &entities[idx], nil
}

// Contains reports whether id is present in entities.
func (c *Collection[T]) Contains(entities []T, id string) bool {
	return c.indexOf(entities, id) >= 0
}

func (c *Collection[T]) indexOf(entities []T, id string) int {
	for i := range entities {
		if c.idOf(&entities[i]) == id {
			return i
		}
	}
	return -1
}

// encode marshals entities, writing an empty array rather than null.
func (c *Collection[T]) encode(entities []T) ([]byte, error) {
	if entities == nil {
		entities = []T{}
	}
	data, err := json.Marshal(entities)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", c.key, err)
	}
	return data, nil
}
