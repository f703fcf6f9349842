package store

import "context"

// KV is the durable byte store behind the repository.
// A missing key is not an error: Read reports ok=false and the caller treats it
// as an empty collection. Write replaces the whole value for a key in one step.
type KV interface {
	Read(ctx context.Context, key string) (data []byte, ok bool, err error)
	Write(ctx context.Context, key string, data []byte) error
	Close() error
}

// BatchWriter is implemented by backends that can commit several keys atomically.
// Store.RecordWear uses it to write history and outfits together when available.
type BatchWriter interface {
	WriteBatch(ctx context.Context, entries map[string][]byte) error
}
