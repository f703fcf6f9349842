package sqlite

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	"github.com/wardrobeapp/wardrobe-server/internal/store"
)

func newTestKV(t *testing.T) *KV {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, err := Open(dbPath, logger)
	if err != nil {
		t.Fatalf("open kv: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen(t *testing.T) {
	s := newTestKV(t)

	var journalMode string
	if err := s.db.QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	if journalMode != "wal" {
		t.Errorf("expected wal, got %s", journalMode)
	}

	var name string
	err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='kv'").Scan(&name)
	if err != nil {
		t.Errorf("table kv not found: %v", err)
	}
}

func TestReadMissing(t *testing.T) {
	s := newTestKV(t)

	data, ok, err := s.Read(context.Background(), store.KeyOutfits)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ok || data != nil {
		t.Errorf("expected absent key, got ok=%v data=%q", ok, data)
	}
}

func TestWriteOverwrites(t *testing.T) {
	s := newTestKV(t)
	ctx := context.Background()

	if err := s.Write(ctx, store.KeyOutfits, []byte(`[]`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Write(ctx, store.KeyOutfits, []byte(`[{"id":"o1"}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	data, ok, err := s.Read(ctx, store.KeyOutfits)
	if err != nil || !ok {
		t.Fatalf("read: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(data, []byte(`[{"id":"o1"}]`)) {
		t.Errorf("unexpected value %q", data)
	}
}

func TestWriteBatch(t *testing.T) {
	s := newTestKV(t)
	ctx := context.Background()

	at := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }

	err := s.WriteBatch(ctx, map[string][]byte{
		store.KeyWearHistory: []byte(`[{"id":"w1"}]`),
		store.KeyOutfits:     []byte(`[{"id":"o1"}]`),
	})
	if err != nil {
		t.Fatalf("write batch: %v", err)
	}

	for _, key := range []string{store.KeyWearHistory, store.KeyOutfits} {
		if _, ok, _ := s.Read(ctx, key); !ok {
			t.Errorf("%s not written", key)
		}
		updated, ok, err := s.UpdatedAt(ctx, key)
		if err != nil || !ok {
			t.Fatalf("updated_at %s: ok=%v err=%v", key, ok, err)
		}
		if !updated.Equal(at) {
			t.Errorf("%s updated_at = %v, want %v", key, updated, at)
		}
	}
}

func TestBackingWardrobeStore(t *testing.T) {
	s := store.New(newTestKV(t), nil)
	ctx := context.Background()

	if err := s.AddOutfit(ctx, domain.Outfit{ID: "outfit-1", Name: "Office", TopID: "item-1"}); err != nil {
		t.Fatalf("add outfit: %v", err)
	}
	record, err := s.RecordWear(ctx, "outfit-1")
	if err != nil {
		t.Fatalf("record wear: %v", err)
	}

	outfit, err := s.GetOutfit(ctx, "outfit-1")
	if err != nil {
		t.Fatalf("get outfit: %v", err)
	}
	if outfit.LastWorn == nil || !outfit.LastWorn.Equal(record.Date) {
		t.Errorf("lastWorn = %v, want %v", outfit.LastWorn, record.Date)
	}

	history, err := s.GetWearHistory(ctx)
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if len(history) != 1 || history[0].OutfitID != "outfit-1" {
		t.Errorf("unexpected history %+v", history)
	}
}
