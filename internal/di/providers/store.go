package providers

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/samber/do/v2"

	"github.com/wardrobeapp/wardrobe-server/internal/config"
	"github.com/wardrobeapp/wardrobe-server/internal/logger"
	"github.com/wardrobeapp/wardrobe-server/internal/store"
	"github.com/wardrobeapp/wardrobe-server/internal/store/sqlite"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the wardrobe store over the configured backend.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	kv, err := OpenKV(cfg, log.Logger)
	if err != nil {
		return nil, err
	}

	return &StoreHandle{Store: store.New(kv, log.Logger)}, nil
}

// OpenKV opens the backend named by cfg.Store.Backend.
func OpenKV(cfg *config.Config, log *slog.Logger) (store.KV, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		log.Warn("Using in-memory store, data is lost on exit")
		return store.NewMemoryKV(), nil

	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.Store.DataPath, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		kv, err := sqlite.Open(cfg.SQLitePath(), log)
		if err != nil {
			return nil, err
		}
		log.Info("Database initialized", "backend", cfg.Store.Backend, "path", cfg.SQLitePath())
		return kv, nil

	case config.BackendBadger:
		kv, err := store.OpenBadger(cfg.DatabasePath(), log)
		if err != nil {
			return nil, err
		}
		log.Info("Database initialized", "backend", cfg.Store.Backend, "path", cfg.DatabasePath())
		return kv, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
