package search

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/blevesearch/bleve/v2"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
)

// SearchIndex wraps a Bleve index of clothing items.
//
// Thread safety: All public methods are safe for concurrent use.
// The mutex protects against index corruption during rebuild operations.
type SearchIndex struct {
	index  bleve.Index
	path   string // empty for a memory-only index
	logger *slog.Logger
	mu     sync.RWMutex
}

// Options configures the search index.
type Options struct {
	DataPath string       // Directory for index storage; empty keeps the index in memory
	Logger   *slog.Logger // Logger for operations (uses discard if nil)
}

// mappingVersion is incremented whenever the index mapping changes.
// This triggers an automatic rebuild on startup when the version doesn't match.
const mappingVersion = "1"

// NewSearchIndex creates or opens a search index.
// An existing index with a missing or outdated version file, or one that fails
// to open, is removed and recreated empty.
func NewSearchIndex(opts Options) (*SearchIndex, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if opts.DataPath == "" {
		index, err := bleve.NewMemOnly(buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("create memory index: %w", err)
		}
		return &SearchIndex{index: index, logger: logger}, nil
	}

	indexPath := filepath.Join(opts.DataPath, "search.bleve")
	versionPath := filepath.Join(opts.DataPath, "search.version")

	var index bleve.Index
	var err error
	needsRebuild := false

	indexExists := false
	if _, statErr := os.Stat(indexPath); statErr == nil {
		indexExists = true
	}

	if indexExists {
		existingVersion, readErr := os.ReadFile(versionPath)
		if readErr != nil || string(existingVersion) != mappingVersion {
			logger.Info("search index mapping version changed, will rebuild",
				"old_version", string(existingVersion),
				"new_version", mappingVersion,
			)
			needsRebuild = true
		}
	}

	if !needsRebuild && indexExists {
		index, err = bleve.Open(indexPath)
		if err != nil {
			logger.Warn("failed to open existing index, will recreate",
				"path", indexPath,
				"error", err,
			)
			needsRebuild = true
		}
	}

	if needsRebuild {
		if removeErr := os.RemoveAll(indexPath); removeErr != nil {
			return nil, fmt.Errorf("remove old index: %w", removeErr)
		}
		index = nil
	}

	if index == nil {
		if mkErr := os.MkdirAll(opts.DataPath, 0o755); mkErr != nil {
			return nil, fmt.Errorf("create index dir: %w", mkErr)
		}
		index, err = bleve.New(indexPath, buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("create index: %w", err)
		}
		if writeErr := os.WriteFile(versionPath, []byte(mappingVersion), 0o644); writeErr != nil {
			logger.Warn("failed to write search version file", "error", writeErr)
		}
		logger.Info("created new search index", "path", indexPath, "mapping_version", mappingVersion)
	} else {
		logger.Info("opened existing search index", "path", indexPath)
	}

	return &SearchIndex{
		index:  index,
		path:   indexPath,
		logger: logger,
	}, nil
}

// Close closes the index and releases resources.
func (s *SearchIndex) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Close()
}

// IndexItem adds or replaces one clothing item.
func (s *SearchIndex) IndexItem(item *domain.ClothingItem) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.Index(item.ID, ItemToDocument(item).ToMap())
}

// IndexItems indexes items in batches.
func (s *SearchIndex) IndexItems(items []domain.ClothingItem) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	const batchSize = 500

	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))

		batch := s.index.NewBatch()
		for j := i; j < end; j++ {
			if err := batch.Index(items[j].ID, ItemToDocument(&items[j]).ToMap()); err != nil {
				return fmt.Errorf("batch index %s: %w", items[j].ID, err)
			}
		}

		if err := s.index.Batch(batch); err != nil {
			return fmt.Errorf("commit batch %d-%d: %w", i, end, err)
		}
	}

	return nil
}

// DeleteItem removes an item from the index.
func (s *SearchIndex) DeleteItem(id string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.Delete(id)
}

// DocumentCount returns the total number of indexed documents.
func (s *SearchIndex) DocumentCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.DocCount()
}

// Rebuild drops the existing index, creates an empty one and indexes items.
// Blocks all other operations while it runs. If the new index cannot be
// created, the search index continues in memory and the error is returned.
func (s *SearchIndex) Rebuild(items []domain.ClothingItem) error {
	s.mu.Lock()

	if err := s.index.Close(); err != nil {
		err = fmt.Errorf("close index: %w", err)
		s.fallBackToMemory(err)
		s.mu.Unlock()
		return err
	}

	index, err := s.recreate()
	if err != nil {
		s.fallBackToMemory(err)
		s.mu.Unlock()
		return err
	}

	s.index = index
	s.mu.Unlock()

	s.logger.Info("rebuilt search index", "path", s.path, "items", len(items))
	return s.IndexItems(items)
}

func (s *SearchIndex) recreate() (bleve.Index, error) {
	if s.path == "" {
		index, err := bleve.NewMemOnly(buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("create memory index: %w", err)
		}
		return index, nil
	}
	if err := os.RemoveAll(s.path); err != nil {
		return nil, fmt.Errorf("remove index: %w", err)
	}
	index, err := bleve.New(s.path, buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	return index, nil
}

// fallBackToMemory replaces the closed index with an empty memory-only one.
// Caller must hold s.mu.
func (s *SearchIndex) fallBackToMemory(cause error) {
	s.logger.Error("failed to recreate search index, continuing in memory", "path", s.path, "error", cause)
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		s.logger.Error("failed to create memory index", "error", err)
		return
	}
	s.index = index
	s.path = ""
}
