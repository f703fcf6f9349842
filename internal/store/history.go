package store

import (
	"context"
	"fmt"
	"time"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	domainerrors "github.com/wardrobeapp/wardrobe-server/internal/errors"
	"github.com/wardrobeapp/wardrobe-server/internal/id"
)

// GetWearHistory returns every wear record in insertion order.
func (s *Store) GetWearHistory(ctx context.Context) ([]domain.WearRecord, error) {
	return s.History.GetAll(ctx)
}

// RecordWear logs that outfitID was worn now. See RecordWearAt.
func (s *Store) RecordWear(ctx context.Context, outfitID string) (*domain.WearRecord, error) {
	return s.RecordWearAt(ctx, outfitID, s.now())
}

// RecordWearAt appends a wear record dated at and, if outfitID resolves, sets
// that outfit's LastWorn to the same instant.
//
// The history append happens whether or not the outfit exists. With a backend
// that implements BatchWriter both collections commit together; otherwise the
// history is written first and the outfit second, and a failure between the two
// leaves the record without the denormalized update.
func (s *Store) RecordWearAt(ctx context.Context, outfitID string, at time.Time) (*domain.WearRecord, error) {
	history, err := s.History.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	recordID, err := id.GenerateUnique(id.PrefixWear, func(candidate string) bool {
		return s.History.Contains(history, candidate)
	})
	if err != nil {
		return nil, fmt.Errorf("wear record id: %w", err)
	}

	record := domain.WearRecord{
		ID:       recordID,
		OutfitID: outfitID,
		Date:     Timestamp(at),
	}
	history = append(history, record)

	outfits, err := s.Outfits.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range outfits {
		if outfits[i].ID == outfitID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		worn := record.Date
		outfits[idx].LastWorn = &worn
	}

	if bw, ok := s.kv.(BatchWriter); ok {
		err = s.commitWear(ctx, bw, history, outfits, idx >= 0)
	} else {
		err = s.writeWear(ctx, history, outfits, idx >= 0)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("outfit worn",
		"outfit_id", outfitID,
		"record_id", record.ID,
		"outfit_found", idx >= 0,
	)

	return &record, nil
}

// commitWear writes history and (optionally) outfits in one batch.
func (s *Store) commitWear(ctx context.Context, bw BatchWriter, history []domain.WearRecord, outfits []domain.Outfit, touchOutfits bool) error {
	historyData, err := s.History.encode(history)
	if err != nil {
		return err
	}
	entries := map[string][]byte{KeyWearHistory: historyData}

	if touchOutfits {
		outfitData, err := s.Outfits.encode(outfits)
		if err != nil {
			return err
		}
		entries[KeyOutfits] = outfitData
	}

	if err := bw.WriteBatch(ctx, entries); err != nil {
		return domainerrors.StoreWrite(err, KeyWearHistory)
	}
	return nil
}

// writeWear writes history, then outfits, as two separate writes.
func (s *Store) writeWear(ctx context.Context, history []domain.WearRecord, outfits []domain.Outfit, touchOutfits bool) error {
	if err := s.History.SaveAll(ctx, history); err != nil {
		return err
	}
	if !touchOutfits {
		return nil
	}
	if err := s.Outfits.SaveAll(ctx, outfits); err != nil {
		s.logger.Warn("wear recorded but outfit lastWorn not saved", "error", err)
		return err
	}
	return nil
}
