package store

import (
	domainerrors "github.com/wardrobeapp/wardrobe-server/internal/errors"
)

// Lookup errors. All of them match errors.ErrNotFound.
var (
	ErrItemNotFound   = domainerrors.NotFound("clothing item not found")
	ErrOutfitNotFound = domainerrors.NotFound("outfit not found")
)
