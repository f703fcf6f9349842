// Package id generates prefixed NanoID identifiers for wardrobe entities.
package id

import (
	"errors"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Entity prefixes.
const (
	PrefixItem   = "item"
	PrefixOutfit = "outfit"
	PrefixWear   = "wear"
)

// maxAttempts bounds GenerateUnique.
const maxAttempts = 5

// ErrExhausted is returned when GenerateUnique keeps colliding.
var ErrExhausted = errors.New("could not generate an unused id")

// Generate creates a prefixed unique ID using NanoID.
// Format: prefix-nanoid (e.g., "item-V1StGXR8_Z5jdHi6B-myT").
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// GenerateUnique generates IDs until taken reports one as unused.
// Use it when the caller holds the full collection and can check membership.
func GenerateUnique(prefix string, taken func(string) bool) (string, error) {
	for range maxAttempts {
		id, err := Generate(prefix)
		if err != nil {
			return "", err
		}
		if taken == nil || !taken(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("%s: %w", prefix, ErrExhausted)
}
