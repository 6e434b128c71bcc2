// Package assets sequences texture acquisition against a graphics
// collaborator and keeps the loaded handles in a registry that becomes
// read-only once loading finishes.
package assets

import (
	"errors"
	"fmt"
)

var (
	// ErrAssetLoad is returned when a texture cannot be loaded.
	ErrAssetLoad = errors.New("asset load failed")
	// ErrRegistryFrozen is returned when adding to a frozen registry.
	ErrRegistryFrozen = errors.New("asset registry is frozen")
	// ErrInvalidTable is returned for malformed asset tables.
	ErrInvalidTable = errors.New("invalid asset table")
)

// Entry declares one texture to load.
type Entry struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// Table is the ordered list of textures a scene needs.
// Order determines load sequence.
type Table []Entry

// Validate checks that every entry has an id and a path and that ids are unique.
func (t Table) Validate() error {
	seen := make(map[string]bool, len(t))
	for i, e := range t {
		if e.ID == "" {
			return fmt.Errorf("%w: entry %d has no id", ErrInvalidTable, i)
		}
		if e.Path == "" {
			return fmt.Errorf("%w: entry %q has no path", ErrInvalidTable, e.ID)
		}
		if seen[e.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidTable, e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}

// IDs returns the identifiers in load order.
func (t Table) IDs() []string {
	ids := make([]string, len(t))
	for i, e := range t {
		ids[i] = e.ID
	}
	return ids
}
