package assets

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/flappy-scene/internal/core"
)

// GraphicsContext loads textures and registers them for upload.
type GraphicsContext interface {
	LoadTexture(id, path string) (core.Texture, error)
	Add(tex core.Texture)
}

// GraphicsProvider hands out the graphics context.
// LockContext returns false while no context can be obtained; callers retry
// on a later frame.
type GraphicsProvider interface {
	LockContext() (GraphicsContext, bool)
}

// Progress is the outcome of one loader step.
type Progress int

const (
	ProgressPending  Progress = iota // More assets remain
	ProgressComplete                 // Every asset is loaded
	ProgressFailed                   // An asset failed; the loader is terminal
)

// String returns a human-readable name for the progress value.
func (p Progress) String() string {
	switch p {
	case ProgressPending:
		return "Pending"
	case ProgressComplete:
		return "Complete"
	case ProgressFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Loader acquires the textures of a Table one per Step.
type Loader struct {
	table    Table
	provider GraphicsProvider
	registry *Registry
	next     int // Index of the next entry to load
	err      error
}

// NewLoader creates a loader filling registry from table.
func NewLoader(table Table, provider GraphicsProvider, registry *Registry) *Loader {
	return &Loader{
		table:    table,
		provider: provider,
		registry: registry,
	}
}

// Step loads at most one pending asset.
// It never blocks: an unavailable graphics context leaves everything as is.
func (l *Loader) Step() Progress {
	if l.err != nil {
		return ProgressFailed
	}
	if l.next >= len(l.table) {
		l.registry.Freeze()
		return ProgressComplete
	}

	if l.provider == nil {
		return ProgressPending
	}
	ctx, ok := l.provider.LockContext()
	if !ok || ctx == nil {
		return ProgressPending
	}

	entry := l.table[l.next]
	tex, err := ctx.LoadTexture(entry.ID, entry.Path)
	if err == nil && tex == nil {
		err = errors.New("no texture returned")
	}
	if err != nil {
		l.err = fmt.Errorf("%w: %s (%s): %w", ErrAssetLoad, entry.ID, entry.Path, err)
		return ProgressFailed
	}
	if err := l.registry.Add(entry.ID, tex); err != nil {
		l.err = fmt.Errorf("%w: %s: %w", ErrAssetLoad, entry.ID, err)
		return ProgressFailed
	}
	ctx.Add(tex)
	l.next++

	if l.next >= len(l.table) {
		l.registry.Freeze()
		return ProgressComplete
	}
	return ProgressPending
}

// Err returns the failure that made the loader terminal, if any.
func (l *Loader) Err() error {
	return l.err
}

// Loaded returns how many assets have been loaded.
func (l *Loader) Loaded() int {
	return l.next
}

// Remaining returns how many assets are still pending.
func (l *Loader) Remaining() int {
	return len(l.table) - l.next
}

// Registry returns the registry the loader fills.
func (l *Loader) Registry() *Registry {
	return l.registry
}
