package assets

import (
	"errors"
	"testing"

	"github.com/vovakirdan/flappy-scene/internal/core"
)

type fakeTexture struct {
	id string
}

func (t fakeTexture) ID() string      { return t.id }
func (t fakeTexture) Width() float64  { return 10 }
func (t fakeTexture) Height() float64 { return 10 }

type fakeContext struct {
	loads    []string
	uploaded []string
	failOn   string
}

func (c *fakeContext) LoadTexture(id, path string) (core.Texture, error) {
	c.loads = append(c.loads, id)
	if id == c.failOn {
		return nil, errors.New("decode error")
	}
	return fakeTexture{id: id}, nil
}

func (c *fakeContext) Add(tex core.Texture) {
	c.uploaded = append(c.uploaded, tex.ID())
}

type fakeProvider struct {
	ctx       *fakeContext
	available bool
}

func (p *fakeProvider) LockContext() (GraphicsContext, bool) {
	if !p.available {
		return nil, false
	}
	return p.ctx, true
}

var testTable = Table{
	{ID: "loading", Path: "game-scene/loading.png"},
	{ID: "hbar", Path: "game-scene/horizontal-bar.png"},
	{ID: "flappy", Path: "game-scene/flappy.png"},
}

func TestLoaderOneAssetPerStep(t *testing.T) {
	ctx := &fakeContext{}
	provider := &fakeProvider{ctx: ctx, available: true}
	loader := NewLoader(testTable, provider, NewRegistry())

	for i := 0; i < len(testTable); i++ {
		progress := loader.Step()
		if len(ctx.loads) != i+1 {
			t.Fatalf("step %d: %d loads, expected %d", i, len(ctx.loads), i+1)
		}
		if ctx.loads[i] != testTable[i].ID {
			t.Errorf("step %d loaded %q, expected %q", i, ctx.loads[i], testTable[i].ID)
		}
		expected := ProgressPending
		if i == len(testTable)-1 {
			expected = ProgressComplete
		}
		if progress != expected {
			t.Errorf("step %d progress = %v, expected %v", i, progress, expected)
		}
	}

	if loader.Remaining() != 0 || loader.Loaded() != 3 {
		t.Errorf("Loaded=%d Remaining=%d", loader.Loaded(), loader.Remaining())
	}
	if len(ctx.uploaded) != 3 {
		t.Errorf("every texture should be added to the context, got %v", ctx.uploaded)
	}
	if !loader.Registry().Frozen() {
		t.Error("registry should be frozen after completion")
	}

	// Further steps load nothing
	if loader.Step() != ProgressComplete || len(ctx.loads) != 3 {
		t.Error("completed loader should not load again")
	}
}

func TestLoaderRetriesWhenContextUnavailable(t *testing.T) {
	ctx := &fakeContext{}
	provider := &fakeProvider{ctx: ctx}
	loader := NewLoader(testTable, provider, NewRegistry())

	for i := 0; i < 5; i++ {
		if loader.Step() != ProgressPending {
			t.Fatal("unavailable context should leave the loader pending")
		}
	}
	if len(ctx.loads) != 0 || loader.Loaded() != 0 {
		t.Fatalf("nothing should be loaded without a context, loads=%v", ctx.loads)
	}

	provider.available = true
	loader.Step()
	if loader.Loaded() != 1 || ctx.loads[0] != "loading" {
		t.Errorf("first available step should load the first entry, loads=%v", ctx.loads)
	}
}

func TestLoaderFailureIsTerminal(t *testing.T) {
	ctx := &fakeContext{failOn: "hbar"}
	provider := &fakeProvider{ctx: ctx, available: true}
	loader := NewLoader(testTable, provider, NewRegistry())

	loader.Step()
	if progress := loader.Step(); progress != ProgressFailed {
		t.Fatalf("progress = %v, expected Failed", progress)
	}
	if !errors.Is(loader.Err(), ErrAssetLoad) {
		t.Errorf("Err() = %v, expected ErrAssetLoad", loader.Err())
	}

	loads := len(ctx.loads)
	if loader.Step() != ProgressFailed || len(ctx.loads) != loads {
		t.Error("failed loader should not retry")
	}
}

func TestLoaderEmptyTable(t *testing.T) {
	loader := NewLoader(nil, &fakeProvider{}, NewRegistry())
	if loader.Step() != ProgressComplete {
		t.Error("empty table should complete immediately")
	}
}

func TestRegistryFreeze(t *testing.T) {
	r := NewRegistry()
	if err := r.Add("a", fakeTexture{id: "a"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	r.Freeze()

	err := r.Add("b", fakeTexture{id: "b"})
	if !errors.Is(err, ErrRegistryFrozen) {
		t.Errorf("Add after Freeze = %v, expected ErrRegistryFrozen", err)
	}
	if _, ok := r.Get("a"); !ok || r.Len() != 1 {
		t.Error("frozen registry should keep existing textures")
	}
	if r.Texture("missing") != nil {
		t.Error("Texture for a missing id should be nil")
	}
}

func TestTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr bool
	}{
		{"valid", testTable, false},
		{"missing id", Table{{Path: "a.png"}}, true},
		{"missing path", Table{{ID: "a"}}, true},
		{"duplicate", Table{{ID: "a", Path: "a.png"}, {ID: "a", Path: "b.png"}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.table.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTable) {
				t.Errorf("Validate() error should wrap ErrInvalidTable, got %v", err)
			}
		})
	}
}
