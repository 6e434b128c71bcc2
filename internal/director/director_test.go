package director

import (
	"errors"
	"testing"

	"github.com/vovakirdan/flappy-scene/internal/core"
	"github.com/vovakirdan/flappy-scene/internal/registry"
)

// traceScene records the lifecycle calls it receives.
type traceScene struct {
	id        string
	env       registry.Env
	calls     []string
	events    []core.Event
	suspended bool
	switchTo  string
}

func (s *traceScene) ID() string                   { return s.id }
func (s *traceScene) ViewSize() (float64, float64) { return 100, 200 }

func (s *traceScene) Initialize() bool {
	s.calls = append(s.calls, "init")
	s.suspended = true
	return true
}

func (s *traceScene) Suspend() {
	s.suspended = true
	s.calls = append(s.calls, "suspend")
}

func (s *traceScene) Resume() {
	s.suspended = false
	s.calls = append(s.calls, "resume")
}

func (s *traceScene) Handle(ev core.Event) {
	s.calls = append(s.calls, "handle")
	s.events = append(s.events, ev)
	if s.switchTo != "" {
		s.env.Director.RunScene(s.switchTo)
	}
}

func (s *traceScene) Update(float64)      { s.calls = append(s.calls, "update") }
func (s *traceScene) Render(core.Surface) { s.calls = append(s.calls, "render") }

var created = map[string]*traceScene{}

func init() {
	for _, id := range []string{"trace-a", "trace-b"} {
		registry.Register(id, id, func(env registry.Env) registry.Scene {
			s := &traceScene{id: id, env: env}
			created[id] = s
			return s
		})
	}
}

func TestFrameWithoutScene(t *testing.T) {
	d := New(registry.Env{})
	if err := d.Frame(0.1, nil); !errors.Is(err, ErrNoScene) {
		t.Errorf("Frame() = %v, expected ErrNoScene", err)
	}
}

func TestStartUnknownScene(t *testing.T) {
	d := New(registry.Env{})
	if err := d.Start("nope"); !errors.Is(err, registry.ErrUnknownScene) {
		t.Errorf("Start() = %v, expected ErrUnknownScene", err)
	}
}

func TestFrameOrder(t *testing.T) {
	d := New(registry.Env{})
	if err := d.Start("trace-a"); err != nil {
		t.Fatal(err)
	}
	scene := created["trace-a"]
	if scene.suspended {
		t.Fatal("started scene should be resumed")
	}

	d.Push(core.PointerDown(1, 2))
	d.Push(core.PointerUp(3, 4))
	scene.calls = nil
	if err := d.Frame(0.1, nil); err != nil {
		t.Fatal(err)
	}

	expected := []string{"handle", "handle", "update", "render"}
	if len(scene.calls) != len(expected) {
		t.Fatalf("calls = %v, expected %v", scene.calls, expected)
	}
	for i := range expected {
		if scene.calls[i] != expected[i] {
			t.Fatalf("calls = %v, expected %v", scene.calls, expected)
		}
	}
	if scene.events[0].Kind != core.EventPointerDown || scene.events[1].Kind != core.EventPointerUp {
		t.Errorf("events out of order: %v", scene.events)
	}

	// Events are consumed once
	scene.calls = nil
	_ = d.Frame(0.1, nil)
	if scene.calls[0] != "update" {
		t.Errorf("calls = %v, expected no handle on an empty queue", scene.calls)
	}
}

func TestSceneSwitchAfterFrame(t *testing.T) {
	d := New(registry.Env{})
	_ = d.Start("trace-a")
	a := created["trace-a"]
	a.switchTo = "trace-b"

	d.Push(core.PointerDown(0, 0))
	if err := d.Frame(0.1, nil); err != nil {
		t.Fatal(err)
	}

	if d.Scene().ID() != "trace-b" {
		t.Fatalf("Scene() = %q, expected trace-b", d.Scene().ID())
	}
	last := a.calls[len(a.calls)-2:]
	if last[0] != "render" || last[1] != "suspend" {
		t.Errorf("old scene should finish its frame before being suspended, calls = %v", a.calls)
	}

	b := created["trace-b"]
	if len(b.calls) != 2 || b.calls[0] != "init" || b.calls[1] != "resume" {
		t.Errorf("new scene calls = %v, expected [init resume]", b.calls)
	}
}

func TestSuspendCarriesAcrossSwitch(t *testing.T) {
	d := New(registry.Env{})
	_ = d.Start("trace-a")
	d.Suspend()

	a := created["trace-a"]
	if !a.suspended {
		t.Fatal("Suspend should reach the scene")
	}

	d.RunScene("trace-b")
	_ = d.Frame(0.1, nil)
	if !created["trace-b"].suspended {
		t.Error("scene switched to while suspended should stay suspended")
	}

	d.Resume()
	if created["trace-b"].suspended {
		t.Error("Resume should reach the new scene")
	}
}

func TestSuspendedFrameDropsInput(t *testing.T) {
	d := New(registry.Env{})
	_ = d.Start("trace-a")
	scene := created["trace-a"]
	scene.switchTo = "trace-b"

	d.Suspend()
	d.Push(core.PointerDown(1, 1))
	scene.calls = nil
	if err := d.Frame(0.1, nil); err != nil {
		t.Fatal(err)
	}

	for _, c := range scene.calls {
		if c == "handle" {
			t.Fatalf("suspended scene received input, calls = %v", scene.calls)
		}
	}
	if d.Scene().ID() != "trace-a" {
		t.Errorf("tap while suspended switched to %q", d.Scene().ID())
	}

	// Nothing is replayed after resuming
	d.Resume()
	scene.calls = nil
	_ = d.Frame(0.1, nil)
	if len(scene.events) != 0 {
		t.Errorf("events delivered after resume: %v", scene.events)
	}
	if d.Scene().ID() != "trace-a" {
		t.Errorf("Scene() = %q after resume, expected trace-a", d.Scene().ID())
	}
}
