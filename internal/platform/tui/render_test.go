package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-scene/internal/core"
)

// promptScene is a scene with a fixed banner.
type promptScene struct {
	banner string
}

func (s promptScene) ID() string                   { return "prompt" }
func (s promptScene) ViewSize() (float64, float64) { return 100, 100 }
func (s promptScene) Initialize() bool             { return true }
func (s promptScene) Suspend()                     {}
func (s promptScene) Resume()                      {}
func (s promptScene) Handle(core.Event)            {}
func (s promptScene) Update(float64)               {}
func (s promptScene) Render(core.Surface)          {}
func (s promptScene) Banner() string               { return s.banner }

func TestDrawBanner(t *testing.T) {
	tests := []struct {
		name   string
		banner string
		paused bool
		want   string
		drawn  bool
	}{
		{"prompt", "TAP TO START", false, "    TAP TO START    ", true},
		{"paused covers prompt", "TAP TO START", true, "       PAUSED       ", true},
		{"paused without prompt", "", true, "       PAUSED       ", true},
		{"nothing to show", "", false, strings.Repeat(" ", 20), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			screen := core.NewScreen(20, 5)
			if tc.paused && tc.banner != "" {
				// The last frame drawn before pausing
				DrawBanner(screen, promptScene{banner: tc.banner}, false)
			}

			drawn := DrawBanner(screen, promptScene{banner: tc.banner}, tc.paused)
			if drawn != tc.drawn {
				t.Errorf("DrawBanner() = %v, expected %v", drawn, tc.drawn)
			}

			lines := strings.Split(dumpScreen(screen), "\n")
			if lines[2] != tc.want {
				t.Errorf("middle row = %q, expected %q", lines[2], tc.want)
			}
		})
	}
}

func TestDrawBannerWithoutScene(t *testing.T) {
	screen := core.NewScreen(20, 5)
	if DrawBanner(screen, nil, false) {
		t.Error("DrawBanner should draw nothing without a scene")
	}
}
