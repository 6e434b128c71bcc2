package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-scene/internal/config"
	"github.com/vovakirdan/flappy-scene/internal/core"
)

func TestNewTimerFactory(t *testing.T) {
	tests := []struct {
		clock string
		frame bool
	}{
		{"", true},
		{"frame", true},
		{"wall", false},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			newTimer, err := newTimerFactory(tt.clock)
			if err != nil {
				t.Fatalf("newTimerFactory(%q) error = %v", tt.clock, err)
			}
			_, isFrame := newTimer().(*core.FrameTimer)
			if isFrame != tt.frame {
				t.Errorf("frame timer = %v, want %v", isFrame, tt.frame)
			}
		})
	}
}

func TestNewTimerFactoryUnknown(t *testing.T) {
	_, err := newTimerFactory("sundial")
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestAssetTable(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	out := assetTable("game", cfg.Assets)

	for _, want := range []string{"loading", "game-scene/flappy.png", "16x12", "720x40"} {
		if !strings.Contains(out, want) {
			t.Errorf("asset table missing %q:\n%s", want, out)
		}
	}
}
