package core

import (
	"math"
	"testing"
	"time"
)

func TestFrameTimer(t *testing.T) {
	timer := NewFrameTimer()

	timer.Tick(0.25)
	timer.Tick(0.5)
	timer.Tick(-1)
	timer.Tick(math.NaN())

	if timer.ElapsedSeconds() != 0.75 {
		t.Errorf("ElapsedSeconds() = %v, expected 0.75", timer.ElapsedSeconds())
	}

	timer.Reset()
	if timer.ElapsedSeconds() != 0 {
		t.Errorf("Reset should zero the timer, got %v", timer.ElapsedSeconds())
	}
}

func TestWallTimer(t *testing.T) {
	now := time.Unix(100, 0)
	clock := func() time.Time { return now }

	timer := NewWallTimer(clock)
	now = now.Add(1500 * time.Millisecond)

	if timer.ElapsedSeconds() != 1.5 {
		t.Errorf("ElapsedSeconds() = %v, expected 1.5", timer.ElapsedSeconds())
	}

	timer.Reset()
	now = now.Add(250 * time.Millisecond)
	if timer.ElapsedSeconds() != 0.25 {
		t.Errorf("ElapsedSeconds() after reset = %v, expected 0.25", timer.ElapsedSeconds())
	}
}

func TestWallTimerPause(t *testing.T) {
	now := time.Unix(100, 0)
	timer := NewWallTimer(func() time.Time { return now })

	now = now.Add(time.Second)
	PauseTimer(timer)
	now = now.Add(time.Minute)
	if timer.ElapsedSeconds() != 1 {
		t.Errorf("ElapsedSeconds() while paused = %v, expected 1", timer.ElapsedSeconds())
	}

	UnpauseTimer(timer)
	now = now.Add(500 * time.Millisecond)
	if timer.ElapsedSeconds() != 1.5 {
		t.Errorf("ElapsedSeconds() after unpause = %v, expected 1.5", timer.ElapsedSeconds())
	}

	// Pausing twice keeps the first pause point
	timer.Pause()
	now = now.Add(time.Second)
	timer.Pause()
	timer.Unpause()
	timer.Unpause()
	if timer.ElapsedSeconds() != 1.5 {
		t.Errorf("ElapsedSeconds() after double pause = %v, expected 1.5", timer.ElapsedSeconds())
	}

	timer.Pause()
	timer.Reset()
	now = now.Add(time.Second)
	if timer.ElapsedSeconds() != 0 {
		t.Errorf("Reset while paused should hold at zero, got %v", timer.ElapsedSeconds())
	}
}

func TestPauseTimerIgnoresFrameTimer(t *testing.T) {
	timer := NewFrameTimer()
	timer.Tick(1)
	PauseTimer(timer)
	timer.Tick(1)
	if timer.ElapsedSeconds() != 2 {
		t.Errorf("ElapsedSeconds() = %v, frame timers only stop when not ticked", timer.ElapsedSeconds())
	}
}

func TestTimersImplementInterfaces(t *testing.T) {
	var _ Timer = NewFrameTimer()
	var _ Ticker = NewFrameTimer()
	var _ Timer = NewWallTimer(nil)
	var _ Pauser = NewWallTimer(nil)
}
