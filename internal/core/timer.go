package core

import "time"

// Timer measures seconds elapsed since its last reset.
type Timer interface {
	Reset()
	ElapsedSeconds() float64
}

// Ticker is implemented by timers that only advance when the frame loop
// feeds them time. Scenes tick such timers from Update, so a suspended scene
// freezes them.
type Ticker interface {
	Tick(dt float64)
}

// Pauser is implemented by timers that run on their own clock. Scenes pause
// them on Suspend and unpause them on Resume so suspended time is not counted.
type Pauser interface {
	Pause()
	Unpause()
}

// PauseTimer pauses t if it runs on its own clock.
func PauseTimer(t Timer) {
	if p, ok := t.(Pauser); ok {
		p.Pause()
	}
}

// UnpauseTimer resumes t if it runs on its own clock.
func UnpauseTimer(t Timer) {
	if p, ok := t.(Pauser); ok {
		p.Unpause()
	}
}

// FrameTimer is a Timer driven by frame delta times.
type FrameTimer struct {
	elapsed float64
}

// NewFrameTimer creates a frame-driven timer at zero.
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{}
}

// Reset sets the elapsed time back to zero.
func (t *FrameTimer) Reset() {
	t.elapsed = 0
}

// Tick adds dt seconds. Negative or non-finite deltas are ignored.
func (t *FrameTimer) Tick(dt float64) {
	if dt <= 0 || !Finite(dt) {
		return
	}
	t.elapsed += dt
}

// ElapsedSeconds returns the seconds accumulated since the last reset.
func (t *FrameTimer) ElapsedSeconds() float64 {
	return t.elapsed
}

// WallTimer is a Timer backed by the monotonic wall clock.
// Time spent paused is excluded.
type WallTimer struct {
	now      func() time.Time
	start    time.Time
	paused   bool
	pausedAt time.Time
}

// NewWallTimer creates a running wall-clock timer started now.
// A nil now function defaults to time.Now.
func NewWallTimer(now func() time.Time) *WallTimer {
	if now == nil {
		now = time.Now
	}
	return &WallTimer{now: now, start: now()}
}

// Reset restarts the timer from the current instant. A paused timer stays
// paused at zero.
func (t *WallTimer) Reset() {
	t.start = t.now()
	t.pausedAt = t.start
}

// Pause stops the timer until Unpause.
func (t *WallTimer) Pause() {
	if t.paused {
		return
	}
	t.paused = true
	t.pausedAt = t.now()
}

// Unpause continues the timer, skipping the time spent paused.
func (t *WallTimer) Unpause() {
	if !t.paused {
		return
	}
	t.paused = false
	t.start = t.start.Add(t.now().Sub(t.pausedAt))
}

// ElapsedSeconds returns the unpaused wall time since the last reset.
func (t *WallTimer) ElapsedSeconds() float64 {
	if t.paused {
		return t.pausedAt.Sub(t.start).Seconds()
	}
	return t.now().Sub(t.start).Seconds()
}
