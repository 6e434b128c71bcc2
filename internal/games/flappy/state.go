package flappy

// State is the coarse phase of the scene.
type State int

const (
	StateLoading State = iota
	StateRunning
	StateError // Terminal
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "LOADING"
	case StateRunning:
		return "RUNNING"
	case StateError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Gameplay is the round phase while the scene is running.
type Gameplay int

const (
	GameplayUninitialized Gameplay = iota
	GameplayWaitingToStart
	GameplayPlaying
)

// String returns a human-readable name for the gameplay phase.
func (g Gameplay) String() string {
	switch g {
	case GameplayUninitialized:
		return "UNINITIALIZED"
	case GameplayWaitingToStart:
		return "WAITING_TO_START"
	case GameplayPlaying:
		return "PLAYING"
	default:
		return "UNKNOWN"
	}
}
