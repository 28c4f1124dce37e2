// Package playback provides control of the single "now playing" slot.
package playback

// State represents the playback state.
type State int

const (
	StateStopped State = iota // Nothing playing
	StatePlaying              // Video is playing
	StatePaused               // Video is paused
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// IsActive reports whether a video occupies the slot (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}
