// SPDX-License-Identifier: MIT

// Package player models how a video card reacts to the embedded
// YouTube player's reported events. The card owns the machine; the
// widget itself is external and only its events are interpreted here.
package player

// State is the card's playback presentation state.
type State int

const (
	// StateThumbnail shows the thumbnail; no player is mounted.
	StateThumbnail State = iota
	// StateLoading shows the thumbnail with a loading overlay while the
	// widget initialises.
	StateLoading
	// StatePlaying shows the mounted widget.
	StatePlaying
	// StateFailed shows the error overlay after a widget error.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateThumbnail:
		return "thumbnail"
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PlaybackState is the widget's own reported playback condition.
type PlaybackState int

const (
	PlaybackPlaying PlaybackState = iota
	PlaybackPaused
	PlaybackEnded
)

// Machine tracks one card's reaction to player events. Not safe for
// concurrent use; each card owns one.
type Machine struct {
	state State
}

// New returns a machine in the thumbnail state.
func New() *Machine {
	return &Machine{state: StateThumbnail}
}

// State returns the current presentation state.
func (m *Machine) State() State {
	return m.state
}

// Play handles the user clicking the thumbnail: mount the widget and
// wait for it to become ready. Clicks on an already playing card are
// ignored.
func (m *Machine) Play() {
	if m.state == StatePlaying || m.state == StateLoading {
		return
	}
	m.state = StateLoading
}

// Ready handles the widget's ready event. A ready signal outside a
// pending load (stale widget callbacks) is ignored.
func (m *Machine) Ready() {
	if m.state == StateLoading {
		m.state = StatePlaying
	}
}

// Error handles a widget error: drop back to the error overlay
// regardless of what the card was doing.
func (m *Machine) Error() {
	m.state = StateFailed
}

// StateChange handles the widget's playback-state events. Pause and end
// unmount the widget and restore the thumbnail.
func (m *Machine) StateChange(ps PlaybackState) {
	switch ps {
	case PlaybackPaused, PlaybackEnded:
		if m.state == StatePlaying {
			m.state = StateThumbnail
		}
	case PlaybackPlaying:
		if m.state == StateLoading {
			m.state = StatePlaying
		}
	}
}
