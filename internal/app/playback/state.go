// Package playback provides the single-slot playback session.
package playback

import "github.com/osa030/videoplayer/internal/domain/video"

// Status represents the coarse playback status.
type Status int

const (
	StatusStopped Status = iota // No video playing
	StatusPlaying               // Video is playing
	StatusPaused                // Video is paused
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusStopped:
		return "stopped"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// State is the current playback state: either Stopped or Playing.
type State interface {
	Status() Status
	isState()
}

// Stopped means nothing is playing.
type Stopped struct{}

// Status returns StatusStopped.
func (Stopped) Status() Status { return StatusStopped }

func (Stopped) isState() {}

// Playing holds the current video. Paused is only meaningful here.
type Playing struct {
	Video  video.Video
	Paused bool
}

// Status returns StatusPaused or StatusPlaying.
func (p Playing) Status() Status {
	if p.Paused {
		return StatusPaused
	}
	return StatusPlaying
}

func (Playing) isState() {}
