package playback

import "github.com/osa030/videoplayer/internal/domain/video"

// EventType represents a playback event type.
type EventType int

const (
	EventStarted EventType = iota // Video started playing
	EventStopped                  // Video stopped
	EventPaused                   // Video paused
	EventResumed                  // Video resumed
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventStopped:
		return "stopped"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// Event describes one transition of the session.
type Event struct {
	Type  EventType
	Video video.Video // Video the transition applied to
}
