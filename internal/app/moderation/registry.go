// Package moderation tracks videos flagged as inappropriate.
package moderation

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// DefaultReason is used when a video is flagged without a reason.
const DefaultReason = "Not supplied"

var (
	ErrAlreadyFlagged = errors.New("video is already flagged")
	ErrNotFlagged     = errors.New("video is not flagged")
)

// Flag records why and when a video was flagged.
type Flag struct {
	VideoID   string
	Reason    string
	FlaggedAt time.Time
}

// Registry holds the flags by video ID.
// It is not safe for concurrent use; the owner serializes calls.
type Registry struct {
	flags map[string]Flag
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		flags: make(map[string]Flag),
	}
}

// Flag marks the video as flagged. A blank reason becomes DefaultReason.
func (r *Registry) Flag(videoID, reason string) (Flag, error) {
	if existing, ok := r.flags[videoID]; ok {
		return existing, ErrAlreadyFlagged
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultReason
	}

	f := Flag{
		VideoID:   videoID,
		Reason:    reason,
		FlaggedAt: time.Now(),
	}
	r.flags[videoID] = f
	return f, nil
}

// Allow removes the flag from the video.
func (r *Registry) Allow(videoID string) error {
	if _, ok := r.flags[videoID]; !ok {
		return ErrNotFlagged
	}
	delete(r.flags, videoID)
	return nil
}

// Get returns the flag for the video, if any.
func (r *Registry) Get(videoID string) (Flag, bool) {
	f, ok := r.flags[videoID]
	return f, ok
}

// IsFlagged reports whether the video is flagged.
func (r *Registry) IsFlagged(videoID string) bool {
	_, ok := r.flags[videoID]
	return ok
}

// Count returns the number of flagged videos.
func (r *Registry) Count() int {
	return len(r.flags)
}
