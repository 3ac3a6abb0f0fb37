// Package playlist provides the Playlist domain entity.
package playlist

import (
	"github.com/google/uuid"

	"github.com/osa030/videoplayer/internal/domain/video"
)

// Playlist represents a user-defined, named collection of videos.
// Membership is a set of video IDs kept in insertion order.
type Playlist struct {
	ID       string   // Generated playlist ID (log context only)
	Name     string   // Name as entered by the user
	videoIDs []string // Member video IDs in insertion order
}

// New creates an empty playlist.
func New(name string) *Playlist {
	return &Playlist{
		ID:       uuid.New().String(),
		Name:     name,
		videoIDs: make([]string, 0),
	}
}

// Key returns the case-insensitive lookup key for a playlist name.
func Key(name string) string {
	return video.Fold(name)
}

// VideoIDs returns the member video IDs in insertion order.
func (p *Playlist) VideoIDs() []string {
	ids := make([]string, len(p.videoIDs))
	copy(ids, p.videoIDs)
	return ids
}

// Len returns the number of videos in the playlist.
func (p *Playlist) Len() int {
	return len(p.videoIDs)
}

// Contains reports whether the video is a member.
func (p *Playlist) Contains(videoID string) bool {
	for _, id := range p.videoIDs {
		if id == videoID {
			return true
		}
	}
	return false
}

// Add appends the video. Returns false if it was already a member.
func (p *Playlist) Add(videoID string) bool {
	if p.Contains(videoID) {
		return false
	}
	p.videoIDs = append(p.videoIDs, videoID)
	return true
}

// Remove drops the video. Returns false if it was not a member.
func (p *Playlist) Remove(videoID string) bool {
	for i, id := range p.videoIDs {
		if id == videoID {
			p.videoIDs = append(p.videoIDs[:i], p.videoIDs[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all videos.
func (p *Playlist) Clear() {
	p.videoIDs = make([]string, 0)
}
