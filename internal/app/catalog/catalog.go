// Package catalog provides the read-only video catalog.
package catalog

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/osa030/videoplayer/internal/domain/video"
)

// Errors
var (
	ErrNotFound    = errors.New("video not found")
	ErrDuplicateID = errors.New("duplicate video id")
	ErrEmptyID     = errors.New("empty video id")
)

// Catalog is the immutable set of known videos.
type Catalog struct {
	byID   map[string]video.Video
	sorted []video.Video // by title, stable on load order
}

// New creates a catalog from the given videos.
func New(videos []video.Video) (*Catalog, error) {
	c := &Catalog{
		byID:   make(map[string]video.Video, len(videos)),
		sorted: make([]video.Video, 0, len(videos)),
	}

	for _, v := range videos {
		if v.ID == "" {
			return nil, errors.Wrapf(ErrEmptyID, "video %q", v.Title)
		}
		if _, ok := c.byID[v.ID]; ok {
			return nil, errors.Wrapf(ErrDuplicateID, "video %q", v.ID)
		}
		v.Tags = v.CloneTags()
		c.byID[v.ID] = v
		c.sorted = append(c.sorted, v)
	}

	slices.SortStableFunc(c.sorted, func(a, b video.Video) int {
		return cmp.Compare(a.Title, b.Title)
	})

	return c, nil
}

// FindByID returns the video with exactly the given ID.
func (c *Catalog) FindByID(id string) (video.Video, error) {
	v, ok := c.byID[id]
	if !ok {
		return video.Video{}, ErrNotFound
	}
	return v, nil
}

// Contains reports whether a video with the ID exists.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// All returns every video sorted by title.
func (c *Catalog) All() []video.Video {
	result := make([]video.Video, len(c.sorted))
	copy(result, c.sorted)
	return result
}

// Count returns the number of videos.
func (c *Catalog) Count() int {
	return len(c.sorted)
}
