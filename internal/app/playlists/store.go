// Package playlists provides the store of user-defined playlists.
package playlists

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/videoplayer/internal/domain/playlist"
	"github.com/osa030/videoplayer/internal/domain/video"
)

// Errors
var (
	ErrDuplicateName    = errors.New("a playlist with the same name already exists")
	ErrPlaylistNotFound = errors.New("playlist does not exist")
	ErrVideoNotFound    = errors.New("video does not exist")
	ErrDuplicateVideo   = errors.New("video already added")
)

// Catalog is the catalog lookup the store needs.
type Catalog interface {
	FindByID(id string) (video.Video, error)
}

// Store holds playlists keyed by case-folded name.
// It is not safe for concurrent use; the owner serializes calls.
type Store struct {
	playlists map[string]*playlist.Playlist
	order     []string // keys in creation order, for stable listing
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		playlists: make(map[string]*playlist.Playlist),
		order:     make([]string, 0),
	}
}

// Create adds an empty playlist. The name keeps its original casing.
func (s *Store) Create(name string) (*playlist.Playlist, error) {
	key := playlist.Key(name)
	if existing, ok := s.playlists[key]; ok {
		return nil, errors.Wrapf(ErrDuplicateName, "existing playlist %q", existing.Name)
	}

	p := playlist.New(name)
	s.playlists[key] = p
	s.order = append(s.order, key)
	zlog.Debug().Msgf("playlists: created: name=%s id=%s", p.Name, p.ID)

	return p, nil
}

// Find looks the playlist up ignoring case.
func (s *Store) Find(name string) (*playlist.Playlist, error) {
	p, ok := s.playlists[playlist.Key(name)]
	if !ok {
		return nil, ErrPlaylistNotFound
	}
	return p, nil
}

// AddVideo appends a catalog video to the playlist.
func (s *Store) AddVideo(name, videoID string, catalog Catalog) (video.Video, error) {
	p, err := s.Find(name)
	if err != nil {
		return video.Video{}, err
	}

	v, err := catalog.FindByID(videoID)
	if err != nil {
		return video.Video{}, ErrVideoNotFound
	}

	if !p.Add(v.ID) {
		return v, ErrDuplicateVideo
	}
	zlog.Debug().Msgf("playlists: added: playlist=%s video=%s size=%d", p.ID, v.ID, p.Len())

	return v, nil
}

// RemoveVideo drops a catalog video from the playlist.
// Removing a video that is not a member succeeds with removed=false.
func (s *Store) RemoveVideo(name, videoID string, catalog Catalog) (v video.Video, removed bool, err error) {
	p, err := s.Find(name)
	if err != nil {
		return video.Video{}, false, err
	}

	v, err = catalog.FindByID(videoID)
	if err != nil {
		return video.Video{}, false, ErrVideoNotFound
	}

	removed = p.Remove(v.ID)
	zlog.Debug().Msgf("playlists: remove: playlist=%s video=%s removed=%t", p.ID, v.ID, removed)

	return v, removed, nil
}

// Clear empties the playlist.
func (s *Store) Clear(name string) error {
	p, err := s.Find(name)
	if err != nil {
		return err
	}
	p.Clear()
	return nil
}

// Delete removes the playlist entirely.
func (s *Store) Delete(name string) error {
	key := playlist.Key(name)
	p, ok := s.playlists[key]
	if !ok {
		return ErrPlaylistNotFound
	}

	delete(s.playlists, key)
	s.order = slices.DeleteFunc(s.order, func(k string) bool { return k == key })
	zlog.Debug().Msgf("playlists: deleted: name=%s id=%s", p.Name, p.ID)

	return nil
}

// ListAll returns the playlist names sorted ignoring case.
// Names that fold to the same key cannot coexist, so ties keep creation order.
func (s *Store) ListAll() []string {
	keys := slices.Clone(s.order)
	slices.SortStableFunc(keys, cmp.Compare[string])

	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, s.playlists[k].Name)
	}
	return names
}

// ListVideos returns the playlist's videos in membership order.
func (s *Store) ListVideos(name string, catalog Catalog) ([]video.Video, error) {
	p, err := s.Find(name)
	if err != nil {
		return nil, err
	}

	ids := p.VideoIDs()
	videos := make([]video.Video, 0, len(ids))
	for _, id := range ids {
		v, err := catalog.FindByID(id)
		if err != nil {
			return nil, errors.Wrapf(err, "playlist %q references video %q", p.Name, id)
		}
		videos = append(videos, v)
	}
	return videos, nil
}

// Len returns the number of playlists.
func (s *Store) Len() int {
	return len(s.playlists)
}
