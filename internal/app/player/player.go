// Package player provides the command facade over the catalog, playback session,
// playlist store and moderation registry.
package player

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/videoplayer/internal/app/catalog"
	"github.com/osa030/videoplayer/internal/app/filter"
	"github.com/osa030/videoplayer/internal/app/moderation"
	"github.com/osa030/videoplayer/internal/app/playback"
	"github.com/osa030/videoplayer/internal/app/playlists"
	"github.com/osa030/videoplayer/internal/domain/playlist"
	"github.com/osa030/videoplayer/internal/domain/video"
)

// FlaggedError is returned when an operation targets a flagged video.
type FlaggedError struct {
	VideoID string
	Reason  string
}

func (e *FlaggedError) Error() string {
	return fmt.Sprintf("video is currently flagged (reason: %s)", e.Reason)
}

// Listing is a video together with its moderation state, for display.
type Listing struct {
	Video   video.Video
	Flagged bool
	Reason  string
}

// FlagResult describes a successful FlagVideo call.
type FlagResult struct {
	Video   video.Video
	Flag    moderation.Flag
	Stopped *playback.Event // set when the flagged video was playing
}

// Player composes the core components. Each method is one user command.
// It is not safe for concurrent use; commands are processed one at a time.
type Player struct {
	catalog   *catalog.Catalog
	session   *playback.Session
	playlists *playlists.Store
	flags     *moderation.Registry
	available *filter.Chain
}

// New creates a player over the catalog with a stopped session and no playlists.
func New(c *catalog.Catalog, opts ...playback.Option) *Player {
	flags := moderation.NewRegistry()
	return &Player{
		catalog:   c,
		session:   playback.NewSession(opts...),
		playlists: playlists.NewStore(),
		flags:     flags,
		available: filter.NewChain(filter.NewFlaggedFilter(flags)),
	}
}

// NumberOfVideos returns the catalog size.
func (p *Player) NumberOfVideos() int {
	return p.catalog.Count()
}

// ShowAllVideos lists the catalog sorted by title.
func (p *Player) ShowAllVideos() []Listing {
	return p.listings(p.catalog.All())
}

// Play plays the video, stopping whatever was playing.
func (p *Player) Play(videoID string) ([]playback.Event, error) {
	v, err := p.playable(videoID)
	if err != nil {
		return nil, err
	}
	zlog.Debug().Msgf("player: play: video=%s", v.ID)
	return p.session.Play(v), nil
}

// PlayRandom plays a random unflagged video.
func (p *Player) PlayRandom() ([]playback.Event, error) {
	return p.session.PlayRandom(p.available.Apply(p.catalog.All()))
}

// Stop stops the current video.
func (p *Player) Stop() (playback.Event, error) {
	return p.session.Stop()
}

// Pause pauses the current video.
func (p *Player) Pause() (playback.Event, error) {
	return p.session.Pause()
}

// Continue resumes the paused video.
func (p *Player) Continue() (playback.Event, error) {
	return p.session.Resume()
}

// ShowPlaying returns the current playback state.
func (p *Player) ShowPlaying() playback.State {
	return p.session.Current()
}

// CreatePlaylist creates an empty playlist.
func (p *Player) CreatePlaylist(name string) (*playlist.Playlist, error) {
	return p.playlists.Create(name)
}

// AddToPlaylist adds the video to the playlist.
// Checks run in order: playlist, video, flag, membership.
func (p *Player) AddToPlaylist(name, videoID string) (video.Video, error) {
	if _, err := p.playlists.Find(name); err != nil {
		return video.Video{}, err
	}
	if !p.catalog.Contains(videoID) {
		return video.Video{}, playlists.ErrVideoNotFound
	}
	if err := p.checkFlag(videoID); err != nil {
		return video.Video{}, err
	}
	return p.playlists.AddVideo(name, videoID, p.catalog)
}

// RemoveFromPlaylist removes the video from the playlist.
// removed is false when the video was not a member.
func (p *Player) RemoveFromPlaylist(name, videoID string) (video.Video, bool, error) {
	return p.playlists.RemoveVideo(name, videoID, p.catalog)
}

// ClearPlaylist removes every video from the playlist.
func (p *Player) ClearPlaylist(name string) error {
	return p.playlists.Clear(name)
}

// DeletePlaylist removes the playlist.
func (p *Player) DeletePlaylist(name string) error {
	return p.playlists.Delete(name)
}

// ShowAllPlaylists returns the playlist names sorted ignoring case.
func (p *Player) ShowAllPlaylists() []string {
	return p.playlists.ListAll()
}

// ShowPlaylist returns the playlist's videos in membership order.
func (p *Player) ShowPlaylist(name string) ([]Listing, error) {
	videos, err := p.playlists.ListVideos(name, p.catalog)
	if err != nil {
		return nil, err
	}
	return p.listings(videos), nil
}

// Search returns unflagged videos whose title contains term, sorted by title.
func (p *Player) Search(term string) []video.Video {
	chain := filter.NewChain(filter.NewFlaggedFilter(p.flags), &filter.TitleFilter{Term: term})
	return chain.Apply(p.catalog.All())
}

// SearchByTag returns unflagged videos carrying the tag, sorted by title.
func (p *Player) SearchByTag(tag string) []video.Video {
	chain := filter.NewChain(filter.NewFlaggedFilter(p.flags), &filter.TagFilter{Tag: tag})
	return chain.Apply(p.catalog.All())
}

// PlaySelection plays the match at the 1-based rank given in answer.
// Anything that is not a rank within matches is a decline: played is false
// and no error is returned.
func (p *Player) PlaySelection(matches []video.Video, answer string) (events []playback.Event, played bool, err error) {
	rank, convErr := strconv.Atoi(strings.TrimSpace(answer))
	if convErr != nil || rank < 1 || rank > len(matches) {
		zlog.Debug().Msgf("player: selection declined: answer=%q matches=%d", answer, len(matches))
		return nil, false, nil
	}

	events, err = p.Play(matches[rank-1].ID)
	if err != nil {
		return nil, false, err
	}
	return events, true, nil
}

// FlagVideo flags the video, stopping it first if it is playing.
func (p *Player) FlagVideo(videoID, reason string) (FlagResult, error) {
	v, err := p.catalog.FindByID(videoID)
	if err != nil {
		return FlagResult{}, err
	}
	if p.flags.IsFlagged(v.ID) {
		return FlagResult{Video: v}, moderation.ErrAlreadyFlagged
	}

	result := FlagResult{Video: v}
	if p.session.IsPlaying(v.ID) {
		ev, err := p.session.Stop()
		if err != nil {
			return FlagResult{}, errors.Wrap(err, "stop flagged video")
		}
		result.Stopped = &ev
	}

	f, err := p.flags.Flag(v.ID, reason)
	if err != nil {
		return FlagResult{}, err
	}
	result.Flag = f
	zlog.Debug().Msgf("player: flagged: video=%s reason=%q", v.ID, f.Reason)

	return result, nil
}

// AllowVideo removes the flag from the video.
func (p *Player) AllowVideo(videoID string) (video.Video, error) {
	v, err := p.catalog.FindByID(videoID)
	if err != nil {
		return video.Video{}, err
	}
	if err := p.flags.Allow(v.ID); err != nil {
		return v, err
	}
	zlog.Debug().Msgf("player: allowed: video=%s", v.ID)
	return v, nil
}

// playable returns the video if it exists and is not flagged.
func (p *Player) playable(videoID string) (video.Video, error) {
	v, err := p.catalog.FindByID(videoID)
	if err != nil {
		return video.Video{}, err
	}
	if err := p.checkFlag(v.ID); err != nil {
		return video.Video{}, err
	}
	return v, nil
}

func (p *Player) checkFlag(videoID string) error {
	if f, ok := p.flags.Get(videoID); ok {
		return &FlaggedError{VideoID: videoID, Reason: f.Reason}
	}
	return nil
}

func (p *Player) listings(videos []video.Video) []Listing {
	result := make([]Listing, 0, len(videos))
	for _, v := range videos {
		l := Listing{Video: v}
		if f, ok := p.flags.Get(v.ID); ok {
			l.Flagged = true
			l.Reason = f.Reason
		}
		result = append(result, l)
	}
	return result
}
