package playback

import (
	"math/rand/v2"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/videoplayer/internal/domain/video"
)

// Errors
var (
	ErrNoVideoPlaying = errors.New("no video is currently playing")
	ErrAlreadyPaused  = errors.New("video already paused")
	ErrNotPaused      = errors.New("video is not paused")
	ErrCatalogEmpty   = errors.New("no videos available")
)

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used by PlayRandom.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		s.rand = r
	}
}

// WithSeed seeds the random source used by PlayRandom. Zero keeps the default.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		if seed != 0 {
			s.rand = rand.New(rand.NewPCG(seed, seed))
		}
	}
}

// Session owns the single "now playing" slot.
// It is not safe for concurrent use; the owner serializes calls.
type Session struct {
	state State
	rand  *rand.Rand
}

// NewSession creates a stopped session.
func NewSession(opts ...Option) *Session {
	now := uint64(time.Now().UnixNano())
	s := &Session{
		state: Stopped{},
		rand:  rand.New(rand.NewPCG(now, now>>1)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the current playback state.
func (s *Session) Current() State {
	return s.state
}

// Play starts the video. Anything already playing is stopped first,
// including the same video.
func (s *Session) Play(v video.Video) []Event {
	events := make([]Event, 0, 2)

	if _, ok := s.state.(Playing); ok {
		stopped, _ := s.Stop()
		events = append(events, stopped)
	}

	s.state = Playing{Video: v}
	zlog.Debug().Msgf("playback: started: video=%s", v.ID)

	return append(events, Event{Type: EventStarted, Video: v})
}

// PlayRandom plays a uniformly chosen video from candidates.
// The currently playing video remains eligible.
func (s *Session) PlayRandom(candidates []video.Video) ([]Event, error) {
	if len(candidates) == 0 {
		return nil, ErrCatalogEmpty
	}
	v := candidates[s.rand.IntN(len(candidates))]
	zlog.Debug().Msgf("playback: random pick: video=%s candidates=%d", v.ID, len(candidates))
	return s.Play(v), nil
}

// Stop stops the current video, paused or not.
func (s *Session) Stop() (Event, error) {
	p, ok := s.state.(Playing)
	if !ok {
		return Event{}, ErrNoVideoPlaying
	}

	s.state = Stopped{}
	zlog.Debug().Msgf("playback: stopped: video=%s", p.Video.ID)

	return Event{Type: EventStopped, Video: p.Video}, nil
}

// Pause pauses the current video.
// ErrAlreadyPaused is informational: the state is left untouched.
func (s *Session) Pause() (Event, error) {
	p, ok := s.state.(Playing)
	if !ok {
		return Event{}, ErrNoVideoPlaying
	}
	if p.Paused {
		return Event{Type: EventPaused, Video: p.Video}, ErrAlreadyPaused
	}

	s.state = Playing{Video: p.Video, Paused: true}
	zlog.Debug().Msgf("playback: paused: video=%s", p.Video.ID)

	return Event{Type: EventPaused, Video: p.Video}, nil
}

// Resume continues a paused video.
func (s *Session) Resume() (Event, error) {
	p, ok := s.state.(Playing)
	if !ok {
		return Event{}, ErrNoVideoPlaying
	}
	if !p.Paused {
		return Event{Type: EventResumed, Video: p.Video}, ErrNotPaused
	}

	s.state = Playing{Video: p.Video}
	zlog.Debug().Msgf("playback: resumed: video=%s", p.Video.ID)

	return Event{Type: EventResumed, Video: p.Video}, nil
}

// IsPlaying reports whether the given video is the current one, paused or not.
func (s *Session) IsPlaying(videoID string) bool {
	p, ok := s.state.(Playing)
	return ok && p.Video.ID == videoID
}
