package playback

import (
	"math/rand/v2"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/videoplayer/internal/domain/video"
)

var (
	cats = video.Video{ID: "v1", Title: "Amazing Cats", Tags: []string{"#cat", "#animal"}}
	dogs = video.Video{ID: "v2", Title: "Dog Tricks", Tags: []string{"#dog"}}
	fish = video.Video{ID: "v3", Title: "Fish Tank"}
)

func TestNewSession_Stopped(t *testing.T) {
	s := NewSession()

	assert.Equal(t, Stopped{}, s.Current())
	assert.Equal(t, StatusStopped, s.Current().Status())
	assert.False(t, s.IsPlaying("v1"))
}

func TestSession_Play(t *testing.T) {
	s := NewSession()

	events := s.Play(cats)

	assert.Equal(t, []Event{{Type: EventStarted, Video: cats}}, events)
	assert.Equal(t, Playing{Video: cats, Paused: false}, s.Current())
	assert.True(t, s.IsPlaying("v1"))
}

func TestSession_PlayReplacesCurrent(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(s *Session)
		second video.Video
	}{
		{
			name:   "different video",
			setup:  func(s *Session) { s.Play(cats) },
			second: dogs,
		},
		{
			name:   "same video",
			setup:  func(s *Session) { s.Play(cats) },
			second: cats,
		},
		{
			name: "paused video",
			setup: func(s *Session) {
				s.Play(cats)
				_, _ = s.Pause()
			},
			second: dogs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			tt.setup(s)

			events := s.Play(tt.second)

			require.Len(t, events, 2)
			assert.Equal(t, Event{Type: EventStopped, Video: cats}, events[0])
			assert.Equal(t, Event{Type: EventStarted, Video: tt.second}, events[1])
			assert.Equal(t, Playing{Video: tt.second, Paused: false}, s.Current())
		})
	}
}

func TestSession_Stop(t *testing.T) {
	t.Run("stopped", func(t *testing.T) {
		s := NewSession()

		_, err := s.Stop()

		assert.True(t, errors.Is(err, ErrNoVideoPlaying))
		assert.Equal(t, Stopped{}, s.Current())
	})

	t.Run("playing", func(t *testing.T) {
		s := NewSession()
		s.Play(cats)

		ev, err := s.Stop()

		require.NoError(t, err)
		assert.Equal(t, Event{Type: EventStopped, Video: cats}, ev)
		assert.Equal(t, Stopped{}, s.Current())
	})

	t.Run("paused", func(t *testing.T) {
		s := NewSession()
		s.Play(cats)
		_, err := s.Pause()
		require.NoError(t, err)

		ev, err := s.Stop()

		require.NoError(t, err)
		assert.Equal(t, cats, ev.Video)
		assert.Equal(t, StatusStopped, s.Current().Status())
	})

	t.Run("twice", func(t *testing.T) {
		s := NewSession()
		s.Play(cats)
		_, err := s.Stop()
		require.NoError(t, err)

		_, err = s.Stop()
		assert.True(t, errors.Is(err, ErrNoVideoPlaying))
	})
}

func TestSession_Pause(t *testing.T) {
	t.Run("stopped", func(t *testing.T) {
		s := NewSession()

		_, err := s.Pause()

		assert.True(t, errors.Is(err, ErrNoVideoPlaying))
		assert.Equal(t, Stopped{}, s.Current())
	})

	t.Run("twice", func(t *testing.T) {
		s := NewSession()
		s.Play(cats)

		ev, err := s.Pause()
		require.NoError(t, err)
		assert.Equal(t, Event{Type: EventPaused, Video: cats}, ev)
		assert.Equal(t, Playing{Video: cats, Paused: true}, s.Current())

		ev, err = s.Pause()
		assert.True(t, errors.Is(err, ErrAlreadyPaused))
		assert.Equal(t, cats, ev.Video, "already paused still reports the video")
		assert.Equal(t, Playing{Video: cats, Paused: true}, s.Current())
	})
}

func TestSession_Resume(t *testing.T) {
	t.Run("stopped", func(t *testing.T) {
		s := NewSession()

		_, err := s.Resume()

		assert.True(t, errors.Is(err, ErrNoVideoPlaying))
	})

	t.Run("not paused", func(t *testing.T) {
		s := NewSession()
		s.Play(cats)

		ev, err := s.Resume()

		assert.True(t, errors.Is(err, ErrNotPaused))
		assert.Equal(t, cats, ev.Video)
		assert.Equal(t, Playing{Video: cats}, s.Current())
	})

	t.Run("paused", func(t *testing.T) {
		s := NewSession()
		s.Play(cats)
		_, err := s.Pause()
		require.NoError(t, err)

		ev, err := s.Resume()

		require.NoError(t, err)
		assert.Equal(t, Event{Type: EventResumed, Video: cats}, ev)
		assert.Equal(t, Playing{Video: cats, Paused: false}, s.Current())
	})
}

func TestSession_PlayRandom(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		s := NewSession()

		events, err := s.PlayRandom(nil)

		assert.True(t, errors.Is(err, ErrCatalogEmpty))
		assert.Nil(t, events)
		assert.Equal(t, Stopped{}, s.Current())
	})

	t.Run("single candidate", func(t *testing.T) {
		s := NewSession()

		events, err := s.PlayRandom([]video.Video{dogs})

		require.NoError(t, err)
		assert.Equal(t, []Event{{Type: EventStarted, Video: dogs}}, events)
	})

	t.Run("current video stays eligible", func(t *testing.T) {
		s := NewSession()
		s.Play(cats)

		events, err := s.PlayRandom([]video.Video{cats})

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, EventStopped, events[0].Type)
		assert.Equal(t, cats, events[1].Video)
	})

	t.Run("every candidate reachable", func(t *testing.T) {
		s := NewSession(WithRand(rand.New(rand.NewPCG(1, 2))))
		candidates := []video.Video{cats, dogs, fish}
		seen := make(map[string]bool)

		for i := 0; i < 300; i++ {
			_, err := s.PlayRandom(candidates)
			require.NoError(t, err)
			p, ok := s.Current().(Playing)
			require.True(t, ok)
			seen[p.Video.ID] = true
		}

		assert.Len(t, seen, 3)
	})

	t.Run("seeded sessions agree", func(t *testing.T) {
		a := NewSession(WithSeed(42))
		b := NewSession(WithSeed(42))
		candidates := []video.Video{cats, dogs, fish}

		for i := 0; i < 10; i++ {
			_, err := a.PlayRandom(candidates)
			require.NoError(t, err)
			_, err = b.PlayRandom(candidates)
			require.NoError(t, err)
			assert.Equal(t, a.Current(), b.Current())
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "stopped", StatusStopped.String())
	assert.Equal(t, "playing", StatusPlaying.String())
	assert.Equal(t, "paused", StatusPaused.String())
	assert.Equal(t, "unknown", Status(99).String())
	assert.Equal(t, "started", EventStarted.String())
	assert.Equal(t, "resumed", EventResumed.String())
}
