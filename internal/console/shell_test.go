package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/videoplayer/internal/app/catalog"
	"github.com/osa030/videoplayer/internal/app/playback"
	"github.com/osa030/videoplayer/internal/app/player"
	"github.com/osa030/videoplayer/internal/domain/video"
)

const (
	greeting = "Hello and welcome to YouTube, what would you like to do?\n" +
		"Enter HELP for list of available commands or EXIT to terminate.\n"
	goodbye = "YouTube has now terminated its execution. Thank you and goodbye!\n"
)

func newShell(t *testing.T, mode string) *Shell {
	t.Helper()
	c, err := catalog.New([]video.Video{
		cats,
		{ID: "funny_dogs_video_id", Title: "Funny Dogs", Tags: []string{"#dog", "#animal"}},
	})
	require.NoError(t, err)
	return NewShell(player.New(c, playback.WithSeed(1)), "YT> ", mode)
}

func run(t *testing.T, s *Shell, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, s.Run(context.Background(), strings.NewReader(input), &out))
	return out.String()
}

func TestShell_Session(t *testing.T) {
	input := strings.Join([]string{
		"NUMBER_OF_VIDEOS",
		"play amazing_cats_video_id",
		"PAUSE",
		"PAUSE",
		"SHOW_PLAYING",
		"CONTINUE",
		"CREATE_PLAYLIST Favs",
		"CREATE_PLAYLIST FAVS",
		"ADD_TO_PLAYLIST favs amazing_cats_video_id",
		"ADD_TO_PLAYLIST favs amazing_cats_video_id",
		"REMOVE_FROM_PLAYLIST favs funny_dogs_video_id",
		"SHOW_PLAYLIST Favs",
		"SHOW_ALL_PLAYLISTS",
		"STOP",
		"STOP",
		"DANCE",
		"EXIT",
		"NUMBER_OF_VIDEOS",
	}, "\n")

	expected := greeting +
		"2 videos in the library\n" +
		"Playing video: Amazing Cats\n" +
		"Pausing video: Amazing Cats\n" +
		"Video already paused: Amazing Cats\n" +
		"Currently playing: Amazing Cats (amazing_cats_video_id) [#cat #animal] - PAUSED\n" +
		"Continuing video: Amazing Cats\n" +
		"Successfully created new playlist: Favs\n" +
		"Cannot create playlist: A playlist with the same name already exists\n" +
		"Added video to favs: Amazing Cats\n" +
		"Cannot add video to favs: Video already added\n" +
		"Cannot remove video from favs: Video is not in playlist\n" +
		"Showing playlist: Favs\n" +
		"  Amazing Cats (amazing_cats_video_id) [#cat #animal]\n" +
		"Showing all playlists:\n" +
		"  Favs\n" +
		"Stopping video: Amazing Cats\n" +
		"Cannot stop video: No video is currently playing\n" +
		"Please enter a valid command, type HELP for a list of available commands.\n" +
		goodbye

	assert.Equal(t, expected, run(t, newShell(t, PromptNever), input))
}

func TestShell_Search(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "select a result",
			input: "SEARCH_VIDEOS_WITH_TAG #ANIMAL\n2\nSHOW_PLAYING\n",
			expected: "Here are the results for #ANIMAL:\n" +
				"  1) Amazing Cats (amazing_cats_video_id) [#cat #animal]\n" +
				"  2) Funny Dogs (funny_dogs_video_id) [#dog #animal]\n" +
				"Would you like to play any of the above? If yes, specify the number of the video.\n" +
				"If your answer is not a valid number, we will assume it's a no.\n" +
				"Playing video: Funny Dogs\n" +
				"Currently playing: Funny Dogs (funny_dogs_video_id) [#dog #animal]\n",
		},
		{
			name:  "decline",
			input: "SEARCH_VIDEOS cat\nno\nSHOW_PLAYING\n",
			expected: "Here are the results for cat:\n" +
				"  1) Amazing Cats (amazing_cats_video_id) [#cat #animal]\n" +
				"Would you like to play any of the above? If yes, specify the number of the video.\n" +
				"If your answer is not a valid number, we will assume it's a no.\n" +
				"No video is currently playing\n",
		},
		{
			name:     "no results",
			input:    "SEARCH_VIDEOS blah\n",
			expected: "No search results for blah\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, newShell(t, PromptNever), tt.input)
			assert.Equal(t, greeting+tt.expected+goodbye, out)
		})
	}
}

func TestShell_Flagging(t *testing.T) {
	input := strings.Join([]string{
		"PLAY amazing_cats_video_id",
		"FLAG_VIDEO amazing_cats_video_id dont_like_cats",
		"FLAG_VIDEO amazing_cats_video_id",
		"PLAY amazing_cats_video_id",
		"SHOW_ALL_VIDEOS",
		"SEARCH_VIDEOS cat",
		"ALLOW_VIDEO amazing_cats_video_id",
		"ALLOW_VIDEO amazing_cats_video_id",
		"FLAG_VIDEO another_id",
	}, "\n")

	expected := greeting +
		"Playing video: Amazing Cats\n" +
		"Stopping video: Amazing Cats\n" +
		"Successfully flagged video: Amazing Cats (reason: dont_like_cats)\n" +
		"Cannot flag video: Video is already flagged\n" +
		"Cannot play video: Video is currently flagged (reason: dont_like_cats)\n" +
		"Here's a list of all available videos:\n" +
		"  Amazing Cats (amazing_cats_video_id) [#cat #animal] - FLAGGED (reason: dont_like_cats)\n" +
		"  Funny Dogs (funny_dogs_video_id) [#dog #animal]\n" +
		"No search results for cat\n" +
		"Successfully removed flag from video: Amazing Cats\n" +
		"Cannot remove flag from video: Video is not flagged\n" +
		"Cannot flag video: Video does not exist\n" +
		goodbye

	assert.Equal(t, expected, run(t, newShell(t, PromptNever), input))
}

func TestShell_Prompt(t *testing.T) {
	out := run(t, newShell(t, PromptAlways), "EXIT\n")
	assert.Equal(t, greeting+"YT> "+goodbye, out)

	out = run(t, newShell(t, PromptAuto), "EXIT\n")
	assert.Equal(t, greeting+goodbye, out, "non-terminal input gets no prompt")
}

func TestShell_Help(t *testing.T) {
	out := run(t, newShell(t, PromptNever), "HELP\n")
	assert.Contains(t, out, "Available commands:\n")
	assert.Contains(t, out, "    PLAY <video_id> - Plays specified video.\n")
}

func TestShell_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	require.NoError(t, newShell(t, PromptNever).Run(ctx, strings.NewReader(""), &out))
	assert.Equal(t, greeting+goodbye, out.String())
}

func TestShell_CanceledWhileReading(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	done := make(chan error, 1)
	go func() { done <- newShell(t, PromptNever).Run(ctx, pr, &out) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Equal(t, greeting+goodbye, out.String())
}

func TestShell_LiteralArguments(t *testing.T) {
	input := "CREATE_PLAYLIST -chill\nCREATE_PLAYLIST @mix\nSHOW_ALL_PLAYLISTS\n"

	expected := greeting +
		"Successfully created new playlist: -chill\n" +
		"Successfully created new playlist: @mix\n" +
		"Showing all playlists:\n" +
		"  -chill\n" +
		"  @mix\n" +
		goodbye

	assert.Equal(t, expected, run(t, newShell(t, PromptNever), input))
}
