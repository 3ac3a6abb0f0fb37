package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/osa030/videoplayer/internal/app/catalog"
	"github.com/osa030/videoplayer/internal/app/moderation"
	"github.com/osa030/videoplayer/internal/app/playback"
	"github.com/osa030/videoplayer/internal/app/player"
	"github.com/osa030/videoplayer/internal/app/playlists"
	"github.com/osa030/videoplayer/internal/domain/video"
)

// Renderer turns command results into the user-facing text.
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (r *Renderer) println(a ...any) {
	_, _ = fmt.Fprintln(r.w, a...)
}

func (r *Renderer) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.w, format+"\n", a...)
}

// FormatVideo renders "Title (id) [#tag1 #tag2]".
func FormatVideo(v video.Video) string {
	return fmt.Sprintf("%s (%s) [%s]", v.Title, v.ID, strings.Join(v.Tags, " "))
}

// FormatListing renders a video line with its FLAGGED suffix, if any.
func FormatListing(l player.Listing) string {
	s := FormatVideo(l.Video)
	if l.Flagged {
		s += fmt.Sprintf(" - FLAGGED (reason: %s)", l.Reason)
	}
	return s
}

// Reason maps a failure to the text shown after "Cannot ...: ".
func Reason(err error) string {
	var flagged *player.FlaggedError
	switch {
	case errors.As(err, &flagged):
		return fmt.Sprintf("Video is currently flagged (reason: %s)", flagged.Reason)
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, playlists.ErrVideoNotFound):
		return "Video does not exist"
	case errors.Is(err, playlists.ErrPlaylistNotFound):
		return "Playlist does not exist"
	case errors.Is(err, playlists.ErrDuplicateName):
		return "A playlist with the same name already exists"
	case errors.Is(err, playlists.ErrDuplicateVideo):
		return "Video already added"
	case errors.Is(err, playback.ErrNoVideoPlaying):
		return "No video is currently playing"
	case errors.Is(err, playback.ErrNotPaused):
		return "Video is not paused"
	case errors.Is(err, playback.ErrCatalogEmpty):
		return "No videos available"
	case errors.Is(err, moderation.ErrAlreadyFlagged):
		return "Video is already flagged"
	case errors.Is(err, moderation.ErrNotFlagged):
		return "Video is not flagged"
	default:
		return err.Error()
	}
}

// Events renders playback transitions.
func (r *Renderer) Events(events []playback.Event) {
	for _, ev := range events {
		r.Event(ev)
	}
}

// Event renders a single playback transition.
func (r *Renderer) Event(ev playback.Event) {
	switch ev.Type {
	case playback.EventStarted:
		r.printf("Playing video: %s", ev.Video.Title)
	case playback.EventStopped:
		r.printf("Stopping video: %s", ev.Video.Title)
	case playback.EventPaused:
		r.printf("Pausing video: %s", ev.Video.Title)
	case playback.EventResumed:
		r.printf("Continuing video: %s", ev.Video.Title)
	}
}

// Failure renders "Cannot <action>: <reason>".
func (r *Renderer) Failure(action string, err error) {
	r.printf("Cannot %s: %s", action, Reason(err))
}

// NumberOfVideos renders the catalog size.
func (r *Renderer) NumberOfVideos(n int) {
	r.printf("%d videos in the library", n)
}

// AllVideos renders the catalog listing.
func (r *Renderer) AllVideos(listings []player.Listing) {
	r.println("Here's a list of all available videos:")
	for _, l := range listings {
		r.println("  " + FormatListing(l))
	}
}

// Play renders the result of PLAY and PLAY_RANDOM.
func (r *Renderer) Play(events []playback.Event, err error) {
	switch {
	case errors.Is(err, playback.ErrCatalogEmpty):
		r.println("No videos available")
	case err != nil:
		r.Failure("play video", err)
	default:
		r.Events(events)
	}
}

// Stop renders the result of STOP.
func (r *Renderer) Stop(ev playback.Event, err error) {
	if err != nil {
		r.Failure("stop video", err)
		return
	}
	r.Event(ev)
}

// Pause renders the result of PAUSE.
func (r *Renderer) Pause(ev playback.Event, err error) {
	switch {
	case errors.Is(err, playback.ErrAlreadyPaused):
		r.printf("Video already paused: %s", ev.Video.Title)
	case err != nil:
		r.Failure("pause video", err)
	default:
		r.Event(ev)
	}
}

// Continue renders the result of CONTINUE.
func (r *Renderer) Continue(ev playback.Event, err error) {
	if err != nil {
		r.Failure("continue video", err)
		return
	}
	r.Event(ev)
}

// Playing renders SHOW_PLAYING.
func (r *Renderer) Playing(state playback.State) {
	p, ok := state.(playback.Playing)
	if !ok {
		r.println("No video is currently playing")
		return
	}
	line := "Currently playing: " + FormatVideo(p.Video)
	if p.Paused {
		line += " - PAUSED"
	}
	r.println(line)
}

// CreatePlaylist renders CREATE_PLAYLIST.
func (r *Renderer) CreatePlaylist(name string, err error) {
	if err != nil {
		r.Failure("create playlist", err)
		return
	}
	r.printf("Successfully created new playlist: %s", name)
}

// AddToPlaylist renders ADD_TO_PLAYLIST.
func (r *Renderer) AddToPlaylist(name string, v video.Video, err error) {
	if err != nil {
		r.Failure("add video to "+name, err)
		return
	}
	r.printf("Added video to %s: %s", name, v.Title)
}

// RemoveFromPlaylist renders REMOVE_FROM_PLAYLIST.
func (r *Renderer) RemoveFromPlaylist(name string, v video.Video, removed bool, err error) {
	switch {
	case err != nil:
		r.Failure("remove video from "+name, err)
	case !removed:
		r.printf("Cannot remove video from %s: Video is not in playlist", name)
	default:
		r.printf("Removed video from %s: %s", name, v.Title)
	}
}

// ClearPlaylist renders CLEAR_PLAYLIST.
func (r *Renderer) ClearPlaylist(name string, err error) {
	if err != nil {
		r.Failure("clear playlist "+name, err)
		return
	}
	r.printf("Successfully removed all videos from %s", name)
}

// DeletePlaylist renders DELETE_PLAYLIST.
func (r *Renderer) DeletePlaylist(name string, err error) {
	if err != nil {
		r.Failure("delete playlist "+name, err)
		return
	}
	r.printf("Deleted playlist: %s", name)
}

// AllPlaylists renders SHOW_ALL_PLAYLISTS.
func (r *Renderer) AllPlaylists(names []string) {
	if len(names) == 0 {
		r.println("No playlists exist yet")
		return
	}
	r.println("Showing all playlists:")
	for _, n := range names {
		r.println("  " + n)
	}
}

// Playlist renders SHOW_PLAYLIST.
func (r *Renderer) Playlist(name string, listings []player.Listing, err error) {
	if err != nil {
		r.Failure("show playlist "+name, err)
		return
	}
	r.printf("Showing playlist: %s", name)
	if len(listings) == 0 {
		r.println("  No videos here yet")
		return
	}
	for _, l := range listings {
		r.println("  " + FormatListing(l))
	}
}

// SearchResults renders the ranked matches and the selection prompt.
// It reports whether a selection should be read.
func (r *Renderer) SearchResults(term string, matches []video.Video) bool {
	if len(matches) == 0 {
		r.printf("No search results for %s", term)
		return false
	}
	r.printf("Here are the results for %s:", term)
	for i, v := range matches {
		r.printf("  %d) %s", i+1, FormatVideo(v))
	}
	r.println("Would you like to play any of the above? If yes, specify the number of the video.")
	r.println("If your answer is not a valid number, we will assume it's a no.")
	return true
}

// FlagVideo renders FLAG_VIDEO.
func (r *Renderer) FlagVideo(res player.FlagResult, err error) {
	if err != nil {
		r.Failure("flag video", err)
		return
	}
	if res.Stopped != nil {
		r.Event(*res.Stopped)
	}
	r.printf("Successfully flagged video: %s (reason: %s)", res.Video.Title, res.Flag.Reason)
}

// AllowVideo renders ALLOW_VIDEO.
func (r *Renderer) AllowVideo(v video.Video, err error) {
	if err != nil {
		r.Failure("remove flag from video", err)
		return
	}
	r.printf("Successfully removed flag from video: %s", v.Title)
}

// InvalidCommand renders the message for unparseable input.
func (r *Renderer) InvalidCommand() {
	r.println("Please enter a valid command, type HELP for a list of available commands.")
}
