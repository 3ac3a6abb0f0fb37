// Package console provides the interactive line-oriented front end.
package console

import (
	"io"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
)

// Command names.
const (
	CmdNumberOfVideos      = "NUMBER_OF_VIDEOS"
	CmdShowAllVideos       = "SHOW_ALL_VIDEOS"
	CmdPlay                = "PLAY"
	CmdPlayRandom          = "PLAY_RANDOM"
	CmdStop                = "STOP"
	CmdPause               = "PAUSE"
	CmdContinue            = "CONTINUE"
	CmdShowPlaying         = "SHOW_PLAYING"
	CmdCreatePlaylist      = "CREATE_PLAYLIST"
	CmdAddToPlaylist       = "ADD_TO_PLAYLIST"
	CmdRemoveFromPlaylist  = "REMOVE_FROM_PLAYLIST"
	CmdClearPlaylist       = "CLEAR_PLAYLIST"
	CmdDeletePlaylist      = "DELETE_PLAYLIST"
	CmdShowPlaylist        = "SHOW_PLAYLIST"
	CmdShowAllPlaylists    = "SHOW_ALL_PLAYLISTS"
	CmdSearchVideos        = "SEARCH_VIDEOS"
	CmdSearchVideosWithTag = "SEARCH_VIDEOS_WITH_TAG"
	CmdFlagVideo           = "FLAG_VIDEO"
	CmdAllowVideo          = "ALLOW_VIDEO"
	CmdHelp                = "HELP"
	CmdExit                = "EXIT"
)

// ErrInvalidCommand is returned for unknown commands and bad arguments.
var ErrInvalidCommand = errors.New("invalid command")

// Command is a parsed input line.
type Command struct {
	Name string   // One of the Cmd constants
	Args []string // Positional arguments; optional ones may be empty
}

// Arg returns the i-th argument or "" when absent.
func (c Command) Arg(i int) string {
	if i < len(c.Args) {
		return c.Args[i]
	}
	return ""
}

type argSpec struct {
	name     string
	required bool
	rest     bool // collects all remaining tokens
}

type commandSpec struct {
	name string
	args []argSpec
	help string
}

var commands = []commandSpec{
	{name: CmdNumberOfVideos, help: "Shows how many videos are in the library."},
	{name: CmdShowAllVideos, help: "Lists all videos from the library."},
	{name: CmdPlay, args: []argSpec{{name: "video_id", required: true}}, help: "Plays specified video."},
	{name: CmdPlayRandom, help: "Plays a random video from the library."},
	{name: CmdStop, help: "Stop the current video."},
	{name: CmdPause, help: "Pause the current video."},
	{name: CmdContinue, help: "Resume the current paused video."},
	{name: CmdShowPlaying, help: "Displays the title, id and paused status of the video that is currently playing (or paused)."},
	{name: CmdCreatePlaylist, args: []argSpec{{name: "playlist_name", required: true}}, help: "Creates a new (empty) playlist with the provided name."},
	{name: CmdAddToPlaylist, args: []argSpec{{name: "playlist_name", required: true}, {name: "video_id", required: true}}, help: "Adds the requested video to the playlist."},
	{name: CmdRemoveFromPlaylist, args: []argSpec{{name: "playlist_name", required: true}, {name: "video_id", required: true}}, help: "Removes the specified video from the specified playlist."},
	{name: CmdClearPlaylist, args: []argSpec{{name: "playlist_name", required: true}}, help: "Removes all videos from the playlist."},
	{name: CmdDeletePlaylist, args: []argSpec{{name: "playlist_name", required: true}}, help: "Deletes the playlist."},
	{name: CmdShowPlaylist, args: []argSpec{{name: "playlist_name", required: true}}, help: "List all the videos in this playlist."},
	{name: CmdShowAllPlaylists, help: "Display all the available playlists."},
	{name: CmdSearchVideos, args: []argSpec{{name: "search_term", required: true}}, help: "Display all the videos whose titles contain the search_term."},
	{name: CmdSearchVideosWithTag, args: []argSpec{{name: "tag_name", required: true}}, help: "Display all videos whose tags contains the provided tag."},
	{name: CmdFlagVideo, args: []argSpec{{name: "video_id", required: true}, {name: "flag_reason", rest: true}}, help: "Mark a video as flagged."},
	{name: CmdAllowVideo, args: []argSpec{{name: "video_id", required: true}}, help: "Removes a flag from a video."},
	{name: CmdHelp, help: "Displays help."},
	{name: CmdExit, help: "Terminates the program execution."},
}

// Parse parses one input line. The command word is case-insensitive;
// arguments keep their case.
func Parse(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{}, ErrInvalidCommand
	}

	name := strings.ToUpper(tokens[0])
	switch name {
	case CmdHelp, CmdExit:
		if len(tokens) > 1 {
			return Command{}, errors.Wrapf(ErrInvalidCommand, "%s takes no arguments", name)
		}
		return Command{Name: name}, nil
	}

	spec, ok := lookup(name)
	if !ok {
		return Command{}, errors.Wrapf(ErrInvalidCommand, "unknown command %q", tokens[0])
	}

	// kingpin expands @file tokens and reads -x tokens as flags, so it only
	// sees the known command word and one placeholder per argument. It checks
	// arity; the real tokens are bound afterwards.
	argv := make([]string, 0, len(tokens)+1)
	argv = append(argv, strings.ToLower(spec.name), "--")
	for range tokens[1:] {
		argv = append(argv, "_")
	}
	if _, err := newParser().Parse(argv); err != nil {
		return Command{}, errors.Wrap(ErrInvalidCommand, err.Error())
	}
	return bind(spec, tokens[1:]), nil
}

func lookup(name string) (commandSpec, bool) {
	for _, spec := range commands {
		if spec.name == name {
			return spec, true
		}
	}
	return commandSpec{}, false
}

// bind assigns tokens to the command's arguments in order. A rest argument
// takes every remaining token joined by single spaces.
func bind(spec commandSpec, tokens []string) Command {
	cmd := Command{Name: spec.name}
	for i, a := range spec.args {
		switch {
		case a.rest:
			if i < len(tokens) {
				cmd.Args = append(cmd.Args, strings.Join(tokens[i:], " "))
			} else {
				cmd.Args = append(cmd.Args, "")
			}
		case i < len(tokens):
			cmd.Args = append(cmd.Args, tokens[i])
		default:
			cmd.Args = append(cmd.Args, "")
		}
	}
	return cmd
}

// newParser builds a fresh application per line; kingpin keeps argument
// values between parses.
func newParser() *kingpin.Application {
	app := kingpin.New("videoplayer", "").
		Terminate(func(int) {}).
		UsageWriter(io.Discard).
		ErrorWriter(io.Discard)

	for _, spec := range commands {
		if spec.name == CmdHelp || spec.name == CmdExit {
			continue
		}
		cmd := app.Command(strings.ToLower(spec.name), spec.help)
		for _, a := range spec.args {
			arg := cmd.Arg(a.name, "")
			if a.required {
				arg = arg.Required()
			}
			if a.rest {
				arg.Strings()
				continue
			}
			arg.String()
		}
	}
	return app
}

// Usage writes the command list.
func Usage(w io.Writer) {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, spec := range commands {
		b.WriteString("    ")
		b.WriteString(spec.name)
		for _, a := range spec.args {
			b.WriteString(" <" + a.name + ">")
		}
		b.WriteString(" - " + spec.help + "\n")
	}
	_, _ = io.WriteString(w, b.String())
}
