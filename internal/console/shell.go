package console

import (
	"bufio"
	"context"
	"io"
	"os"

	zlog "github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/osa030/videoplayer/internal/app/player"
	"github.com/osa030/videoplayer/internal/domain/video"
)

// Prompt modes.
const (
	PromptAuto   = "auto"   // prompt only when input is a terminal
	PromptAlways = "always" // always prompt
	PromptNever  = "never"  // never prompt
)

// Shell runs the read-eval-print loop over a player.
type Shell struct {
	player     *player.Player
	prompt     string
	promptMode string
}

// NewShell creates a new shell.
func NewShell(p *player.Player, prompt, promptMode string) *Shell {
	if promptMode == "" {
		promptMode = PromptAuto
	}
	return &Shell{
		player:     p,
		prompt:     prompt,
		promptMode: promptMode,
	}
}

// Run reads commands from in until EXIT, end of input or ctx cancellation.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	r := NewRenderer(out)
	lines := readLines(ctx, in)
	showPrompt := s.shouldPrompt(in)

	r.println("Hello and welcome to YouTube, what would you like to do?")
	r.println("Enter HELP for list of available commands or EXIT to terminate.")

	for {
		if showPrompt {
			_, _ = io.WriteString(out, s.prompt)
		}

		line, ok := next(ctx, lines)
		if !ok {
			if err := ctx.Err(); err != nil {
				zlog.Debug().Msgf("console: canceled: %v", err)
			}
			s.goodbye(r)
			return nil
		}

		cmd, err := Parse(line)
		if err != nil {
			zlog.Debug().Msgf("console: invalid input: line=%q error=%v", line, err)
			r.InvalidCommand()
			continue
		}
		zlog.Debug().Msgf("console: command: name=%s args=%q", cmd.Name, cmd.Args)

		if cmd.Name == CmdExit {
			s.goodbye(r)
			return nil
		}
		s.execute(ctx, cmd, r, out, lines)
	}
}

func (s *Shell) execute(ctx context.Context, cmd Command, r *Renderer, out io.Writer, lines <-chan string) {
	p := s.player
	switch cmd.Name {
	case CmdHelp:
		Usage(out)
	case CmdNumberOfVideos:
		r.NumberOfVideos(p.NumberOfVideos())
	case CmdShowAllVideos:
		r.AllVideos(p.ShowAllVideos())
	case CmdPlay:
		r.Play(p.Play(cmd.Arg(0)))
	case CmdPlayRandom:
		r.Play(p.PlayRandom())
	case CmdStop:
		r.Stop(p.Stop())
	case CmdPause:
		r.Pause(p.Pause())
	case CmdContinue:
		r.Continue(p.Continue())
	case CmdShowPlaying:
		r.Playing(p.ShowPlaying())
	case CmdCreatePlaylist:
		_, err := p.CreatePlaylist(cmd.Arg(0))
		r.CreatePlaylist(cmd.Arg(0), err)
	case CmdAddToPlaylist:
		v, err := p.AddToPlaylist(cmd.Arg(0), cmd.Arg(1))
		r.AddToPlaylist(cmd.Arg(0), v, err)
	case CmdRemoveFromPlaylist:
		v, removed, err := p.RemoveFromPlaylist(cmd.Arg(0), cmd.Arg(1))
		r.RemoveFromPlaylist(cmd.Arg(0), v, removed, err)
	case CmdClearPlaylist:
		r.ClearPlaylist(cmd.Arg(0), p.ClearPlaylist(cmd.Arg(0)))
	case CmdDeletePlaylist:
		r.DeletePlaylist(cmd.Arg(0), p.DeletePlaylist(cmd.Arg(0)))
	case CmdShowPlaylist:
		listings, err := p.ShowPlaylist(cmd.Arg(0))
		r.Playlist(cmd.Arg(0), listings, err)
	case CmdShowAllPlaylists:
		r.AllPlaylists(p.ShowAllPlaylists())
	case CmdSearchVideos:
		s.search(ctx, cmd.Arg(0), p.Search(cmd.Arg(0)), r, lines)
	case CmdSearchVideosWithTag:
		s.search(ctx, cmd.Arg(0), p.SearchByTag(cmd.Arg(0)), r, lines)
	case CmdFlagVideo:
		r.FlagVideo(p.FlagVideo(cmd.Arg(0), cmd.Arg(1)))
	case CmdAllowVideo:
		r.AllowVideo(p.AllowVideo(cmd.Arg(0)))
	}
}

func (s *Shell) search(ctx context.Context, term string, matches []video.Video, r *Renderer, lines <-chan string) {
	if !r.SearchResults(term, matches) {
		return
	}
	answer, ok := next(ctx, lines)
	if !ok {
		return
	}
	events, played, err := s.player.PlaySelection(matches, answer)
	if played || err != nil {
		r.Play(events, err)
	}
}

func (s *Shell) goodbye(r *Renderer) {
	r.println("YouTube has now terminated its execution. Thank you and goodbye!")
}

func (s *Shell) shouldPrompt(in io.Reader) bool {
	switch s.promptMode {
	case PromptAlways:
		return true
	case PromptNever:
		return false
	default:
		f, ok := in.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

// readLines feeds input lines into a channel so the loop can also watch ctx.
// The channel is closed at end of input. A Scan blocked on input is not
// interrupted by ctx, so the reader can outlive Run until the next line or EOF.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			zlog.Error().Msgf("console: read failed: %v", err)
		}
	}()
	return lines
}

func next(ctx context.Context, lines <-chan string) (string, bool) {
	select {
	case line, ok := <-lines:
		return line, ok
	case <-ctx.Done():
		return "", false
	}
}
