package source

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/videoplayer/internal/domain/video"
)

// TextSource reads the pipe-separated catalog format:
//
//	Title | id | #tag1 , #tag2
type TextSource struct {
	config *FileConfig
}

// NewTextSource creates a new TextSource.
func NewTextSource(settings map[string]any) (*TextSource, error) {
	cfg, err := decodeFileConfig(settings)
	if err != nil {
		return nil, err
	}
	return &TextSource{config: cfg}, nil
}

// Load reads and parses the file.
func (s *TextSource) Load(ctx context.Context) ([]video.Video, error) {
	f, err := os.Open(s.config.Path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open catalog file")
	}
	defer f.Close()

	videos, err := parseText(ctx, s.Name(), f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", s.config.Path)
	}
	return keepValid(s.Name(), videos), nil
}

// Name returns the source name.
func (s *TextSource) Name() string {
	return "text"
}

func parseText(ctx context.Context, name string, r io.Reader) ([]video.Video, error) {
	var videos []video.Video
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := strings.Split(text, "|")
		if len(fields) < 2 {
			zlog.Warn().Msgf("malformed catalog line skipped: source=%s line=%d", name, line)
			continue
		}

		v := video.Video{
			Title: strings.TrimSpace(fields[0]),
			ID:    strings.TrimSpace(fields[1]),
		}
		if len(fields) > 2 {
			v.Tags = parseTags(fields[2])
		}
		videos = append(videos, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return videos, nil
}

func parseTags(field string) []string {
	var tags []string
	for _, t := range strings.Split(field, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
