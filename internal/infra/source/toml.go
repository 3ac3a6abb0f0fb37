package source

import (
	"context"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/osa030/videoplayer/internal/domain/video"
)

// TOMLSource reads a catalog from [[videos]] tables.
type TOMLSource struct {
	config *FileConfig
}

// NewTOMLSource creates a new TOMLSource.
func NewTOMLSource(settings map[string]any) (*TOMLSource, error) {
	cfg, err := decodeFileConfig(settings)
	if err != nil {
		return nil, err
	}
	return &TOMLSource{config: cfg}, nil
}

// Load reads and decodes the file.
func (s *TOMLSource) Load(ctx context.Context) ([]video.Video, error) {
	var doc catalogFile
	if _, err := toml.DecodeFile(s.config.Path, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", s.config.Path)
	}
	return keepValid(s.Name(), doc.Videos), nil
}

// Name returns the source name.
func (s *TOMLSource) Name() string {
	return "toml"
}
