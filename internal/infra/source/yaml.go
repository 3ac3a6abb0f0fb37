package source

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/osa030/videoplayer/internal/domain/video"
)

// catalogFile is the document layout shared by the YAML and TOML sources.
type catalogFile struct {
	Videos []video.Video `yaml:"videos" toml:"videos"`
}

// YAMLSource reads a catalog from a YAML document with a top-level videos list.
type YAMLSource struct {
	config *FileConfig
}

// NewYAMLSource creates a new YAMLSource.
func NewYAMLSource(settings map[string]any) (*YAMLSource, error) {
	cfg, err := decodeFileConfig(settings)
	if err != nil {
		return nil, err
	}
	return &YAMLSource{config: cfg}, nil
}

// Load reads and decodes the file.
func (s *YAMLSource) Load(ctx context.Context) ([]video.Video, error) {
	data, err := os.ReadFile(s.config.Path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog file")
	}

	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", s.config.Path)
	}
	return keepValid(s.Name(), doc.Videos), nil
}

// Name returns the source name.
func (s *YAMLSource) Name() string {
	return "yaml"
}
