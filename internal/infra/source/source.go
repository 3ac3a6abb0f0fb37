// Package source loads the video catalog from embedded data and files.
package source

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/videoplayer/internal/domain/video"
	"github.com/osa030/videoplayer/internal/infra/config"
)

// Source is the interface for catalog sources.
type Source interface {
	// Load returns the videos the source provides, in source order.
	Load(ctx context.Context) ([]video.Video, error)

	// Name returns the source name (used in config).
	Name() string
}

// FileConfig holds the settings shared by file-backed sources.
type FileConfig struct {
	Path string `yaml:"path" mapstructure:"path" validate:"required"`
}

// Chain loads every source in order and merges the results.
type Chain struct {
	sources []Source
}

// NewChain creates a new source chain.
func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources}
}

// Add appends a source to the end of the chain.
func (c *Chain) Add(s Source) {
	c.sources = append(c.sources, s)
}

// Load loads all sources. The first video with a given ID wins; later
// duplicates are logged and dropped. Any source failure aborts the load.
func (c *Chain) Load(ctx context.Context) ([]video.Video, error) {
	var all []video.Video
	seen := make(map[string]string)

	for i, s := range c.sources {
		zlog.Debug().Msgf("loading catalog source: index=%d total=%d name=%s", i+1, len(c.sources), s.Name())

		videos, err := s.Load(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load source (index %d, type %s)", i, s.Name())
		}

		added := 0
		for _, v := range videos {
			if from, ok := seen[v.ID]; ok {
				zlog.Warn().Msgf("duplicate video id skipped: id=%s source=%s first_seen=%s", v.ID, s.Name(), from)
				continue
			}
			seen[v.ID] = s.Name()
			all = append(all, v)
			added++
		}

		zlog.Info().Msgf("catalog source loaded: source=%s count=%d total_so_far=%d", s.Name(), added, len(all))
	}

	return all, nil
}

// Name returns the chain name.
func (c *Chain) Name() string {
	return "source_chain"
}

// NewChainFromConfig creates a source chain from configuration.
func NewChainFromConfig(cfg *config.Config) (*Chain, error) {
	if len(cfg.Catalog.Sources) == 0 {
		return nil, errors.New("no catalog sources configured")
	}

	var sources []Source
	for i, scfg := range cfg.Catalog.Sources {
		zlog.Debug().Msgf("creating catalog source: index=%d type=%s settings=%+v", i+1, scfg.Type, scfg.Settings)

		s, err := New(scfg.Type, scfg.Settings)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create source (index %d, type %s)", i, scfg.Type)
		}
		sources = append(sources, s)
	}

	return NewChain(sources...), nil
}

// New creates a single source of the given type.
func New(sourceType string, settings map[string]any) (Source, error) {
	switch sourceType {
	case "builtin":
		return Builtin(), nil
	case "text":
		return NewTextSource(settings)
	case "yaml":
		return NewYAMLSource(settings)
	case "toml":
		return NewTOMLSource(settings)
	default:
		return nil, errors.Newf("unsupported source type: %s", sourceType)
	}
}

// typeForPath picks a source type from a file extension.
func typeForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return "text", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	default:
		return "", errors.Newf("cannot infer catalog format from %q", path)
	}
}

// FromPath creates a file source, choosing the format by extension.
func FromPath(path string) (Source, error) {
	t, err := typeForPath(path)
	if err != nil {
		return nil, err
	}
	return New(t, map[string]any{"path": path})
}

func decodeFileConfig(settings map[string]any) (*FileConfig, error) {
	var cfg FileConfig
	if err := mapstructure.Decode(settings, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}
	return &cfg, nil
}

// keepValid drops entries that fail validation, logging each one.
func keepValid(name string, videos []video.Video) []video.Video {
	validate := validator.New()
	valid := make([]video.Video, 0, len(videos))
	for i, v := range videos {
		if err := validate.Struct(v); err != nil {
			zlog.Warn().Msgf("invalid catalog entry skipped: source=%s entry=%d error=%v", name, i+1, err)
			continue
		}
		valid = append(valid, v)
	}
	return valid
}
