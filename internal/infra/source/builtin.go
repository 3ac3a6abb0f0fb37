package source

import (
	"context"
	_ "embed"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/osa030/videoplayer/internal/domain/video"
)

//go:embed videos.txt
var builtinCatalog string

// BuiltinSource serves the catalog compiled into the binary.
type BuiltinSource struct{}

// Builtin returns the embedded catalog source.
func Builtin() *BuiltinSource {
	return &BuiltinSource{}
}

// Load parses the embedded catalog.
func (s *BuiltinSource) Load(ctx context.Context) ([]video.Video, error) {
	videos, err := parseText(ctx, s.Name(), strings.NewReader(builtinCatalog))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse builtin catalog")
	}
	return keepValid(s.Name(), videos), nil
}

// Name returns the source name.
func (s *BuiltinSource) Name() string {
	return "builtin"
}
