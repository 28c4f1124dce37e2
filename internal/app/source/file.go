package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vidbox/internal/domain/video"
	"github.com/osa030/vidbox/internal/infra/catalog"
)

// FileSourceConfig holds the settings of a file source.
type FileSourceConfig struct {
	Path   string `yaml:"path" mapstructure:"path" validate:"required"`
	Format string `yaml:"format" mapstructure:"format" default:"auto" validate:"oneof=auto text yaml"`
}

// FileSource loads videos from a local catalog file.
type FileSource struct {
	config *FileSourceConfig
}

// NewFileSource creates a new FileSource.
func NewFileSource(settings map[string]any) (*FileSource, error) {
	var config FileSourceConfig
	if err := mapstructure.Decode(settings, &config); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}
	if err := defaults.Set(&config); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	zlog.Debug().Msgf("file source config: %+v", config)
	if err := validator.New().Struct(config); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}
	return &FileSource{config: &config}, nil
}

// Load reads and parses the catalog file.
func (s *FileSource) Load(ctx context.Context) ([]video.Video, error) {
	f, err := os.Open(s.config.Path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open catalog file")
	}
	defer f.Close()

	switch s.format() {
	case "yaml":
		return catalog.ParseYAML(f)
	default:
		return catalog.ParseText(f)
	}
}

// Name returns the source type.
func (s *FileSource) Name() string {
	return "file"
}

// format resolves "auto" from the file extension.
func (s *FileSource) format() string {
	if s.config.Format != "auto" {
		return s.config.Format
	}
	switch strings.ToLower(filepath.Ext(s.config.Path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "text"
	}
}
