package source

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"

	"github.com/osa030/vidbox/internal/domain/video"
	"github.com/osa030/vidbox/internal/infra/catalog"
)

// InlineSourceConfig holds videos declared directly in the config file.
type InlineSourceConfig struct {
	Videos []catalog.Entry `mapstructure:"videos"`
}

// InlineSource serves videos embedded in the configuration.
type InlineSource struct {
	videos []video.Video
}

// NewInlineSource creates a new InlineSource.
func NewInlineSource(settings map[string]any) (*InlineSource, error) {
	var config InlineSourceConfig
	if err := mapstructure.Decode(settings, &config); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}
	if len(config.Videos) == 0 {
		return nil, errors.New("inline source requires at least one video")
	}

	videos, err := catalog.EntriesToVideos(config.Videos)
	if err != nil {
		return nil, err
	}
	return &InlineSource{videos: videos}, nil
}

// Load returns the embedded videos.
func (s *InlineSource) Load(ctx context.Context) ([]video.Video, error) {
	result := make([]video.Video, len(s.videos))
	copy(result, s.videos)
	return result, nil
}

// Name returns the source type.
func (s *InlineSource) Name() string {
	return "inline"
}
