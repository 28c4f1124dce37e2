package source

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"github.com/osa030/vidbox/internal/domain/video"
	"github.com/osa030/vidbox/internal/infra/remote"
)

// HTTPSourceConfig holds the settings of an http source.
type HTTPSourceConfig struct {
	URL        string `yaml:"url" mapstructure:"url" validate:"required,url"`
	APIKey     string `yaml:"api_key" mapstructure:"api_key"`
	TimeoutSec int    `yaml:"timeout_sec" mapstructure:"timeout_sec" default:"10" validate:"gte=1,lte=120"`
}

// HTTPSource loads videos from a remote catalog endpoint.
type HTTPSource struct {
	fetcher RemoteFetcher
}

// NewHTTPSource creates a new HTTPSource backed by the remote client.
func NewHTTPSource(settings map[string]any) (*HTTPSource, error) {
	var config HTTPSourceConfig
	if err := mapstructure.Decode(settings, &config); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}
	if err := defaults.Set(&config); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	if err := validator.New().Struct(config); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}

	client, err := remote.New(remote.Config{
		URL:     config.URL,
		APIKey:  config.APIKey,
		Timeout: time.Duration(config.TimeoutSec) * time.Second,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create remote client")
	}
	return &HTTPSource{fetcher: client}, nil
}

// Load fetches the remote catalog.
func (s *HTTPSource) Load(ctx context.Context) ([]video.Video, error) {
	return s.fetcher.FetchVideos(ctx)
}

// Name returns the source type.
func (s *HTTPSource) Name() string {
	return "http"
}
