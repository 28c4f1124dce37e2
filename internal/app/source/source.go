// Package source provides catalog loading strategies.
package source

import (
	"context"

	"github.com/osa030/vidbox/internal/domain/video"
)

// Source is the interface for catalog sources.
// Different implementations load videos from various places
// (e.g., a local file, an HTTP endpoint, the config itself).
type Source interface {
	// Load retrieves the videos offered by this source.
	Load(ctx context.Context) ([]video.Video, error)

	// Name returns the source type (used in config).
	Name() string
}

// RemoteFetcher defines the HTTP client operations needed by the http source.
type RemoteFetcher interface {
	FetchVideos(ctx context.Context) ([]video.Video, error)
}
