package source

import (
	"context"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vidbox/internal/domain/video"
)

// SourceWithMetadata wraps a source with its metadata.
type SourceWithMetadata struct {
	Source      Source
	DisplayName string
}

// Chain loads from multiple sources in order and merges the results.
type Chain struct {
	sources []SourceWithMetadata
}

// NewChain creates a new source chain.
func NewChain(sources []SourceWithMetadata) *Chain {
	return &Chain{
		sources: sources,
	}
}

// Load retrieves videos from all sources.
// A failing source is skipped. When two sources offer the same id, the
// earlier source wins.
func (c *Chain) Load(ctx context.Context) ([]video.Video, error) {
	var all []video.Video
	seenIDs := make(map[string]bool)

	for i, sm := range c.sources {
		zlog.Debug().Msgf("loading source: index=%d total=%d name=%s source_type=%s",
			i+1, len(c.sources), sm.DisplayName, sm.Source.Name())

		videos, err := sm.Source.Load(ctx)
		if err != nil {
			zlog.Warn().Msgf("source failed, trying next: source=%s error=%v", sm.DisplayName, err)
			continue
		}

		if len(videos) == 0 {
			zlog.Debug().Msgf("source returned no videos: source=%s", sm.DisplayName)
			continue
		}

		added := 0
		for _, v := range videos {
			if seenIDs[v.ID] {
				zlog.Debug().Msgf("skipping duplicate video: source=%s id=%s", sm.DisplayName, v.ID)
				continue
			}
			seenIDs[v.ID] = true
			all = append(all, v)
			added++
		}

		zlog.Info().Msgf("source returned videos: source=%s count=%d total_so_far=%d",
			sm.DisplayName, added, len(all))
	}

	if len(all) == 0 {
		return nil, errors.New("all sources failed to return videos")
	}

	return all, nil
}
