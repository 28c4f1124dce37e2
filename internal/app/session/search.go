package session

import (
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vidbox/internal/app/query"
)

const (
	selectPrompt = "Would you like to play any of the above? If yes, specify the number of the video."
	selectHint   = "If your answer is not a valid number, we will assume it's a no."
)

// SearchVideos lists videos whose titles contain term and offers to play one.
func (m *Manager) SearchVideos(term string) {
	m.present(m.query.SearchByTitle(term))
}

// SearchVideosWithTag lists videos carrying tag and offers to play one.
func (m *Manager) SearchVideosWithTag(tag string) {
	results, err := m.query.SearchByTag(tag)
	if errors.Is(err, query.ErrInvalidTagQuery) {
		zlog.Debug().Msgf("session %s: invalid tag query: %q", m.id, tag)
	}
	m.present(results)
}

// present renders results, then blocks for one reply and plays the selection.
func (m *Manager) present(results query.Results) {
	if !results.Found {
		m.printf("No search results for %s", results.Term)
		return
	}

	m.printf("Here are the results for %s:", results.Term)
	for i, v := range results.Videos {
		m.printf("%d) %s", i+1, v.Describe())
	}
	m.printf(selectPrompt)
	m.printf(selectHint)

	reply, err := m.in.ReadLine()
	if err != nil {
		zlog.Debug().Msgf("session %s: no reply to search prompt: %v", m.id, err)
		return
	}

	id, ok := results.Select(reply)
	if !ok {
		zlog.Debug().Msgf("session %s: search reply ignored: %q", m.id, reply)
		return
	}
	m.PlayVideo(id)
}
