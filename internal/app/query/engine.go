// Package query provides read-only searches over the catalog.
package query

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vidbox/internal/app/filter"
	"github.com/osa030/vidbox/internal/domain/video"
)

// TagMarker must prefix every tag query.
const TagMarker = "#"

// ErrInvalidTagQuery is returned for tag queries without the marker.
var ErrInvalidTagQuery = errors.New("tag query must start with " + TagMarker)

// Catalog is the read side of the video catalog needed for searching.
type Catalog interface {
	All() []video.Video
}

// Results holds a rendered-ready search result and the selection continuation.
type Results struct {
	Term   string
	Found  bool          // At least one video matched, flagged ones included
	Videos []video.Video // Playable matches sorted by title
}

// Select maps a raw reply to the chosen video id.
// The reply must be a plain decimal number within 1..len(Videos).
func (r Results) Select(reply string) (string, bool) {
	reply = strings.TrimRight(reply, "\r\n")
	if reply == "" {
		return "", false
	}
	for _, ch := range reply {
		if ch < '0' || ch > '9' {
			return "", false
		}
	}

	n, err := strconv.Atoi(reply)
	if err != nil || n < 1 || n > len(r.Videos) {
		return "", false
	}
	return r.Videos[n-1].ID, true
}

// Engine runs searches.
type Engine struct {
	catalog Catalog
	gate    *filter.Chain
}

// NewEngine creates a new query engine.
func NewEngine(catalog Catalog, gate *filter.Chain) *Engine {
	return &Engine{
		catalog: catalog,
		gate:    gate,
	}
}

// SearchByTitle matches term case-insensitively against titles.
// Flagged matches count towards Found but are dropped from Videos.
func (e *Engine) SearchByTitle(term string) Results {
	needle := strings.ToUpper(term)

	var matches []video.Video
	for _, v := range e.catalog.All() {
		if strings.Contains(strings.ToUpper(v.Title), needle) {
			matches = append(matches, v)
		}
	}

	results := Results{
		Term:   term,
		Found:  len(matches) > 0,
		Videos: sortByTitle(e.gate.Playable(matches)),
	}
	zlog.Debug().Msgf("query: title search: term=%q matches=%d playable=%d", term, len(matches), len(results.Videos))
	return results
}

// SearchByTag matches tag case-insensitively against the space-joined tags
// of every playable video.
func (e *Engine) SearchByTag(tag string) (Results, error) {
	if !strings.HasPrefix(tag, TagMarker) {
		return Results{Term: tag}, ErrInvalidTagQuery
	}

	needle := strings.ToUpper(tag)

	var matches []video.Video
	for _, v := range e.gate.Playable(e.catalog.All()) {
		if strings.Contains(strings.ToUpper(v.TagString()), needle) {
			matches = append(matches, v)
		}
	}

	results := Results{
		Term:   tag,
		Found:  len(matches) > 0,
		Videos: sortByTitle(matches),
	}
	zlog.Debug().Msgf("query: tag search: tag=%q matches=%d", tag, len(matches))
	return results, nil
}

func sortByTitle(videos []video.Video) []video.Video {
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].Title < videos[j].Title
	})
	return videos
}
