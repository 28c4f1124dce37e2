// Package playlists provides the store of user-defined playlists.
package playlists

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vidbox/internal/app/filter"
	"github.com/osa030/vidbox/internal/domain/playlist"
	"github.com/osa030/vidbox/internal/domain/video"
)

var (
	ErrPlaylistNotFound  = errors.New("playlist does not exist")
	ErrDuplicateName     = errors.New("a playlist with the same name already exists")
	ErrAlreadyInPlaylist = errors.New("video already added")
	ErrNotInPlaylist     = errors.New("video is not in playlist")
)

// Catalog is the read side of the video catalog needed by the store.
type Catalog interface {
	All() []video.Video
	Get(id string) (video.Video, error)
}

// Store owns the named playlists.
// Names are unique under case-insensitive comparison.
type Store struct {
	catalog   Catalog
	gate      *filter.Chain
	playlists []*playlist.Playlist // creation order
}

// NewStore creates an empty store.
func NewStore(catalog Catalog, gate *filter.Chain) *Store {
	return &Store{
		catalog:   catalog,
		gate:      gate,
		playlists: make([]*playlist.Playlist, 0),
	}
}

// Create adds an empty playlist.
func (s *Store) Create(name string) (*playlist.Playlist, error) {
	if _, ok := s.find(name); ok {
		return nil, ErrDuplicateName
	}

	p := playlist.New(name)
	s.playlists = append(s.playlists, p)
	zlog.Debug().Msgf("playlists: created: name=%s total=%d", name, len(s.playlists))
	return p, nil
}

// Add appends the video's title to the playlist and returns the title.
// Checks run in order: playlist, video, flag, membership.
func (s *Store) Add(name, videoID string) (string, error) {
	p, ok := s.find(name)
	if !ok {
		return "", ErrPlaylistNotFound
	}

	v, err := s.catalog.Get(videoID)
	if err != nil {
		return "", err
	}

	if err := s.gate.Execute(v).Err(); err != nil {
		return "", err
	}

	if !p.Add(v.Title) {
		return "", ErrAlreadyInPlaylist
	}
	return v.Title, nil
}

// Remove drops the video's title from the playlist and returns the title.
// The playlist is checked before the video.
func (s *Store) Remove(name, videoID string) (string, error) {
	p, ok := s.find(name)
	if !ok {
		return "", ErrPlaylistNotFound
	}

	v, err := s.catalog.Get(videoID)
	if err != nil {
		return "", err
	}

	if !p.Remove(v.Title) {
		return "", ErrNotInPlaylist
	}
	return v.Title, nil
}

// Clear empties the playlist.
func (s *Store) Clear(name string) error {
	p, ok := s.find(name)
	if !ok {
		return ErrPlaylistNotFound
	}
	p.Clear()
	return nil
}

// Delete removes the playlist entirely.
func (s *Store) Delete(name string) error {
	for i, p := range s.playlists {
		if p.Matches(name) {
			s.playlists = append(s.playlists[:i], s.playlists[i+1:]...)
			zlog.Debug().Msgf("playlists: deleted: name=%s total=%d", p.Name, len(s.playlists))
			return nil
		}
	}
	return ErrPlaylistNotFound
}

// Names returns playlist names sorted case-insensitively, display casing kept.
func (s *Store) Names() []string {
	names := make([]string, len(s.playlists))
	for i, p := range s.playlists {
		names[i] = p.Name
	}
	sort.SliceStable(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

// Entries resolves the playlist members against the catalog in insertion
// order. Titles without a catalog entry are skipped.
func (s *Store) Entries(name string) ([]video.Video, error) {
	p, ok := s.find(name)
	if !ok {
		return nil, ErrPlaylistNotFound
	}

	byTitle := make(map[string]video.Video)
	for _, v := range s.catalog.All() {
		byTitle[v.Title] = v
	}

	entries := make([]video.Video, 0, p.Len())
	for _, title := range p.Titles {
		if v, ok := byTitle[title]; ok {
			entries = append(entries, v)
		}
	}
	return entries, nil
}

// Get returns the playlist matching name.
func (s *Store) Get(name string) (*playlist.Playlist, error) {
	p, ok := s.find(name)
	if !ok {
		return nil, ErrPlaylistNotFound
	}
	return p, nil
}

// Len returns the number of playlists.
func (s *Store) Len() int {
	return len(s.playlists)
}

func (s *Store) find(name string) (*playlist.Playlist, bool) {
	for _, p := range s.playlists {
		if p.Matches(name) {
			return p, true
		}
	}
	return nil, false
}
