// Package catalog provides the in-memory video library.
package catalog

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/osa030/vidbox/internal/domain/video"
)

var (
	ErrVideoNotFound  = errors.New("video does not exist")
	ErrDuplicateID    = errors.New("duplicate video id")
	ErrDuplicateTitle = errors.New("duplicate video title")
)

// Library holds the loaded videos. Only flags are mutable after construction.
type Library struct {
	mu     sync.RWMutex
	videos map[string]*video.Video
	order  []string // ids in load order
}

// NewLibrary creates a library from videos.
// IDs and titles must be unique.
func NewLibrary(videos []video.Video) (*Library, error) {
	l := &Library{
		videos: make(map[string]*video.Video, len(videos)),
		order:  make([]string, 0, len(videos)),
	}

	titles := make(map[string]bool, len(videos))
	for _, v := range videos {
		if _, ok := l.videos[v.ID]; ok {
			return nil, errors.Wrapf(ErrDuplicateID, "id %q", v.ID)
		}
		if titles[v.Title] {
			return nil, errors.Wrapf(ErrDuplicateTitle, "title %q", v.Title)
		}
		titles[v.Title] = true

		stored := v
		stored.Tags = append([]string(nil), v.Tags...)
		l.videos[v.ID] = &stored
		l.order = append(l.order, v.ID)
	}

	return l, nil
}

// All returns copies of every video in load order.
func (l *Library) All() []video.Video {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]video.Video, 0, len(l.order))
	for _, id := range l.order {
		result = append(result, *l.videos[id])
	}
	return result
}

// Get returns a copy of the video with the given id.
func (l *Library) Get(id string) (video.Video, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	v, ok := l.videos[id]
	if !ok {
		return video.Video{}, ErrVideoNotFound
	}
	return *v, nil
}

// SetFlag sets the moderation flag of a video. An empty reason clears it.
func (l *Library) SetFlag(id, reason string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.videos[id]
	if !ok {
		return ErrVideoNotFound
	}
	v.Flag = reason
	return nil
}

// Count returns the number of videos.
func (l *Library) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.order)
}
