package session

import (
	"github.com/cockroachdb/errors"

	"github.com/osa030/vidbox/internal/app/playlists"
	"github.com/osa030/vidbox/internal/domain/video"
	"github.com/osa030/vidbox/internal/infra/catalog"
)

// Playlist names in messages echo the name as typed by the caller.

// CreatePlaylist creates an empty playlist.
func (m *Manager) CreatePlaylist(name string) {
	if _, err := m.store.Create(name); err != nil {
		m.printf("Cannot create playlist: A playlist with the same name already exists")
		return
	}
	m.printf("Successfully created new playlist: %s", name)
}

// AddToPlaylist adds a video to a playlist.
func (m *Manager) AddToPlaylist(name, videoID string) {
	title, err := m.store.Add(name, videoID)
	switch {
	case errors.Is(err, playlists.ErrPlaylistNotFound):
		m.printf("Cannot add video to %s: Playlist does not exist", name)
	case errors.Is(err, catalog.ErrVideoNotFound):
		m.printf("Cannot add video to %s: Video does not exist", name)
	case errors.Is(err, video.ErrFlagged):
		reason, _ := video.FlagReason(err)
		m.printf("Cannot add video to %s: Video is currently flagged (reason: %s)", name, reason)
	case errors.Is(err, playlists.ErrAlreadyInPlaylist):
		m.printf("Cannot add video to %s: Video already added", name)
	case err != nil:
		m.reportUnexpectedPlaylist("add video to", name, err)
	default:
		m.printf("Added video to %s: %s", name, title)
	}
}

// ShowAllPlaylists lists playlist names sorted case-insensitively.
func (m *Manager) ShowAllPlaylists() {
	names := m.store.Names()
	if len(names) == 0 {
		m.printf("No playlists exist yet")
		return
	}

	m.printf("Showing all playlists:")
	for _, name := range names {
		m.printf("    %s", name)
	}
}

// ShowPlaylist lists the videos of a playlist in insertion order.
func (m *Manager) ShowPlaylist(name string) {
	p, err := m.store.Get(name)
	if err != nil {
		m.printf("Cannot show playlist %s: Playlist does not exist", name)
		return
	}

	m.printf("Showing playlist: %s", name)
	if p.IsEmpty() {
		m.printf("No videos here yet")
		return
	}

	entries, err := m.store.Entries(name)
	if err != nil {
		m.reportUnexpectedPlaylist("show playlist", name, err)
		return
	}
	for _, v := range entries {
		m.printf("    %s", v.DescribeWithFlag())
	}
}

// RemoveFromPlaylist removes a video from a playlist.
func (m *Manager) RemoveFromPlaylist(name, videoID string) {
	title, err := m.store.Remove(name, videoID)
	switch {
	case errors.Is(err, playlists.ErrPlaylistNotFound):
		m.printf("Cannot remove video from %s: Playlist does not exist", name)
	case errors.Is(err, catalog.ErrVideoNotFound):
		m.printf("Cannot remove video from %s: Video does not exist", name)
	case errors.Is(err, playlists.ErrNotInPlaylist):
		m.printf("Cannot remove video from %s: Video is not in playlist", name)
	case err != nil:
		m.reportUnexpectedPlaylist("remove video from", name, err)
	default:
		m.printf("Removed video from %s: %s", name, title)
	}
}

// ClearPlaylist removes every video from a playlist.
func (m *Manager) ClearPlaylist(name string) {
	if err := m.store.Clear(name); err != nil {
		m.printf("Cannot clear playlist %s: Playlist does not exist", name)
		return
	}
	m.printf("Successfully removed all videos from %s", name)
}

// DeletePlaylist deletes a playlist.
func (m *Manager) DeletePlaylist(name string) {
	if err := m.store.Delete(name); err != nil {
		m.printf("Cannot delete playlist %s: Playlist does not exist", name)
		return
	}
	m.printf("Deleted playlist: %s", name)
}

func (m *Manager) reportUnexpectedPlaylist(action, name string, err error) {
	m.printf("Cannot %s %s: %v", action, name, err)
}
