package session

import (
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vidbox/internal/domain/video"
)

var (
	ErrAlreadyFlagged = errors.New("video is already flagged")
	ErrNotFlagged     = errors.New("video is not flagged")
)

// FlagVideo flags a video. An empty reason uses the configured default.
func (m *Manager) FlagVideo(id, reason string) {
	if reason == "" {
		reason = m.defaultFlagReason
	}

	v, stopped, err := m.flag(id, reason)
	switch {
	case errors.Is(err, ErrAlreadyFlagged):
		m.printf("Cannot flag video: Video is already flagged (reason: %s)", v.Flag)
		return
	case err != nil:
		m.printf("Cannot flag video: Video does not exist")
		return
	}

	if stopped != "" {
		m.printf("Stopping video: %s", stopped)
	}
	m.printf("Successfully flagged video: %s (reason: %s)", v.Title, reason)
}

// AllowVideo clears the flag of a video.
func (m *Manager) AllowVideo(id string) {
	v, err := m.allow(id)
	switch {
	case errors.Is(err, ErrNotFlagged):
		m.printf("Cannot remove flag from video: Video is not flagged")
	case err != nil:
		m.printf("Cannot remove flag from video: Video does not exist")
	default:
		m.printf("Successfully removed flag from video: %s", v.Title)
	}
}

// flag sets the flag and returns the video as it was before.
// When the video occupies the playback slot it is stopped first and its
// title returned as stopped.
func (m *Manager) flag(id, reason string) (video.Video, string, error) {
	v, err := m.catalog.Get(id)
	if err != nil {
		return video.Video{}, "", err
	}
	if v.IsFlagged() {
		return v, "", ErrAlreadyFlagged
	}

	var stopped string
	if m.playback.IsPlayingTitle(v.Title) {
		stopped, _ = m.playback.Stop()
	}

	if err := m.catalog.SetFlag(id, reason); err != nil {
		return v, stopped, errors.Wrapf(err, "failed to flag video %s", id)
	}

	zlog.Info().Msgf("session %s: video flagged: id=%s reason=%s stopped=%q", m.id, id, reason, stopped)
	return v, stopped, nil
}

func (m *Manager) allow(id string) (video.Video, error) {
	v, err := m.catalog.Get(id)
	if err != nil {
		return video.Video{}, err
	}
	if !v.IsFlagged() {
		return v, ErrNotFlagged
	}

	if err := m.catalog.SetFlag(id, ""); err != nil {
		return v, errors.Wrapf(err, "failed to allow video %s", id)
	}

	zlog.Info().Msgf("session %s: video allowed: id=%s", m.id, id)
	return v, nil
}
