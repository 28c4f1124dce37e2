// Package session provides the session manager.
package session

import (
	"fmt"
	"io"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vidbox/internal/app/filter"
	"github.com/osa030/vidbox/internal/app/playback"
	"github.com/osa030/vidbox/internal/app/playlists"
	"github.com/osa030/vidbox/internal/app/query"
	"github.com/osa030/vidbox/internal/domain/video"
	"github.com/osa030/vidbox/internal/infra/catalog"
	"github.com/osa030/vidbox/internal/infra/config"
)

// Catalog is the video catalog as seen by the session.
type Catalog interface {
	All() []video.Video
	Get(id string) (video.Video, error)
	SetFlag(id, reason string) error
}

// LineReader is the interactive channel used for the post-search prompt.
type LineReader interface {
	ReadLine() (string, error)
}

// Manager manages a single vidbox session.
// Every operation renders its outcome to the output writer and never fails.
// Manager is not safe for concurrent use.
type Manager struct {
	id string

	// Components
	catalog  Catalog
	gate     *filter.Chain
	playback *playback.Controller
	store    *playlists.Store
	query    *query.Engine

	// Interactive channel
	out io.Writer
	in  LineReader

	defaultFlagReason string
}

// NewManager creates a new session manager.
// A zero random seed in cfg seeds random selection from the clock.
func NewManager(cfg *config.Config, lib Catalog, out io.Writer, in LineReader) *Manager {
	seed := cfg.Playback.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	gate := filter.NewDefaultChain()

	m := &Manager{
		id:                uuid.New().String(),
		catalog:           lib,
		gate:              gate,
		playback:          playback.NewController(lib, gate, rng),
		store:             playlists.NewStore(lib, gate),
		query:             query.NewEngine(lib, gate),
		out:               out,
		in:                in,
		defaultFlagReason: cfg.Moderation.DefaultFlagReason,
	}

	zlog.Info().Msgf("session created: session_id=%s seed=%d filters=%v", m.id, seed, filter.RegisteredNames())
	return m
}

// ID returns the session identifier.
func (m *Manager) ID() string {
	return m.id
}

// NumberOfVideos reports the catalog size.
func (m *Manager) NumberOfVideos() {
	m.printf("%d videos in the library", len(m.catalog.All()))
}

// ShowAllVideos lists every video sorted by title, flagged ones annotated.
func (m *Manager) ShowAllVideos() {
	videos := m.catalog.All()
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].Title < videos[j].Title
	})

	m.printf("Here's a list of all available videos:")
	for _, v := range videos {
		m.printf("  %s", v.DescribeWithFlag())
	}
}

// PlayVideo plays the video with the given id.
func (m *Manager) PlayVideo(id string) {
	t, err := m.playback.Play(id)
	if err != nil {
		m.reportPlayError(err)
		return
	}
	m.reportTransition(t)
}

// StopVideo stops the current video.
func (m *Manager) StopVideo() {
	title, err := m.playback.Stop()
	if err != nil {
		m.printf("Cannot stop video: No video is currently playing")
		return
	}
	m.printf("Stopping video: %s", title)
}

// PlayRandomVideo plays a random non-flagged video.
func (m *Manager) PlayRandomVideo() {
	t, err := m.playback.PlayRandom()
	if err != nil {
		m.reportPlayError(err)
		return
	}
	m.reportTransition(t)
}

// PauseVideo pauses the current video.
func (m *Manager) PauseVideo() {
	title, err := m.playback.Pause()
	switch {
	case errors.Is(err, playback.ErrNothingPlaying):
		m.printf("Cannot pause video: No video is currently playing")
	case errors.Is(err, playback.ErrAlreadyPaused):
		m.printf("Video already paused: %s", title)
	case err != nil:
		m.reportUnexpected("pause", err)
	default:
		m.printf("Pausing video: %s", title)
	}
}

// ContinueVideo resumes the paused video.
func (m *Manager) ContinueVideo() {
	title, err := m.playback.Resume()
	switch {
	case errors.Is(err, playback.ErrNothingPlaying):
		m.printf("Cannot continue video: No video is currently playing")
	case errors.Is(err, playback.ErrNotPaused):
		m.printf("Cannot continue video: Video is not paused")
	case err != nil:
		m.reportUnexpected("continue", err)
	default:
		m.printf("Continuing video: %s", title)
	}
}

// ShowPlaying renders the current video.
// A title no longer present in the catalog renders as an empty descriptor.
func (m *Manager) ShowPlaying() {
	now, err := m.playback.Current()
	if err != nil {
		m.printf("No video is currently playing")
		return
	}

	var desc string
	if now.Resolved {
		desc = now.Video.Describe()
	}

	if now.Paused {
		m.printf("Currently playing: %s - PAUSED", desc)
		return
	}
	m.printf("Currently playing: %s", desc)
}

func (m *Manager) reportTransition(t playback.Transition) {
	if t.Stopped != "" {
		m.printf("Stopping video: %s", t.Stopped)
	}
	m.printf("Playing video: %s", t.Started.Title)
}

func (m *Manager) reportPlayError(err error) {
	switch {
	case errors.Is(err, catalog.ErrVideoNotFound):
		m.printf("Cannot play video: Video does not exist")
	case errors.Is(err, video.ErrFlagged):
		reason, _ := video.FlagReason(err)
		m.printf("Cannot play video: Video is currently flagged (reason: %s)", reason)
	case errors.Is(err, playback.ErrNoVideosAvailable):
		m.printf("No videos available")
	default:
		m.reportUnexpected("play", err)
	}
}

func (m *Manager) reportUnexpected(action string, err error) {
	zlog.Error().Msgf("session %s: unexpected error: action=%s err=%v", m.id, action, err)
	m.printf("Cannot %s video: %v", action, err)
}

func (m *Manager) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(m.out, format+"\n", args...); err != nil {
		zlog.Warn().Msgf("session %s: failed to write output: %v", m.id, err)
	}
}
