package playback

import (
	"math/rand/v2"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vidbox/internal/app/filter"
	"github.com/osa030/vidbox/internal/domain/video"
)

// Errors
var (
	ErrNothingPlaying    = errors.New("no video is currently playing")
	ErrAlreadyPaused     = errors.New("video already paused")
	ErrNotPaused         = errors.New("video is not paused")
	ErrNoVideosAvailable = errors.New("no videos available")
)

// Catalog is the read side of the video catalog needed for playback.
type Catalog interface {
	All() []video.Video
	Get(id string) (video.Video, error)
}

// Transition describes the effect of a successful play.
type Transition struct {
	Stopped string      // Title implicitly stopped, empty if the slot was free
	Started video.Video // Video now playing
}

// Now describes the occupant of the playback slot.
type Now struct {
	Video    video.Video // Catalog entry matching the current title
	Resolved bool        // False when no catalog entry carries the current title
	Paused   bool
}

// Controller owns the playback slot.
// It is not safe for concurrent use; the session serializes all calls.
type Controller struct {
	catalog Catalog
	gate    *filter.Chain
	rng     *rand.Rand

	state State
	title string
}

// NewController creates a new playback controller.
// rng drives PlayRandom; pass a seeded source for deterministic selection.
func NewController(catalog Catalog, gate *filter.Chain, rng *rand.Rand) *Controller {
	return &Controller{
		catalog: catalog,
		gate:    gate,
		rng:     rng,
		state:   StateStopped,
	}
}

// Play starts the video with the given id.
// If another video occupies the slot it is stopped first.
// Failures leave the state unchanged, a paused video stays paused.
func (c *Controller) Play(id string) (Transition, error) {
	v, err := c.catalog.Get(id)
	if err != nil {
		return Transition{}, err
	}

	if err := c.gate.Execute(v).Err(); err != nil {
		return Transition{}, err
	}

	var t Transition
	if c.state.IsActive() {
		t.Stopped, _ = c.Stop()
	}

	c.state = StatePlaying
	c.title = v.Title
	t.Started = v

	zlog.Debug().Msgf("playback: started: id=%s title=%s stopped=%q", v.ID, v.Title, t.Stopped)
	return t, nil
}

// Stop clears the slot and returns the title that was playing.
func (c *Controller) Stop() (string, error) {
	if !c.state.IsActive() {
		return "", ErrNothingPlaying
	}

	stopped := c.title
	c.state = StateStopped
	c.title = ""

	zlog.Debug().Msgf("playback: stopped: title=%s", stopped)
	return stopped, nil
}

// PlayRandom plays a uniformly chosen playable video.
func (c *Controller) PlayRandom() (Transition, error) {
	candidates := c.gate.Playable(c.catalog.All())
	if len(candidates) == 0 {
		return Transition{}, ErrNoVideosAvailable
	}

	pick := candidates[c.rng.IntN(len(candidates))]
	zlog.Debug().Msgf("playback: random pick: id=%s candidates=%d", pick.ID, len(candidates))
	return c.Play(pick.ID)
}

// Pause pauses the current video and returns its title.
// On ErrAlreadyPaused the title is returned as well.
func (c *Controller) Pause() (string, error) {
	switch c.state {
	case StateStopped:
		return "", ErrNothingPlaying
	case StatePaused:
		return c.title, ErrAlreadyPaused
	}

	c.state = StatePaused
	return c.title, nil
}

// Resume continues the paused video and returns its title.
func (c *Controller) Resume() (string, error) {
	switch c.state {
	case StateStopped:
		return "", ErrNothingPlaying
	case StatePlaying:
		return c.title, ErrNotPaused
	}

	c.state = StatePlaying
	return c.title, nil
}

// Current resolves the current title against the catalog.
func (c *Controller) Current() (Now, error) {
	if !c.state.IsActive() {
		return Now{}, ErrNothingPlaying
	}

	now := Now{Paused: c.state == StatePaused}
	for _, v := range c.catalog.All() {
		if v.Title == c.title {
			now.Video = v
			now.Resolved = true
		}
	}
	return now, nil
}

// State returns the current playback state.
func (c *Controller) State() State {
	return c.state
}

// CurrentTitle returns the title in the slot, empty when stopped.
func (c *Controller) CurrentTitle() string {
	return c.title
}

// IsPlayingTitle reports whether title occupies the slot.
func (c *Controller) IsPlayingTitle(title string) bool {
	return c.state.IsActive() && c.title == title
}
