// Package player wraps the server's /play endpoint with the client-side
// bookkeeping that follows a successful play: the current track, the local
// play/pause indicator and any registered post-play hooks.
package player

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/five82/cadence/internal/moodapi"
	"github.com/five82/cadence/internal/recent"
)

// ErrNothingPlaying is returned by TogglePlayback when no track has been
// played yet.
var ErrNothingPlaying = errors.New("no current track")

// Starter is the slice of the server API the player needs.
type Starter interface {
	Play(ctx context.Context, trackID string) error
}

// Hook runs after a successful play.
type Hook func(track moodapi.Track, at time.Time)

// Player is safe for concurrent use.
type Player struct {
	api Starter
	now func() time.Time

	mu      sync.Mutex
	hooks   []Hook
	current moodapi.Track
	active  bool
	playing bool
}

// New returns a Player that starts playback through api.
func New(api Starter) *Player {
	return &Player{api: api, now: time.Now}
}

// OnPlay registers a post-play hook. Hooks run in registration order.
func (p *Player) OnPlay(hook Hook) {
	if hook == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hooks = append(p.hooks, hook)
}

// RecordTo returns a hook that appends played tracks to ring.
func RecordTo(ring *recent.Ring) Hook {
	return func(track moodapi.Track, at time.Time) {
		ring.Record(track, at)
	}
}

// Play asks the server to play track. On success the track becomes current
// and the post-play hooks run.
func (p *Player) Play(ctx context.Context, track moodapi.Track) error {
	if err := p.api.Play(ctx, track.ID); err != nil {
		return err
	}
	at := p.now()

	p.mu.Lock()
	p.current = track
	p.active = true
	p.playing = true
	hooks := append([]Hook(nil), p.hooks...)
	p.mu.Unlock()

	for _, hook := range hooks {
		hook(track, at)
	}
	return nil
}

// TogglePlayback pauses the current track locally when it is playing, or
// plays it again through the server when paused. It reports whether the
// track is playing afterwards.
func (p *Player) TogglePlayback(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return false, ErrNothingPlaying
	}
	if p.playing {
		p.playing = false
		p.mu.Unlock()
		return false, nil
	}
	track := p.current
	p.mu.Unlock()

	if err := p.Play(ctx, track); err != nil {
		return false, err
	}
	return true, nil
}

// Current returns the current track, if any.
func (p *Player) Current() (moodapi.Track, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current, p.active
}

// Playing reports whether the current track is marked as playing.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active && p.playing
}

// FailureMessage maps a Play error to the text shown to the user.
// A success=false answer without a message usually means no active Spotify
// device; anything else gets the generic retry hint.
func FailureMessage(err error) string {
	var apiErr *moodapi.APIError
	if errors.As(err, &apiErr) && apiErr.Status == 0 {
		return moodapi.Message(err, "Please make sure Spotify is open and active on your device.")
	}
	return moodapi.Message(err, "Failed to play track. Please try again.")
}
