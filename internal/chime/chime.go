// Package chime plays short audible alerts, most importantly when a
// cooking timer runs out.
package chime

import (
	"context"
	"sync"

	"github.com/hammamikhairi/cozinha/internal/domain"
	"github.com/hammamikhairi/cozinha/internal/logger"
)

// PCMPlayer plays raw PCM in the package's format. *Player satisfies it.
type PCMPlayer interface {
	Play(pcm []byte) error
}

var _ PCMPlayer = (*Player)(nil)

// Option configures a Chime.
type Option func(*Chime)

// WithVolume sets the alert volume in [0, 1]. Default 0.6.
func WithVolume(v float64) Option {
	return func(c *Chime) {
		c.volume = v
	}
}

// WithSoftNotify also blips on ordinary notifications. Off by default.
func WithSoftNotify(on bool) Option {
	return func(c *Chime) {
		c.soft = on
	}
}

// Chime is a Notifier that beeps instead of printing. Playback runs in
// the background; a new alert while one is playing is dropped.
type Chime struct {
	player PCMPlayer
	log    *logger.Logger
	volume float64
	soft   bool

	alarm, blip []byte

	mu      sync.Mutex
	playing bool
	wg      sync.WaitGroup
}

var _ domain.Notifier = (*Chime)(nil)

// New creates a chime over the given player.
func New(player PCMPlayer, log *logger.Logger, opts ...Option) *Chime {
	c := &Chime{player: player, log: log, volume: 0.6}
	for _, opt := range opts {
		opt(c)
	}
	c.alarm = Render(AlarmPattern, c.volume)
	c.blip = Render(SoftPattern, c.volume/2)
	return c
}

// Notify blips if soft notifications are enabled.
func (c *Chime) Notify(_ context.Context, _ string) error {
	if c.soft {
		c.play(c.blip)
	}
	return nil
}

// NotifyUrgent plays the alarm.
func (c *Chime) NotifyUrgent(_ context.Context, message string) error {
	c.log.Debug("chime: alarm for %q", message)
	c.play(c.alarm)
	return nil
}

// Wait blocks until any playing sound finishes.
func (c *Chime) Wait() {
	c.wg.Wait()
}

func (c *Chime) play(pcm []byte) {
	c.mu.Lock()
	if c.playing {
		c.mu.Unlock()
		c.log.Debug("chime: already playing, skipped")
		return
	}
	c.playing = true
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer func() {
			c.mu.Lock()
			c.playing = false
			c.mu.Unlock()
		}()

		if err := c.player.Play(pcm); err != nil {
			c.log.Warn("chime: playback failed: %v", err)
		}
	}()
}
