// Package cooking implements the guided cooking session: step navigation
// and the per-step countdown timer.
package cooking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hammamikhairi/cozinha/internal/domain"
	"github.com/hammamikhairi/cozinha/internal/logger"
)

// Option configures a session.
type Option func(*Session)

// WithScheduler replaces the ticker-based countdown driver.
func WithScheduler(s Scheduler) Option {
	return func(sess *Session) {
		sess.sched = s
	}
}

// WithTickInterval sets the countdown resolution. Each tick removes one
// second from the timer regardless of the interval.
func WithTickInterval(d time.Duration) Option {
	return func(sess *Session) {
		sess.interval = d
	}
}

// WithOnTick registers an observer called after every countdown step.
func WithOnTick(fn func(State)) Option {
	return func(sess *Session) {
		sess.onTick = fn
	}
}

// WithOnTimeUp registers an observer called when a timer reaches zero.
func WithOnTimeUp(fn func(State)) Option {
	return func(sess *Session) {
		sess.onTimeUp = fn
	}
}

// WithLogger sets the session logger.
func WithLogger(log *logger.Logger) Option {
	return func(sess *Session) {
		sess.log = log
	}
}

// Session walks one recipe step by step. All transitions are guarded:
// a call that does not apply in the current state is ignored and
// reports false. Safe for concurrent use.
type Session struct {
	id       string
	recipe   domain.Recipe
	sched    Scheduler
	interval time.Duration
	onTick   func(State)
	onTimeUp func(State)
	log      *logger.Logger

	mu        sync.Mutex
	stepIndex int
	remaining int
	hasTimer  bool
	running   bool
	closed    bool

	cancel context.CancelFunc
	gen    uint64 // bumped whenever the scheduler is replaced
}

// Start opens a cooking session on the first step of the recipe.
func Start(recipe domain.Recipe, opts ...Option) (*Session, error) {
	if !recipe.Cookable() {
		return nil, domain.ErrNoSteps
	}

	s := &Session{
		id:       uuid.NewString(),
		recipe:   recipe.Clone(),
		sched:    TickerScheduler{},
		interval: time.Second,
		log:      logger.New(logger.LevelOff, nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.resetTimerLocked()

	s.log.Info("cooking session %s started: %q (%d steps)", s.id, recipe.Title, len(recipe.Steps))
	return s, nil
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Recipe returns the recipe being cooked.
func (s *Session) Recipe() domain.Recipe { return s.recipe.Clone() }

// Advance moves to the next step. Ignored on the last step.
func (s *Session) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.stepIndex >= len(s.recipe.Steps)-1 {
		return false
	}
	s.stepIndex++
	s.resetTimerLocked()
	s.log.Debug("session %s: step %d/%d", s.id, s.stepIndex+1, len(s.recipe.Steps))
	return true
}

// Retreat moves to the previous step. Ignored on the first step.
func (s *Session) Retreat() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.stepIndex == 0 {
		return false
	}
	s.stepIndex--
	s.resetTimerLocked()
	s.log.Debug("session %s: back to step %d/%d", s.id, s.stepIndex+1, len(s.recipe.Steps))
	return true
}

// ToggleTimer starts or pauses the current step's timer. Ignored when the
// step has no timer, or when starting a timer that already reached zero.
func (s *Session) ToggleTimer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || !s.hasTimer {
		return false
	}
	if s.running {
		s.running = false
		s.stopSchedulerLocked()
		s.log.Debug("session %s: timer paused at %s", s.id, FormatClock(s.remaining))
		return true
	}
	if s.remaining == 0 {
		return false
	}

	s.running = true
	s.startSchedulerLocked()
	s.log.Debug("session %s: timer running from %s", s.id, FormatClock(s.remaining))
	return true
}

// ResetTimer restores the current step's full duration and pauses it.
func (s *Session) ResetTimer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || !s.hasTimer {
		return false
	}
	s.resetTimerLocked()
	return true
}

// Tick removes one second from a running timer. Reaching zero stops the
// timer and notifies the time-up observer once.
func (s *Session) Tick() bool {
	return s.tick(0, false)
}

// tick applies a countdown step. Scheduler-driven ticks carry the
// generation they were started under and are dropped once stale.
func (s *Session) tick(gen uint64, scheduled bool) bool {
	s.mu.Lock()
	if s.closed || !s.running || s.remaining <= 0 || (scheduled && gen != s.gen) {
		s.mu.Unlock()
		return false
	}

	s.remaining--
	timeUp := s.remaining == 0
	if timeUp {
		s.running = false
		s.stopSchedulerLocked()
	}
	st := s.stateLocked()
	onTick, onTimeUp := s.onTick, s.onTimeUp
	s.mu.Unlock()

	if onTick != nil {
		onTick(st)
	}
	if timeUp {
		s.log.Info("session %s: time's up on step %d", s.id, st.StepIndex+1)
		if onTimeUp != nil {
			onTimeUp(st)
		}
	}
	return true
}

// Finish completes the session. Only available on the last step.
func (s *Session) Finish() bool {
	s.mu.Lock()
	if s.closed || s.stepIndex != len(s.recipe.Steps)-1 {
		s.mu.Unlock()
		return false
	}
	s.closeLocked()
	s.mu.Unlock()

	s.log.Info("cooking session %s finished: %q", s.id, s.recipe.Title)
	return true
}

// Close ends the session from any step and stops its timer. Further
// calls on the session are no-ops.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closeLocked()
	s.log.Info("cooking session %s closed at step %d", s.id, s.stepIndex+1)
}

// Closed reports whether the session has ended.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Progress returns (stepIndex+1)/totalSteps.
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progressLocked()
}

// Snapshot returns the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) progressLocked() float64 {
	return float64(s.stepIndex+1) / float64(len(s.recipe.Steps))
}

func (s *Session) stateLocked() State {
	step := s.recipe.Steps[s.stepIndex]
	return State{
		SessionID:   s.id,
		RecipeID:    s.recipe.ID,
		RecipeTitle: s.recipe.Title,
		StepIndex:   s.stepIndex,
		TotalSteps:  len(s.recipe.Steps),
		Step:        step,
		Remaining:   s.remaining,
		HasTimer:    s.hasTimer,
		Running:     s.running,
		TimeUp:      s.hasTimer && s.remaining == 0,
		Progress:    s.progressLocked(),
		IsLast:      s.stepIndex == len(s.recipe.Steps)-1,
		Closed:      s.closed,
	}
}

// resetTimerLocked loads the current step's timer, paused.
func (s *Session) resetTimerLocked() {
	s.running = false
	s.stopSchedulerLocked()

	step := s.recipe.Steps[s.stepIndex]
	s.hasTimer = step.HasTimer()
	s.remaining = 0
	if s.hasTimer {
		s.remaining = step.TimerSeconds
	}
}

func (s *Session) startSchedulerLocked() {
	s.stopSchedulerLocked()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	gen := s.gen
	s.sched.Start(ctx, s.interval, func() { s.tick(gen, true) })
}

func (s *Session) stopSchedulerLocked() {
	s.gen++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) closeLocked() {
	s.running = false
	s.stopSchedulerLocked()
	s.closed = true
}
