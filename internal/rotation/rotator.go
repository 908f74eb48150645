package rotation

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/dhowlett/scarebox/internal/logger"
)

var (
	// ErrBadInterval is returned when the rotation interval is not positive.
	ErrBadInterval = errors.New("rotation interval must be positive")
	// ErrUnknownTheme is returned when the initial theme is not configured.
	ErrUnknownTheme = errors.New("initial theme is not in the configured set")
	// ErrNoThemes is returned when the theme set is empty.
	ErrNoThemes = errors.New("theme set is empty")
)

// maxDrawAttempts bounds the random redraws per rotation. The bound keeps
// a single-theme set from looping forever; with several themes it is all
// but never exhausted.
const maxDrawAttempts = 10

// Rotator decides, between scare cycles, whether to switch the active
// theme. Rotations never repeat the immediately-previous theme.
type Rotator struct {
	themes    []string
	current   string
	interval  time.Duration
	startedAt time.Time

	// now and draw are injectable for tests.
	now  func() time.Time
	draw func(n int) int
}

// Option customizes a Rotator.
type Option func(*Rotator)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Rotator) {
		r.now = now
	}
}

// WithDraw replaces the random draw function, for tests.
func WithDraw(draw func(n int) int) Option {
	return func(r *Rotator) {
		r.draw = draw
	}
}

// New creates a Rotator starting on initial, switching no earlier than
// every interval.
func New(themes []string, initial string, interval time.Duration, opts ...Option) (*Rotator, error) {
	if len(themes) == 0 {
		return nil, ErrNoThemes
	}

	if interval <= 0 {
		return nil, fmt.Errorf("%s: %w", interval, ErrBadInterval)
	}

	if !slices.Contains(themes, initial) {
		return nil, fmt.Errorf("theme %q (configured themes: %v): %w", initial, themes, ErrUnknownTheme)
	}

	r := &Rotator{
		themes:   append([]string(nil), themes...),
		current:  initial,
		interval: interval,
		now:      time.Now,
		draw:     rand.IntN,
	}

	for _, opt := range opts {
		opt(r)
	}

	r.startedAt = r.now()

	return r, nil
}

// Current returns the active theme.
func (r *Rotator) Current() string {
	return r.current
}

// MaybeRotate switches to a random different theme once the configured
// interval has elapsed since the last switch. It reports the active theme
// and whether it changed; when the draw budget is exhausted (always the
// case with a single configured theme) the current theme is retained and
// the interval timer is left running.
func (r *Rotator) MaybeRotate(ctx context.Context) (string, bool) {
	elapsed := r.now().Sub(r.startedAt)
	logger.DebugKV(ctx, "Time since last theme rotation", "elapsed", elapsed.String())

	if elapsed < r.interval {
		return r.current, false
	}

	next := r.current
	for attempts := 0; next == r.current && attempts < maxDrawAttempts; attempts++ {
		next = r.themes[r.draw(len(r.themes))]
	}

	if next == r.current {
		logger.WarnKV(ctx, "Could not draw a different theme, keeping current",
			"theme", r.current, "attempts", maxDrawAttempts)

		return r.current, false
	}

	r.current = next
	r.startedAt = r.now()

	logger.InfoKV(ctx, "Theme rotated", "theme", r.current)

	return r.current, true
}
