// Package layer holds the state machine that drives one half of the
// play/pause button.
package layer

import (
	"log/slog"
	"time"

	"github.com/olivier-w/morphbutton/internal/glyph"
	"github.com/olivier-w/morphbutton/internal/morph"
)

// Glyph is one half of the button. Its logical state flips synchronously on
// Toggle while the shape catches up through a morph. It is only touched
// from the event loop.
type Glyph struct {
	half     glyph.Half
	state    glyph.State
	box      glyph.Box
	duration time.Duration
	anim     *morph.Animator
	log      *slog.Logger
}

// Option configures a Glyph.
type Option func(*Glyph)

// WithEasing sets the timing curve used by the glyph's morphs.
func WithEasing(e morph.Easing) Option {
	return func(g *Glyph) { g.anim.SetEasing(e) }
}

// WithDuration overrides the morph duration.
func WithDuration(d time.Duration) Option {
	return func(g *Glyph) { g.duration = d }
}

// WithLogger sets the logger for state and morph events.
func WithLogger(l *slog.Logger) Option {
	return func(g *Glyph) {
		if l != nil {
			g.log = l
		}
	}
}

// New returns a glyph for half h in its paused shape, sized to box.
func New(h glyph.Half, box glyph.Box, opts ...Option) *Glyph {
	g := &Glyph{
		half:     h,
		state:    glyph.InitialState(h),
		box:      box,
		duration: morph.DefaultDuration,
		log:      slog.New(slog.DiscardHandler),
	}
	g.anim = morph.NewAnimator(g.Target(), morph.OnComplete(g.committed))
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Toggle advances the glyph to its next state and starts morphing toward
// that state's outline. The morph starts from whatever is rendered at now,
// so a toggle that arrives mid-animation continues without a jump.
func (g *Glyph) Toggle(now time.Time) {
	from := g.anim.Tick(now)
	prev := g.state
	g.state = g.state.Next(g.half)
	to := g.Target()

	m, err := g.anim.Start(from, to, g.duration, now)
	if err != nil {
		g.log.Warn("morph rejected, committing target", "half", g.half, "err", err)
		g.anim.Set(to)
		return
	}
	g.log.Debug("glyph toggled", "half", g.half, "from", prev, "to", g.state, "morph", m.ID)
}

// Resize changes the glyph's box and snaps to the current state's outline
// without animating. Any in-flight morph is dropped.
func (g *Glyph) Resize(box glyph.Box) {
	if box == g.box {
		return
	}
	g.box = box
	g.anim.Set(g.Target())
	g.log.Debug("glyph resized", "half", g.half, "width", box.Width, "height", box.Height)
}

// Tick advances any in-flight morph to now and returns the rendered outline.
func (g *Glyph) Tick(now time.Time) glyph.Outline {
	return g.anim.Tick(now)
}

// SetEasing changes the timing curve for morphs started afterwards.
func (g *Glyph) SetEasing(e morph.Easing) {
	g.anim.SetEasing(e)
}

func (g *Glyph) committed(m *morph.Morph) {
	g.log.Debug("morph committed", "half", g.half, "morph", m.ID, "state", g.state)
}

// Outline returns the most recently rendered outline.
func (g *Glyph) Outline() glyph.Outline { return g.anim.Current() }

// Target returns the static outline for the current state and box.
func (g *Glyph) Target() glyph.Outline { return glyph.OutlineFor(g.half, g.state, g.box) }

// Animating reports whether a morph is in flight.
func (g *Glyph) Animating() bool { return g.anim.Animating() }

// Progress returns the time fraction of the in-flight morph, or 1 when idle.
func (g *Glyph) Progress(now time.Time) float64 {
	if m := g.anim.Active(); m != nil {
		return m.Progress(now)
	}
	return 1
}

// Half returns which side of the button the glyph occupies.
func (g *Glyph) Half() glyph.Half { return g.half }

// State returns the logical state, which is already the next state while a
// toggle morph is in flight.
func (g *Glyph) State() glyph.State { return g.state }

// Box returns the size the glyph is drawn into.
func (g *Glyph) Box() glyph.Box { return g.box }
