package morph

import (
	"fmt"
	"time"

	"github.com/olivier-w/morphbutton/internal/glyph"
)

// DefaultDuration is how long a toggle morph takes.
const DefaultDuration = 150 * time.Millisecond

// Morph is the handle of one requested animation.
type Morph struct {
	ID       uint64
	From     glyph.Outline
	To       glyph.Outline
	Start    time.Time
	Duration time.Duration

	easing Easing
}

// Progress returns the linear time fraction of m elapsed at now, in [0, 1].
func (m *Morph) Progress(now time.Time) float64 {
	if m.Duration <= 0 {
		return 1
	}
	return clamp01(float64(now.Sub(m.Start)) / float64(m.Duration))
}

// Option configures an Animator.
type Option func(*Animator)

// WithEasing sets the timing curve. A nil easing means Linear.
func WithEasing(e Easing) Option {
	return func(a *Animator) { a.SetEasing(e) }
}

// OnComplete registers fn to be called when a morph runs to completion.
// Superseded morphs never complete.
func OnComplete(fn func(*Morph)) Option {
	return func(a *Animator) { a.onComplete = fn }
}

// Animator drives one shape from outline to outline. It is not safe for
// concurrent use; it is advanced by whoever owns the render loop.
type Animator struct {
	easing     Easing
	onComplete func(*Morph)

	current glyph.Outline
	active  *Morph
	seq     uint64
}

// NewAnimator returns an idle Animator showing initial.
func NewAnimator(initial glyph.Outline, opts ...Option) *Animator {
	a := &Animator{
		easing:  EaseInOut,
		current: initial.Clone(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetEasing changes the timing curve for morphs started afterwards. An
// in-flight morph keeps the curve it started with.
func (a *Animator) SetEasing(e Easing) {
	if e == nil {
		e = Linear
	}
	a.easing = e
}

// Start begins morphing from -> to over d, starting at now. Any in-flight
// morph is superseded without completing; callers that want continuity pass
// the currently rendered outline as from. A non-positive d commits to
// immediately.
func (a *Animator) Start(from, to glyph.Outline, d time.Duration, now time.Time) (*Morph, error) {
	if len(from) != len(to) {
		return nil, fmt.Errorf("start morph: %w: %d vertices vs %d", ErrShapeMismatch, len(from), len(to))
	}

	a.seq++
	m := &Morph{
		ID:       a.seq,
		From:     from.Clone(),
		To:       to.Clone(),
		Start:    now,
		Duration: d,
		easing:   a.easing,
	}
	a.active = m
	a.current = m.From.Clone()

	if d <= 0 {
		a.commit()
	}
	return m, nil
}

// Tick advances the in-flight morph to now and returns the rendered outline.
// When the morph has run its full duration the target is committed.
func (a *Animator) Tick(now time.Time) glyph.Outline {
	m := a.active
	if m == nil {
		return a.current.Clone()
	}

	p := m.Progress(now)
	if p >= 1 {
		a.commit()
		return a.current.Clone()
	}

	out, err := Interpolate(m.From, m.To, m.easing(p))
	if err == nil {
		a.current = out
	}
	return a.current.Clone()
}

// commit makes the target of the active morph the static outline.
func (a *Animator) commit() {
	m := a.active
	a.active = nil
	a.current = m.To.Clone()
	if a.onComplete != nil {
		a.onComplete(m)
	}
}

// Set shows o immediately, dropping any in-flight morph.
func (a *Animator) Set(o glyph.Outline) {
	a.active = nil
	a.current = o.Clone()
}

// Current returns the most recently rendered outline.
func (a *Animator) Current() glyph.Outline {
	return a.current.Clone()
}

// Active returns the in-flight morph, or nil when idle.
func (a *Animator) Active() *Morph {
	return a.active
}

// Animating reports whether a morph is in flight.
func (a *Animator) Animating() bool {
	return a.active != nil
}
