// Package button composes two glyph halves into the play/pause control.
package button

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/olivier-w/morphbutton/internal/glyph"
	"github.com/olivier-w/morphbutton/internal/layer"
	"github.com/olivier-w/morphbutton/internal/morph"
)

// Fractions of the button width given to each half.
const (
	LeftWidthProportion  = 0.68
	RightWidthProportion = 0.32
)

// Frame is what the button looks like at one instant: both halves'
// rendered outlines in button coordinates.
type Frame struct {
	Width, Height float64
	Tint          color.Color
	Outlines      []glyph.Outline
}

// Option configures a Button.
type Option func(*Button)

// WithEasing sets the timing curve of both halves.
func WithEasing(e morph.Easing) Option {
	return func(b *Button) { b.easing = e }
}

// WithTint sets the initial fill color.
func WithTint(c color.Color) Option {
	return func(b *Button) { b.SetTint(c) }
}

// OnToggle registers fn to be called once per toggle, after both halves
// have changed state.
func OnToggle(fn func()) Option {
	return func(b *Button) { b.onToggle = fn }
}

// Button owns the left and right glyph halves and relays toggles to both.
// It is driven from a single event loop and is not safe for concurrent use.
type Button struct {
	left, right *layer.Glyph
	state       State
	width       float64
	height      float64
	tint        color.Color
	easing      morph.Easing
	onToggle    func()
	log         *slog.Logger
}

// New returns a paused button of the given size.
func New(width, height float64, opts ...Option) *Button {
	b := &Button{
		state:  Paused,
		width:  max(width, 0),
		height: max(height, 0),
		tint:   color.White,
		easing: morph.EaseInOut,
		log:    Logger(),
	}
	for _, opt := range opts {
		opt(b)
	}

	l, r := layout(b.width, b.height)
	b.left = layer.New(glyph.Left, l.Box(), layer.WithEasing(b.easing), layer.WithLogger(b.log))
	b.right = layer.New(glyph.Right, r.Box(), layer.WithEasing(b.easing), layer.WithLogger(b.log))
	return b
}

func layout(width, height float64) (left, right glyph.Rect) {
	lw := LeftWidthProportion * width
	left = glyph.Rect{X: 0, Y: 0, Width: lw, Height: height}
	right = glyph.Rect{X: lw, Y: 0, Width: RightWidthProportion * width, Height: height}
	return left, right
}

// Toggle advances both halves and then calls the registered callback.
func (b *Button) Toggle(now time.Time) {
	b.left.Toggle(now)
	b.right.Toggle(now)
	b.state = b.state.Toggle()
	b.log.Debug("button toggled", "state", b.state)

	if b.onToggle != nil {
		b.onToggle()
	}
}

// Resize lays the halves out for a new button size. Shapes snap to the new
// size without animating.
func (b *Button) Resize(width, height float64) {
	width, height = max(width, 0), max(height, 0)
	if width == b.width && height == b.height {
		return
	}
	b.width, b.height = width, height
	l, r := layout(width, height)
	b.left.Resize(l.Box())
	b.right.Resize(r.Box())
	b.log.Debug("button resized", "width", width, "height", height)
}

// Tick advances in-flight morphs to now and reports whether any is still
// running.
func (b *Button) Tick(now time.Time) bool {
	b.left.Tick(now)
	b.right.Tick(now)
	return b.Animating()
}

// Animating reports whether either half is still morphing.
func (b *Button) Animating() bool {
	return b.left.Animating() || b.right.Animating()
}

// Progress returns the least advanced morph progress of the two halves.
func (b *Button) Progress(now time.Time) float64 {
	return min(b.left.Progress(now), b.right.Progress(now))
}

// Frame returns the currently rendered outlines in button coordinates.
func (b *Button) Frame() Frame {
	l, r := b.Layout()
	return Frame{
		Width:  b.width,
		Height: b.height,
		Tint:   b.tint,
		Outlines: []glyph.Outline{
			b.left.Outline().Translate(l.X, l.Y),
			b.right.Outline().Translate(r.X, r.Y),
		},
	}
}

// Layout returns the rectangles occupied by the left and right halves.
func (b *Button) Layout() (left, right glyph.Rect) {
	return layout(b.width, b.height)
}

// Contains reports whether (x, y) in button coordinates hits the button.
func (b *Button) Contains(x, y float64) bool {
	return glyph.Rect{Width: b.width, Height: b.height}.Contains(x, y)
}

// SetTint changes the fill color of both halves.
func (b *Button) SetTint(c color.Color) {
	if c == nil {
		return
	}
	b.tint = c
}

// SetEasing changes the timing curve of both halves for morphs started
// afterwards.
func (b *Button) SetEasing(e morph.Easing) {
	b.easing = e
	b.left.SetEasing(e)
	b.right.SetEasing(e)
}

// SetOnToggle replaces the toggle callback.
func (b *Button) SetOnToggle(fn func()) {
	b.onToggle = fn
}

// State returns the button-level mode.
func (b *Button) State() State { return b.state }

// Tint returns the fill color.
func (b *Button) Tint() color.Color { return b.tint }

// Size returns the button's width and height.
func (b *Button) Size() (w, h float64) { return b.width, b.height }

// Left returns the left half.
func (b *Button) Left() *layer.Glyph { return b.left }

// Right returns the right half.
func (b *Button) Right() *layer.Glyph { return b.right }
