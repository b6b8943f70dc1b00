package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/morphbutton/internal/button"
	"github.com/olivier-w/morphbutton/internal/config"
	"github.com/olivier-w/morphbutton/internal/morph"
)

// Position of the glyph inside the view, in terminal cells.
const (
	glyphTop   = 3
	glyphLeft  = 2
	chromeRows = 9
)

// toggleCounter is shared between the model copies bubbletea hands around
// and the button's toggle callback.
type toggleCounter struct {
	n int
}

// Model is the Bubbletea model hosting the play/pause button.
type Model struct {
	button   *button.Button
	keys     keyMap
	help     help.Model
	progress progress.Model
	now      func() time.Time

	fps      int
	curve    morph.Curve
	tints    Tints
	prefRows int
	toggles  *toggleCounter

	width, height int
	rows, cols    int
	morphProgress float64
	ticking       bool
	quitting      bool
}

// New creates a Model from a validated config.
func New(cfg config.Config) (Model, error) {
	curve, err := cfg.Curve()
	if err != nil {
		return Model{}, err
	}
	tint, err := cfg.TintColor()
	if err != nil {
		return Model{}, err
	}

	counter := &toggleCounter{}
	b := button.New(0, 0,
		button.WithEasing(curve.Easing()),
		button.WithTint(tint),
		button.OnToggle(func() { counter.n++ }),
	)

	m := Model{
		button: b,
		keys:   newKeyMap(),
		help:   help.New(),
		progress: progress.New(
			progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
			progress.WithoutPercentage(),
		),
		now:           time.Now,
		fps:           cfg.FPS,
		curve:         curve,
		tints:         NewTints(tint),
		prefRows:      cfg.Rows,
		toggles:       counter,
		morphProgress: 1,
	}
	m.progress.Width = 20
	m.layout()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle(m.button.State()))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		case key.Matches(msg, m.keys.Toggle):
			cmd := m.toggle()
			return m, cmd
		case key.Matches(msg, m.keys.Tint):
			m.tints = m.tints.Next()
			m.button.SetTint(m.tints.Current())
		case key.Matches(msg, m.keys.Easing):
			m.curve = m.curve.Next()
			m.button.SetEasing(m.curve.Easing())
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.hit(msg.X, msg.Y) {
			cmd := m.toggle()
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case frameMsg:
		now := time.Time(msg)
		if m.button.Tick(now) {
			m.morphProgress = m.button.Progress(now)
			return m, frameCmd(m.fps)
		}
		m.morphProgress = 1
		m.ticking = false
		return m, nil
	}

	return m, nil
}

// toggle flips the button and makes sure a frame loop is running.
func (m *Model) toggle() tea.Cmd {
	m.button.Toggle(m.now())
	m.morphProgress = 0

	cmds := []tea.Cmd{tea.SetWindowTitle(windowTitle(m.button.State()))}
	if !m.ticking {
		m.ticking = true
		cmds = append(cmds, frameCmd(m.fps))
	}
	return tea.Batch(cmds...)
}

// layout sizes the button to fit the window. The glyph is square in braille
// dots: rows*4 tall and cols*2 wide.
func (m *Model) layout() {
	rows := m.prefRows
	if m.height > 0 {
		rows = min(rows, m.height-chromeRows)
	}
	rows = max(rows, 2)

	cols := rows * 2
	if m.width > 0 {
		cols = min(cols, m.width-2*glyphLeft)
	}
	cols = max(cols, 2)

	m.rows, m.cols = rows, cols
	m.button.Resize(float64(cols*2), float64(rows*4))

	if m.width > 0 {
		m.progress.Width = min(max(m.width-2*glyphLeft, 10), 40)
	}
	m.help.Width = m.width
}

// hit reports whether the terminal cell (x, y) lies on the button.
func (m Model) hit(x, y int) bool {
	dx := float64((x-glyphLeft)*2 + 1)
	dy := float64((y-glyphTop)*4 + 2)
	return m.button.Contains(dx, dy)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + headerStyle.Render("morphbutton") + "\n")
	b.WriteString("\n")
	b.WriteString(renderGlyph(m.button.Frame(), spaces(glyphLeft)))
	b.WriteString("\n")
	b.WriteString("  " + statusStyle.Render(renderStatus(m.button.State(), m.curve, m.toggles.n)) + "\n")
	b.WriteString("  " + m.progress.ViewAs(m.morphProgress) + "\n")
	b.WriteString("\n")
	b.WriteString("  " + dimStyle.Render(m.help.View(m.keys)) + "\n")
	return b.String()
}

// Toggles returns how many times the button has been toggled.
func (m Model) Toggles() int {
	return m.toggles.n
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}
