// Package tui hosts the chaikin controller in a terminal. The canvas is
// drawn with braille characters, and mouse and keyboard input is decoded
// into controller events.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"honnef.co/go/chaikin"
	"honnef.co/go/chaikin/internal/raster"
)

// Rows above and below the canvas.
const (
	headerRows = 1
	footerRows = 2
)

// Options configure a Model.
type Options struct {
	// Modifier is the mouse modifier that acts as the drag modifier: ctrl,
	// alt or shift.
	Modifier string
	// ToggleKey flips a sticky drag modifier.
	ToggleKey string
	// CurveColor is the foreground colour of the canvas.
	CurveColor string
	Logger     *slog.Logger
}

// tickMsg is delivered by the animation timer. Ticks of an earlier
// activation carry an old generation and are dropped.
type tickMsg struct {
	gen int
}

// Model is the bubbletea model of the canvas.
type Model struct {
	ctrl *chaikin.Controller
	keys KeyMap
	help help.Model
	opts Options
	log  *slog.Logger

	width  int
	height int
	ready  bool

	// Generation of the running timer, and whether a tick is pending.
	gen     int
	ticking bool

	mouseMod bool
	sticky   bool

	quitting bool
	err      error
}

// New returns a model with a fresh controller.
func New(opts Options) Model {
	if opts.Modifier == "" {
		opts.Modifier = "ctrl"
	}
	if opts.ToggleKey == "" {
		opts.ToggleKey = "m"
	}
	log := opts.Logger
	if log == nil {
		log = chaikin.Logger()
	}
	return Model{
		ctrl: chaikin.NewController(chaikin.Rect{}),
		keys: DefaultKeyMap(opts.ToggleKey),
		help: help.New(),
		opts: opts,
		log:  log,
	}
}

// Run runs the canvas until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		New(opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}

func (m Model) Controller() *chaikin.Controller { return m.ctrl }

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(chaikin.Title)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		w, h := raster.SurfaceSize(m.width, m.canvasRows())
		m.ctrl.SetBounds(chaikin.NewRectFromSize(float64(w), float64(h)))
		m.help.Width = msg.Width
		m.log.Debug("resized", "cols", msg.Width, "rows", msg.Height, "surface", fmt.Sprintf("%dx%d", w, h))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tickMsg:
		if msg.gen != m.gen || !m.ticking {
			return m, nil
		}
		m.ticking = false
		return m.handle(chaikin.TimerTick{})
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Interrupt):
		return m.handle(chaikin.Quit{})
	case key.Matches(msg, m.keys.Quit):
		return m.handle(chaikin.KeyPressed{Key: chaikin.KeyEscape})
	case key.Matches(msg, m.keys.Start):
		return m.handle(chaikin.KeyPressed{Key: chaikin.KeyEnter})
	case key.Matches(msg, m.keys.Reset):
		return m.handle(chaikin.KeyPressed{Key: chaikin.KeyChar('r')})
	case key.Matches(msg, m.keys.Toggle):
		m.sticky = !m.sticky
		m.syncModifier()
		return m, nil
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseMod = modifierBit(msg, m.opts.Modifier)
	m.syncModifier()

	cur := m.cursor(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		btn, ok := button(msg.Button)
		if !ok {
			return m, nil
		}
		var mods chaikin.Modifiers
		if m.mouseMod {
			mods |= chaikin.ModDrag
		}
		return m.handle(chaikin.PointerPressed{Cursor: cur, Modifiers: mods, Button: btn})
	case tea.MouseActionMotion:
		return m.handle(chaikin.PointerMoved{Cursor: cur})
	}
	return m, nil
}

// syncModifier delivers a modifier press or release to the controller when
// the combined state of the mouse bit and the sticky toggle changed.
func (m *Model) syncModifier() {
	held := m.mouseMod || m.sticky
	switch {
	case held && !m.ctrl.ModifierHeld():
		m.ctrl.Handle(chaikin.KeyPressed{Key: chaikin.KeyModifier})
	case !held && m.ctrl.ModifierHeld():
		m.ctrl.Handle(chaikin.KeyReleased{Key: chaikin.KeyModifier})
	}
}

// handle delivers ev and then reconciles the timer with the controller's
// subscription.
func (m Model) handle(ev chaikin.Event) (tea.Model, tea.Cmd) {
	_, cmd := m.ctrl.Handle(ev)
	if cmd == chaikin.CommandQuit {
		m.quitting = true
		m.ticking = false
		m.log.Info("quit", "points", len(m.ctrl.Points()))
		return m, tea.Quit
	}

	sub := m.ctrl.Subscription()
	switch {
	case sub.Active && !m.ticking:
		m.ticking = true
		m.gen++
		return m, tick(m.gen, sub.Period)
	case !sub.Active && m.ticking:
		m.ticking = false
		m.gen++
	}
	return m, nil
}

func tick(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m Model) canvasRows() int {
	return max(m.height-headerRows-footerRows, 0)
}

// cursor maps the terminal cell at (x, y) to the centre of its dots on the
// drawing surface. Cells outside the canvas have no position.
func (m Model) cursor(x, y int) chaikin.Cursor {
	row := y - headerRows
	if x < 0 || x >= m.width || row < 0 || row >= m.canvasRows() {
		return chaikin.CursorUnavailable
	}
	return chaikin.CursorAt(raster.CellCenter(x, row))
}

func modifierBit(msg tea.MouseMsg, name string) bool {
	switch name {
	case "alt":
		return msg.Alt
	case "shift":
		return msg.Shift
	default:
		return msg.Ctrl
	}
}

func button(b tea.MouseButton) (chaikin.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return chaikin.ButtonPrimary, true
	case tea.MouseButtonRight:
		return chaikin.ButtonSecondary, true
	case tea.MouseButtonMiddle:
		return chaikin.ButtonMiddle, true
	default:
		return 0, false
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(chaikin.Title))
	b.WriteByte('\n')

	canvas, err := m.canvas()
	if err != nil {
		m.log.Error("render failed", "err", err)
		b.WriteString(strings.Repeat("\n", m.canvasRows()))
		b.WriteString(StatusErrorStyle.Render(err.Error()))
	} else {
		style := canvasStyle(m.opts.CurveColor)
		for _, line := range canvas {
			b.WriteString(style.Render(line))
			b.WriteByte('\n')
		}
		b.WriteString(m.status())
	}
	b.WriteByte('\n')
	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) canvas() ([]string, error) {
	rows := m.canvasRows()
	if rows == 0 || m.width == 0 {
		return nil, nil
	}
	w, h := raster.SurfaceSize(m.width, rows)
	dc, err := raster.Render(m.ctrl.Scene(), w, h, raster.DefaultStyle)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return raster.Braille(dc.Image()), nil
}

func (m Model) status() string {
	kind := modeKind(m.ctrl.Mode())
	s := m.ctrl.Session()
	mod := "off"
	if s.ModifierHeld {
		mod = "on"
	}
	return StatusStyle.Render(fmt.Sprintf("%s  points %d  iteration %d/%d  drag %s",
		modeStyle(kind).Render(kind), len(s.Points), s.CurrentIteration, s.TargetIterations, mod))
}

func modeKind(mode chaikin.Mode) string {
	switch mode.(type) {
	case chaikin.Animating:
		return "animating"
	case chaikin.Dragging:
		return "dragging"
	default:
		return "editing"
	}
}
