package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/textmenu/internal/keymap"
	"github.com/atomicstack/textmenu/internal/logging/events"
	"github.com/atomicstack/textmenu/internal/menu"
	"github.com/atomicstack/textmenu/internal/scene"
	"github.com/atomicstack/textmenu/internal/theme"
	uistate "github.com/atomicstack/textmenu/internal/ui/state"
)

const (
	menuHeaderSeparator = " → "
	infoTTL             = 5 * time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries the host settings taken from the command line.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	// Passive shows the menu without letting it take keys.
	Passive bool
	// Hidden starts with the menu off screen.
	Hidden bool
}

// Model implements the Bubble Tea model hosting the scene and its menu.
type Model struct {
	scene *scene.Scene
	menu  *menu.Menu
	keys  *keymap.Map
	help  help.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	showHelp    bool
	verbose     bool
	passive     bool

	viewports map[*menu.Submenu]*uistate.Viewport
	colors    map[*menu.Submenu]*menu.ColorItem

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the scene's menu to the key map. The menu is shown unless
// opts.Hidden is set.
func NewModel(sc *scene.Scene, keys *keymap.Map, opts Options) *Model {
	if keys == nil {
		keys = keymap.Default()
	}
	m := &Model{
		scene:      sc,
		menu:       sc.Menu(),
		keys:       keys,
		help:       help.New(),
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		passive:    opts.Passive,
		viewports:  make(map[*menu.Submenu]*uistate.Viewport),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.indexColors()
	if !opts.Hidden {
		m.menu.Show(!m.passive)
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("textmenu")
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(copyResultMsg{}):     m.handleCopyResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Menu exposes the hosted menu.
func (m *Model) Menu() *menu.Menu { return m.menu }

// Scene exposes the hosted scene.
func (m *Model) Scene() *scene.Scene { return m.scene }

// indexColors records which levels belong to color items so the view can
// show a swatch next to them.
func (m *Model) indexColors() {
	m.colors = make(map[*menu.Submenu]*menu.ColorItem)
	m.menu.Walk(func(_ []string, item menu.Item) {
		if c, ok := item.(*menu.ColorItem); ok {
			m.colors[c.Submenu()] = c
		}
	})
}

// colorFor returns the color item owning level. Levels added after the model
// was built trigger a fresh walk; plain levels are remembered as nil.
func (m *Model) colorFor(level *menu.Submenu) (*menu.ColorItem, bool) {
	c, seen := m.colors[level]
	if !seen {
		m.indexColors()
		c = m.colors[level]
		m.colors[level] = c
	}
	return c, c != nil
}

func (m *Model) viewportFor(s *menu.Submenu) *uistate.Viewport {
	vp, ok := m.viewports[s]
	if !ok {
		vp = &uistate.Viewport{}
		m.viewports[s] = vp
	}
	return vp
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}
