package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for tests.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// Press sends each named key, using the same names as the key map
// ("up", "enter", "ctrl+c", or a literal character).
func (h *Harness) Press(names ...string) {
	for _, name := range names {
		h.Send(KeyMsg(name))
	}
}

// Resize sends a window size message.
func (h *Harness) Resize(width, height int) {
	h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			h.quit = true
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

var namedKeys = map[string]tea.KeyType{
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"enter":  tea.KeyEnter,
	"tab":    tea.KeyTab,
	"esc":    tea.KeyEsc,
	"space":  tea.KeySpace,
	"ctrl+c": tea.KeyCtrlC,
	"ctrl+q": tea.KeyCtrlQ,
}

// KeyMsg builds the key message Bubble Tea would deliver for name.
func KeyMsg(name string) tea.KeyMsg {
	if t, ok := namedKeys[strings.ToLower(name)]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}
