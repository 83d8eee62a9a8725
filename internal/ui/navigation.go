package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/textmenu/internal/keymap"
	"github.com/atomicstack/textmenu/internal/logging"
	"github.com/atomicstack/textmenu/internal/logging/events"
	"github.com/atomicstack/textmenu/internal/menu"
)

var clipboardWrite = clipboard.WriteAll

type copyResultMsg struct {
	text string
	err  error
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.keys.ResolveHost(keyMsg) {
	case keymap.HostQuit:
		events.UI.Quit(keyMsg.String())
		return tea.Quit
	case keymap.HostToggle:
		m.toggleOverlay()
		return nil
	case keymap.HostHelp:
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return nil
	case keymap.HostCopy:
		if m.menu.IsShowing() {
			return m.copySelected()
		}
		return nil
	}

	k := m.keys.Resolve(keyMsg)
	if k == menu.KeyNone {
		events.UI.Unbound(keyMsg.String())
		return nil
	}
	if m.menu.OnKeyEvent(k) {
		m.errMsg = ""
		if m.verbose {
			if item, ok := m.menu.Selected(); ok {
				m.setInfo(item.Display())
			}
		}
	}
	return nil
}

func (m *Model) toggleOverlay() {
	if m.menu.IsShowing() {
		m.menu.Hide()
	} else {
		m.menu.Show(!m.passive)
	}
	m.forceClearInfo()
	events.UI.Overlay(m.menu.IsShowing(), m.menu.AcceptsInput())
}

// copySelected puts the selected row on the system clipboard. Color items
// copy their hex value rather than the row label.
func (m *Model) copySelected() tea.Cmd {
	item, ok := m.menu.Selected()
	if !ok {
		return nil
	}
	text := item.Display()
	if c, isColor := item.(*menu.ColorItem); isColor {
		text = c.Get().Hex()
	}
	return func() tea.Msg {
		return copyResultMsg{text: text, err: clipboardWrite(text)}
	}
}

func (m *Model) handleCopyResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(copyResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		logging.Error(fmt.Errorf("copy to clipboard: %w", result.err))
		m.errMsg = "copy failed: " + result.err.Error()
		return nil
	}
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("copied %q", result.text))
	return nil
}
