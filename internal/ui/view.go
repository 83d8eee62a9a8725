package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/textmenu/internal/keymap"
)

// View implements tea.Model. Rows from top: breadcrumb header, scene,
// menu overlay, status line, optional key help.
func (m *Model) View() string {
	header := styles.Header.Render(truncateText(m.menuHeader(), m.width))
	status := m.statusLine()
	footer := m.footer()

	bodyHeight := 0
	if m.height > 0 {
		bodyHeight = m.height - 2
		if footer != "" {
			bodyHeight -= lipgloss.Height(footer)
		}
		if bodyHeight < 1 {
			bodyHeight = 1
		}
	}

	overlay := m.renderOverlay(m.maxVisibleItems(bodyHeight), m.overlayWidth())
	sceneHeight := 0
	if bodyHeight > 0 {
		sceneHeight = bodyHeight
		if overlay != "" {
			sceneHeight -= lipgloss.Height(overlay)
		}
		if sceneHeight < 1 {
			sceneHeight = 1
		}
	}
	canvas := m.scene.Render(m.width, sceneHeight)

	sections := []string{header, canvas}
	if overlay != "" {
		sections = append(sections, overlay)
	}
	sections = append(sections, status)
	if footer != "" {
		sections = append(sections, footer)
	}
	return strings.Join(sections, "\n")
}

func (m *Model) menuHeader() string {
	if !m.menu.IsShowing() {
		hint := "menu hidden"
		if b, ok := m.keys.HostBinding(keymap.HostToggle); ok && b.Enabled() {
			hint += fmt.Sprintf(" (%s to show)", b.Help().Key)
		}
		return hint
	}
	header := strings.Join(m.menu.Path(), menuHeaderSeparator)
	if !m.menu.AcceptsInput() {
		header += " [read-only]"
	}
	return header
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return styles.Error.Render(truncateText("Error: "+m.errMsg, m.width))
	}
	if info := m.currentInfo(); info != "" {
		return styles.Info.Render(truncateText(info, m.width))
	}
	return styles.Footer.Render(truncateText(m.scene.Describe(), m.width))
}

func (m *Model) footer() string {
	if !m.showFooter && !m.showHelp {
		return ""
	}
	return styles.Footer.Render(m.help.View(m.keys))
}

// maxVisibleItems gives the menu up to half the body, minus the box border
// and scroll markers. Zero means unbounded.
func (m *Model) maxVisibleItems(bodyHeight int) int {
	if bodyHeight <= 0 {
		return 0
	}
	rows := bodyHeight/2 - 4
	if rows < 1 {
		return 1
	}
	return rows
}

func (m *Model) overlayWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width - 4
	if _, ok := m.colorFor(m.menu.Active()); ok {
		w -= swatchWidth + 5
	}
	if w < overlayMinWidth {
		return overlayMinWidth
	}
	return w
}

func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
