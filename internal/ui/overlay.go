package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/textmenu/internal/menu"
)

const (
	overlayMinWidth = 16
	swatchWidth     = 14
	itemIndicator   = "▌"
)

// lineCollector is the menu.DrawSink the view hands to Menu.Draw.
type lineCollector struct {
	lines []menu.Line
}

func (c *lineCollector) DrawLines(lines []menu.Line) {
	c.lines = append(c.lines[:0], lines...)
}

// renderOverlay draws the active level as a bordered box, index 0 on the
// bottom row. maxRows <= 0 draws every row. It returns "" when the menu is
// hidden.
func (m *Model) renderOverlay(maxRows, maxWidth int) string {
	sink := &lineCollector{}
	if !m.menu.Draw(sink) {
		return ""
	}
	active := m.menu.Active()
	lines := sink.lines

	var rows []string
	if len(lines) == 0 {
		rows = append(rows, styles.Info.Render("(empty)"))
	} else {
		vp := m.viewportFor(active)
		start, end := vp.Ensure(m.menu.SelectedIndex(), len(lines), maxRows)
		textWidth := overlayTextWidth(lines[start:end], maxWidth)
		if end < len(lines) {
			rows = append(rows, styles.Info.Render(fmt.Sprintf("▲ %d more", len(lines)-end)))
		}
		for i := end - 1; i >= start; i-- {
			rows = append(rows, m.renderItemLine(lines[i], textWidth))
		}
		if start > 0 {
			rows = append(rows, styles.Info.Render(fmt.Sprintf("▼ %d more", start)))
		}
	}

	box := styles.Overlay.Render(strings.Join(rows, "\n"))
	if color, ok := m.colorFor(active); ok {
		box = lipgloss.JoinHorizontal(lipgloss.Bottom, box, " ", renderSwatch(color))
	}
	return box
}

func overlayTextWidth(lines []menu.Line, maxWidth int) int {
	width := overlayMinWidth
	for _, line := range lines {
		if w := lipgloss.Width(line.Text) + 2; w > width {
			width = w
		}
	}
	if maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}
	return width
}

// renderItemLine pads the row to width so the selection bar spans the box.
func (m *Model) renderItemLine(line menu.Line, width int) string {
	text := " " + line.Text
	textWidth := width - 1
	if textWidth < 1 {
		textWidth = 1
	}
	if lipgloss.Width(text) > textWidth {
		text = truncate.StringWithTail(text, uint(textWidth), "…")
	}
	if pad := textWidth - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	indicatorStyle, lineStyle := styles.ItemIndicator, styles.Item
	if line.Highlighted {
		indicatorStyle, lineStyle = styles.SelectedItemIndicator, styles.SelectedItem
		if !m.menu.AcceptsInput() {
			lineStyle = styles.PassiveItem
		}
	}
	return indicatorStyle.Render(itemIndicator) + lineStyle.Render(text)
}

// renderSwatch shows the color being edited with its packed value and
// components.
func renderSwatch(c *menu.ColorItem) string {
	col := c.Get()
	letters := c.Mode().Letters()
	parts := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		v, _ := c.Component(i)
		parts = append(parts, fmt.Sprintf("%s%d", letters[i], v))
	}
	block := lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex())).Render(strings.Repeat("█", swatchWidth))
	body := []string{
		styles.SwatchTitle.Render(c.Name()),
		block,
		block,
		styles.SwatchBody.Render(col.Hex()),
		styles.SwatchBody.Render(strings.Join(parts, " ")),
	}
	return styles.Overlay.Render(strings.Join(body, "\n"))
}
