package scene

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render draws the canvas centred in a maxWidth by maxHeight area. The
// canvas is clipped when it does not fit; a zero dimension means
// unbounded.
func (s *Scene) Render(maxWidth, maxHeight int) string {
	w, h := s.Size()
	border := s.Settings.Border.Get()
	if border {
		w, h = w+2, h+2
	}
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	if maxHeight > 0 && h > maxHeight {
		h = maxHeight
	}
	innerW, innerH := w, h
	if border {
		innerW, innerH = w-2, h-2
	}
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}

	row := strings.Repeat(s.Glyph(), innerW)
	rows := make([]string, innerH)
	for i := range rows {
		rows[i] = row
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Settings.Fill.Get().Hex()))
	if border && innerW > 0 && innerH > 0 {
		style = style.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(s.Settings.Outline.Get().Hex()))
	}
	body := style.Render(strings.Join(rows, "\n"))
	if maxWidth <= 0 || maxHeight <= 0 {
		return body
	}
	return lipgloss.Place(maxWidth, maxHeight, lipgloss.Center, lipgloss.Center, body)
}
