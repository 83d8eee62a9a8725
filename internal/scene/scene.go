// Package scene is the demo application hosted behind the menu: a canvas
// whose size, fill and border are driven by menu options.
package scene

import (
	"fmt"

	"github.com/atomicstack/textmenu/internal/colorcodec"
	"github.com/atomicstack/textmenu/internal/menu"
)

// Patterns lists the fill choices, in menu order.
var Patterns = []string{"solid", "shade", "dots", "hatch"}

var patternGlyphs = map[string]string{
	"solid": "█",
	"shade": "▒",
	"dots":  "·",
	"hatch": "╱",
}

// Settings holds the options the canvas reads on every frame.
type Settings struct {
	Width   *menu.IntegerItem
	Height  *menu.IntegerItem
	Scale   *menu.DoubleItem
	Border  *menu.ToggleItem
	Pattern *menu.EnumeratedItem
	Fill    *menu.ColorItem
	Outline *menu.ColorItem
	Title   *menu.StringItem
}

// Scene couples the settings with the menu tree that edits them.
type Scene struct {
	Settings Settings
	menu     *menu.Menu
}

// New builds the settings and registers them under three submenus:
// canvas, style and about.
func New() (*Scene, error) {
	var (
		s   Settings
		err error
	)
	if s.Width, err = menu.NewInteger("width", 24, 1, 120); err != nil {
		return nil, err
	}
	if s.Height, err = menu.NewInteger("height", 8, 1, 60); err != nil {
		return nil, err
	}
	if s.Scale, err = menu.NewDouble("scale", 1, 0.25, 3); err != nil {
		return nil, err
	}
	s.Border = menu.NewToggle("border", true)
	if s.Pattern, err = menu.NewEnumerated("pattern", Patterns, 1); err != nil {
		return nil, err
	}
	if s.Fill, err = menu.NewColor("fill", colorcodec.ModeRGB, 95, 135, 215, nil); err != nil {
		return nil, err
	}
	if s.Outline, err = menu.NewColor("outline", colorcodec.ModeHSB, 30, 200, 255, nil); err != nil {
		return nil, err
	}
	s.Title = menu.NewString("textmenu demo")

	canvas := menu.NewSubmenu("canvas")
	canvas.Add(s.Width, s.Height, s.Scale)

	style := menu.NewSubmenu("style")
	style.Add(s.Border, s.Pattern, s.Fill, s.Outline)

	about := menu.NewSubmenu("about")
	about.Add(
		menu.NewString("tab shows or hides this menu"),
		menu.NewString("left/right adjust, enter resets"),
		menu.NewString("? lists every binding"),
	)

	m := menu.New()
	m.Add(s.Title, canvas, style, about)
	return &Scene{Settings: s, menu: m}, nil
}

// Menu returns the tree editing the scene.
func (s *Scene) Menu() *menu.Menu { return s.menu }

// Size returns the canvas size in cells after scaling, before it is fitted
// to the screen.
func (s *Scene) Size() (int, int) {
	scale := s.Settings.Scale.Get()
	w := int(float64(s.Settings.Width.Get())*scale + 0.5)
	h := int(float64(s.Settings.Height.Get())*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Glyph returns the fill character for the current pattern.
func (s *Scene) Glyph() string {
	if g, ok := patternGlyphs[s.Settings.Pattern.Value()]; ok {
		return g
	}
	return "#"
}

// Describe summarises the scene in one line, for the status bar.
func (s *Scene) Describe() string {
	w, h := s.Size()
	return fmt.Sprintf("%dx%d %s fill %s", w, h, s.Settings.Pattern.Value(), s.Settings.Fill.Get().Hex())
}
