package menu

import (
	"fmt"

	"github.com/atomicstack/textmenu/internal/colorcodec"
)

// ColorItem stores a three-component color. Entering it opens a level with
// one integer option per component, each bounded to [0, 255].
type ColorItem struct {
	name       string
	mode       colorcodec.Mode
	codec      colorcodec.Codec
	components [3]*IntegerItem
	menu       *Submenu
}

// NewColor creates a color option. The component labels follow the mode
// (R, G, B or H, S, B). A nil codec selects colorcodec.Default.
func NewColor(name string, mode colorcodec.Mode, c1, c2, c3 int, codec colorcodec.Codec) (*ColorItem, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %s: unsupported color mode %v", ErrInvalidArgument, name, mode)
	}
	if codec == nil {
		codec = colorcodec.Default()
	}
	c := &ColorItem{name: name, mode: mode, codec: codec}
	letters := mode.Letters()
	for i, v := range [3]int{c1, c2, c3} {
		comp, err := NewInteger(letters[i], v, 0, 255)
		if err != nil {
			return nil, fmt.Errorf("color %s: %w", name, err)
		}
		c.components[i] = comp
	}
	c.menu = NewSubmenu(name + " menu")
	c.menu.Add(c.components[2], c.components[1], c.components[0])
	return c, nil
}

func (c *ColorItem) Name() string { return c.name }

func (c *ColorItem) Display() string {
	return enterMarker + c.name
}

// HandleKey enters the component level on the same keys as a Submenu.
func (c *ColorItem) HandleKey(k Key) bool {
	return c.menu.HandleKey(k)
}

func (c *ColorItem) OnAttached(parent *Submenu, owner *Menu) {
	c.menu.OnAttached(parent, owner)
}

func (c *ColorItem) level() *Submenu { return c.menu }

// Submenu returns the component level.
func (c *ColorItem) Submenu() *Submenu { return c.menu }

func (c *ColorItem) Mode() colorcodec.Mode { return c.mode }

// Get packs the current components.
func (c *ColorItem) Get() colorcodec.Color {
	return c.codec.Pack(c.components[0].Get(), c.components[1].Get(), c.components[2].Get(), c.mode)
}

// Set decomposes col under the item's mode and reports whether any
// component changed.
func (c *ColorItem) Set(col colorcodec.Color) bool {
	v1, v2, v3 := c.codec.Unpack(col, c.mode)
	changed := c.components[0].Set(v1)
	changed = c.components[1].Set(v2) || changed
	changed = c.components[2].Set(v3) || changed
	return changed
}

// Component returns component 0, 1 or 2.
func (c *ColorItem) Component(index int) (int, error) {
	comp, err := c.component(index)
	if err != nil {
		return 0, err
	}
	return comp.Get(), nil
}

// SetComponent writes one component, clamped to [0, 255].
func (c *ColorItem) SetComponent(value, index int) (bool, error) {
	comp, err := c.component(index)
	if err != nil {
		return false, err
	}
	return comp.Set(value), nil
}

func (c *ColorItem) component(index int) (*IntegerItem, error) {
	if index < 0 || index > 2 {
		return nil, fmt.Errorf("%w: %s: component must be 0, 1, or 2, got %d", ErrInvalidArgument, c.name, index)
	}
	return c.components[index], nil
}
