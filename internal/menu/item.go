package menu

// Item is anything that can be placed in a menu level.
type Item interface {
	// Name identifies the item for lookups and tracing.
	Name() string
	// Display returns the single line shown for this item.
	Display() string
	// HandleKey applies a key action and reports whether anything happened.
	// KeyUp and KeyDown are consumed by the Menu and never reach items.
	HandleKey(Key) bool
}

// Attachable is implemented by items that own nested menu levels. Submenu.Add
// calls OnAttached with the containing level and the Menu that owns it (which
// may be nil until the containing level is itself attached).
type Attachable interface {
	Item
	OnAttached(parent *Submenu, owner *Menu)
}
