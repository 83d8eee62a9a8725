package menu

import "strconv"

// ToggleItem wraps a bool flipped by any of Increment, Decrement or Activate.
type ToggleItem struct {
	name  string
	value bool
}

// NewToggle returns a toggle starting at value.
func NewToggle(name string, value bool) *ToggleItem {
	return &ToggleItem{name: name, value: value}
}

func (t *ToggleItem) Name() string { return t.name }

func (t *ToggleItem) Display() string {
	return t.name + " = " + strconv.FormatBool(t.value)
}

func (t *ToggleItem) HandleKey(k Key) bool {
	switch k {
	case KeyIncrement, KeyDecrement, KeyActivate:
		return t.Toggle()
	}
	return false
}

// Get returns the current value.
func (t *ToggleItem) Get() bool { return t.value }

// Set reports whether v differs from the previous value.
func (t *ToggleItem) Set(v bool) bool {
	old := t.value
	t.value = v
	return old != t.value
}

// Toggle flips the value; it always reports a change.
func (t *ToggleItem) Toggle() bool {
	return t.Set(!t.value)
}
