package menu

import "fmt"

// EnumeratedItem holds one choice out of a fixed list of strings.
type EnumeratedItem struct {
	name         string
	options      []string
	selected     int
	defaultIndex int
}

// NewEnumerated copies options; index selects the initial (and default)
// choice.
func NewEnumerated(name string, options []string, index int) (*EnumeratedItem, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("%w: %s: options must not be empty", ErrInvalidArgument, name)
	}
	if index < 0 || index >= len(options) {
		return nil, fmt.Errorf("%w: %s: initial index %d not in [0, %d)", ErrInvalidArgument, name, index, len(options))
	}
	return &EnumeratedItem{
		name:         name,
		options:      append([]string(nil), options...),
		selected:     index,
		defaultIndex: index,
	}, nil
}

func (e *EnumeratedItem) Name() string { return e.name }

func (e *EnumeratedItem) Display() string {
	return e.name + " = " + e.options[e.selected]
}

// HandleKey scrolls through the options with wraparound. Decrement moves to
// the following option and Increment to the preceding one; hosts bind them to
// left and right respectively.
func (e *EnumeratedItem) HandleKey(k Key) bool {
	switch k {
	case KeyDecrement:
		e.selected = (e.selected + 1) % len(e.options)
		return true
	case KeyIncrement:
		e.selected--
		if e.selected < 0 {
			e.selected = len(e.options) - 1
		}
		return true
	case KeyActivate:
		return e.setIndex(e.defaultIndex)
	case KeyMin:
		return e.setIndex(0)
	case KeyMax:
		return e.setIndex(len(e.options) - 1)
	}
	return false
}

// Get returns the index of the current choice.
func (e *EnumeratedItem) Get() int { return e.selected }

// Value returns the current choice.
func (e *EnumeratedItem) Value() string { return e.options[e.selected] }

// Default returns the index restored by Activate.
func (e *EnumeratedItem) Default() int { return e.defaultIndex }

// Options returns a copy of the choices.
func (e *EnumeratedItem) Options() []string {
	return append([]string(nil), e.options...)
}

// Set selects the choice at index. Indices outside [0, len) are rejected
// without touching the current selection.
func (e *EnumeratedItem) Set(index int) (bool, error) {
	if index < 0 || index >= len(e.options) {
		return false, fmt.Errorf("%w: %s: index %d not in [0, %d)", ErrInvalidArgument, e.name, index, len(e.options))
	}
	return e.setIndex(index), nil
}

func (e *EnumeratedItem) setIndex(index int) bool {
	changed := e.selected != index
	e.selected = index
	return changed
}
