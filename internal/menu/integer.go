package menu

import "fmt"

// IntegerItem wraps an int restricted to [min, max].
type IntegerItem struct {
	name         string
	value        int
	min          int
	max          int
	defaultValue int
}

// NewInteger creates an integer option. value doubles as the default used
// when the option is reset.
func NewInteger(name string, value, min, max int) (*IntegerItem, error) {
	if max < min {
		return nil, fmt.Errorf("%w: %s: max %d is smaller than min %d", ErrInvalidArgument, name, max, min)
	}
	if value < min || value > max {
		return nil, fmt.Errorf("%w: %s: initial value %d not in [%d, %d]", ErrInvalidArgument, name, value, min, max)
	}
	return &IntegerItem{name: name, value: value, min: min, max: max, defaultValue: value}, nil
}

func (i *IntegerItem) Name() string { return i.name }

func (i *IntegerItem) Display() string {
	return fmt.Sprintf("%s = %d", i.name, i.value)
}

// HandleKey steps by one on Increment/Decrement, resets on Activate and jumps
// to the bounds on Min/Max.
func (i *IntegerItem) HandleKey(k Key) bool {
	switch k {
	case KeyIncrement:
		return i.Add(1)
	case KeyDecrement:
		return i.Add(-1)
	case KeyActivate:
		return i.Reset()
	case KeyMin:
		return i.Set(i.min)
	case KeyMax:
		return i.Set(i.max)
	}
	return false
}

func (i *IntegerItem) Get() int     { return i.value }
func (i *IntegerItem) Min() int     { return i.min }
func (i *IntegerItem) Max() int     { return i.max }
func (i *IntegerItem) Default() int { return i.defaultValue }

// Set clamps v to the option's bounds and reports whether the value changed.
func (i *IntegerItem) Set(v int) bool {
	old := i.value
	i.value = clampInt(v, i.min, i.max)
	return old != i.value
}

// Add shifts the value by delta, clamped.
func (i *IntegerItem) Add(delta int) bool {
	return i.Set(i.value + delta)
}

// Reset restores the initial value.
func (i *IntegerItem) Reset() bool {
	return i.Set(i.defaultValue)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
