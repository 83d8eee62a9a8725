package menu

import (
	"fmt"
	"math"
)

// Step sizes applied by the Increment/Decrement key families.
const (
	StepLarge  = 1.0
	StepMedium = 0.1
	StepSmall  = 0.01
)

// DoubleItem wraps a float64 restricted to [min, max].
type DoubleItem struct {
	name         string
	value        float64
	min          float64
	max          float64
	defaultValue float64
}

// NewDouble creates a floating point option. value doubles as the default.
func NewDouble(name string, value, min, max float64) (*DoubleItem, error) {
	if math.IsNaN(value) || math.IsNaN(min) || math.IsNaN(max) {
		return nil, fmt.Errorf("%w: %s: NaN is not a valid bound or value", ErrInvalidArgument, name)
	}
	if max < min {
		return nil, fmt.Errorf("%w: %s: max %g is smaller than min %g", ErrInvalidArgument, name, max, min)
	}
	if value < min || value > max {
		return nil, fmt.Errorf("%w: %s: initial value %g not in [%g, %g]", ErrInvalidArgument, name, value, min, max)
	}
	return &DoubleItem{name: name, value: value, min: min, max: max, defaultValue: value}, nil
}

func (d *DoubleItem) Name() string { return d.name }

func (d *DoubleItem) Display() string {
	return fmt.Sprintf("%s = %.2f", d.name, d.value)
}

func (d *DoubleItem) HandleKey(k Key) bool {
	switch k {
	case KeyIncrement:
		return d.Add(StepLarge)
	case KeyDecrement:
		return d.Add(-StepLarge)
	case KeyIncrementMedium:
		return d.Add(StepMedium)
	case KeyDecrementMedium:
		return d.Add(-StepMedium)
	case KeyIncrementSmall:
		return d.Add(StepSmall)
	case KeyDecrementSmall:
		return d.Add(-StepSmall)
	case KeyActivate:
		return d.Reset()
	case KeyMin:
		return d.Set(d.min)
	case KeyMax:
		return d.Set(d.max)
	case KeyRound:
		return d.Round()
	}
	return false
}

func (d *DoubleItem) Get() float64     { return d.value }
func (d *DoubleItem) Min() float64     { return d.min }
func (d *DoubleItem) Max() float64     { return d.max }
func (d *DoubleItem) Default() float64 { return d.defaultValue }

// Set clamps v to the option's bounds and reports whether the value changed.
// NaN is ignored.
func (d *DoubleItem) Set(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	old := d.value
	d.value = math.Max(math.Min(v, d.max), d.min)
	return old != d.value
}

// Add shifts the value by delta, clamped.
func (d *DoubleItem) Add(delta float64) bool {
	return d.Set(d.value + delta)
}

// Reset restores the initial value.
func (d *DoubleItem) Reset() bool {
	return d.Set(d.defaultValue)
}

// Round moves the value to the nearest integer. Halves round up, so 2.5
// becomes 3 and -1.5 becomes -1. The value is reduced to float32 precision
// first; the result is still clamped to the bounds.
func (d *DoubleItem) Round() bool {
	return d.Set(roundHalfUp(d.value))
}

func roundHalfUp(v float64) float64 {
	return math.Floor(float64(float32(v)) + 0.5)
}
