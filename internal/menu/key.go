package menu

import (
	"fmt"
	"strings"
)

// Key is a semantic key action. Hosts translate raw input into one of these
// before handing it to Menu.OnKeyEvent.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyIncrement
	KeyDecrement
	KeyIncrementMedium
	KeyDecrementMedium
	KeyIncrementSmall
	KeyDecrementSmall
	KeyActivate
	KeyMin
	KeyMax
	KeyRound
)

var keyNames = map[Key]string{
	KeyNone:            "none",
	KeyUp:              "up",
	KeyDown:            "down",
	KeyIncrement:       "increment",
	KeyDecrement:       "decrement",
	KeyIncrementMedium: "increment-medium",
	KeyDecrementMedium: "decrement-medium",
	KeyIncrementSmall:  "increment-small",
	KeyDecrementSmall:  "decrement-small",
	KeyActivate:        "activate",
	KeyMin:             "min",
	KeyMax:             "max",
	KeyRound:           "round",
}

// Keys lists every actionable key in declaration order.
func Keys() []Key {
	return []Key{
		KeyUp, KeyDown,
		KeyIncrement, KeyDecrement,
		KeyIncrementMedium, KeyDecrementMedium,
		KeyIncrementSmall, KeyDecrementSmall,
		KeyActivate, KeyMin, KeyMax, KeyRound,
	}
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// ParseKey resolves a key name as produced by String. Underscores and case
// are tolerated so config files can use either style.
func ParseKey(name string) (Key, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	for k, n := range keyNames {
		if n == normalized && k != KeyNone {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("%w: unknown key action %q", ErrInvalidArgument, name)
}

// descends reports whether k enters a nested level.
func descends(k Key) bool {
	return k == KeyActivate || k == KeyIncrement
}

// ascends reports whether k leaves the current level through its back entry.
func ascends(k Key) bool {
	return k == KeyActivate || k == KeyDecrement
}
