package menu

import (
	"errors"
	"math/rand"
	"testing"
)

func mustInteger(t *testing.T, name string, value, min, max int) *IntegerItem {
	t.Helper()
	item, err := NewInteger(name, value, min, max)
	if err != nil {
		t.Fatalf("NewInteger(%q): %v", name, err)
	}
	return item
}

func TestNewIntegerRejectsInvalidBounds(t *testing.T) {
	if _, err := NewInteger("x", 0, 5, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for max < min, got %v", err)
	}
	if _, err := NewInteger("x", 11, 0, 10); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for value above max, got %v", err)
	}
	if _, err := NewInteger("x", -1, 0, 10); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for value below min, got %v", err)
	}
	if _, err := NewInteger("x", 3, 3, 3); err != nil {
		t.Fatalf("expected single-value range to be valid, got %v", err)
	}
}

func TestIntegerSetClampsAndReportsChange(t *testing.T) {
	item := mustInteger(t, "count", 5, 0, 10)
	if !item.Set(20) {
		t.Fatalf("expected change when clamping to max")
	}
	if item.Get() != 10 {
		t.Fatalf("expected 10, got %d", item.Get())
	}
	if item.Set(11) {
		t.Fatalf("expected no change when value clamps to current")
	}
	if !item.Set(-4) || item.Get() != 0 {
		t.Fatalf("expected clamp to 0, got %d", item.Get())
	}
}

func TestIntegerBoundsHoldForRandomSets(t *testing.T) {
	item := mustInteger(t, "n", 0, -7, 13)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		before := item.Get()
		v := rng.Intn(60) - 30
		changed := item.Set(v)
		got := item.Get()
		if got < item.Min() || got > item.Max() {
			t.Fatalf("value %d escaped [%d, %d]", got, item.Min(), item.Max())
		}
		if changed != (got != before) {
			t.Fatalf("Set(%d) reported %v but value went %d -> %d", v, changed, before, got)
		}
	}
}

func TestIntegerKeyBindings(t *testing.T) {
	item := mustInteger(t, "size", 5, 0, 10)
	if !item.HandleKey(KeyIncrement) || item.Get() != 6 {
		t.Fatalf("expected increment to 6, got %d", item.Get())
	}
	if !item.HandleKey(KeyDecrement) || item.Get() != 5 {
		t.Fatalf("expected decrement to 5, got %d", item.Get())
	}
	if !item.HandleKey(KeyMax) || item.Get() != 10 {
		t.Fatalf("expected max 10, got %d", item.Get())
	}
	if item.HandleKey(KeyIncrement) {
		t.Fatalf("expected no change incrementing past max")
	}
	if !item.HandleKey(KeyActivate) || item.Get() != 5 {
		t.Fatalf("expected reset to 5, got %d", item.Get())
	}
	if !item.HandleKey(KeyMin) || item.Get() != 0 {
		t.Fatalf("expected min 0, got %d", item.Get())
	}
	for _, k := range []Key{KeyRound, KeyIncrementSmall, KeyDecrementMedium, KeyNone} {
		if item.HandleKey(k) {
			t.Fatalf("expected %s to be ignored", k)
		}
	}
}

func TestIntegerDisplay(t *testing.T) {
	item := mustInteger(t, "width", 12, 0, 80)
	if got := item.Display(); got != "width = 12" {
		t.Fatalf("unexpected display %q", got)
	}
}
