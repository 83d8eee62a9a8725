package menu

import (
	"math/rand"
	"reflect"
	"testing"
)

type recordingSink struct {
	calls int
	lines []Line
}

func (r *recordingSink) DrawLines(lines []Line) {
	r.calls++
	r.lines = lines
}

func TestNewMenuDefaults(t *testing.T) {
	m := New()
	if m.IsShowing() || m.AcceptsInput() {
		t.Fatalf("expected new menu to be hidden and passive")
	}
	if m.Active() != m.Root() || m.Root().Name() != "top" {
		t.Fatalf("expected root %q to be active", m.Root().Name())
	}
	if m.Root().HasBack() || !m.Root().IsEmpty() {
		t.Fatalf("expected root without back entry")
	}
	if m.SelectedIndex() != 0 {
		t.Fatalf("expected selection 0, got %d", m.SelectedIndex())
	}
}

func TestMenuIgnoresKeysUnlessVisibleAndActive(t *testing.T) {
	m := New()
	item := mustInteger(t, "n", 5, 0, 10)
	m.Add(item)

	if m.OnKeyEvent(KeyIncrement) {
		t.Fatalf("expected hidden menu to ignore keys")
	}
	m.Show(false)
	if m.OnKeyEvent(KeyIncrement) || m.OnKeyEvent(KeyUp) {
		t.Fatalf("expected passive menu to ignore keys")
	}
	if item.Get() != 5 {
		t.Fatalf("expected value untouched, got %d", item.Get())
	}
	m.Show(true)
	if !m.OnKeyEvent(KeyIncrement) || item.Get() != 6 {
		t.Fatalf("expected active menu to forward key, got %d", item.Get())
	}
	m.Hide()
	if m.AcceptsInput() || m.OnKeyEvent(KeyIncrement) {
		t.Fatalf("expected hide to stop input")
	}
}

func TestMenuIntegerScenario(t *testing.T) {
	m := New()
	item := mustInteger(t, "n", 5, 0, 10)
	m.Add(item)
	m.Show(true)

	for i := 0; i < 3; i++ {
		m.OnKeyEvent(KeyDecrement)
	}
	if item.Get() != 2 {
		t.Fatalf("expected 2 after three decrements, got %d", item.Get())
	}
	m.OnKeyEvent(KeyMin)
	if item.Get() != 0 {
		t.Fatalf("expected 0 after min, got %d", item.Get())
	}
	m.OnKeyEvent(KeyMax)
	if item.Get() != 10 {
		t.Fatalf("expected 10 after max, got %d", item.Get())
	}
	m.OnKeyEvent(KeyActivate)
	if item.Get() != 5 {
		t.Fatalf("expected 5 after reset, got %d", item.Get())
	}
}

func TestMenuNestedNavigation(t *testing.T) {
	m := New()
	a := NewSubmenu("A")
	b := NewSubmenu("B")
	x := NewToggle("X", false)
	b.Add(x)
	a.Add(b)
	m.Add(a)
	m.Show(true)

	if !m.OnKeyEvent(KeyActivate) || m.Active() != a {
		t.Fatalf("expected to enter A")
	}
	if m.SelectedIndex() != 0 {
		t.Fatalf("expected selection reset on enter, got %d", m.SelectedIndex())
	}
	m.OnKeyEvent(KeyUp)
	if !m.OnKeyEvent(KeyIncrement) || m.Active() != b {
		t.Fatalf("expected increment to enter B")
	}
	if got := m.Path(); !reflect.DeepEqual(got, []string{"top", "A", "B"}) {
		t.Fatalf("unexpected path %v", got)
	}

	m.OnKeyEvent(KeyUp)
	m.OnKeyEvent(KeyActivate)
	if !x.Get() {
		t.Fatalf("expected X toggled inside B")
	}

	m.OnKeyEvent(KeyDown)
	if !m.OnKeyEvent(KeyActivate) || m.Active() != a {
		t.Fatalf("expected back entry to return to A")
	}
	if m.SelectedIndex() != 0 {
		t.Fatalf("expected selection reset on back, got %d", m.SelectedIndex())
	}
	if !m.OnKeyEvent(KeyDecrement) || m.Active() != m.Root() {
		t.Fatalf("expected decrement on back entry to return to top")
	}
}

func TestMenuCursorClamps(t *testing.T) {
	m := New()
	m.Add(NewString("a"), NewString("b"), NewString("c"))
	m.Show(true)

	if !m.OnKeyEvent(KeyDown) || m.SelectedIndex() != 0 {
		t.Fatalf("expected down at bottom to stay at 0, got %d", m.SelectedIndex())
	}
	for i := 0; i < 5; i++ {
		if !m.OnKeyEvent(KeyUp) {
			t.Fatalf("expected up to report handled")
		}
	}
	if m.SelectedIndex() != 2 {
		t.Fatalf("expected selection clamped to 2, got %d", m.SelectedIndex())
	}
	selected, ok := m.Selected()
	if !ok || selected.Display() != "c" {
		t.Fatalf("expected c selected, got %v", selected)
	}
}

func TestMenuSelectionStaysInRange(t *testing.T) {
	m := New()
	nested := NewSubmenu("nested")
	m.Add(NewString("a"), NewString("b"), NewString("c"), nested)
	m.Show(true)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		switch rng.Intn(3) {
		case 0:
			m.OnKeyEvent(KeyUp)
		case 1:
			m.OnKeyEvent(KeyDown)
		default:
			m.OnKeyEvent(KeyActivate)
		}
		size := m.Active().Size()
		idx := m.SelectedIndex()
		if idx < 0 || (size > 0 && idx >= size) {
			t.Fatalf("selection %d left [0, %d)", idx, size)
		}
	}
}

func TestMenuEmptyLevel(t *testing.T) {
	m := New()
	m.Show(true)
	if !m.OnKeyEvent(KeyUp) || !m.OnKeyEvent(KeyDown) {
		t.Fatalf("expected cursor keys to be handled on an empty level")
	}
	if m.SelectedIndex() != 0 {
		t.Fatalf("expected selection 0 on empty level, got %d", m.SelectedIndex())
	}
	if !m.OnKeyEvent(KeyActivate) {
		t.Fatalf("expected empty level to consume non-cursor keys")
	}
	if _, ok := m.Selected(); ok {
		t.Fatalf("expected no selected item on empty level")
	}
	if len(m.Lines()) != 0 {
		t.Fatalf("expected no lines on empty level")
	}
}

func TestMenuReclampsAfterRemoval(t *testing.T) {
	m := New()
	first := mustInteger(t, "first", 1, 0, 9)
	m.Add(first, NewString("b"), NewString("c"))
	m.Show(true)
	m.OnKeyEvent(KeyUp)
	m.OnKeyEvent(KeyUp)

	m.Remove(2)
	m.Remove(1)
	if m.SelectedIndex() != 0 {
		t.Fatalf("expected selection clamped after removal, got %d", m.SelectedIndex())
	}
	if !m.OnKeyEvent(KeyIncrement) || first.Get() != 2 {
		t.Fatalf("expected key to reach the remaining item, got %d", first.Get())
	}
}

func TestMenuLinesAndDraw(t *testing.T) {
	m := New()
	m.Add(mustInteger(t, "w", 3, 0, 9), NewToggle("on", true), NewSubmenu("more"))
	m.OnKeyEvent(KeyUp)

	sink := &recordingSink{}
	if m.Draw(sink) || sink.calls != 0 {
		t.Fatalf("expected hidden menu not to draw")
	}

	m.Show(true)
	m.OnKeyEvent(KeyUp)
	if !m.Draw(sink) || sink.calls != 1 {
		t.Fatalf("expected visible menu to draw once")
	}
	want := []Line{
		{Text: "w = 3"},
		{Text: "on = true", Highlighted: true},
		{Text: "> more"},
	}
	if !reflect.DeepEqual(sink.lines, want) {
		t.Fatalf("unexpected lines %#v", sink.lines)
	}

	m.Show(false)
	if !m.Draw(sink) || sink.calls != 2 {
		t.Fatalf("expected passive menu to still draw")
	}
}

func TestMenuClear(t *testing.T) {
	m := New()
	m.Add(NewString("a"))
	m.Clear()
	if !m.Root().IsEmpty() {
		t.Fatalf("expected empty root after clear")
	}
}
