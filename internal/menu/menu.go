package menu

import "github.com/atomicstack/textmenu/internal/logging/events"

const rootName = "top"

// Line is one rendered row of the active level.
type Line struct {
	Text        string
	Highlighted bool
}

// DrawSink receives the rows of the active level, index 0 first. Index 0 is
// the bottom row; sinks stack the rest upward.
type DrawSink interface {
	DrawLines(lines []Line)
}

// Menu is the root controller. It owns the top level, tracks which level is
// active and which row of it is selected, and routes keys.
type Menu struct {
	root       *Submenu
	active     *Submenu
	selected   int
	showing    bool
	acceptKeys bool
}

// New returns a hidden, empty menu whose top level cannot be exited.
func New() *Menu {
	m := &Menu{}
	m.root = NewSubmenu(rootName)
	m.root.stripBack()
	m.root.setOwner(m)
	m.active = m.root
	return m
}

// Root returns the top level.
func (m *Menu) Root() *Submenu { return m.root }

// Active returns the level currently displayed.
func (m *Menu) Active() *Submenu { return m.active }

// Add appends items to the top level.
func (m *Menu) Add(items ...Item) bool { return m.root.Add(items...) }

// Remove detaches the top-level item at index.
func (m *Menu) Remove(index int) (Item, bool) { return m.root.Remove(index) }

// Clear empties the top level.
func (m *Menu) Clear() { m.root.Clear() }

// Show displays the menu. When acceptInput is false the menu is drawn but
// ignores keys.
func (m *Menu) Show(acceptInput bool) {
	m.showing = true
	m.acceptKeys = acceptInput
	events.Menu.Show(acceptInput)
}

// Hide removes the menu from the screen and stops key handling.
func (m *Menu) Hide() {
	m.showing = false
	m.acceptKeys = false
	events.Menu.Hide()
}

func (m *Menu) IsShowing() bool    { return m.showing }
func (m *Menu) AcceptsInput() bool { return m.showing && m.acceptKeys }

// SelectedIndex returns the selected row, always within the active level.
func (m *Menu) SelectedIndex() int {
	return clampSelection(m.selected, m.active.Size())
}

// Selected returns the item under the cursor, if the level has any.
func (m *Menu) Selected() (Item, bool) {
	return m.active.Get(m.SelectedIndex())
}

// OnKeyEvent processes one key and reports whether it did something. Keys are
// ignored unless the menu is showing and accepting input. Up moves the
// cursor one row up the screen, toward higher indices; Down moves it toward
// index 0. Both clamp at the ends and always count as handled. Any other key
// goes to the selected item.
func (m *Menu) OnKeyEvent(k Key) bool {
	if !m.AcceptsInput() {
		return false
	}
	level := m.active
	m.selected = clampSelection(m.selected, level.Size())
	switch k {
	case KeyUp:
		m.moveSelection(1)
		return true
	case KeyDown:
		m.moveSelection(-1)
		return true
	}
	if level.IsEmpty() {
		events.Menu.Key(level.name, k.String(), m.selected, true)
		return true
	}
	item := level.items[m.selected]
	index := m.selected
	handled := item.HandleKey(k)
	events.Menu.Key(level.name, k.String(), index, handled)
	if handled && m.active == level {
		events.Menu.Change(level.name, item.Name(), item.Display())
	}
	return handled
}

func (m *Menu) moveSelection(delta int) {
	before := m.selected
	m.selected = clampSelection(m.selected+delta, m.active.Size())
	if m.selected != before {
		events.Menu.Cursor(m.active.name, m.selected)
	}
}

// setActive switches the displayed level and resets the cursor.
func (m *Menu) setActive(s *Submenu) {
	from := m.active.name
	m.active = s
	m.selected = 0
	events.Menu.Level(from, s.name)
}

// Lines renders the active level without modifying any state.
func (m *Menu) Lines() []Line {
	items := m.active.items
	selected := m.SelectedIndex()
	lines := make([]Line, len(items))
	for i, item := range items {
		lines[i] = Line{Text: item.Display(), Highlighted: i == selected}
	}
	return lines
}

// Draw hands the active level to sink when the menu is showing and reports
// whether it did.
func (m *Menu) Draw(sink DrawSink) bool {
	if !m.showing || sink == nil {
		return m.showing
	}
	sink.DrawLines(m.Lines())
	return true
}

// Path returns level names from the top level down to the active one.
func (m *Menu) Path() []string {
	var names []string
	for s := m.active; s != nil; s = s.parent {
		names = append(names, s.name)
		if s == m.root {
			break
		}
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}

func clampSelection(index, size int) int {
	if size <= 0 || index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}
