package menu

import "fmt"

const (
	enterMarker = "> "
	backLabel   = "< back"
)

// Submenu is one level of the menu tree. It is also an Item, shown in its
// container as an enterable row. Every Submenu except the Menu's root starts
// with a back entry at index 0; index 0 is drawn at the bottom of the list.
type Submenu struct {
	name   string
	items  []Item
	parent *Submenu
	owner  *Menu
}

// NewSubmenu creates a level holding only its back entry.
func NewSubmenu(name string) *Submenu {
	s := &Submenu{name: name}
	s.items = []Item{&backEntry{in: s}}
	return s
}

func (s *Submenu) Name() string { return s.name }

func (s *Submenu) Display() string {
	return enterMarker + s.name
}

// HandleKey asks the owning Menu to make this the active level. A detached
// Submenu still reports the key as handled.
func (s *Submenu) HandleKey(k Key) bool {
	if !descends(k) {
		return false
	}
	if s.owner != nil {
		s.owner.setActive(s)
	}
	return true
}

// OnAttached records the containing level and hands the owner down to
// nested levels.
func (s *Submenu) OnAttached(parent *Submenu, owner *Menu) {
	s.parent = parent
	s.setOwner(owner)
}

func (s *Submenu) setOwner(owner *Menu) {
	s.owner = owner
	for _, item := range s.items {
		if nested, ok := item.(Attachable); ok {
			nested.OnAttached(s, owner)
		}
	}
}

func (s *Submenu) level() *Submenu { return s }

// Add appends items in argument order, the first one lowest on screen. Nil
// items and attempts to add a level to itself are skipped and make Add
// report false.
func (s *Submenu) Add(items ...Item) bool {
	ok := true
	for _, item := range items {
		if item == nil || item == Item(s) {
			ok = false
			continue
		}
		s.items = append(s.items, item)
		if nested, isNested := item.(Attachable); isNested {
			nested.OnAttached(s, s.owner)
		}
	}
	return ok
}

func (s *Submenu) IsEmpty() bool { return len(s.items) == 0 }

func (s *Submenu) Size() int { return len(s.items) }

// Get returns the item at index, where index 0 is the bottom row.
func (s *Submenu) Get(index int) (Item, bool) {
	if index < 0 || index >= len(s.items) {
		return nil, false
	}
	return s.items[index], true
}

// Items returns a snapshot of the level's contents.
func (s *Submenu) Items() []Item {
	return append([]Item(nil), s.items...)
}

// Find returns the first item whose name matches exactly.
func (s *Submenu) Find(name string) (Item, bool) {
	for _, item := range s.items {
		if _, isBack := item.(*backEntry); isBack {
			continue
		}
		if item.Name() == name {
			return item, true
		}
	}
	return nil, false
}

// Remove detaches and returns the item at index. The back entry cannot be
// removed this way. Nested levels of the removed item keep their links.
func (s *Submenu) Remove(index int) (Item, bool) {
	if index < 0 || index >= len(s.items) {
		return nil, false
	}
	if index == 0 && s.HasBack() {
		return nil, false
	}
	item := s.items[index]
	s.items = append(s.items[:index], s.items[index+1:]...)
	return item, true
}

// Clear removes every item except the back entry.
func (s *Submenu) Clear() {
	if s.HasBack() {
		s.items = s.items[:1]
		return
	}
	s.items = nil
}

// HasBack reports whether the level still has its back entry.
func (s *Submenu) HasBack() bool {
	if len(s.items) == 0 {
		return false
	}
	_, ok := s.items[0].(*backEntry)
	return ok
}

// Parent returns the containing level, nil for the root or a detached level.
func (s *Submenu) Parent() *Submenu { return s.parent }

// Owner returns the Menu this level belongs to, if attached.
func (s *Submenu) Owner() *Menu { return s.owner }

func (s *Submenu) stripBack() {
	if s.HasBack() {
		s.items = s.items[1:]
	}
}

// backEntry is the synthetic row that returns to the containing level.
type backEntry struct {
	in *Submenu
}

func (b *backEntry) Name() string    { return b.in.name + " back" }
func (b *backEntry) Display() string { return backLabel }

func (b *backEntry) HandleKey(k Key) bool {
	if !ascends(k) {
		return false
	}
	if b.in.parent == nil {
		panic(fmt.Sprintf("menu: back entry of %q has no parent level", b.in.name))
	}
	if b.in.owner == nil {
		return false
	}
	b.in.owner.setActive(b.in.parent)
	return true
}
