package menu

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/textmenu/internal/logging/events"
)

// nester is implemented by items that lead to a nested level.
type nester interface {
	level() *Submenu
}

// Open makes the level named by path active, starting from the top level.
// Each segment is matched case-insensitively against the enterable items of
// the current level; exact names win, otherwise the closest fuzzy match is
// used. On error the active level is left untouched.
func (m *Menu) Open(path ...string) error {
	target := m.root
	for _, segment := range path {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		next, err := resolveChild(target, segment)
		if err != nil {
			events.Menu.Open(path, err)
			return err
		}
		target = next
	}
	events.Menu.Open(path, nil)
	m.setActive(target)
	return nil
}

func resolveChild(s *Submenu, segment string) (*Submenu, error) {
	levels := make(map[string]*Submenu)
	names := make([]string, 0, len(s.items))
	for _, item := range s.items {
		n, ok := item.(nester)
		if !ok {
			continue
		}
		if strings.EqualFold(item.Name(), segment) {
			return n.level(), nil
		}
		if _, seen := levels[item.Name()]; !seen {
			levels[item.Name()] = n.level()
			names = append(names, item.Name())
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(segment, names)
	if len(ranks) == 0 {
		return nil, fmt.Errorf("%w: no level matching %q under %q", ErrInvalidArgument, segment, s.name)
	}
	sort.Sort(ranks)
	return levels[ranks[0].Target], nil
}

// WalkFunc is called for every item in the tree. path holds the names of the
// levels leading to the item, starting with the top level.
type WalkFunc func(path []string, item Item)

// Walk visits the tree depth first in index order. Back entries are skipped;
// color items are followed into their component level.
func (m *Menu) Walk(fn WalkFunc) {
	walkLevel(m.root, []string{m.root.name}, fn)
}

func walkLevel(s *Submenu, path []string, fn WalkFunc) {
	for _, item := range s.items {
		if _, isBack := item.(*backEntry); isBack {
			continue
		}
		fn(path, item)
		if n, ok := item.(nester); ok {
			child := n.level()
			next := append(append([]string(nil), path...), item.Name())
			walkLevel(child, next, fn)
		}
	}
}
