package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/textmenu/internal/format/table"
	"github.com/atomicstack/textmenu/internal/menu"
)

// Dump writes every item of the tree as PATH, KIND, DISPLAY columns.
func Dump(w io.Writer, m *menu.Menu) error {
	rows := [][]string{{"PATH", "KIND", "DISPLAY"}}
	m.Walk(func(path []string, item menu.Item) {
		rows = append(rows, []string{strings.Join(path, "/"), kindOf(item), item.Display()})
	})
	for _, line := range table.Format(rows, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Summary counts what a menu tree holds.
type Summary struct {
	Items  int            `json:"items"`
	Levels int            `json:"levels"`
	Depth  int            `json:"depth"`
	Kinds  map[string]int `json:"kinds"`
}

// Summarize walks the tree once. Levels counts every nested submenu,
// color component menus included; Depth is the longest level path.
func Summarize(m *menu.Menu) Summary {
	sum := Summary{Kinds: make(map[string]int)}
	m.Walk(func(path []string, item menu.Item) {
		sum.Items++
		kind := kindOf(item)
		sum.Kinds[kind]++
		depth := len(path)
		switch item.(type) {
		case *menu.Submenu, *menu.ColorItem:
			sum.Levels++
			depth++
		}
		if depth > sum.Depth {
			sum.Depth = depth
		}
	})
	return sum
}

func kindOf(item menu.Item) string {
	switch v := item.(type) {
	case *menu.Submenu:
		return "menu"
	case *menu.ColorItem:
		return "color/" + v.Mode().String()
	case *menu.IntegerItem:
		return "integer"
	case *menu.DoubleItem:
		return "double"
	case *menu.ToggleItem:
		return "toggle"
	case *menu.EnumeratedItem:
		return "choice"
	case *menu.StringItem:
		return "label"
	}
	return "item"
}
