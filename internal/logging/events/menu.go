package events

import "github.com/atomicstack/textmenu/internal/logging"

// MenuTracer emits the menu.* trace events.
type MenuTracer struct{}

// Menu is the tracer used by package menu.
var Menu = MenuTracer{}

func (MenuTracer) Show(accepting bool) {
	logging.Trace("menu.show", map[string]interface{}{"accepting": accepting})
}

func (MenuTracer) Hide() {
	logging.Trace("menu.hide", nil)
}

func (MenuTracer) Key(level, key string, index int, handled bool) {
	logging.Trace("menu.key", map[string]interface{}{
		"level":   level,
		"key":     key,
		"index":   index,
		"handled": handled,
	})
}

func (MenuTracer) Cursor(level string, index int) {
	logging.Trace("menu.cursor", map[string]interface{}{"level": level, "cursor": index})
}

func (MenuTracer) Level(from, to string) {
	logging.Trace("menu.level", map[string]interface{}{"from": from, "to": to})
}

func (MenuTracer) Change(level, item, display string) {
	logging.Trace("menu.change", map[string]interface{}{"level": level, "item": item, "display": display})
}

func (MenuTracer) Open(path []string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("menu.open", payload)
}
