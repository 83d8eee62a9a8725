package events

import "github.com/atomicstack/textmenu/internal/logging"

// UITracer emits ui.* events from the Bubble Tea host.
type UITracer struct{}

var UI = UITracer{}

func (UITracer) Overlay(showing, accepting bool) {
	logging.Trace("ui.overlay", map[string]interface{}{"showing": showing, "accepting": accepting})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Unbound(raw string) {
	logging.Trace("ui.unbound", map[string]interface{}{"key": raw})
}

func (UITracer) Quit(reason string) {
	logging.Trace("ui.quit", map[string]interface{}{"reason": reason})
}
