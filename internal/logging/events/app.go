package events

import "github.com/atomicstack/textmenu/internal/logging"

// AppTracer emits process lifecycle events.
type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}
