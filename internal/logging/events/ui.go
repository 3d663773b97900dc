package events

import "github.com/nmaint/nmaint/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Key(key, command string) {
	logging.Trace("menu.key", map[string]interface{}{"key": key, "command": command})
}

func (UITracer) Focus(focus int) {
	logging.Trace("menu.focus", map[string]interface{}{"focus": focus})
}

func (UITracer) Toggle(index int, label string, on bool) {
	logging.Trace("menu.toggle", map[string]interface{}{"index": index, "label": label, "on": on})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (CommandTracer) Queue(label string) {
	logging.Trace("command.queue", map[string]interface{}{"label": label})
}

func (CommandTracer) Skip(label string) {
	logging.Trace("command.skip", map[string]interface{}{"label": label})
}

func (CommandTracer) Result(label string, err error) {
	payload := map[string]interface{}{"label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
