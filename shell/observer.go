package shell

import "github.com/tailored-agentic-units/ritualmesh/observability"

// Shell event types emitted by the read-eval loop.
const (
	EventStart        observability.EventType = "shell.start"
	EventActivate     observability.EventType = "shell.activate"
	EventDispatch     observability.EventType = "shell.dispatch"
	EventUnrecognized observability.EventType = "shell.unrecognized"
	EventCommandError observability.EventType = "shell.command.error"
	EventTerminate    observability.EventType = "shell.terminate"
)
