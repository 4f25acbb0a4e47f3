package module

import "github.com/tailored-agentic-units/ritualmesh/observability"

// Loader event types.
const (
	EventDiscover = observability.EventType("module.discover")
	EventInvoked  = observability.EventType("module.invoked")
	EventNotFound = observability.EventType("module.not_found")
	EventFailed   = observability.EventType("module.failed")
)
