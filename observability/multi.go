package observability

import "context"

// MultiObserver forwards each event to every wrapped observer in order.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver wraps observers, ignoring nil entries.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	m := &MultiObserver{observers: make([]Observer, 0, len(observers))}
	for _, obs := range observers {
		if obs != nil {
			m.observers = append(m.observers, obs)
		}
	}
	return m
}

func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, obs := range m.observers {
		obs.OnEvent(ctx, event)
	}
}
