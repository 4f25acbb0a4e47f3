package observability

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

var (
	observers = map[string]Observer{
		"noop": NoOpObserver{},
		"slog": NewSlogObserver(slog.Default()),
	}
	mutex sync.RWMutex
)

// GetObserver returns the observer registered under name. "noop" and "slog"
// (bound to slog.Default at package init) are always present.
func GetObserver(name string) (Observer, error) {
	mutex.RLock()
	defer mutex.RUnlock()

	obs, exists := observers[name]
	if !exists {
		return nil, fmt.Errorf("unknown observer: %s", name)
	}
	return obs, nil
}

// RegisterObserver adds or replaces a named observer.
func RegisterObserver(name string, observer Observer) {
	mutex.Lock()
	defer mutex.Unlock()

	observers[name] = observer
}

// ObserverNames lists the registered observer names, sorted.
func ObserverNames() []string {
	mutex.RLock()
	defer mutex.RUnlock()

	names := make([]string, 0, len(observers))
	for name := range observers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
