package backend

import "sync"

// Factory creates a new backend instance.
type Factory func() Backend

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)

	// Priority order for backend selection (first available wins).
	priority = []string{"softraster", "record"}
)

// Register registers a backend factory under the given name. It is
// typically called from an init function in a backend package. A factory
// registered under an existing name replaces it.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Unregister removes a backend from the registry. Useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, name)
}

// Available returns the names of all registered backends.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Get returns a backend instance by name, or nil if none is registered
// under that name.
func Get(name string) Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()
	factory, ok := registry[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available backend based on priority, falling
// back to any registered backend. Returns nil if the registry is empty.
func Default() Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()
	for _, name := range priority {
		if factory, ok := registry[name]; ok {
			return factory()
		}
	}
	for _, factory := range registry {
		return factory()
	}
	return nil
}
