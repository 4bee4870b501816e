package render

import "sync"

// Registered target names.
const (
	// TargetWGPU is the GPU-backed target (see the render/wgpu package).
	TargetWGPU = "wgpu"

	// TargetMemory is the CPU reference target.
	TargetMemory = "memory"
)

// Factory creates a new target instance. A factory returning an error
// marks the target unavailable on this system.
type Factory func() (Target, error)

var (
	registryMu sync.RWMutex
	targets    = make(map[string]Factory)
	// Priority order for target selection (first available wins).
	// GPU beats the CPU reference target when both are registered.
	targetPriority = []string{TargetWGPU, TargetMemory}
)

// Register registers a target factory with the given name. This is
// typically called from init() functions in target packages. An existing
// registration with the same name is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	targets[name] = factory
}

// Unregister removes a target from the registry. Useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(targets, name)
}

// Available returns the registered target names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	return names
}

// Get creates a target by name. Returns ErrTargetNotAvailable when the
// name is not registered.
func Get(name string) (Target, error) {
	registryMu.RLock()
	factory, ok := targets[name]
	registryMu.RUnlock()

	if !ok {
		return nil, ErrTargetNotAvailable
	}
	return factory()
}

// Default returns the best available target based on priority, falling
// back to any registered target whose factory succeeds. Returns
// ErrTargetNotAvailable when none can be produced.
func Default() (Target, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range targetPriority {
		if factory, ok := targets[name]; ok {
			t, err := factory()
			if err != nil {
				Logger().Warn("render: target unavailable", "target", name, "error", err)
				continue
			}
			return t, nil
		}
	}

	for name, factory := range targets {
		t, err := factory()
		if err != nil {
			Logger().Warn("render: target unavailable", "target", name, "error", err)
			continue
		}
		return t, nil
	}

	return nil, ErrTargetNotAvailable
}

// MustDefault returns the default target or panics.
func MustDefault() Target {
	t, err := Default()
	if err != nil {
		panic("render: no target available")
	}
	return t
}
