package container

import "sync"

// DefaultName is the name of the container returned for unnamed lookups.
const DefaultName = "default"

// Manager owns containers by name and creates them lazily on first
// reference. Containers live for the process lifetime unless removed.
// All methods are safe for concurrent use.
type Manager struct {
	containers map[string]*Container
	mu         sync.Mutex
}

// NewManager creates a manager with the default container already in place.
func NewManager() *Manager {
	return &Manager{
		containers: map[string]*Container{
			DefaultName: New(),
		},
	}
}

// Default returns the shared unnamed container.
func (m *Manager) Default() *Container {
	return m.Container("")
}

// Container returns the container for name, creating an empty one on first
// use. An empty name resolves to the default container.
func (m *Manager) Container(name string) *Container {
	if name == "" {
		name = DefaultName
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.containers[name]
	if !ok {
		c = New()
		m.containers[name] = c
	}
	return c
}

// Exists reports whether a container with the given name has been created.
func (m *Manager) Exists(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.containers[name]
	return ok
}

// Remove drops the container with the given name. A later Container call
// for the same name creates a fresh one.
func (m *Manager) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.containers, name)
}
