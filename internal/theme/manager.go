package theme

import (
	"fmt"
	"sort"
	"sync"
)

// Manager holds the registered themes and the active one. Create one per
// application and pass it to consumers; there is no package-level instance.
type Manager struct {
	mu      sync.RWMutex
	themes  map[string]Theme
	current string
	subs    map[int]chan Theme
	nextSub int
}

// NewManager registers the built-in themes and activates initial, falling
// back to "light" when initial is unknown.
func NewManager(initial string) *Manager {
	m := &Manager{
		themes: map[string]Theme{},
		subs:   map[int]chan Theme{},
	}
	m.themes["light"] = Light()
	m.themes["dark"] = Dark()
	m.current = "light"
	if _, ok := m.themes[initial]; ok {
		m.current = initial
	}
	return m
}

func (m *Manager) Register(t Theme) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.themes[t.Name] = t
}

// LoadFile reads a theme file and registers it. The active theme is unchanged.
func (m *Manager) LoadFile(path string) (Theme, error) {
	t, err := Load(path)
	if err != nil {
		return Theme{}, err
	}
	m.Register(t)
	return t, nil
}

func (m *Manager) Current() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.themes[m.current]
}

func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.themes))
	for n := range m.themes {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Set activates the named theme and notifies subscribers. Subscribers that
// are not keeping up miss intermediate themes rather than blocking Set.
func (m *Manager) Set(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.themes[name]
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	m.current = name
	for _, ch := range m.subs {
		select {
		case ch <- t:
		default:
		}
	}
	return nil
}

// Subscribe returns a channel receiving every newly activated theme and a
// cancel func that unsubscribes and closes the channel.
func (m *Manager) Subscribe() (<-chan Theme, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSub
	m.nextSub++
	ch := make(chan Theme, 1)
	m.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}
