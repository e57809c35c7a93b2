package watchlist

import (
	"fmt"
	"sync"
)

// Manager guards the watchlist state with a mutex so scheduler runs and
// telegram commands can touch it concurrently.
type Manager struct {
	mu       sync.Mutex
	state    *State
	filePath string
}

// NewManager creates a Manager, loading or initializing state from disk.
func NewManager(filePath string) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, fmt.Errorf("load watchlist: %w", err)
	}
	return &Manager{state: state, filePath: filePath}, nil
}

// List returns a copy of the current entries.
func (m *Manager) List() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.state.Entries))
	copy(out, m.state.Entries)
	return out
}

// Add appends an instrument; adding an existing code is an error.
func (m *Manager) Add(code, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.state.Entries {
		if e.Code == code {
			return fmt.Errorf("%s already watched", code)
		}
	}
	m.state.Entries = append(m.state.Entries, Entry{Code: code, Name: name})
	return SaveState(m.filePath, m.state)
}

// Remove deletes an instrument by code. Returns false if it wasn't watched.
func (m *Manager) Remove(code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.state.Entries {
		if e.Code == code {
			m.state.Entries = append(m.state.Entries[:i], m.state.Entries[i+1:]...)
			return true, SaveState(m.filePath, m.state)
		}
	}
	return false, nil
}

// Len returns the number of watched instruments.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.state.Entries)
}
