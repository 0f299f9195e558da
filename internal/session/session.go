// Package session tracks live SSH connections. Each connection plays its own
// run; the tracker only exists so the server can log and count them.
package session

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ID uniquely identifies a connection.
type ID string

// Info describes one live connection.
type Info struct {
	ID      ID
	User    string
	Remote  string
	Started time.Time
}

// Manager is safe for concurrent use by every SSH handler goroutine.
type Manager struct {
	mu       sync.RWMutex
	sessions map[ID]Info
	now      func() time.Time
}

// NewManager creates an empty tracker.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[ID]Info),
		now:      time.Now,
	}
}

// Open registers a connection and returns its new ID.
func (m *Manager) Open(user, remote string) ID {
	id := ID(uuid.NewString())

	m.mu.Lock()
	m.sessions[id] = Info{
		ID:      id,
		User:    user,
		Remote:  remote,
		Started: m.now(),
	}
	m.mu.Unlock()

	return id
}

// Close forgets a connection and reports how long it lasted.
// Closing an unknown ID is a no-op.
func (m *Manager) Close(id ID) (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	info, ok := m.sessions[id]
	if !ok {
		return 0, false
	}
	delete(m.sessions, id)
	return m.now().Sub(info.Started), true
}

// Active returns the number of live connections.
func (m *Manager) Active() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// List returns live connections, oldest first.
func (m *Manager) List() []Info {
	m.mu.RLock()
	result := make([]Info, 0, len(m.sessions))
	for _, info := range m.sessions {
		result = append(result, info)
	}
	m.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].Started.Equal(result[j].Started) {
			return result[i].ID < result[j].ID
		}
		return result[i].Started.Before(result[j].Started)
	})
	return result
}
