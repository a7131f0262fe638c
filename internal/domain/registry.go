package domain

import "sync"

// Registry is the process-wide mapping from room name to room. Creation is
// an atomic check-then-insert under the write lock; lookups and listing take
// the read lock only, so traffic to different rooms never contends here
// beyond the map access itself.
type Registry struct {
	mu          sync.RWMutex
	rooms       map[string]*Room
	broadcaster Broadcaster
}

func NewRegistry(broadcaster Broadcaster) *Registry {
	return &Registry{
		rooms:       make(map[string]*Room),
		broadcaster: broadcaster,
	}
}

// Create inserts a new empty room under name. At most one room is ever
// associated with a name, regardless of how many callers race on it; losers
// get ErrRoomAlreadyExists. The room is visible to Get before Create returns.
func (reg *Registry) Create(name string) (*Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, exists := reg.rooms[name]; exists {
		return nil, ErrRoomAlreadyExists
	}

	room := NewRoom(name, reg.broadcaster)
	reg.rooms[name] = room
	return room, nil
}

// Get returns the room registered under name.
func (reg *Registry) Get(name string) (*Room, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	room, ok := reg.rooms[name]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// List returns a snapshot of the currently known room names, in no
// particular order.
func (reg *Registry) List() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	names := make([]string, 0, len(reg.rooms))
	for name := range reg.rooms {
		names = append(names, name)
	}
	return names
}
