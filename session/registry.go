package session

import (
	"sync"

	"github.com/theaftaab/govassist/frontend"
	"github.com/theaftaab/govassist/logging"
)

// Registry tracks the live session of every connected room. Rooms are
// isolated: state created for one room is never visible to another.
type Registry struct {
	mu      sync.RWMutex
	rooms   map[string]*State
	retuner Retuner
	logger  *logging.AssistantLogger
}

// NewRegistry creates an empty session registry.
func NewRegistry(logger *logging.AssistantLogger) *Registry {
	if logger == nil {
		logger = logging.NewLogger(nil)
	}
	return &Registry{
		rooms:  map[string]*State{},
		logger: logger.WithComponent("registry"),
	}
}

// SetRetuner installs the speech retuner attached to every session created
// from here on.
func (r *Registry) SetRetuner(rt Retuner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.retuner = rt
}

// Get returns the state of a room, or nil if none exists.
func (r *Registry) Get(room string) *State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rooms[room]
}

// GetOrCreate returns the room's state, creating it with the given notifier
// on first access. Concurrent callers for the same room get the same state.
func (r *Registry) GetOrCreate(room string, notifier *frontend.Notifier) *State {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.rooms[room]; ok {
		return st
	}
	st := NewState(room, notifier, r.logger)
	if r.retuner != nil {
		st.SetRetuner(r.retuner)
	}
	r.rooms[room] = st
	r.logger.Info("session started for room %s", room)
	return st
}

// Close removes a room's state, logging a session summary so ended rooms
// can be traced. The state itself is dropped; nothing persists.
func (r *Registry) Close(room string) {
	r.mu.Lock()
	st, ok := r.rooms[room]
	delete(r.rooms, room)
	r.mu.Unlock()
	if !ok {
		return
	}
	r.logger.Info("session ended for room %s (agent=%s submitted=%v)",
		room, st.ActiveAgent(), st.ShouldSubmit())
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}
