package core

import "sync"

// ChatContext is the ordered conversation history owned by a single agent.
// It is safe for concurrent access: the conversational turn loop and the
// frontend data channel may touch a session from different goroutines.
//
// Contract:
//   - Items returns a defensive copy to avoid external mutation
//   - Contains reports membership by event ID (used for stitch deduplication)
//   - RecentNonSystem returns at most n trailing non-system items in order.
type ChatContext struct {
	mu    sync.RWMutex
	items []Event
}

// NewChatContext constructs an empty chat context.
func NewChatContext() *ChatContext {
	return &ChatContext{}
}

// Append adds an event to the history.
func (c *ChatContext) Append(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, ev)
}

// Items returns a copy of the full event slice to prevent callers from
// mutating internal state.
func (c *ChatContext) Items() []Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]Event, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of events in the history.
func (c *ChatContext) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Contains reports whether an event with the given ID is already present.
func (c *ChatContext) Contains(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, ev := range c.items {
		if ev.ID == id {
			return true
		}
	}
	return false
}

// RecentNonSystem returns the last n events excluding system/instruction
// items, preserving chronological order.
func (c *ChatContext) RecentNonSystem(n int) []Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Event, 0, n)
	for i := len(c.items) - 1; i >= 0 && len(out) < n; i-- {
		if c.items[i].IsSystem() {
			continue
		}
		out = append(out, c.items[i])
	}
	// reverse into chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Conversation returns the history filtered to user/assistant/tool roles,
// suitable for providing conversational context to the model.
func (c *ChatContext) Conversation() []Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	allowed := map[string]bool{"user": true, "assistant": true, "tool": true}
	res := make([]Event, 0, len(c.items))
	for _, ev := range c.items {
		if ev.Content == nil || !allowed[ev.Content.Role] {
			continue
		}
		res = append(res, ev)
	}
	return res
}
