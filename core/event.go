package core

import (
	"time"

	"github.com/google/uuid"
)

// EventActions encodes orchestration signals attached to an Event. All fields
// are optional pointers so absence can be distinguished from zero values. The
// runner interprets these after a tool call completes.
type EventActions struct {
	TransferTo *string `json:"transfer_to,omitempty"` // Target agent kind for a handoff
	Route      *string `json:"route,omitempty"`       // Frontend navigation hint
}

// Event is the unit of conversation history. After emission it should be
// treated as immutable. It captures:
//   - Identity (ID, Author)
//   - Conversational content (optional role-based Parts)
//   - Orchestration directives (Actions)
//   - UTC timestamp
//
// Content may be nil for control-only events. Context stitching across agent
// handoffs deduplicates on ID.
type Event struct {
	ID        string       `json:"id"`
	Author    string       `json:"author"`
	Actions   EventActions `json:"actions"`
	Timestamp time.Time    `json:"timestamp"`
	Content   *Content     `json:"content,omitempty"`
}

// NewEvent creates a bare event authored by 'author'. Prefer the helper
// constructors for common semantic categories.
func NewEvent(author string) Event {
	return Event{
		ID:        NewID(),
		Author:    author,
		Timestamp: time.Now().UTC(),
	}
}

// NewSystemEvent creates a system-role instruction event. System events are
// excluded from context stitching.
func NewSystemEvent(author, text string) Event {
	e := NewEvent(author)
	e.Content = &Content{Role: "system", Parts: []Part{TextPart{Text: text}}}
	return e
}

// NewUserEvent creates a user-authored text message event.
func NewUserEvent(text string) Event {
	e := NewEvent("user")
	e.Content = &Content{Role: "user", Parts: []Part{TextPart{Text: text}}}
	return e
}

// NewAssistantEvent creates an assistant message event authored by an agent.
func NewAssistantEvent(author, text string) Event {
	e := NewEvent(author)
	e.Content = &Content{Role: "assistant", Parts: []Part{TextPart{Text: text}}}
	return e
}

// NewDataEvent records a frontend data-channel payload in the history. Data
// events keep the transcript complete but carry a dedicated role so they are
// excluded from the conversational roles handed to the model.
func NewDataEvent(author string, data map[string]any) Event {
	e := NewEvent(author)
	e.Content = &Content{Role: "data", Parts: []Part{DataPart{Data: data}}}
	return e
}

// NewFunctionCallEvent represents an agent requesting execution of a named tool.
func NewFunctionCallEvent(author string, call FunctionCall) Event {
	e := NewEvent(author)
	e.Content = &Content{Role: "assistant", Parts: []Part{FunctionCallPart{FunctionCall: call}}}
	return e
}

// NewFunctionResponseEvent records the completion result (or error) of a tool
// invocation. If err is non-nil its message is copied into the response.
func NewFunctionResponseEvent(author, id, name string, result any, err error) Event {
	e := NewEvent(author)
	fr := FunctionResponse{ID: id, Name: name, Response: result}
	if err != nil {
		fr.Error = err.Error()
	}
	e.Content = &Content{Role: "tool", Parts: []Part{FunctionResponsePart{FunctionResponse: fr}}}
	return e
}

// NewID generates a new unique identifier for events and invocations.
func NewID() string { return uuid.NewString() }

// IsSystem reports whether the event carries system-role content.
func (e Event) IsSystem() bool { return e.Content != nil && e.Content.Role == "system" }

// Text returns the concatenated text of the event content, or "" if none.
func (e Event) Text() string {
	if e.Content == nil {
		return ""
	}
	return e.Content.Text()
}

// GetFunctionCalls returns any FunctionCall parts contained within the event
// content preserving their original order.
func (e Event) GetFunctionCalls() []FunctionCall {
	if e.Content == nil {
		return nil
	}
	var calls []FunctionCall
	for _, p := range e.Content.Parts {
		if fc, ok := p.(FunctionCallPart); ok {
			calls = append(calls, fc.FunctionCall)
		}
	}
	return calls
}
