package agent

import (
	"context"
	"fmt"

	"github.com/theaftaab/govassist/core"
	"github.com/theaftaab/govassist/logging"
	"github.com/theaftaab/govassist/session"
)

// maxStitchItems caps how much recent history travels across a handoff.
const maxStitchItems = 6

// Router owns the agent registry and performs handoffs, stitching recent
// conversation context into the incoming agent's history so the user never
// repeats themselves.
type Router struct {
	agents map[string]Agent
	order  []string
	logger *logging.AssistantLogger
}

// NewRouter creates a router over the given agents. Registration order is
// preserved for introspection.
func NewRouter(logger *logging.AssistantLogger, agents ...Agent) *Router {
	if logger == nil {
		logger = logging.NewLogger(nil)
	}
	r := &Router{
		agents: map[string]Agent{},
		logger: logger.WithComponent("router"),
	}
	for _, a := range agents {
		r.Register(a)
	}
	return r
}

// Register adds an agent to the registry, replacing any previous agent of
// the same kind.
func (r *Router) Register(a Agent) {
	if _, exists := r.agents[a.Kind()]; !exists {
		r.order = append(r.order, a.Kind())
	}
	r.agents[a.Kind()] = a
}

// Get resolves an agent by kind.
func (r *Router) Get(kind string) (Agent, error) {
	a, ok := r.agents[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAgent, kind)
	}
	return a, nil
}

// Kinds returns the registered agent kinds in registration order.
func (r *Router) Kinds() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Activate hands the conversation to the named agent. The last few
// non-system events of the outgoing agent are copied into the incoming
// agent's history (deduplicated by event ID), a fresh instruction event is
// injected, and the agent's opening line is returned for speaking. An
// unknown kind leaves the session untouched.
func (r *Router) Activate(ctx context.Context, st *session.State, kind string) (string, error) {
	ag, ok := r.agents[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownAgent, kind)
	}

	prev := st.ActiveAgent()
	st.SetActiveAgent(kind)
	r.logger.WithRoom(st.Room()).LogTransfer(prev, kind)

	history := st.ChatContext(kind)
	if prev != "" && prev != kind {
		for _, ev := range st.ChatContext(prev).RecentNonSystem(maxStitchItems) {
			if !history.Contains(ev.ID) {
				history.Append(ev)
			}
		}
	}

	history.Append(core.NewSystemEvent(kind, ag.Instructions(st)))

	greeting := ag.OnEnter(ctx, st)
	if greeting != "" {
		history.Append(core.NewAssistantEvent(kind, greeting))
	}
	return greeting, nil
}
