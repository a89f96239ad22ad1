package agent

import (
	"context"
	"errors"

	"github.com/theaftaab/govassist/internal/util"
	"github.com/theaftaab/govassist/session"
	"github.com/theaftaab/govassist/tool"
)

// Agent kinds as registered with the router. Form agent kinds equal their
// form.Kind so session.CurrentForm can resolve the active record.
const (
	KindGreeter = "greeter"
	KindContact = "contact"
	KindFelling = "felling"
)

// Frontend routes the greeter can navigate to.
const (
	RouteContactForm       = "/contact-form"
	RouteFellingPermission = "/felling-transit-permission"
)

// ErrUnknownAgent reports a transfer request naming an unregistered agent.
var ErrUnknownAgent = errors.New("unknown agent")

// Agent is one conversational persona. Agents are stateless; everything
// mutable lives in the session so agents can be shared across rooms.
type Agent interface {
	// Kind returns the registry name of the agent.
	Kind() string

	// Instructions returns the system prompt for the current session.
	Instructions(st *session.State) string

	// Tools returns the callable capabilities declared to the model.
	Tools() []tool.Tool

	// OnEnter produces the line spoken when the agent becomes active, or
	// "" when the agent waits for the user instead.
	OnEnter(ctx context.Context, st *session.State) string
}

// renderInstructions fills session variables into an instruction template,
// falling back to the raw text if rendering fails.
func renderInstructions(text string, st *session.State) string {
	out, err := util.RenderInstruction(text, map[string]any{
		"language": string(st.Language()),
		"room":     st.Room(),
	})
	if err != nil {
		st.Logger().Warn("instruction template error: %v", err)
		return text
	}
	return out
}
