package tool

import (
	"context"

	"github.com/theaftaab/govassist/logging"
	"github.com/theaftaab/govassist/session"
)

// Context is passed to every tool invocation. It carries the request
// context, the session the tool acts on and the actions the tool may
// request from the surrounding turn loop (agent transfer, navigation).
type Context struct {
	ctx    context.Context
	callID string
	state  *session.State
	logger *logging.AssistantLogger

	transferTo string
	route      string
}

// NewContext builds a tool context for one function call.
func NewContext(ctx context.Context, callID string, state *session.State) *Context {
	return &Context{
		ctx:    ctx,
		callID: callID,
		state:  state,
		logger: state.Logger().WithComponent("tool").WithContext("fc_id", callID),
	}
}

// Context returns the request context for blocking operations.
func (c *Context) Context() context.Context { return c.ctx }

// FunctionCallID correlates this execution with the model's function call.
func (c *Context) FunctionCallID() string { return c.callID }

// State returns the session state.
func (c *Context) State() *session.State { return c.state }

// Logger returns a logger scoped to this call.
func (c *Context) Logger() *logging.AssistantLogger { return c.logger }

// TransferTo asks the turn loop to hand the conversation to another agent
// after this tool returns.
func (c *Context) TransferTo(agent string) { c.transferTo = agent }

// RequestedTransfer reports the transfer target set during the call, if any.
func (c *Context) RequestedTransfer() (string, bool) {
	return c.transferTo, c.transferTo != ""
}

// RequestRoute asks the frontend to navigate after this tool returns.
func (c *Context) RequestRoute(route string) { c.route = route }

// RequestedRoute reports the navigation target set during the call, if any.
func (c *Context) RequestedRoute() (string, bool) {
	return c.route, c.route != ""
}
