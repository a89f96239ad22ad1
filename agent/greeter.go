package agent

import (
	"context"

	"github.com/theaftaab/govassist/locale"
	"github.com/theaftaab/govassist/session"
	"github.com/theaftaab/govassist/tool"
)

const greeterInstructions = "You are a friendly receptionist for the Karnataka Government services. " +
	"Your job is to greet users, help them select their language (English or Kannada), " +
	"and understand what service they need. Guide them to the right service: " +
	"- 'Contact Form' for general inquiries and communication " +
	"- 'Felling Transit Permission' for tree cutting permissions " +
	"Use the appropriate transfer tools based on their request. " +
	"Respond in {{.language}}."

// Greeter is the entry point agent: greeting, language selection and routing
// to the form agents.
type Greeter struct {
	tools []tool.Tool
}

// NewGreeter constructs the greeter with its routing tools.
func NewGreeter() *Greeter {
	return &Greeter{
		tools: []tool.Tool{
			newSetLanguageTool(),
			newRouteTool("to_contact_form",
				"Called when the user wants to fill a contact form for general inquiries.",
				KindContact, RouteContactForm, locale.MsgTransferToContact),
			newRouteTool("to_felling_form",
				"Called when the user wants to fill a felling transit permission form.",
				KindFelling, RouteFellingPermission, locale.MsgTransferToFelling),
		},
	}
}

// Kind implements Agent.
func (g *Greeter) Kind() string { return KindGreeter }

// Instructions implements Agent.
func (g *Greeter) Instructions(st *session.State) string {
	return renderInstructions(greeterInstructions, st)
}

// Tools implements Agent.
func (g *Greeter) Tools() []tool.Tool { return g.tools }

// OnEnter implements Agent: welcome and ask for a language, or ask for the
// service intent when the language is already known.
func (g *Greeter) OnEnter(_ context.Context, st *session.State) string {
	if !st.LanguageSelected() {
		return locale.Message(locale.MsgWelcome, locale.English)
	}
	return locale.Message(locale.MsgServiceIntent, st.Language())
}

// newRouteTool builds a greeter transfer tool that records the requested
// route, tells the frontend to navigate and hands off to the form agent.
func newRouteTool(name, description, targetAgent, route string, transferMsg locale.MessageID) tool.Tool {
	params := map[string]any{"type": "object", "properties": map[string]any{}}
	return tool.NewFunctionTool(name, description, params,
		func(tc *tool.Context, _ map[string]any) (any, error) {
			st := tc.State()
			st.SetRequestedRoute(route)
			_ = st.Notifier().SendRoute(tc.Context(), route)
			tc.TransferTo(targetAgent)
			tc.RequestRoute(route)
			return locale.Message(transferMsg, st.Language()), nil
		},
	)
}
