package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/theaftaab/govassist/agent"
	"github.com/theaftaab/govassist/core"
	"github.com/theaftaab/govassist/flow"
	"github.com/theaftaab/govassist/form"
	"github.com/theaftaab/govassist/frontend"
	"github.com/theaftaab/govassist/locale"
	"github.com/theaftaab/govassist/logging"
	"github.com/theaftaab/govassist/model"
	"github.com/theaftaab/govassist/session"
	"github.com/theaftaab/govassist/tool"
)

// maxToolRounds bounds how many model/tool iterations one utterance may
// trigger before the turn is cut off.
const maxToolRounds = 8

// Runner coordinates sessions, agents and the model for all rooms.
type Runner struct {
	router   *agent.Router
	model    model.Model
	registry *session.Registry
	logger   *logging.AssistantLogger
}

// NewRunner wires a runner from its collaborators.
func NewRunner(router *agent.Router, mdl model.Model, registry *session.Registry, logger *logging.AssistantLogger) *Runner {
	if logger == nil {
		logger = logging.NewLogger(nil)
	}
	return &Runner{
		router:   router,
		model:    mdl,
		registry: registry,
		logger:   logger.WithComponent("runner"),
	}
}

// Registry exposes the session registry, mainly for transports.
func (r *Runner) Registry() *session.Registry { return r.registry }

// StartSession creates the session for a room and activates its starting
// agent. Rooms carrying an agent token skip the greeting: the named agent
// starts directly with English preset. The returned greeting, when not
// empty, should be spoken to the user.
func (r *Runner) StartSession(ctx context.Context, room string, notifier *frontend.Notifier) (*session.State, string, error) {
	st := r.registry.GetOrCreate(room, notifier)

	start := agent.KindGreeter
	if kind, ok := session.AgentFromRoom(room); ok {
		if _, err := r.router.Get(kind); err == nil {
			st.PresetLanguage(locale.English)
			start = kind
		} else {
			r.logger.Warn("room %s names unknown agent %q, starting greeter", room, kind)
		}
	}

	greeting, err := r.router.Activate(ctx, st, start)
	if err != nil {
		return nil, "", err
	}
	return st, greeting, nil
}

// EndSession drops a room's session.
func (r *Runner) EndSession(room string) { r.registry.Close(room) }

// HandleUtterance runs one user turn: the utterance goes into the active
// agent's history, the model responds, tool calls execute (possibly handing
// off to another agent) and every line to speak is returned in order.
func (r *Runner) HandleUtterance(ctx context.Context, room, text string) ([]string, error) {
	st := r.registry.Get(room)
	if st == nil {
		return nil, fmt.Errorf("no session for room %s", room)
	}
	logger := r.logger.WithRoom(room).WithAgent(st.ActiveAgent())

	text = locale.CleanText(text)
	if text == "" {
		return nil, nil
	}
	st.ChatContext(st.ActiveAgent()).Append(core.NewUserEvent(text))

	var replies []string
	for round := 0; round < maxToolRounds; round++ {
		ag, err := r.router.Get(st.ActiveAgent())
		if err != nil {
			return replies, err
		}
		history := st.ChatContext(ag.Kind())

		req := model.Request{
			Instructions: ag.Instructions(st),
			Contents:     contentsOf(history),
			Tools:        toolDefinitions(ag),
		}
		resp, err := r.model.Generate(ctx, req)
		if err != nil {
			logger.Error("model generation failed: %v", err)
			_ = st.Notifier().SendError(ctx, locale.Message(locale.MsgSomethingWentWrong, st.Language()), "MODEL_ERROR")
			return replies, err
		}

		calls := functionCalls(resp)
		if len(calls) == 0 {
			if reply := resp.Content.Text(); reply != "" {
				history.Append(core.NewAssistantEvent(ag.Kind(), reply))
				replies = append(replies, reply)
			}
			return replies, nil
		}

		history.Append(core.Event{
			ID:      core.NewID(),
			Author:  ag.Kind(),
			Content: &resp.Content,
		})

		transferTo := ""
		transferMsg := ""
		for _, call := range calls {
			result, tc := r.dispatch(ctx, st, ag, call)
			history.Append(result)
			if tc != nil {
				if target, ok := tc.RequestedTransfer(); ok {
					transferTo = target
					transferMsg = responseText(result)
				}
			}
		}

		if transferTo != "" {
			// The transfer tool's transition message is the spoken
			// confirmation of the handoff.
			if transferMsg != "" {
				replies = append(replies, transferMsg)
			}
			greeting, err := r.router.Activate(ctx, st, transferTo)
			if err != nil {
				logger.Error("handoff to %s failed: %v", transferTo, err)
				return replies, err
			}
			if greeting != "" {
				replies = append(replies, greeting)
			}
			return replies, nil
		}
	}

	logger.Warn("tool round limit reached")
	return replies, nil
}

// dispatch executes one function call and returns its response event.
func (r *Runner) dispatch(ctx context.Context, st *session.State, ag agent.Agent, call core.FunctionCall) (core.Event, *tool.Context) {
	logger := r.logger.WithRoom(st.Room()).WithAgent(ag.Kind())

	var target tool.Tool
	for _, tl := range ag.Tools() {
		if tl.Name() == call.Name {
			target = tl
			break
		}
	}
	if target == nil {
		logger.Warn("model requested unknown tool %s", call.Name)
		err := fmt.Errorf("unknown tool: %s", call.Name)
		return core.NewFunctionResponseEvent(ag.Kind(), call.ID, call.Name, nil, err), nil
	}

	args := map[string]any{}
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return core.NewFunctionResponseEvent(ag.Kind(), call.ID, call.Name, nil,
				fmt.Errorf("invalid tool arguments: %w", err)), nil
		}
	}

	tc := tool.NewContext(ctx, call.ID, st)
	result, err := target.Call(tc, args)
	if err != nil {
		_ = st.Notifier().SendError(ctx, locale.Message(locale.MsgSomethingWentWrong, st.Language()), toolErrorCode(err))
		return core.NewFunctionResponseEvent(ag.Kind(), call.ID, call.Name, nil, err), tc
	}
	return core.NewFunctionResponseEvent(ag.Kind(), call.ID, call.Name, result, nil), tc
}

// HandleData applies one frontend data packet to the active form. Packets
// arriving while no form agent is active are dropped with a warning.
func (r *Runner) HandleData(ctx context.Context, room string, payload []byte) error {
	st := r.registry.Get(room)
	if st == nil {
		return fmt.Errorf("no session for room %s", room)
	}
	logger := r.logger.WithRoom(room).WithAgent(st.ActiveAgent())

	packet, err := frontend.DecodePacket(payload)
	if err != nil {
		logger.Warn("dropping bad data packet: %v", err)
		return err
	}

	rec := st.CurrentForm()
	if rec == nil {
		logger.Warn("data packet for field %s with no active form", packet.Field)
		return nil
	}
	collector := flow.NewCollector(st, rec.Kind())
	if err := collector.AcceptExternal(packet.Field, packet.Value); err != nil {
		if errors.Is(err, form.ErrUnknownField) {
			logger.Warn("data packet for unknown field %s on %s form", packet.Field, rec.Kind())
			return nil
		}
		return err
	}
	st.ChatContext(st.ActiveAgent()).Append(core.NewDataEvent(st.ActiveAgent(),
		map[string]any{packet.Field: packet.Value}))
	return nil
}

func contentsOf(history *core.ChatContext) []core.Content {
	events := history.Conversation()
	out := make([]core.Content, 0, len(events))
	for _, ev := range events {
		out = append(out, *ev.Content)
	}
	return out
}

func toolDefinitions(ag agent.Agent) []model.ToolDefinition {
	tools := ag.Tools()
	out := make([]model.ToolDefinition, 0, len(tools))
	for _, tl := range tools {
		out = append(out, model.ToolDefinition{
			Name:        tl.Name(),
			Description: tl.Description(),
			Parameters:  tl.Parameters(),
		})
	}
	return out
}

func functionCalls(resp *model.Response) []core.FunctionCall {
	var calls []core.FunctionCall
	for _, p := range resp.Content.Parts {
		if fc, ok := p.(core.FunctionCallPart); ok {
			calls = append(calls, fc.FunctionCall)
		}
	}
	return calls
}

// responseText extracts the string result of a function response event.
func responseText(ev core.Event) string {
	if ev.Content == nil {
		return ""
	}
	for _, p := range ev.Content.Parts {
		if fr, ok := p.(core.FunctionResponsePart); ok {
			if s, ok := fr.FunctionResponse.Response.(string); ok {
				return s
			}
		}
	}
	return ""
}

func toolErrorCode(err error) string {
	if toolErr, ok := err.(*tool.ToolError); ok {
		return toolErr.Code
	}
	return "TOOL_ERROR"
}
