package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/theaftaab/govassist/flow"
	"github.com/theaftaab/govassist/form"
	"github.com/theaftaab/govassist/locale"
	"github.com/theaftaab/govassist/session"
	"github.com/theaftaab/govassist/tool"
	"github.com/theaftaab/govassist/validate"
)

const contactInstructions = "You are a friendly voice assistant for the Karnataka Government Contact Form. " +
	"Your job is to collect the following information step by step: " +
	"1. Organization/Department name " +
	"2. Subject of inquiry " +
	"3. Phone number " +
	"4. Message/inquiry details " +
	"After collecting all fields, ask for confirmation and then call confirm_and_submit_contact_form(). " +
	"Respond in {{.language}}."

const fellingInstructions = "You are a voice assistant for the Karnataka Forest Department Felling Transit Permission form. " +
	"Collect information step by step in this order:\n" +
	"Section 1 (Location): in_area_type, district, taluk, village, khata_number, survey_number, " +
	"total_extent_acres, guntas, anna. \n" +
	"Section 2 (Applicant): applicant_type, applicant_name, father_name, address, applicant_district, " +
	"applicant_taluk, pincode, mobile_number, email_id. \n" +
	"Section 3 (Tree details): tree_species, tree_age, tree_girth. \n" +
	"Section 4 (Site boundary): east, west, north, south. \n" +
	"Section 5 (Other details): purpose_of_felling, boundary_demarcated, tree_reserved_to_gov, " +
	"unconditional_consent, license_enclosed. \n" +
	"Finally: agree_terms. After collecting all fields, ask for confirmation and call confirm_and_submit_felling_form(). " +
	"Respond in {{.language}}."

// FormAgent collects one government form conversationally. Its update tools
// are generated from the form's field declarations so the tool surface and
// the record can never drift apart.
type FormAgent struct {
	kind         form.Kind
	instructions string
	tools        []tool.Tool
}

// NewContactAgent constructs the contact form agent.
func NewContactAgent() *FormAgent {
	return newFormAgent(form.KindContact, contactInstructions)
}

// NewFellingAgent constructs the tree felling permission form agent.
func NewFellingAgent() *FormAgent {
	return newFormAgent(form.KindFelling, fellingInstructions)
}

func newFormAgent(kind form.Kind, instructions string) *FormAgent {
	a := &FormAgent{kind: kind, instructions: instructions}
	a.tools = append(a.tools, newSetLanguageTool(), newToGreeterTool())
	a.tools = append(a.tools, a.buildUpdateTools()...)
	a.tools = append(a.tools, a.buildSubmitTool())
	return a
}

// Kind implements Agent. Form agent kinds equal their form kind.
func (a *FormAgent) Kind() string { return string(a.kind) }

// Instructions implements Agent.
func (a *FormAgent) Instructions(st *session.State) string {
	return renderInstructions(a.instructions, st)
}

// Tools implements Agent.
func (a *FormAgent) Tools() []tool.Tool { return a.tools }

// OnEnter implements Agent. Without a selected language the agent stays
// quiet and waits for set_language; otherwise it opens the form flow at the
// first pending question.
func (a *FormAgent) OnEnter(_ context.Context, st *session.State) string {
	if !st.LanguageSelected() {
		return ""
	}
	return flow.NewCollector(st, a.kind).Begin()
}

// buildUpdateTools generates one update_<field> tool per declared field.
// Rejected values return the localized re-ask as the tool result so the
// model relays it instead of failing.
func (a *FormAgent) buildUpdateTools() []tool.Tool {
	fields := recordFor(a.kind).Fields()
	tools := make([]tool.Tool, 0, len(fields))
	for _, f := range fields {
		tools = append(tools, a.buildUpdateTool(f))
	}
	return tools
}

func (a *FormAgent) buildUpdateTool(f form.Field) tool.Tool {
	argName := string(f.ID)
	argType := "string"
	if f.Flag {
		argType = "boolean"
	}
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			argName: map[string]any{
				"type":        argType,
				"description": "The user's answer for " + locale.FieldLabel(f.ID),
			},
		},
		"required": []string{argName},
	}
	name := fmt.Sprintf("update_%s", f.ID)
	description := fmt.Sprintf("Record the user's %s and get the next question.", locale.FieldLabel(f.ID))

	fieldID := f.ID
	flag := f.Flag
	kind := a.kind
	return tool.NewFunctionTool(name, description, params,
		func(tc *tool.Context, args map[string]any) (any, error) {
			st := tc.State()
			c := flow.NewCollector(st, kind)

			if flag {
				v, _ := args[argName].(bool)
				if err := c.Record().SetFlag(fieldID, v); err != nil {
					return nil, err
				}
				if key, ok := c.Record().ExternalKey(fieldID); ok {
					_ = st.Notifier().SendFieldUpdate(tc.Context(), key, v)
				}
				return c.NextPrompt(), nil
			}

			raw, _ := args[argName].(string)
			reply, err := c.Accept(tc.Context(), fieldID, raw)
			if err != nil {
				var vErr *validate.ValidationError
				if errors.As(err, &vErr) {
					return reply, nil
				}
				return nil, err
			}
			return reply, nil
		},
	)
}

// buildSubmitTool generates the confirm_and_submit tool for the form.
func (a *FormAgent) buildSubmitTool() tool.Tool {
	name := fmt.Sprintf("confirm_and_submit_%s_form", a.kind)
	params := map[string]any{"type": "object", "properties": map[string]any{}}
	kind := a.kind
	return tool.NewFunctionTool(
		name,
		"Submit the form after the user confirmed. Lists missing information if the form is incomplete.",
		params,
		func(tc *tool.Context, _ map[string]any) (any, error) {
			reply, err := flow.NewCollector(tc.State(), kind).Submit(tc.Context())
			if err != nil && !errors.Is(err, session.ErrAlreadySubmitted) {
				return nil, err
			}
			return reply, nil
		},
	)
}

// recordFor returns a throwaway record used only for field declarations.
func recordFor(kind form.Kind) *form.Record {
	if kind == form.KindFelling {
		return form.NewFellingRecord()
	}
	return form.NewContactRecord()
}
