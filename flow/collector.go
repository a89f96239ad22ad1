package flow

import (
	"context"
	"errors"

	"github.com/theaftaab/govassist/form"
	"github.com/theaftaab/govassist/locale"
	"github.com/theaftaab/govassist/logging"
	"github.com/theaftaab/govassist/session"
	"github.com/theaftaab/govassist/validate"
)

// Collector walks one form record question by question. It is bound to the
// session so language, confirmation state and the frontend notifier travel
// with it across turns.
type Collector struct {
	state  *session.State
	record *form.Record
	logger *logging.AssistantLogger
}

// NewCollector binds a collector to the session's record of the given kind.
func NewCollector(state *session.State, kind form.Kind) *Collector {
	return &Collector{
		state:  state,
		record: state.Record(kind),
		logger: state.Logger().WithComponent("flow"),
	}
}

// Record exposes the underlying form record.
func (c *Collector) Record() *form.Record { return c.record }

// nextField returns the first field without a usable value in declaration
// order. Fields filled through the frontend data channel are skipped
// naturally.
func (c *Collector) nextField() (form.Field, bool) {
	for _, f := range c.record.Fields() {
		if !c.record.Filled(f.ID) {
			return f, true
		}
	}
	return form.Field{}, false
}

// NextPrompt returns the question for the next unanswered field. When every
// field is answered it flips the session into confirmation and returns the
// confirmation question instead.
func (c *Collector) NextPrompt() string {
	lang := c.state.Language()
	if f, ok := c.nextField(); ok {
		return locale.FieldPrompt(c.record.Kind(), f.ID, lang)
	}
	c.state.BeginConfirmation()
	return locale.Message(locale.MsgConfirmSubmit, lang)
}

// Begin returns the opening line of the form conversation: the localized
// intro when nothing is filled yet, otherwise the next pending question so a
// resumed session does not start over.
func (c *Collector) Begin() string {
	lang := c.state.Language()
	f, ok := c.nextField()
	if !ok {
		c.state.BeginConfirmation()
		return locale.Message(locale.MsgConfirmSubmit, lang)
	}
	if f.ID == c.record.Fields()[0].ID {
		return locale.Intro(c.record.Kind(), lang)
	}
	return locale.FieldPrompt(c.record.Kind(), f.ID, lang)
}

// Accept validates and stores one answer, mirrors it to the frontend and
// returns the next question. A rejected value leaves the record untouched
// and re-asks the same question.
func (c *Collector) Accept(ctx context.Context, id form.FieldID, raw string) (string, error) {
	lang := c.state.Language()
	cleaned := locale.NormalizeText(raw, lang)

	value, err := validate.Field(id, cleaned)
	if err != nil {
		var vErr *validate.ValidationError
		if errors.As(err, &vErr) {
			c.logger.Debug("rejected value for %s: %s", id, vErr.Message)
			return locale.InvalidValue(c.record.Kind(), id, lang), err
		}
		return locale.Message(locale.MsgSomethingWentWrong, lang), err
	}

	if err := c.record.SetField(id, value); err != nil {
		c.logger.Warn("write to undeclared field %s: %v", id, err)
		return locale.Message(locale.MsgSomethingWentWrong, lang), err
	}

	if key, ok := c.record.ExternalKey(id); ok {
		var mirrored any = value
		if f, ok := c.record.Lookup(id); ok && f.Flag {
			mirrored = c.record.GetFlag(id)
		}
		_ = c.state.Notifier().SendFieldUpdate(ctx, key, mirrored)
	}

	return c.NextPrompt(), nil
}

// AcceptExternal stores a value reported by the frontend data channel, keyed
// by the frontend's field name. These writes bypass validation: the form's
// own widgets constrain them.
func (c *Collector) AcceptExternal(key, value string) error {
	id, ok := c.record.ByExternal(key)
	if !ok {
		return form.ErrUnknownField
	}
	if err := c.record.SetField(id, value); err != nil {
		return err
	}
	c.logger.Info("field %s filled from frontend", id)
	return nil
}

// Submit runs the submission gate. Missing information always wins: the
// caller gets the localized listing and nothing changes. A complete form
// submitted without a pending confirmation is treated as confirmed, since
// the data channel may have completed the form between turns.
func (c *Collector) Submit(ctx context.Context) (string, error) {
	lang := c.state.Language()

	if missing := c.record.MissingFields(); len(missing) > 0 {
		return locale.MissingInfo(missing, lang), nil
	}

	if !c.state.AwaitingConfirmation() {
		if c.state.ShouldSubmit() {
			return locale.Message(locale.MsgProvideInfoFirst, lang), session.ErrAlreadySubmitted
		}
		c.state.BeginConfirmation()
	}

	if err := c.state.Submit(ctx); err != nil {
		if errors.Is(err, session.ErrAlreadySubmitted) {
			return locale.Message(locale.MsgProvideInfoFirst, lang), err
		}
		return locale.Message(locale.MsgSomethingWentWrong, lang), err
	}

	c.logger.Info("%s form flagged for submission", c.record.Kind())
	return locale.Submitted(c.record.Kind(), lang), nil
}
