package flow

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theaftaab/govassist/form"
	"github.com/theaftaab/govassist/frontend"
	"github.com/theaftaab/govassist/locale"
	"github.com/theaftaab/govassist/session"
)

type recordingPublisher struct {
	mu       sync.Mutex
	topics   []string
	payloads []map[string]any
	reliable []bool
}

func (r *recordingPublisher) Publish(_ context.Context, topic string, payload []byte, reliable bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var data map[string]any
	_ = json.Unmarshal(payload, &data)
	r.topics = append(r.topics, topic)
	r.payloads = append(r.payloads, data)
	r.reliable = append(r.reliable, reliable)
	return nil
}

func newTestSession(t *testing.T) (*session.State, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	st := session.NewState("room-t", frontend.NewNotifier(pub, nil), nil)
	require.NoError(t, st.SetLanguage(locale.English))
	return st, pub
}

func TestCollector_ContactHappyPath(t *testing.T) {
	st, pub := newTestSession(t)
	c := NewCollector(st, form.KindContact)

	assert.Contains(t, c.Begin(), "contact form")

	reply, err := c.Accept(context.Background(), form.ContactCompany, "Acme Timber")
	require.NoError(t, err)
	assert.Equal(t, "What's the subject of your inquiry?", reply)

	reply, err = c.Accept(context.Background(), form.ContactSubject, "permit query")
	require.NoError(t, err)
	assert.Equal(t, "What's your phone number?", reply)

	reply, err = c.Accept(context.Background(), form.ContactPhone, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "Please tell me your message or inquiry details.", reply)

	reply, err = c.Accept(context.Background(), form.ContactMessage, "need a felling permit")
	require.NoError(t, err)
	assert.Equal(t, locale.Message(locale.MsgConfirmSubmit, locale.English), reply)
	assert.True(t, st.AwaitingConfirmation())

	// One form update per accepted field.
	assert.Len(t, pub.topics, 4)

	reply, err = c.Submit(context.Background())
	require.NoError(t, err)
	assert.Contains(t, reply, "submitted successfully")
	assert.True(t, st.ShouldSubmit())

	// Reliable should_submit arrived last.
	last := len(pub.payloads) - 1
	assert.Equal(t, map[string]any{"should_submit": true}, pub.payloads[last])
	assert.True(t, pub.reliable[last])
}

func TestCollector_ValidationReasksSameField(t *testing.T) {
	st, _ := newTestSession(t)
	c := NewCollector(st, form.KindFelling)

	reply, err := c.Accept(context.Background(), form.FellingInAreaType, "on the moon")
	assert.Error(t, err)
	assert.Contains(t, reply, "urban area or a rural area")

	// Value was not stored, same field is still next.
	_, ok := c.Record().Get(form.FellingInAreaType)
	assert.False(t, ok)
	assert.Contains(t, c.NextPrompt(), "urban area or a rural area")

	reply, err = c.Accept(context.Background(), form.FellingInAreaType, "Rural Area")
	require.NoError(t, err)
	assert.Equal(t, locale.FieldPrompt(form.KindFelling, form.FellingDistrict, locale.English), reply)
	v, _ := c.Record().Get(form.FellingInAreaType)
	assert.Equal(t, "rural area", v)
}

func TestCollector_SubmitIncompleteListsMissing(t *testing.T) {
	st, pub := newTestSession(t)
	c := NewCollector(st, form.KindContact)

	_, err := c.Accept(context.Background(), form.ContactCompany, "Acme")
	require.NoError(t, err)

	reply, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Contains(t, reply, "missing information")
	assert.Contains(t, reply, "subject")
	assert.Contains(t, reply, "phone")
	assert.Contains(t, reply, "message")
	assert.False(t, st.ShouldSubmit())

	// No should_submit went out.
	for _, p := range pub.payloads {
		assert.NotContains(t, p, "should_submit")
	}
}

func TestCollector_SubmitWithOnlyTermsMissing(t *testing.T) {
	st, _ := newTestSession(t)
	c := NewCollector(st, form.KindFelling)

	// Fill every text field directly, leaving only the terms flag unset.
	rec := st.Record(form.KindFelling)
	for _, f := range rec.Fields() {
		if !f.Flag {
			require.NoError(t, rec.SetField(f.ID, "v"))
		}
	}

	reply, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, locale.MissingInfo([]form.FieldID{form.FellingAgreeTerms}, locale.English), reply)
	assert.False(t, st.ShouldSubmit())
}

func TestCollector_ExternalFillSkipsQuestions(t *testing.T) {
	st, _ := newTestSession(t)
	c := NewCollector(st, form.KindContact)

	require.NoError(t, c.AcceptExternal("company", "Acme"))
	require.NoError(t, c.AcceptExternal("subject", "permits"))

	// Conversation resumes at the first still-empty field.
	assert.Equal(t, "What's your phone number?", c.NextPrompt())

	err := c.AcceptExternal("nonexistent", "x")
	assert.ErrorIs(t, err, form.ErrUnknownField)
}

func TestCollector_SideChannelCompletionTreatedAsConfirmed(t *testing.T) {
	st, _ := newTestSession(t)
	c := NewCollector(st, form.KindContact)

	for _, key := range []string{"company", "subject", "phone", "message"} {
		require.NoError(t, c.AcceptExternal(key, "v"))
	}
	assert.False(t, st.AwaitingConfirmation())

	reply, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Contains(t, reply, "submitted successfully")
	assert.True(t, st.ShouldSubmit())
}

func TestCollector_DoubleSubmit(t *testing.T) {
	st, _ := newTestSession(t)
	c := NewCollector(st, form.KindContact)
	for _, key := range []string{"company", "subject", "phone", "message"} {
		require.NoError(t, c.AcceptExternal(key, "v"))
	}
	_, err := c.Submit(context.Background())
	require.NoError(t, err)

	reply, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, session.ErrAlreadySubmitted)
	assert.Equal(t, locale.Message(locale.MsgProvideInfoFirst, locale.English), reply)
}

func TestCollector_KannadaPrompts(t *testing.T) {
	pub := &recordingPublisher{}
	st := session.NewState("room-kn", frontend.NewNotifier(pub, nil), nil)
	require.NoError(t, st.SetLanguage(locale.Kannada))
	c := NewCollector(st, form.KindFelling)

	assert.Equal(t, locale.Message(locale.MsgFellingIntro, locale.Kannada), c.Begin())

	reply, err := c.Accept(context.Background(), form.FellingInAreaType, "urban area")
	require.NoError(t, err)
	assert.Equal(t, "ನಿಮ್ಮ ಜಿಲ್ಲೆ ಯಾವುದು?", reply)
}

func TestCollector_BeginResumesMidForm(t *testing.T) {
	st, _ := newTestSession(t)
	c := NewCollector(st, form.KindContact)
	require.NoError(t, c.AcceptExternal("company", "Acme"))

	// Not the intro: the next pending question.
	assert.Equal(t, "What's the subject of your inquiry?", c.Begin())
}

func TestCollector_FlagMirroredAsBool(t *testing.T) {
	st, pub := newTestSession(t)
	c := NewCollector(st, form.KindFelling)

	_, err := c.Accept(context.Background(), form.FellingAgreeTerms, "yes")
	require.NoError(t, err)

	last := pub.payloads[len(pub.payloads)-1]
	assert.Equal(t, map[string]any{"agreeTerms": true}, last)
}
