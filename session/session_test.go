package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theaftaab/govassist/form"
	"github.com/theaftaab/govassist/frontend"
	"github.com/theaftaab/govassist/locale"
)

type capturePublisher struct {
	mu       sync.Mutex
	topics   []string
	reliable []bool
	err      error
}

func (c *capturePublisher) Publish(_ context.Context, topic string, _ []byte, reliable bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.topics = append(c.topics, topic)
	c.reliable = append(c.reliable, reliable)
	return c.err
}

type fakeRetuner struct {
	mu    sync.Mutex
	langs []locale.Language
	err   error
}

func (f *fakeRetuner) Retune(lang locale.Language) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.langs = append(f.langs, lang)
	return f.err
}

func TestState_LanguageSelection(t *testing.T) {
	st := NewState("room-1", nil, nil)
	assert.Equal(t, locale.English, st.Language())
	assert.False(t, st.LanguageSelected())

	require.NoError(t, st.SetLanguage(locale.Kannada))
	assert.Equal(t, locale.Kannada, st.Language())
	assert.True(t, st.LanguageSelected())

	err := st.SetLanguage("hindi")
	assert.ErrorIs(t, err, locale.ErrInvalidLanguage)
	// Prior selection stays intact.
	assert.Equal(t, locale.Kannada, st.Language())
}

func TestState_AgentTracking(t *testing.T) {
	st := NewState("room-1", nil, nil)
	st.SetActiveAgent("greeter")
	assert.Equal(t, "greeter", st.ActiveAgent())
	assert.Empty(t, st.PrevAgent())

	st.SetActiveAgent("felling")
	assert.Equal(t, "felling", st.ActiveAgent())
	assert.Equal(t, "greeter", st.PrevAgent())

	// Re-activating the same agent does not clobber prev.
	st.SetActiveAgent("felling")
	assert.Equal(t, "greeter", st.PrevAgent())
}

func TestState_CurrentForm(t *testing.T) {
	st := NewState("room-1", nil, nil)
	assert.Nil(t, st.CurrentForm())

	st.SetActiveAgent("contact")
	require.NotNil(t, st.CurrentForm())
	assert.Equal(t, form.KindContact, st.CurrentForm().Kind())

	st.SetActiveAgent("felling")
	assert.Equal(t, form.KindFelling, st.CurrentForm().Kind())

	// Records persist across handoffs.
	require.NoError(t, st.Record(form.KindContact).SetField(form.ContactPhone, "123"))
	st.SetActiveAgent("contact")
	v, ok := st.CurrentForm().Get(form.ContactPhone)
	require.True(t, ok)
	assert.Equal(t, "123", v)
}

func TestState_ChatContextPerAgent(t *testing.T) {
	st := NewState("room-1", nil, nil)
	a := st.ChatContext("greeter")
	b := st.ChatContext("contact")
	assert.NotSame(t, a, b)
	assert.Same(t, a, st.ChatContext("greeter"))
}

func TestState_Submit(t *testing.T) {
	pub := &capturePublisher{}
	st := NewState("room-1", frontend.NewNotifier(pub, nil), nil)

	st.BeginConfirmation()
	assert.True(t, st.AwaitingConfirmation())

	require.NoError(t, st.Submit(context.Background()))
	assert.True(t, st.ShouldSubmit())
	assert.False(t, st.AwaitingConfirmation())
	require.Len(t, pub.topics, 1)
	assert.Equal(t, frontend.TopicFormUpdate, pub.topics[0])
	assert.True(t, pub.reliable[0])

	// Double submit is rejected and does not re-notify.
	err := st.Submit(context.Background())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Len(t, pub.topics, 1)
}

func TestState_SubmitRequiresConfirmation(t *testing.T) {
	pub := &capturePublisher{}
	st := NewState("room-1", frontend.NewNotifier(pub, nil), nil)

	err := st.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotAwaitingConfirmation)
	assert.False(t, st.ShouldSubmit())
	assert.Empty(t, pub.topics)

	st.BeginConfirmation()
	require.NoError(t, st.Submit(context.Background()))
	assert.True(t, st.ShouldSubmit())
}

func TestState_RetunerFollowsLanguage(t *testing.T) {
	rt := &fakeRetuner{}
	st := NewState("room-1", nil, nil)
	st.SetRetuner(rt)

	require.NoError(t, st.SetLanguage(locale.Kannada))
	st.PresetLanguage(locale.English)
	assert.Equal(t, []locale.Language{locale.Kannada, locale.English}, rt.langs)

	// Invalid selections never reach the recognizer.
	_ = st.SetLanguage("hindi")
	assert.Len(t, rt.langs, 2)
}

func TestState_RetunerFailureNotFatal(t *testing.T) {
	rt := &fakeRetuner{err: errors.New("recognizer offline")}
	st := NewState("room-1", nil, nil)
	st.SetRetuner(rt)

	require.NoError(t, st.SetLanguage(locale.Kannada))
	assert.Equal(t, locale.Kannada, st.Language())
	assert.True(t, st.LanguageSelected())
}

func TestRegistry_AttachesRetuner(t *testing.T) {
	rt := &fakeRetuner{}
	reg := NewRegistry(nil)
	reg.SetRetuner(rt)

	st := reg.GetOrCreate("r1", nil)
	st.PresetLanguage(locale.English)
	assert.Equal(t, []locale.Language{locale.English}, rt.langs)
}

func TestAgentFromRoom(t *testing.T) {
	tests := []struct {
		room string
		want string
		ok   bool
	}{
		{"room-abc__agent=felling__xyz", "felling", true},
		{"__agent=contact__", "contact", true},
		{"plain-room", "", false},
		{"room__agent=__", "", false},
		{"room__agent=felling", "", false},
	}
	for _, tt := range tests {
		got, ok := AgentFromRoom(tt.room)
		assert.Equal(t, tt.ok, ok, "room %q", tt.room)
		assert.Equal(t, tt.want, got, "room %q", tt.room)
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry(nil)
	assert.Nil(t, reg.Get("r1"))

	a := reg.GetOrCreate("r1", nil)
	b := reg.GetOrCreate("r1", nil)
	assert.Same(t, a, b)
	assert.Equal(t, 1, reg.Len())

	c := reg.GetOrCreate("r2", nil)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, reg.Len())

	// Room isolation: state changes do not leak across rooms.
	a.SetActiveAgent("felling")
	assert.Empty(t, c.ActiveAgent())

	reg.Close("r1")
	assert.Nil(t, reg.Get("r1"))
	assert.Equal(t, 1, reg.Len())
	reg.Close("missing") // no-op
}
