package runner

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theaftaab/govassist/agent"
	"github.com/theaftaab/govassist/core"
	"github.com/theaftaab/govassist/form"
	"github.com/theaftaab/govassist/frontend"
	"github.com/theaftaab/govassist/locale"
	"github.com/theaftaab/govassist/model"
	"github.com/theaftaab/govassist/session"
)

type memPublisher struct {
	mu       sync.Mutex
	topics   []string
	payloads []map[string]any
}

func (m *memPublisher) Publish(_ context.Context, topic string, payload []byte, _ bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var data map[string]any
	_ = json.Unmarshal(payload, &data)
	m.topics = append(m.topics, topic)
	m.payloads = append(m.payloads, data)
	return nil
}

func newTestRunner() (*Runner, *model.MockModel, *memPublisher) {
	mock := model.NewMockModel("mock", "test")
	router := agent.NewRouter(nil, agent.NewGreeter(), agent.NewContactAgent(), agent.NewFellingAgent())
	r := NewRunner(router, mock, session.NewRegistry(nil), nil)
	return r, mock, &memPublisher{}
}

func TestRunner_StartSessionDefault(t *testing.T) {
	r, _, pub := newTestRunner()

	st, greeting, err := r.StartSession(context.Background(), "room-1", frontend.NewNotifier(pub, nil))
	require.NoError(t, err)
	assert.Equal(t, agent.KindGreeter, st.ActiveAgent())
	assert.Equal(t, locale.Message(locale.MsgWelcome, locale.English), greeting)
	assert.False(t, st.LanguageSelected())
}

func TestRunner_StartSessionWithAgentToken(t *testing.T) {
	r, _, pub := newTestRunner()

	st, greeting, err := r.StartSession(context.Background(), "room__agent=felling__1", frontend.NewNotifier(pub, nil))
	require.NoError(t, err)
	assert.Equal(t, agent.KindFelling, st.ActiveAgent())
	// Language defaults to English and the form opens immediately.
	assert.True(t, st.LanguageSelected())
	assert.Equal(t, locale.English, st.Language())
	assert.Equal(t, locale.Message(locale.MsgFellingIntro, locale.English), greeting)
}

func TestRunner_StartSessionWithUnknownAgentToken(t *testing.T) {
	r, _, pub := newTestRunner()

	st, _, err := r.StartSession(context.Background(), "room__agent=knowledge__1", frontend.NewNotifier(pub, nil))
	require.NoError(t, err)
	assert.Equal(t, agent.KindGreeter, st.ActiveAgent())
}

func TestRunner_PlainTextTurn(t *testing.T) {
	r, mock, pub := newTestRunner()
	_, _, err := r.StartSession(context.Background(), "room-1", frontend.NewNotifier(pub, nil))
	require.NoError(t, err)

	mock.AddResponse("hello there", "Hello! English or Kannada?")
	replies, err := r.HandleUtterance(context.Background(), "room-1", "  hello   there ")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "Hello! English or Kannada?", replies[0])

	// The model saw the greeter's tools.
	reqs := mock.Requests()
	require.NotEmpty(t, reqs)
	names := map[string]bool{}
	for _, td := range reqs[0].Tools {
		names[td.Name] = true
	}
	assert.True(t, names["set_language"])
	assert.True(t, names["to_contact_form"])
	assert.True(t, names["to_felling_form"])
}

func TestRunner_ToolCallThenTransfer(t *testing.T) {
	r, mock, pub := newTestRunner()
	st, _, err := r.StartSession(context.Background(), "room-1", frontend.NewNotifier(pub, nil))
	require.NoError(t, err)
	require.NoError(t, st.SetLanguage(locale.English))

	mock.AddToolCall("I want to cut a tree", core.FunctionCall{
		ID:   "fc-1",
		Name: "to_felling_form",
	})

	replies, err := r.HandleUtterance(context.Background(), "room-1", "I want to cut a tree")
	require.NoError(t, err)

	// Handoff happened: the transfer tool's transition message is spoken
	// first, then the felling agent opens the form.
	assert.Equal(t, agent.KindFelling, st.ActiveAgent())
	require.Len(t, replies, 2)
	assert.Equal(t, locale.Message(locale.MsgTransferToFelling, locale.English), replies[0])
	assert.Equal(t, locale.Message(locale.MsgFellingIntro, locale.English), replies[1])

	// Navigation went out to the frontend.
	found := false
	for i, topic := range pub.topics {
		if topic == frontend.TopicNavigation {
			assert.Equal(t, map[string]any{"route": agent.RouteFellingPermission}, pub.payloads[i])
			found = true
		}
	}
	assert.True(t, found, "expected a navigation publish")
}

func TestRunner_UpdateToolRound(t *testing.T) {
	r, mock, pub := newTestRunner()
	st, _, err := r.StartSession(context.Background(), "room__agent=contact__1", frontend.NewNotifier(pub, nil))
	require.NoError(t, err)

	args, _ := json.Marshal(map[string]any{"company": "Acme Timber"})
	mock.AddToolCall("Acme Timber", core.FunctionCall{ID: "fc-2", Name: "update_company", Arguments: string(args)})
	// After the tool round the model wraps up with the tool's question.
	mock.AddResponse("", "What's the subject of your inquiry?")

	_, err = r.HandleUtterance(context.Background(), "another-room", "Acme Timber")
	assert.Error(t, err) // no session for that room

	replies, err := r.HandleUtterance(context.Background(), "room__agent=contact__1", "Acme Timber")
	require.NoError(t, err)
	require.NotEmpty(t, replies)

	v, ok := st.Record(form.KindContact).Get(form.ContactCompany)
	require.True(t, ok)
	assert.Equal(t, "Acme Timber", v)
}

func TestRunner_UnknownToolIsRecoverable(t *testing.T) {
	r, mock, pub := newTestRunner()
	_, _, err := r.StartSession(context.Background(), "room-1", frontend.NewNotifier(pub, nil))
	require.NoError(t, err)

	mock.AddToolCall("do something odd", core.FunctionCall{ID: "fc-3", Name: "not_a_tool"})
	mock.AddResponse("", "Sorry, could you rephrase?")

	replies, err := r.HandleUtterance(context.Background(), "room-1", "do something odd")
	require.NoError(t, err)
	require.NotEmpty(t, replies)
	assert.Equal(t, "Sorry, could you rephrase?", replies[len(replies)-1])
}

func TestRunner_HandleData(t *testing.T) {
	r, _, pub := newTestRunner()
	st, _, err := r.StartSession(context.Background(), "room__agent=felling__1", frontend.NewNotifier(pub, nil))
	require.NoError(t, err)

	payload, _ := json.Marshal(map[string]string{"field": "khataNumber", "value": "482"})
	require.NoError(t, r.HandleData(context.Background(), "room__agent=felling__1", payload))

	v, ok := st.Record(form.KindFelling).Get(form.FellingKhataNumber)
	require.True(t, ok)
	assert.Equal(t, "482", v)

	// The packet is recorded in the active agent's history as a data event.
	items := st.ChatContext(st.ActiveAgent()).Items()
	require.NotEmpty(t, items)
	last := items[len(items)-1]
	require.NotNil(t, last.Content)
	assert.Equal(t, "data", last.Content.Role)
	dp, ok := last.Content.Parts[0].(core.DataPart)
	require.True(t, ok)
	assert.Equal(t, "482", dp.Data["khataNumber"])

	// Unknown fields and bad payloads are dropped, not fatal.
	payload, _ = json.Marshal(map[string]string{"field": "bogus", "value": "x"})
	assert.NoError(t, r.HandleData(context.Background(), "room__agent=felling__1", payload))
	assert.Error(t, r.HandleData(context.Background(), "room__agent=felling__1", []byte("not json")))
}

func TestRunner_HandleDataWithoutForm(t *testing.T) {
	r, _, pub := newTestRunner()
	_, _, err := r.StartSession(context.Background(), "room-1", frontend.NewNotifier(pub, nil))
	require.NoError(t, err)

	payload, _ := json.Marshal(map[string]string{"field": "company", "value": "Acme"})
	// Greeter active: packet is dropped quietly.
	assert.NoError(t, r.HandleData(context.Background(), "room-1", payload))
}

func TestRunner_EndSession(t *testing.T) {
	r, _, pub := newTestRunner()
	_, _, err := r.StartSession(context.Background(), "room-1", frontend.NewNotifier(pub, nil))
	require.NoError(t, err)
	require.Equal(t, 1, r.Registry().Len())

	r.EndSession("room-1")
	assert.Equal(t, 0, r.Registry().Len())

	_, err = r.HandleUtterance(context.Background(), "room-1", "hello")
	assert.Error(t, err)
}
