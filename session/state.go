package session

import (
	"context"
	"errors"
	"sync"

	"github.com/theaftaab/govassist/core"
	"github.com/theaftaab/govassist/form"
	"github.com/theaftaab/govassist/frontend"
	"github.com/theaftaab/govassist/locale"
	"github.com/theaftaab/govassist/logging"
)

// ErrNotAwaitingConfirmation reports a submit attempt before the assistant
// asked the user to confirm.
var ErrNotAwaitingConfirmation = errors.New("not awaiting confirmation")

// ErrAlreadySubmitted reports a second submit for an already submitted form.
var ErrAlreadySubmitted = errors.New("form already submitted")

// Retuner adjusts the external speech recognizer when the conversation
// language changes. Calls are fire and forget: a failure is logged and the
// language change stands.
type Retuner interface {
	Retune(lang locale.Language) error
}

// State is the mutable conversation state of one room. It survives agent
// handoffs; each agent keeps its own chat history inside it.
type State struct {
	mu sync.RWMutex

	room             string
	language         locale.Language
	languageSelected bool

	activeAgent string
	prevAgent   string

	awaitingConfirmation bool
	shouldSubmit         bool
	requestedRoute       string

	contact  *form.Record
	felling  *form.Record
	contexts map[string]*core.ChatContext

	notifier *frontend.Notifier
	retuner  Retuner
	logger   *logging.AssistantLogger
}

// NewState creates the state for a freshly connected room. Both form records
// start empty; the language defaults to English until selected.
func NewState(room string, notifier *frontend.Notifier, logger *logging.AssistantLogger) *State {
	if logger == nil {
		logger = logging.NewLogger(nil)
	}
	return &State{
		room:     room,
		language: locale.English,
		contact:  form.NewContactRecord(),
		felling:  form.NewFellingRecord(),
		contexts: map[string]*core.ChatContext{},
		notifier: notifier,
		logger:   logger.WithRoom(room).WithComponent("session"),
	}
}

// Room returns the room identifier.
func (s *State) Room() string { return s.room }

// Notifier returns the frontend notifier bound to this room.
func (s *State) Notifier() *frontend.Notifier { return s.notifier }

// Logger returns the session-scoped logger.
func (s *State) Logger() *logging.AssistantLogger { return s.logger }

// SetRetuner installs the speech retuner invoked on language changes.
func (s *State) SetRetuner(r Retuner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retuner = r
}

// Language returns the current conversation language.
func (s *State) Language() locale.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// LanguageSelected reports whether the user has chosen a language.
func (s *State) LanguageSelected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.languageSelected
}

// SetLanguage records the user's language choice and retunes speech
// recognition for it.
func (s *State) SetLanguage(lang locale.Language) error {
	if !lang.Valid() {
		return locale.ErrInvalidLanguage
	}
	s.mu.Lock()
	s.language = lang
	s.languageSelected = true
	retuner := s.retuner
	s.mu.Unlock()

	s.retune(retuner, lang)
	return nil
}

// PresetLanguage fixes the language without user interaction, used when the
// room name pre-selects an agent and the greeting is skipped.
func (s *State) PresetLanguage(lang locale.Language) {
	s.mu.Lock()
	s.language = lang
	s.languageSelected = true
	retuner := s.retuner
	s.mu.Unlock()

	s.retune(retuner, lang)
}

// retune notifies the speech recognizer of a language change. Failures are
// logged and swallowed; the voice interaction continues either way.
func (s *State) retune(r Retuner, lang locale.Language) {
	if r == nil {
		return
	}
	if err := r.Retune(lang); err != nil {
		s.logger.Warn("speech retune for %s failed: %v", lang, err)
	}
}

// ActiveAgent returns the kind of the agent currently holding the
// conversation.
func (s *State) ActiveAgent() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeAgent
}

// PrevAgent returns the agent active before the last handoff.
func (s *State) PrevAgent() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prevAgent
}

// SetActiveAgent records a handoff, remembering the outgoing agent for
// context stitching.
func (s *State) SetActiveAgent(kind string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeAgent != "" && s.activeAgent != kind {
		s.prevAgent = s.activeAgent
	}
	s.activeAgent = kind
}

// Record returns the form record for a form kind.
func (s *State) Record(kind form.Kind) *form.Record {
	switch kind {
	case form.KindContact:
		return s.contact
	case form.KindFelling:
		return s.felling
	}
	return nil
}

// CurrentForm returns the record matching the active agent, or nil when the
// greeter is active.
func (s *State) CurrentForm() *form.Record {
	switch s.ActiveAgent() {
	case string(form.KindContact):
		return s.contact
	case string(form.KindFelling):
		return s.felling
	}
	return nil
}

// ChatContext returns the chat history of an agent, creating it on first
// use.
func (s *State) ChatContext(agent string) *core.ChatContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	cc, ok := s.contexts[agent]
	if !ok {
		cc = core.NewChatContext()
		s.contexts[agent] = cc
	}
	return cc
}

// AwaitingConfirmation reports whether the assistant asked the user to
// confirm submission.
func (s *State) AwaitingConfirmation() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.awaitingConfirmation
}

// BeginConfirmation marks that all fields are collected and the user was
// asked to confirm.
func (s *State) BeginConfirmation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.awaitingConfirmation = true
}

// ShouldSubmit reports whether the form was flagged for submission.
func (s *State) ShouldSubmit() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shouldSubmit
}

// Submit flags the form for submission and reliably notifies the frontend.
// It requires a pending confirmation: callers confirm first (see
// BeginConfirmation), otherwise ErrNotAwaitingConfirmation is returned and
// nothing changes. A second submit returns ErrAlreadySubmitted without
// re-notifying.
func (s *State) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.shouldSubmit {
		s.mu.Unlock()
		return ErrAlreadySubmitted
	}
	if !s.awaitingConfirmation {
		s.mu.Unlock()
		return ErrNotAwaitingConfirmation
	}
	s.shouldSubmit = true
	s.awaitingConfirmation = false
	s.mu.Unlock()

	if s.notifier == nil {
		return nil
	}
	if err := s.notifier.TriggerSubmit(ctx); err != nil {
		s.logger.Error("submit notification failed: %v", err)
		return err
	}
	return nil
}

// RequestedRoute returns the page the greeter asked the frontend to open.
func (s *State) RequestedRoute() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.requestedRoute
}

// SetRequestedRoute records the page navigation requested for this session.
func (s *State) SetRequestedRoute(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requestedRoute = route
}
