package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/theaftaab/govassist/core"
)

// ToolDefinition declaratively exposes a callable function to the model.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"` // JSON Schema
}

// Request is the normalized model input built by the turn loop.
type Request struct {
	Instructions string           `json:"instructions"`
	Contents     []core.Content   `json:"contents"`
	Tools        []ToolDefinition `json:"tools,omitempty"`
	Temperature  float64          `json:"temperature,omitempty"`
	MaxTokens    int64            `json:"max_tokens,omitempty"`
}

// TokenUsage captures token statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is one completed model turn. When the model requested tools the
// content carries FunctionCallParts and FinishReason is "tool_calls".
type Response struct {
	ID           string       `json:"id"`
	Content      core.Content `json:"content"`
	FinishReason string       `json:"finish_reason"`
	Usage        *TokenUsage  `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"`
	SupportsTools bool   `json:"supports_tools"`
}

// Model is the minimal interface agents need to drive generation.
type Model interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is an in-memory Model for tests. It matches on the last user
// text and replies with either a canned text or a canned function call.
type MockModel struct {
	mu        sync.Mutex
	info      Info
	responses map[string]string
	calls     map[string]core.FunctionCall
	requests  []Request
}

// NewMockModel constructs a MockModel with tool support enabled.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: provider, SupportsTools: true},
		responses: map[string]string{},
		calls:     map[string]core.FunctionCall{},
	}
}

// AddResponse registers a canned text completion for an input.
func (m *MockModel) AddResponse(prompt, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = response
}

// AddToolCall registers a canned function call for an input.
func (m *MockModel) AddToolCall(prompt string, call core.FunctionCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[prompt] = call
}

// Requests returns every request seen so far, for assertions.
func (m *MockModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Generate implements Model.
func (m *MockModel) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)

	if len(req.Contents) == 0 {
		return nil, fmt.Errorf("no contents provided")
	}
	last := req.Contents[len(req.Contents)-1]
	var input string
	for _, p := range last.Parts {
		if tp, ok := p.(core.TextPart); ok {
			input += tp.Text
		}
	}

	if call, ok := m.calls[input]; ok {
		return &Response{
			ID:           core.NewID(),
			Content:      core.Content{Role: "assistant", Parts: []core.Part{core.FunctionCallPart{FunctionCall: call}}},
			FinishReason: "tool_calls",
		}, nil
	}

	text := m.responses[input]
	if text == "" {
		text = fmt.Sprintf("Mock response to: %s", input)
	}
	return &Response{
		ID:           core.NewID(),
		Content:      core.Content{Role: "assistant", Parts: []core.Part{core.TextPart{Text: text}}},
		FinishReason: "stop",
	}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
