// Package tool implements the function calling subsystem that lets agents
// expose structured capabilities to the model with schema validated
// arguments and consistent error handling.
package tool

import (
	"fmt"

	"github.com/theaftaab/govassist/internal/util"
)

// Tool is one callable capability of an agent. Tools are declared to the
// model with a name, description and JSON schema, and invoked with already
// decoded arguments.
//
// Implementations should:
//   - Provide clear, descriptive names (snake_case)
//   - Define a proper JSON schema for parameters
//   - Be safe for concurrent use
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description tells the model when and how to use the tool.
	Description() string

	// Parameters returns a JSON schema describing the expected arguments.
	Parameters() map[string]any

	// Call executes the tool. The Context gives access to the session
	// state, frontend notifier and flow control actions.
	Call(toolCtx *Context, args map[string]any) (any, error)
}

// ValidationError reports a tool argument rejected by schema validation.
type ValidationError = util.ValidationError

// ToolError wraps failures during tool execution with a stable code.
type ToolError struct {
	Tool    string `json:"tool"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewToolError creates a ToolError with the given details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{Tool: tool, Message: message, Code: code}
}
