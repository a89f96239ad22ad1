package agent

import (
	"fmt"

	"github.com/theaftaab/govassist/locale"
	"github.com/theaftaab/govassist/tool"
)

// newSetLanguageTool builds the set_language tool every agent carries so the
// user can switch language at any point in the conversation.
func newSetLanguageTool() tool.Tool {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"language": map[string]any{
				"type":        "string",
				"description": "The language the user wants: 'english' or 'kannada'",
			},
		},
		"required": []string{"language"},
	}
	return tool.NewFunctionTool(
		"set_language",
		"Set the conversation language when the user states a preference.",
		params,
		func(tc *tool.Context, args map[string]any) (any, error) {
			raw, _ := args["language"].(string)
			lang, err := locale.ParseLanguage(raw)
			if err != nil {
				return nil, fmt.Errorf("unsupported language %q, choose english or kannada", raw)
			}
			if err := tc.State().SetLanguage(lang); err != nil {
				return nil, err
			}
			tc.Logger().Info("language set to %s", lang)
			return locale.Message(locale.MsgLanguageConfirmed, lang) + " " +
				locale.Message(locale.MsgServiceIntent, lang), nil
		},
	)
}

// newToGreeterTool builds the tool that returns the user to the greeter,
// e.g. on "go back" or "main menu".
func newToGreeterTool() tool.Tool {
	params := map[string]any{"type": "object", "properties": map[string]any{}}
	return tool.NewFunctionTool(
		"to_greeter",
		"Return to the main menu agent when the user wants to go back or start over.",
		params,
		func(tc *tool.Context, _ map[string]any) (any, error) {
			tc.TransferTo(KindGreeter)
			return locale.Message(locale.MsgTransferToGreeter, tc.State().Language()), nil
		},
	)
}
