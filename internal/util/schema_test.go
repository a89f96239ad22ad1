package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exampleArgs struct {
	Language string `json:"language" description:"Selected language"`
	Retries  *int   `json:"retries" description:"Optional retry count"`
	Note     string `json:"note,omitempty"`
}

func TestCreateSchema(t *testing.T) {
	schema := CreateSchema(exampleArgs{})
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "language")
	assert.Contains(t, props, "retries")
	assert.Contains(t, props, "note")

	lang := props["language"].(map[string]any)
	assert.Equal(t, "string", lang["type"])
	assert.Equal(t, "Selected language", lang["description"])

	// Pointer and omitempty fields are optional.
	req, _ := schema["required"].([]string)
	assert.Equal(t, []string{"language"}, req)
}

func TestValidateParameters(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"language": map[string]any{"type": "string"},
			"count":    map[string]any{"type": "integer"},
		},
		"required": []string{"language"},
	}

	require.NoError(t, ValidateParameters(map[string]any{"language": "english"}, schema))
	require.NoError(t, ValidateParameters(map[string]any{"language": "english", "count": float64(2)}, schema))

	err := ValidateParameters(map[string]any{}, schema)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "language", vErr.Field)

	err = ValidateParameters(map[string]any{"language": 42}, schema)
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "expected type string")

	// Fractional numbers are not integers.
	err = ValidateParameters(map[string]any{"language": "en", "count": 1.5}, schema)
	assert.Error(t, err)

	// required as []any (decoded JSON shape) works too.
	schema["required"] = []any{"language"}
	err = ValidateParameters(map[string]any{}, schema)
	assert.Error(t, err)
}

func TestRenderInstruction(t *testing.T) {
	out, err := RenderInstruction("plain text", nil)
	require.NoError(t, err)
	assert.Equal(t, "plain text", out)

	out, err = RenderInstruction("Respond in {{.language}}.", map[string]any{"language": "kannada"})
	require.NoError(t, err)
	assert.Equal(t, "Respond in kannada.", out)

	out, err = RenderInstruction("Respond in {{title .language}}.", map[string]any{"language": "kannada"})
	require.NoError(t, err)
	assert.Equal(t, "Respond in Kannada.", out)

	_, err = RenderInstruction("{{.broken", nil)
	assert.Error(t, err)
}
