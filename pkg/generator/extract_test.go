package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONFencedBlock(t *testing.T) {
	text := "Here is the workflow:\n```json\n{\"name\": \"test\"}\n```\nDone."
	obj, ok := ExtractJSON(text)
	require.True(t, ok)
	assert.JSONEq(t, `{"name": "test"}`, obj)
}

func TestExtractJSONBareObject(t *testing.T) {
	text := `Sure! {"a": {"b": 1}, "c": [2, 3]} hope that helps`
	obj, ok := ExtractJSON(text)
	require.True(t, ok)
	assert.JSONEq(t, `{"a": {"b": 1}, "c": [2, 3]}`, obj)
}

func TestExtractJSONBracesInsideStrings(t *testing.T) {
	text := `{"code": "if (x) { return {}; }", "n": 1}`
	obj, ok := ExtractJSON(text)
	require.True(t, ok)
	assert.JSONEq(t, text, obj)
}

func TestExtractJSONEscapedQuotes(t *testing.T) {
	text := `{"text": "she said \"hi\" {not a brace}"}`
	obj, ok := ExtractJSON(text)
	require.True(t, ok)
	assert.JSONEq(t, text, obj)
}

func TestExtractJSONNothingFound(t *testing.T) {
	for _, text := range []string{"", "no json here", "{unclosed", "```json\nnothing\n```"} {
		_, ok := ExtractJSON(text)
		assert.False(t, ok, "input %q", text)
	}
}

func TestExtractJSONPrefersFencedBlock(t *testing.T) {
	text := "{\"outside\": true}\n```json\n{\"inside\": true}\n```"
	obj, ok := ExtractJSON(text)
	require.True(t, ok)
	assert.JSONEq(t, `{"inside": true}`, obj)
}
