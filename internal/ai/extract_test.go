package ai

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type extractTarget struct {
	Summary string `json:"summary"`
}

func TestExtractJSONPlain(t *testing.T) {
	var out extractTarget
	err := ExtractJSON(`{"summary":"ready"}`, &out)

	require.NoError(t, err)
	assert.Equal(t, "ready", out.Summary)
}

func TestExtractJSONStripsFencesAndProse(t *testing.T) {
	raw := "Here is the result:\n```json\n{\"summary\":\"ready\"}\n```\nLet me know if you need more."

	var out extractTarget
	require.NoError(t, ExtractJSON(raw, &out))
	assert.Equal(t, "ready", out.Summary)
}

func TestExtractJSONFenceWithoutTag(t *testing.T) {
	var out extractTarget
	require.NoError(t, ExtractJSON("```\n{\"summary\":\"ok\"}\n```", &out))
	assert.Equal(t, "ok", out.Summary)
}

func TestExtractJSONNoObject(t *testing.T) {
	var out extractTarget
	err := ExtractJSON("sorry, I cannot help with that", &out)

	require.Error(t, err)
	assert.True(t, IsMalformed(err))
}

func TestExtractJSONInvalidPayload(t *testing.T) {
	var out extractTarget
	err := ExtractJSON(`{"summary": }`, &out)

	require.Error(t, err)
	assert.True(t, IsMalformed(err))
}

func TestExtractJSONSnippetIsCapped(t *testing.T) {
	raw := "{" + strings.Repeat("x", 1000)

	var out extractTarget
	err := ExtractJSON(raw+"}", &out)
	require.Error(t, err)

	var m *MalformedResponseError
	require.ErrorAs(t, err, &m)
	assert.LessOrEqual(t, len(m.Snippet), snippetLimit)
}

func TestExtractJSONSnippetKeepsValidUTF8(t *testing.T) {
	// Fill up to the cap so a multi-byte rune straddles the cut point.
	raw := "{" + strings.Repeat("x", snippetLimit-2) + strings.Repeat("é", 50)

	var out extractTarget
	err := ExtractJSON(raw, &out)
	require.Error(t, err)

	var m *MalformedResponseError
	require.ErrorAs(t, err, &m)
	assert.True(t, utf8.ValidString(m.Snippet))
	assert.LessOrEqual(t, len(m.Snippet), snippetLimit)
}
