package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugnislab/flowgen/pkg/language"
	"github.com/ugnislab/flowgen/pkg/models"
)

func newInterpreter() *Interpreter {
	return NewInterpreter(language.NewDefaultDetector())
}

func TestParseCreateWebhookScenario(t *testing.T) {
	parsed := newInterpreter().Parse("Create webhook for API")

	assert.Equal(t, models.LanguageEnglish, parsed.Language)
	assert.Equal(t, models.IntentCreateNew, parsed.Intent)
	assert.Contains(t, parsed.Keywords, "webhook")
	assert.Contains(t, parsed.Keywords, "api")
	assert.Equal(t, models.ComplexityMedium, parsed.ComplexityPreference)
	assert.Equal(t, "Create webhook for API", parsed.OriginalText)
}

func TestParseIntentPriority(t *testing.T) {
	cases := []struct {
		text string
		want models.Intent
	}{
		{"create a bot", models.IntentCreateNew},
		{"find similar workflows", models.IntentFindSimilar},
		{"modify the email flow", models.IntentModifyExisting},
		{"explain this workflow", models.IntentExplainWorkflow},
		// "create" outranks "find" when both cues appear.
		{"find and create a bot", models.IntentCreateNew},
		// No cue at all defaults to creation.
		{"telegram bot please", models.IntentCreateNew},
	}
	i := newInterpreter()
	for _, tc := range cases {
		assert.Equal(t, tc.want, i.Parse(tc.text).Intent, "text %q", tc.text)
	}
}

func TestParseComplexityCues(t *testing.T) {
	i := newInterpreter()
	assert.Equal(t, models.ComplexitySimple, i.Parse("a simple email workflow").ComplexityPreference)
	assert.Equal(t, models.ComplexityComplex, i.Parse("an advanced booking system").ComplexityPreference)
	assert.Equal(t, models.ComplexityMedium, i.Parse("an email workflow").ComplexityPreference)
}

func TestParseRussianIntent(t *testing.T) {
	parsed := newInterpreter().Parse("создать телеграм бота")
	assert.Equal(t, models.LanguageRussian, parsed.Language)
	assert.Equal(t, models.IntentCreateNew, parsed.Intent)
	assert.Contains(t, parsed.Keywords, "telegram")
}

func TestParseEmptyText(t *testing.T) {
	parsed := newInterpreter().Parse("")
	assert.Equal(t, models.LanguageEnglish, parsed.Language)
	assert.Equal(t, models.IntentCreateNew, parsed.Intent)
	assert.Empty(t, parsed.Keywords)
	assert.Equal(t, models.ComplexityMedium, parsed.ComplexityPreference)
}

func TestParseIsPure(t *testing.T) {
	i := newInterpreter()
	text := "Send a simple telegram message when the form is submitted"
	first := i.Parse(text)
	second := i.Parse(text)
	require.Equal(t, first, second)
}
