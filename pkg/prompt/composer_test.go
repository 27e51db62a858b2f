package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugnislab/flowgen/pkg/models"
)

func TestComposeCreatePrompt(t *testing.T) {
	c := NewComposer()
	p := c.Compose(models.GenerationContext{
		UserQuery: "Create a telegram bot",
		Query:     models.SearchQuery{Intent: models.IntentCreateNew},
		SimilarWorkflows: []models.RetrievedWorkflow{
			{Name: "Telegram notifier", Description: "sends alerts", AdjustedScore: 0.82, Tags: []string{"telegram"}},
		},
		AvailableNodes: []models.NodeSummary{
			{Type: "n8n-nodes-base.telegram", Description: "Sends messages through a Telegram bot"},
		},
		Language:             models.LanguageEnglish,
		ComplexityPreference: models.ComplexityMedium,
	})

	assert.Equal(t, SystemPrompt, p.System)
	assert.Contains(t, p.User, "Create a telegram bot")
	assert.Contains(t, p.User, "Telegram notifier: sends alerts (similarity 0.82, uses telegram)")
	assert.Contains(t, p.User, "- n8n-nodes-base.telegram")
	assert.Contains(t, p.User, "in English")
	assert.NotContains(t, p.User, "{user_request}")
	assert.NotContains(t, p.User, "{similar_workflows}")
	assert.NotContains(t, p.User, "{available_nodes}")
}

func TestComposeIsDeterministic(t *testing.T) {
	c := NewComposer()
	gctx := models.GenerationContext{
		UserQuery: "izveidot botu",
		Query:     models.SearchQuery{Intent: models.IntentModifyExisting},
		Language:  models.LanguageLatvian,
	}
	assert.Equal(t, c.Compose(gctx), c.Compose(gctx))
}

func TestComposeTemplateSelection(t *testing.T) {
	c := NewComposer()

	modify := c.Compose(models.GenerationContext{
		Query: models.SearchQuery{Intent: models.IntentModifyExisting},
	})
	assert.Contains(t, modify.User, "adapt an existing workflow")

	explain := c.Compose(models.GenerationContext{
		Query: models.SearchQuery{Intent: models.IntentExplainWorkflow},
	})
	assert.Contains(t, explain.User, "step by step")

	// find_similar still generates, so it shares the creation template.
	similar := c.Compose(models.GenerationContext{
		Query: models.SearchQuery{Intent: models.IntentFindSimilar},
	})
	assert.Contains(t, similar.User, "Design the workflow from scratch")
}

func TestComposeCapsExamplesAndNodes(t *testing.T) {
	gctx := models.GenerationContext{
		Query: models.SearchQuery{Intent: models.IntentCreateNew},
	}
	for i := 0; i < maxExamples+2; i++ {
		gctx.SimilarWorkflows = append(gctx.SimilarWorkflows, models.RetrievedWorkflow{Name: "SampleXYZ"})
	}
	for i := 0; i < maxNodes+5; i++ {
		gctx.AvailableNodes = append(gctx.AvailableNodes, models.NodeSummary{Type: "n8n-nodes-base.set"})
	}

	p := NewComposer().Compose(gctx)
	assert.Equal(t, maxExamples, strings.Count(p.User, "SampleXYZ"))
	assert.Equal(t, maxNodes, strings.Count(p.User, "- n8n-nodes-base.set"))
}

func TestSubstituteLongestNameFirst(t *testing.T) {
	out := substitute("{x} {x_long}", map[string]string{
		"x":      "short",
		"x_long": "long",
	})
	assert.Equal(t, "short long", out)
}

func TestComposeLanguageDirectives(t *testing.T) {
	c := NewComposer()
	for lang, want := range map[models.Language]string{
		models.LanguageLatvian: "in Latvian",
		models.LanguageRussian: "in Russian",
		models.LanguageEnglish: "in English",
	} {
		p := c.Compose(models.GenerationContext{
			Query:    models.SearchQuery{Intent: models.IntentCreateNew},
			Language: lang,
		})
		require.Contains(t, p.User, want)
	}
}
