package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ugnislab/flowgen/pkg/models"
)

const (
	// maxNodes and maxExamples cap the context shipped to the model so
	// prompts stay within a predictable token budget.
	maxNodes    = 10
	maxExamples = 3
)

// Prompt is a composed request ready for the model.
type Prompt struct {
	System string
	User   string
}

// Composer renders prompts from generation contexts. The zero value is
// ready to use.
type Composer struct{}

func NewComposer() *Composer { return &Composer{} }

// Compose renders the prompt for gctx. Composition is deterministic:
// identical contexts produce identical prompts.
func (c *Composer) Compose(gctx models.GenerationContext) Prompt {
	vars := map[string]string{
		"user_request":      gctx.UserQuery,
		"similar_workflows": renderExamples(gctx.SimilarWorkflows),
		"available_nodes":   renderNodes(gctx.AvailableNodes),
	}

	body := substitute(templateFor(gctx.Query.Intent), vars)

	var directives []string
	if d, ok := complexityDirectives[gctx.ComplexityPreference]; ok {
		directives = append(directives, d)
	}
	if d, ok := languageDirectives[gctx.Language]; ok {
		directives = append(directives, d)
	}
	if len(directives) > 0 {
		body += "\n\n" + strings.Join(directives, "\n")
	}

	return Prompt{System: SystemPrompt, User: body}
}

// substitute replaces {name} placeholders literally. Longer names are
// replaced first so a name that prefixes another never clobbers it.
func substitute(template string, vars map[string]string) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	out := template
	for _, name := range names {
		out = strings.ReplaceAll(out, "{"+name+"}", vars[name])
	}
	return out
}

func renderExamples(workflows []models.RetrievedWorkflow) string {
	if len(workflows) == 0 {
		return "(none found)"
	}
	if len(workflows) > maxExamples {
		workflows = workflows[:maxExamples]
	}

	var b strings.Builder
	for i, wf := range workflows {
		fmt.Fprintf(&b, "%d. %s", i+1, wf.Name)
		if wf.Description != "" {
			fmt.Fprintf(&b, ": %s", wf.Description)
		}
		fmt.Fprintf(&b, " (similarity %.2f", wf.AdjustedScore)
		if len(wf.Tags) > 0 {
			fmt.Fprintf(&b, ", uses %s", strings.Join(wf.Tags, ", "))
		}
		b.WriteString(")\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderNodes(nodes []models.NodeSummary) string {
	if len(nodes) == 0 {
		return "(use standard n8n-nodes-base types)"
	}
	if len(nodes) > maxNodes {
		nodes = nodes[:maxNodes]
	}

	var b strings.Builder
	for _, node := range nodes {
		fmt.Fprintf(&b, "- %s", node.Type)
		if node.Description != "" {
			fmt.Fprintf(&b, ": %s", node.Description)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
