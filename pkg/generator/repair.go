package generator

import "github.com/ugnislab/flowgen/pkg/models"

const repairedName = "Generated Workflow"

// repair builds a new result from a broken one: required fields get
// defaults, nodes that cannot work are dropped and dangling connections
// are pruned. The validation findings travel along in Errors. The input
// is never mutated.
func repair(broken *models.GenerationResult, findings []string) *models.GenerationResult {
	repaired := &models.GenerationResult{
		SetupInstructions: broken.SetupInstructions,
		Explanation:       broken.Explanation,
		Errors:            findings,
	}
	if repaired.SetupInstructions == nil {
		repaired.SetupInstructions = []string{}
	}

	doc := &models.WorkflowDocument{
		Name:        repairedName,
		Nodes:       []*models.Node{},
		Connections: map[string]models.ConnectionSpec{},
	}
	repaired.Workflow = doc

	src := broken.Workflow
	if src == nil {
		return repaired
	}
	if src.Name != "" {
		doc.Name = src.Name
	}

	for _, node := range src.Nodes {
		if node == nil || node.Name == "" || node.Type == "" {
			continue
		}
		kept := *node
		if kept.Parameters == nil {
			kept.Parameters = map[string]any{}
		}
		doc.Nodes = append(doc.Nodes, &kept)
	}

	names := doc.NodeNames()
	for source, spec := range src.Connections {
		if !names[source] {
			continue
		}
		pruned := prune(spec, names)
		if len(pruned) > 0 {
			doc.Connections[source] = pruned
		}
	}
	return repaired
}

// prune keeps only connection targets that point at existing nodes.
func prune(spec models.ConnectionSpec, names map[string]bool) models.ConnectionSpec {
	out := models.ConnectionSpec{}
	for port, groups := range spec {
		var keptGroups [][]models.ConnectionTarget
		for _, group := range groups {
			var kept []models.ConnectionTarget
			for _, target := range group {
				if names[target.Node] {
					kept = append(kept, target)
				}
			}
			if len(kept) > 0 {
				keptGroups = append(keptGroups, kept)
			}
		}
		if len(keptGroups) > 0 {
			out[port] = keptGroups
		}
	}
	return out
}
