// Package query turns free-text automation requests into normalized search
// queries: keyword taxonomy extraction, free-form entity scanning, and
// intent/complexity classification.
package query

import (
	"sort"
	"strings"

	"github.com/ugnislab/flowgen/pkg/language"
	"github.com/ugnislab/flowgen/pkg/models"
)

// categoryOrder fixes the iteration order over taxonomy categories so
// extraction output is deterministic.
var categoryOrder = []string{
	models.CategoryActions,
	models.CategoryServices,
	models.CategoryObjects,
	models.CategoryDataTypes,
}

// Extract maps text to the closed keyword taxonomy of the given language.
// A tag is recorded once per category when any of its synonyms occurs as a
// whole word in the lowercased text. The result is sorted, so extracting the
// same text twice yields identical output.
func Extract(text string, lang models.Language) map[string][]string {
	found := map[string][]string{
		models.CategoryActions:   {},
		models.CategoryServices:  {},
		models.CategoryObjects:   {},
		models.CategoryDataTypes: {},
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return found
	}

	lower := strings.ToLower(trimmed)
	taxonomy := TaxonomyFor(lang)

	for _, category := range categoryOrder {
		for tag, synonyms := range taxonomy[category] {
			for _, synonym := range synonyms {
				if language.ContainsWord(lower, synonym) {
					found[category] = append(found[category], tag)

					break
				}
			}
		}

		sort.Strings(found[category])
	}

	return found
}

// FlattenKeywords joins the per-category tags into one sorted, de-duplicated
// keyword list.
func FlattenKeywords(byCategory map[string][]string) []string {
	seen := make(map[string]bool)
	keywords := make([]string, 0)

	for _, category := range categoryOrder {
		for _, tag := range byCategory[category] {
			if !seen[tag] {
				seen[tag] = true

				keywords = append(keywords, tag)
			}
		}
	}

	sort.Strings(keywords)

	return keywords
}
