package query

import (
	"strings"

	"github.com/ugnislab/flowgen/pkg/language"
	"github.com/ugnislab/flowgen/pkg/models"
)

// Intent cue words, checked in priority order. The first group with a hit
// wins; requests matching nothing default to create_new.
var intentCues = []struct {
	intent models.Intent
	words  []string
}{
	{models.IntentCreateNew, []string{"create", "izveidot", "radīt", "создать"}},
	{models.IntentFindSimilar, []string{"find", "search", "atrast", "meklēt", "найти"}},
	{models.IntentModifyExisting, []string{"modify", "change", "pielāgot", "mainīt", "изменить"}},
	{models.IntentExplainWorkflow, []string{"explain", "how", "kā", "как", "paskaidrot"}},
}

var (
	simpleCues  = []string{"simple", "basic", "vienkāršs", "простой"}
	complexCues = []string{"complex", "advanced", "sarežģīts", "сложный"}
)

// Interpreter composes language detection, taxonomy extraction and
// intent/complexity classification into SearchQuery parsing.
type Interpreter struct {
	detector *language.Detector
}

// NewInterpreter builds an interpreter over the given detector.
func NewInterpreter(detector *language.Detector) *Interpreter {
	return &Interpreter{detector: detector}
}

// Parse is a pure function: identical text always yields an identical
// SearchQuery. Empty or too-short input still parses, producing a neutral
// query in the fallback language.
func (i *Interpreter) Parse(text string) models.SearchQuery {
	detection := i.detector.Detect(text)
	byCategory := Extract(text, detection.Language)
	entities := ExtractEntities(text)

	lower := strings.ToLower(strings.TrimSpace(text))

	return models.SearchQuery{
		OriginalText:         text,
		Intent:               classifyIntent(lower),
		Keywords:             FlattenKeywords(byCategory),
		Entities:             entities,
		Language:             detection.Language,
		ComplexityPreference: classifyComplexity(lower),
	}
}

func classifyIntent(lower string) models.Intent {
	for _, cue := range intentCues {
		for _, word := range cue.words {
			if language.ContainsWord(lower, word) {
				return cue.intent
			}
		}
	}

	return models.IntentCreateNew
}

func classifyComplexity(lower string) models.Complexity {
	for _, word := range simpleCues {
		if language.ContainsWord(lower, word) {
			return models.ComplexitySimple
		}
	}

	for _, word := range complexCues {
		if language.ContainsWord(lower, word) {
			return models.ComplexityComplex
		}
	}

	return models.ComplexityMedium
}
