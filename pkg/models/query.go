package models

// Language identifies one of the supported request languages.
type Language string

const (
	LanguageLatvian Language = "lv"
	LanguageRussian Language = "ru"
	LanguageEnglish Language = "en"
)

// SupportedLanguages lists the languages in detection priority order.
// Earlier entries win score ties.
var SupportedLanguages = []Language{LanguageLatvian, LanguageRussian, LanguageEnglish}

// Intent is what the user wants the pipeline to do with their request.
type Intent string

const (
	IntentCreateNew       Intent = "create_new"
	IntentFindSimilar     Intent = "find_similar"
	IntentModifyExisting  Intent = "modify_existing"
	IntentExplainWorkflow Intent = "explain_workflow"
)

// Complexity is the requested workflow complexity level.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// Keyword taxonomy categories.
const (
	CategoryActions   = "actions"
	CategoryServices  = "services"
	CategoryObjects   = "objects"
	CategoryDataTypes = "data_types"
)

// Detection is the outcome of language detection. Confidence is the winning
// profile's share of the total score, or a neutral value when nothing
// scored.
type Detection struct {
	Language   Language `json:"language"`
	Confidence float64  `json:"confidence"`
	Signals    []string `json:"signals,omitempty"`
}

// SearchQuery is the structured interpretation of a natural language
// request. It is built once by the interpreter and read-only afterwards.
type SearchQuery struct {
	OriginalText         string              `json:"original_text"`
	Intent               Intent              `json:"intent"`
	Keywords             []string            `json:"keywords"`
	Entities             map[string][]string `json:"entities"`
	Language             Language            `json:"language"`
	ComplexityPreference Complexity          `json:"complexity_preference"`
}

// HasKeyword reports whether kw is among the extracted keywords.
func (q SearchQuery) HasKeyword(kw string) bool {
	for _, k := range q.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}
