package language

import (
	"regexp"

	"github.com/ugnislab/flowgen/pkg/models"
)

// Profile carries the heuristic tables for one language. Adding a language
// means adding a profile here; the detector itself never changes.
type Profile struct {
	Language models.Language
	// Chars matches characters distinctive for the language.
	Chars *regexp.Regexp
	// Words is a closed list of frequent words, matched on whole-word
	// boundaries only.
	Words []string
	// Patterns are morphological regexes (verb/noun endings and the like),
	// anchored and applied per word token. Go's \b is ASCII-only, so the
	// detector tokenizes on letter runs instead of relying on boundaries.
	Patterns []*regexp.Regexp
}

// DefaultProfiles returns the built-in lv/ru/en profiles in detection
// priority order.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Language: models.LanguageLatvian,
			Chars:    regexp.MustCompile(`[āčēģīķļņšūž]`),
			Words: []string{
				"un", "ir", "ar", "no", "uz", "par", "kas", "vai", "bet", "ja",
				"izveidot", "radīt", "veidot", "darīt", "telegram", "bots",
				"tikšanās", "pieraksts", "datu", "bāze", "epasts",
			},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`^\p{L}+ot$`),
				regexp.MustCompile(`^\p{L}+ās$`),
				regexp.MustCompile(`^\p{L}+ība$`),
			},
		},
		{
			Language: models.LanguageRussian,
			Chars:    regexp.MustCompile(`[а-яё]`),
			Words: []string{
				"и", "в", "на", "с", "по", "для", "от", "к", "что", "как",
				"создать", "сделать", "телеграм", "бот", "встреча",
				"запись", "база", "данных", "почта",
			},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`^\p{L}+ть$`),
				regexp.MustCompile(`^\p{L}+ся$`),
				regexp.MustCompile(`^\p{L}+ние$`),
			},
		},
		{
			Language: models.LanguageEnglish,
			Chars:    regexp.MustCompile(`[a-z]`),
			Words: []string{
				"and", "is", "with", "from", "to", "for", "of", "in", "that", "the",
				"create", "make", "build", "telegram", "bot", "appointment",
				"booking", "database", "email", "api", "webhook",
			},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`^\p{L}+ing$`),
				regexp.MustCompile(`^\p{L}+ed$`),
				regexp.MustCompile(`^\p{L}+tion$`),
			},
		},
	}
}
