// Package language provides heuristic language detection over short
// automation requests. Detection is data-driven: each supported language is
// described by a Profile of character classes, closed word lists and
// morphological patterns.
package language

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ugnislab/flowgen/pkg/models"
)

// neutralConfidence is reported when no profile scores at all.
const neutralConfidence = 0.33

const (
	charWeight = 2
	wordWeight = 3
)

// Detector scores text against a fixed set of language profiles. The zero
// value is not usable; construct with NewDetector.
type Detector struct {
	profiles []Profile
	fallback models.Language
}

// NewDetector builds a detector over the given profiles. Profile order is the
// tie-breaking priority order. The fallback language is returned for inputs
// that match nothing.
func NewDetector(profiles []Profile, fallback models.Language) *Detector {
	return &Detector{profiles: profiles, fallback: fallback}
}

// NewDefaultDetector builds a detector over the built-in lv/ru/en profiles
// with English as the fallback.
func NewDefaultDetector() *Detector {
	return NewDetector(DefaultProfiles(), models.LanguageEnglish)
}

// Detect classifies the language of text. It never fails: empty or
// unclassifiable input yields the fallback language with neutral confidence.
func Detect(text string) models.Detection {
	return NewDefaultDetector().Detect(text)
}

// Detect scores text against every profile and returns the winner.
//
// Per profile: score = 2*(character-class matches) + 3*(distinct closed-list
// word matches, whole-word only) + (morphological pattern matches).
// Confidence is the winner's share of the total score. Ties are broken by
// profile order, which is the documented language priority (lv, ru, en for
// the defaults), not map iteration order.
func (d *Detector) Detect(text string) models.Detection {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.Detection{Language: d.fallback, Confidence: neutralConfidence}
	}

	lower := strings.ToLower(trimmed)
	tokens := tokenRe.FindAllString(lower, -1)

	var (
		best      *Profile
		bestScore int
		bestSigs  []string
		total     int
	)

	for i := range d.profiles {
		profile := &d.profiles[i]
		score, signals := scoreProfile(profile, lower, tokens)
		total += score

		// Strictly-greater comparison keeps earlier profiles on ties.
		if score > bestScore {
			best = profile
			bestScore = score
			bestSigs = signals
		}
	}

	if best == nil || bestScore == 0 {
		return models.Detection{Language: d.fallback, Confidence: neutralConfidence}
	}

	return models.Detection{
		Language:   best.Language,
		Confidence: float64(bestScore) / float64(total),
		Signals:    bestSigs,
	}
}

var tokenRe = regexp.MustCompile(`\p{L}+`)

func scoreProfile(profile *Profile, lower string, tokens []string) (int, []string) {
	score := 0

	var signals []string

	if chars := len(profile.Chars.FindAllString(lower, -1)); chars > 0 {
		score += chars * charWeight
		signals = append(signals, fmt.Sprintf("chars: %d", chars))
	}

	words := 0

	for _, word := range profile.Words {
		if ContainsWord(lower, word) {
			words++
			score += wordWeight
		}
	}

	if words > 0 {
		signals = append(signals, fmt.Sprintf("words: %d", words))
	}

	patterns := 0

	for _, pattern := range profile.Patterns {
		for _, token := range tokens {
			if pattern.MatchString(token) {
				patterns++
			}
		}
	}

	if patterns > 0 {
		score += patterns
		signals = append(signals, fmt.Sprintf("patterns: %d", patterns))
	}

	return score, signals
}

// ContainsWord reports whether word occurs in lower on whole-word boundaries:
// surrounded by spaces or the string edges. A substring match inside a longer
// word does not count.
func ContainsWord(lower, word string) bool {
	return strings.Contains(" "+lower+" ", " "+word+" ")
}
