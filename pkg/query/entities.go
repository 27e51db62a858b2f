package query

import (
	"regexp"
	"sort"
	"strings"
)

// Free-form entity scanning is independent of the keyword taxonomy: it picks
// up concrete service and action names for auxiliary prompt context.

var servicePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(telegram|discord|slack|whatsapp)\b`),
	regexp.MustCompile(`\b(gmail|outlook|email)\b`),
	regexp.MustCompile(`\b(mysql|postgres|mongodb)\b`),
	regexp.MustCompile(`\b(supabase|firebase|airtable)\b`),
}

var asciiActionRe = regexp.MustCompile(`\b(send|receive|create|update|delete|get|post)\b`)

// Non-ASCII action verbs are matched per letter-run token because RE2 word
// boundaries are ASCII-only.
var actionVerbs = map[string]bool{
	"sūtīt": true, "saņemt": true, "izveidot": true, "atjaunināt": true, "dzēst": true,
	"отправить": true, "получить": true, "создать": true, "обновить": true, "удалить": true,
}

var letterRunRe = regexp.MustCompile(`\p{L}+`)

// ExtractEntities scans text for known service names and action verbs.
// Categories with no hits are present with empty slices.
func ExtractEntities(text string) map[string][]string {
	lower := strings.ToLower(text)

	services := make([]string, 0)
	seenService := make(map[string]bool)

	for _, pattern := range servicePatterns {
		for _, match := range pattern.FindAllString(lower, -1) {
			if !seenService[match] {
				seenService[match] = true

				services = append(services, match)
			}
		}
	}

	actions := make([]string, 0)
	seenAction := make(map[string]bool)

	for _, match := range asciiActionRe.FindAllString(lower, -1) {
		if !seenAction[match] {
			seenAction[match] = true

			actions = append(actions, match)
		}
	}

	for _, token := range letterRunRe.FindAllString(lower, -1) {
		if actionVerbs[token] && !seenAction[token] {
			seenAction[token] = true

			actions = append(actions, token)
		}
	}

	sort.Strings(services)
	sort.Strings(actions)

	return map[string][]string{
		"services": services,
		"actions":  actions,
	}
}
