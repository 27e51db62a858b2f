package generator

import "strings"

// ExtractJSON finds the JSON object in a model response. It prefers a
// fenced ```json block and falls back to scanning for the first balanced
// object. It is a pure function; callers decode the returned text.
func ExtractJSON(text string) (string, bool) {
	if block, ok := fencedBlock(text); ok {
		if obj, ok := balancedObject(block); ok {
			return obj, true
		}
	}
	return balancedObject(text)
}

func fencedBlock(text string) (string, bool) {
	lower := strings.ToLower(text)
	start := strings.Index(lower, "```json")
	if start < 0 {
		return "", false
	}
	rest := text[start+len("```json"):]
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// balancedObject returns the first top-level {...} span, tracking strings
// and escapes so braces inside values do not end the scan early.
func balancedObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
