package analyzer

import "strings"

// ExtractJSONObject returns the first balanced {...} substring of text.
// Braces inside JSON string literals are ignored.
func ExtractJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	for start >= 0 {
		if end, ok := matchBrace(text, start); ok {
			return text[start : end+1], true
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", false
}

func matchBrace(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
