package ai

import (
	"errors"
	"strings"
)

// ErrNoJSON is returned when no complete JSON object can be located in a model reply.
var ErrNoJSON = errors.New("no JSON object found in model response")

// ExtractJSONObject locates the first complete JSON object embedded in free-form model
// output and returns it as a string.
//
// Models frequently wrap their JSON in markdown fences or surround it with narrative
// text that itself contains braces, so a greedy first-"{"-to-last-"}" span match is not
// safe. The strategy here is:
//
//  1. If the reply contains a fenced code block (```json or bare ```), scan inside the
//     fence first.
//  2. Otherwise scan from the first "{", tracking brace depth and string literals
//     (including escapes), and return the span that closes the opening brace.
//  3. Fail closed with ErrNoJSON when no balanced object exists.
func ExtractJSONObject(s string) (string, error) {
	if body, ok := fencedBlock(s); ok {
		if obj, ok := balancedObject(body); ok {
			return obj, nil
		}
	}
	if obj, ok := balancedObject(s); ok {
		return obj, nil
	}
	return "", ErrNoJSON
}

// fencedBlock returns the body of the first ``` fenced block, if any.
// A ```json language tag is accepted and stripped with the fence.
func fencedBlock(s string) (string, bool) {
	start := strings.Index(s, "```")
	if start < 0 {
		return "", false
	}
	rest := s[start+3:]
	// Drop the language tag line (e.g. "json") up to the first newline.
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		first := strings.TrimSpace(rest[:nl])
		if first == "" || isLangTag(first) {
			rest = rest[nl+1:]
		}
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		// Unterminated fence: treat everything after the opener as the body.
		return rest, true
	}
	return rest[:end], true
}

func isLangTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// balancedObject scans s for the first balanced {...} span, respecting JSON string
// literals and backslash escapes.
func balancedObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
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
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
