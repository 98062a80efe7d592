package utils

import "strings"

// CleanJSONResponse strips markdown fences and surrounding prose from a raw
// model reply, leaving the widest balanced JSON object or array it contains.
// The input is returned trimmed but otherwise untouched when no JSON span is
// found; callers decide whether the remainder parses.
func CleanJSONResponse(response string) string {
	// Remove markdown code blocks
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")

	// Remove common prefixes that LLMs might add
	prefixes := []string{
		"Here's the travel plan:",
		"Here is the itinerary:",
		"Here is your itinerary:",
		"The travel plan is:",
		"Travel plan:",
		"Itinerary:",
	}

	response = strings.TrimSpace(response)
	for _, prefix := range prefixes {
		if strings.HasPrefix(response, prefix) {
			response = strings.TrimPrefix(response, prefix)
			break
		}
	}
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if objEnd := findMatchingBrace(response, objStart); objEnd != -1 {
			response = response[objStart : objEnd+1]
		}
	} else if arrStart != -1 {
		if arrEnd := findMatchingBracket(response, arrStart); arrEnd != -1 {
			response = response[arrStart : arrEnd+1]
		}
	}

	return strings.TrimSpace(response)
}

// findMatchingBrace finds the matching closing brace for an opening brace,
// skipping braces inside JSON string literals.
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}

		if char == '\\' && inString {
			escaped = true
			continue
		}

		if char == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// findMatchingBracket is the array counterpart of findMatchingBrace.
func findMatchingBracket(s string, start int) int {
	if start >= len(s) || s[start] != '[' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}

		if char == '\\' && inString {
			escaped = true
			continue
		}

		if char == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch char {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
