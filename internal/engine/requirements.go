package engine

import "strings"

// ParseRequirements tokenizes a free-text requirement cell. Tokens are
// separated by commas, semicolons, or the word "and". Empty cells and the
// "N/A" placeholder yield no tokens. The parser does not check that tokens
// are real course codes; callers filter standing phrases themselves.
func ParseRequirements(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "n/a") {
		return nil
	}

	normalized := strings.ReplaceAll(raw, ";", ",")
	normalized = strings.ReplaceAll(normalized, " and ", ",")

	var tokens []string
	for _, part := range strings.Split(normalized, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// IsStandingPhrase reports whether a requirement token is a standing phrase
// ("Junior standing") rather than a course code.
func IsStandingPhrase(token string) bool {
	return strings.Contains(strings.ToLower(token), "standing")
}
