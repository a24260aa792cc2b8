package vault

import (
	"strings"
)

// MaxSuggestions caps the number of tags proposed for a description.
const MaxSuggestions = 5

// SuggestTags proposes tags for a free-text description by scanning the
// fixed keyword table. Every rule whose keyword occurs anywhere in the
// lower-cased text contributes its tags; the result is deduplicated in
// first-seen order and truncated to MaxSuggestions.
func SuggestTags(description string) []string {
	text := strings.ToLower(description)

	suggested := []string{}
	seen := make(map[string]bool)

	for _, rule := range loadRules().Suggestions {
		if !strings.Contains(text, rule.Keyword) {
			continue
		}
		for _, tag := range rule.Tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			suggested = append(suggested, tag)
		}
	}

	if len(suggested) > MaxSuggestions {
		suggested = suggested[:MaxSuggestions]
	}

	return suggested
}
