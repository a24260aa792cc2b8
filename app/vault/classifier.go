package vault

import (
	"strings"
)

// DetectMood classifies an item from its description and current tags.
// The description and space-joined tags are combined and lower-cased,
// then matched against the mood rules in table order; the first mood
// with any keyword occurring as a substring wins. DefaultMood is
// returned when nothing matches.
func DetectMood(description string, tags []string) Mood {
	text := strings.ToLower(description + " " + strings.Join(tags, " "))

	for _, rule := range loadRules().Moods {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, keyword) {
				// Labels are validated against the enum at load time
				mood, _ := ParseMood(rule.Mood)
				return mood
			}
		}
	}

	return DefaultMood
}
