package vault

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yml
var rulesYAML []byte

type suggestionRule struct {
	Keyword string   `yaml:"keyword"`
	Tags    []string `yaml:"tags"`
}

type moodRule struct {
	Mood     string   `yaml:"mood"`
	Keywords []string `yaml:"keywords"`
}

type ruleSet struct {
	Suggestions []suggestionRule `yaml:"suggestions"`
	Moods       []moodRule       `yaml:"moods"`
}

var (
	rulesOnce sync.Once
	rules     ruleSet
)

// loadRules parses the embedded rule tables. YAML sequences preserve
// document order, which the classifier's first-match semantics depend on.
func loadRules() ruleSet {
	rulesOnce.Do(func() {
		if err := yaml.Unmarshal(rulesYAML, &rules); err != nil {
			panic(fmt.Sprintf("invalid embedded rules.yml: %v", err))
		}
		for _, r := range rules.Moods {
			if _, err := ParseMood(r.Mood); err != nil {
				panic(fmt.Sprintf("invalid embedded rules.yml: %v", err))
			}
		}
	})
	return rules
}
