package vault

import (
	"testing"
)

func TestDetectMood_DefaultFallback(t *testing.T) {
	if mood := DetectMood("", nil); mood != MoodCreative {
		t.Errorf("Expected default mood %s, got %s", MoodCreative, mood)
	}
	if mood := DetectMood("bridge maintenance video", []string{}); mood != MoodCreative {
		t.Errorf("Expected default mood %s for unmatched text, got %s", MoodCreative, mood)
	}
}

func TestDetectMood_DescriptionKeywords(t *testing.T) {
	tests := []struct {
		description string
		expected    Mood
	}{
		{"this made me laugh so hard", MoodFunny},
		{"hilarious meme compilation", MoodFunny},
		{"chase your dream", MoodMotivational},
		{"how to fold a shirt", MoodEducational},
		{"guide to sourdough", MoodEducational},
		{"deep meditation session", MoodCalm},
		{"quiet morning by the lake", MoodCalm},
		{"a touching reunion", MoodEmotional},
		{"watercolor paint demo", MoodCreative},
		{"full body workout pump", MoodEnergetic},
	}

	for _, test := range tests {
		mood := DetectMood(test.description, nil)
		if mood != test.expected {
			t.Errorf("DetectMood(%q): expected %s, got %s", test.description, test.expected, mood)
		}
	}
}

func TestDetectMood_TagsParticipate(t *testing.T) {
	// No description keywords, mood comes from the tag list
	mood := DetectMood("untitled clip", []string{"fitness"})
	if mood != MoodEnergetic {
		t.Errorf("Expected %s from tags, got %s", MoodEnergetic, mood)
	}
}

func TestDetectMood_FirstMatchWins(t *testing.T) {
	// Crafted strings matching two categories at once; the category
	// earlier in the table must win.
	tests := []struct {
		name        string
		description string
		expected    Mood
	}{
		// Educational ("tutorial", "how to") is checked before Calm ("calm", "relax")
		{"educational before calm", "a calm tutorial on how to relax", MoodEducational},
		// Funny ("joke") before Motivational ("success")
		{"funny before motivational", "a joke about success", MoodFunny},
		// Motivational ("goal") before Energetic ("sport")
		{"motivational before energetic", "sport goal highlights", MoodMotivational},
		// Calm ("nature") before Creative ("art")
		{"calm before creative", "nature art installation", MoodCalm},
		// Emotional ("love") before Creative ("music")
		{"emotional before creative", "music i love", MoodEmotional},
		// Creative ("music") before Energetic ("dance")
		{"creative before energetic", "dance music mix", MoodCreative},
	}

	for _, test := range tests {
		mood := DetectMood(test.description, nil)
		if mood != test.expected {
			t.Errorf("%s: DetectMood(%q): expected %s, got %s", test.name, test.description, test.expected, mood)
		}
	}
}

func TestDetectMood_CaseInsensitive(t *testing.T) {
	if mood := DetectMood("HILARIOUS Clip", nil); mood != MoodFunny {
		t.Errorf("Expected %s, got %s", MoodFunny, mood)
	}
}

func TestMoods_ClassificationOrder(t *testing.T) {
	expected := []Mood{
		MoodFunny,
		MoodMotivational,
		MoodEducational,
		MoodCalm,
		MoodEmotional,
		MoodCreative,
		MoodEnergetic,
	}

	moods := Moods()
	if len(moods) != len(expected) {
		t.Fatalf("Expected %d moods, got %d", len(expected), len(moods))
	}
	for i, m := range expected {
		if moods[i] != m {
			t.Errorf("Position %d: expected %s, got %s", i, m, moods[i])
		}
	}

	// The rule table must mirror the enum order
	ruleMoods := loadRules().Moods
	if len(ruleMoods) != len(expected) {
		t.Fatalf("Expected %d mood rules, got %d", len(expected), len(ruleMoods))
	}
	for i, rule := range ruleMoods {
		if rule.Mood != string(expected[i]) {
			t.Errorf("Rule position %d: expected %s, got %s", i, expected[i], rule.Mood)
		}
	}
}

func TestParseMood(t *testing.T) {
	for _, m := range Moods() {
		parsed, err := ParseMood(string(m))
		if err != nil {
			t.Errorf("ParseMood(%q) returned error: %v", m, err)
		}
		if parsed != m {
			t.Errorf("ParseMood(%q): expected %s, got %s", m, m, parsed)
		}
	}

	if _, err := ParseMood("Sleepy"); err == nil {
		t.Error("Expected error for unknown mood label")
	}
	if _, err := ParseMood(""); err == nil {
		t.Error("Expected error for empty mood label")
	}
}

func TestMoodBadges_AllLabelsCovered(t *testing.T) {
	for _, m := range Moods() {
		if m.Emoji() == "🎬" {
			t.Errorf("Mood %s fell through to the default emoji", m)
		}
		if m.Color() == "gray" {
			t.Errorf("Mood %s fell through to the default color", m)
		}
	}
}
