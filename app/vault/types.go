package vault

import (
	"fmt"
	"time"
)

// Mood is one label from the closed set classifying an item's content
// category. The zero value is not a valid mood.
type Mood string

const (
	MoodFunny        Mood = "Funny"
	MoodMotivational Mood = "Motivational"
	MoodEducational  Mood = "Educational"
	MoodCalm         Mood = "Calm"
	MoodEmotional    Mood = "Emotional"
	MoodCreative     Mood = "Creative"
	MoodEnergetic    Mood = "Energetic"
)

// DefaultMood is returned by the classifier when no keyword matches.
// Creative doubles as a real category and the fallback, matching the
// behavior the collection was built up with.
const DefaultMood = MoodCreative

// Moods returns all mood labels in classification order. The order is
// load-bearing: the classifier returns the first matching label.
func Moods() []Mood {
	return []Mood{
		MoodFunny,
		MoodMotivational,
		MoodEducational,
		MoodCalm,
		MoodEmotional,
		MoodCreative,
		MoodEnergetic,
	}
}

// ParseMood validates a mood label received from outside (API query
// parameters, stored rows).
func ParseMood(s string) (Mood, error) {
	for _, m := range Moods() {
		if s == string(m) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mood: %q", s)
}

// Emoji returns the badge emoji shown next to a mood label.
func (m Mood) Emoji() string {
	switch m {
	case MoodFunny:
		return "😂"
	case MoodMotivational:
		return "💪"
	case MoodEducational:
		return "📚"
	case MoodCalm:
		return "🧘"
	case MoodEmotional:
		return "💖"
	case MoodCreative:
		return "🎨"
	case MoodEnergetic:
		return "⚡"
	default:
		return "🎬"
	}
}

// Color returns the accent color associated with a mood label.
func (m Mood) Color() string {
	switch m {
	case MoodFunny:
		return "yellow"
	case MoodMotivational:
		return "orange"
	case MoodEducational:
		return "blue"
	case MoodCalm:
		return "green"
	case MoodEmotional:
		return "pink"
	case MoodCreative:
		return "purple"
	case MoodEnergetic:
		return "red"
	default:
		return "gray"
	}
}

// Item is a single saved short-form video entry with its metadata.
type Item struct {
	ID          string
	UserID      string
	URL         string
	Description string
	Tags        []string
	Mood        Mood
	Notes       string
	IsPublic    bool
	IsLiked     bool
	ViewCount   int
	LastViewed  *time.Time
	DateSaved   time.Time
}
