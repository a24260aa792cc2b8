package vault

import (
	"regexp"
	"sort"
	"strings"
)

// RecentlyViewedLimit caps the recently-viewed shelf.
const RecentlyViewedLimit = 3

// Collection is the explicit, owned view over one user's full item list.
// All derived data (filtered views, stats, facets) is recomputed from the
// list it was constructed with; mutations happen in the store, after which
// a fresh Collection is built.
type Collection struct {
	items []Item
}

func NewCollection(items []Item) *Collection {
	return &Collection{items: items}
}

// Items returns the unfiltered list in its original order.
func (c *Collection) Items() []Item {
	return c.items
}

// Filter returns the items passing both the text filter and the mood
// filter. An empty or whitespace-only search term passes every item;
// otherwise the term must occur case-insensitively in the description,
// any tag, or the notes. An empty mood passes every item; otherwise the
// item's mood must match exactly. Both conditions must hold.
func (c *Collection) Filter(searchTerm string, mood Mood) []Item {
	filtered := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		if !matchesSearch(item, searchTerm) {
			continue
		}
		if mood != "" && item.Mood != mood {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func matchesSearch(item Item, searchTerm string) bool {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), term) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(item.Notes), term)
}

// Stats aggregates over the unfiltered collection.
type Stats struct {
	Total      int `json:"total"`
	Liked      int `json:"liked"`
	TotalViews int `json:"total_views"`
}

func (c *Collection) Stats() Stats {
	stats := Stats{Total: len(c.items)}
	for _, item := range c.items {
		if item.IsLiked {
			stats.Liked++
		}
		stats.TotalViews += item.ViewCount
	}
	return stats
}

// MoodFacet is a mood label with its item count over the unfiltered
// collection.
type MoodFacet struct {
	Mood  Mood `json:"mood"`
	Count int  `json:"count"`
}

// MoodFacets returns per-mood counts in enum order, omitting moods no
// item currently carries.
func (c *Collection) MoodFacets() []MoodFacet {
	counts := make(map[Mood]int)
	for _, item := range c.items {
		counts[item.Mood]++
	}

	facets := make([]MoodFacet, 0, len(counts))
	for _, mood := range Moods() {
		if counts[mood] > 0 {
			facets = append(facets, MoodFacet{Mood: mood, Count: counts[mood]})
		}
	}
	return facets
}

// RecentlyViewed returns the items with a recorded view, most recent
// first, truncated to RecentlyViewedLimit.
func (c *Collection) RecentlyViewed() []Item {
	viewed := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		if item.LastViewed != nil {
			viewed = append(viewed, item)
		}
	}

	sort.SliceStable(viewed, func(i, j int) bool {
		return viewed[i].LastViewed.After(*viewed[j].LastViewed)
	})

	if len(viewed) > RecentlyViewedLimit {
		viewed = viewed[:RecentlyViewedLimit]
	}
	return viewed
}

// Highlight wraps every case-insensitive occurrence of term in
// <mark></mark>, preserving the original casing of the surrounding text
// and of the match itself. Matching runs over the intact text so that
// case mappings that change byte length (İ, Ⱥ) cannot skew offsets.
func Highlight(text, term string) string {
	needle := strings.TrimSpace(term)
	if needle == "" {
		return text
	}

	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(needle))
	return re.ReplaceAllString(text, "<mark>${0}</mark>")
}
