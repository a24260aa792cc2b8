package vault

import (
	"fmt"
	"regexp"
)

// Accepted platform URL shapes for saved videos.
var (
	instagramPattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:instagram\.com|instagr\.am)/(?:p|reel)/([A-Za-z0-9_-]+)`)
	youtubePattern   = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com/shorts/|youtu\.be/)([A-Za-z0-9_-]+)`)
)

// ValidateURL checks that a URL points at an Instagram reel/post or a
// YouTube short.
func ValidateURL(url string) error {
	if instagramPattern.MatchString(url) || youtubePattern.MatchString(url) {
		return nil
	}
	return fmt.Errorf("not a recognized Instagram Reel or YouTube Shorts URL: %q", url)
}

// EmbedURL derives the embeddable player URL for a saved video link.
// Returns an empty string when the video id cannot be extracted.
func EmbedURL(url string) string {
	if m := instagramPattern.FindStringSubmatch(url); m != nil {
		return fmt.Sprintf("https://www.instagram.com/p/%s/embed/", m[1])
	}
	if m := youtubePattern.FindStringSubmatch(url); m != nil {
		return fmt.Sprintf("https://www.youtube.com/embed/%s", m[1])
	}
	return ""
}
