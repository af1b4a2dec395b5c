package utils

import (
	"regexp"
	"strings"
)

var (
	usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)
	slugRe     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

	// word separators replaced with dashes
	wordSeparatorRe = regexp.MustCompile(`[\s/]+`)
	// anything that is not allowed in a slug
	nonSlugCharRe = regexp.MustCompile(`[^a-z0-9_-]`)
	// collapse runs of dashes
	multipleDashRe = regexp.MustCompile(`-+`)
)

// Slugify derives a URL slug from a display name. Used when a category or
// genre is created without an explicit slug.
//
//	"Science Fiction" → "science-fiction"
//	"  Rock & Roll "  → "rock-roll"
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = wordSeparatorRe.ReplaceAllString(s, "-")
	s = nonSlugCharRe.ReplaceAllString(s, "")
	s = multipleDashRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if len(s) > 50 {
		s = strings.Trim(s[:50], "-")
	}
	return s
}
