package blog

import (
	"regexp"
	"strings"
)

const slugMaxLength = 50

var (
	slugPattern     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	nonSlugChars    = regexp.MustCompile(`[^a-z0-9\s_-]`)
	spaces          = regexp.MustCompile(`\s+`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// GenerateSlug makes a URL identifier from a title: "Not my day!" becomes "not-my-day".
// Characters outside ASCII letters, digits, hyphen and underscore are dropped.
func GenerateSlug(title string) string {
	result := strings.ToLower(strings.TrimSpace(title))
	result = nonSlugChars.ReplaceAllString(result, "")
	result = spaces.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	if len(result) > slugMaxLength {
		result = strings.TrimRight(result[:slugMaxLength], "-")
	}

	return result
}

// ValidSlug reports whether s may be used as a category slug.
func ValidSlug(s string) bool {
	return len(s) <= slugMaxLength && slugPattern.MatchString(s)
}
