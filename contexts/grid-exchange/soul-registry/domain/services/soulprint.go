package services

import (
	"regexp"
	"strings"
)

// Slugs are lowercase kebab-case; they appear verbatim in URLs and bus
// envelopes, so the alphabet stays narrow.
var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

const minSlugLength = 2

func ValidSlug(slug string) bool {
	return len(slug) >= minSlugLength && slugPattern.MatchString(slug)
}

func ValidDisplayName(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}
