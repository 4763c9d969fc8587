package domain

import (
	"regexp"
	"strings"
)

var nonAlphanumericRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a title: lower-case, every
// run of non-alphanumeric characters collapsed to a single hyphen, no
// leading or trailing hyphen. Pure and idempotent; slugify(slugify(t))
// equals slugify(t) for any title.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonAlphanumericRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
