package portal

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalidChars  = regexp.MustCompile(`[^a-z0-9-]+`)
	slugMultiHyphens  = regexp.MustCompile(`-{2,}`)
	slugSpaceReplacer = strings.NewReplacer(" ", "-", "_", "-")
)

// Slugify converts a title into a URL-safe slug: accents are stripped through
// unicode decomposition, the result is lowered, and anything outside
// [a-z0-9-] collapses into single hyphens.
func Slugify(title string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	flat, _, _ := transform.String(chain, strings.TrimSpace(title))

	flat = strings.ToLower(flat)
	flat = slugSpaceReplacer.Replace(flat)
	flat = slugInvalidChars.ReplaceAllString(flat, "")
	flat = slugMultiHyphens.ReplaceAllString(flat, "-")

	return strings.Trim(flat, "-")
}

// AllocateSlug returns the first collision-free slug for the given title.
// The exists predicate answers whether a candidate is already taken; probing
// appends an increasing numeric suffix and is bounded by the number of
// colliding slugs currently persisted. The function has no side effects,
// persisting the winner atomically is the caller's job.
func AllocateSlug(title string, exists func(candidate string) bool) string {
	base := Slugify(title)

	if !exists(base) {
		return base
	}

	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s-%d", base, counter)

		if !exists(candidate) {
			return candidate
		}
	}
}
