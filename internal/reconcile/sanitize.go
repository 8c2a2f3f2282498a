package reconcile

import "strings"

// zeroWidthSpace shows up in task and student names exported by the practice
// platform and breaks exact-match lookups if left in place.
const zeroWidthSpace = "\u200b"

// Sanitize strips zero-width spaces and surrounding whitespace.
func Sanitize(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, zeroWidthSpace, ""))
}

// sanitizeFold sanitizes and lowercases, for case-insensitive comparisons
// such as section classification.
func sanitizeFold(s string) string {
	return strings.ToLower(Sanitize(s))
}
