package reconcile

import (
	"fmt"
	"strings"
)

// SideBySide renders two lists as aligned columns, padded with blanks to the
// length of the longer list, so a mismatched pair of rosters or task sets can
// be scanned visually. The left column is right-justified to its widest
// entry.
func SideBySide(left, right []string, titleLeft, titleRight string) string {
	width := len(titleLeft)
	for _, item := range left {
		if len(item) > width {
			width = len(item)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%*s  %s", width, titleLeft, titleRight)
	fmt.Fprintf(&b, "\n%*s  %s", width, strings.Repeat("-", len(titleLeft)), strings.Repeat("-", len(titleRight)))

	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		fmt.Fprintf(&b, "\n%*s  %s", width, l, r)
	}
	return b.String()
}
