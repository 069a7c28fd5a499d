// Package textparse reduces free-text model output to structured values.
package textparse

import (
	"regexp"
	"strings"
)

// listMarker matches a leading bullet ('-', '*', '•') or a number with an
// optional '.', ')' or ':' delimiter, plus any whitespace that follows.
var listMarker = regexp.MustCompile(`^(?:[-*•]|\d+[.):]?)\s*`)

// ParseList extracts list items from unstructured model output, in input
// order. A line counts as an item when its first non-space character is a
// bullet or a digit; the marker is stripped and the remainder kept if
// non-empty. Lines without a recognized marker are silently dropped, so a
// model response with no list at all yields an empty result, not an error.
func ParseList(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		marker := listMarker.FindString(line)
		if marker == "" {
			continue
		}
		item := strings.TrimSpace(line[len(marker):])
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
