package policy

import (
	"regexp"
	"slices"
)

// Rows look like "| [guides/](guides/) | ... |".
var categoryRow = regexp.MustCompile(`\|\s*\[([a-z_]+)/\]\(([a-z_]+)/\)\s*\|`)

// ExtractCategories returns the sorted, de-duplicated category tokens linked
// from the governance index table. Rows that do not match are ignored.
func ExtractCategories(content string) []string {
	var categories []string
	for _, m := range categoryRow.FindAllStringSubmatch(content, -1) {
		categories = append(categories, m[1])
	}
	slices.Sort(categories)
	return slices.Compact(categories)
}
