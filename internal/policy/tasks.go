package policy

import "regexp"

var taskDeclaration = regexp.MustCompile(`(?m)^  ([a-z][a-z0-9:_-]+):`)

// ParseTaskNames collects task keys declared at two-space indentation in a
// Taskfile. It does not interpret the YAML, so nested keys at the same depth
// under other top-level sections are collected too.
func ParseTaskNames(content string) map[string]struct{} {
	tasks := make(map[string]struct{})
	for _, m := range taskDeclaration.FindAllStringSubmatch(content, -1) {
		tasks[m[1]] = struct{}{}
	}
	return tasks
}
