package formatter

import (
	"slices"

	"github.com/tracker-tv/docs-governance-bots/internal/policy"
)

// Registry returns every formatter keyed by its command name.
func Registry(rules *policy.Rules) map[string]Formatter {
	all := []Formatter{
		NewAccuracyFormatter(rules),
		NewTrivyFormatter(),
		NewDependenciesFormatter(),
		NewDependencyCheckFormatter(),
		NewSASTFormatter(),
		NewSecretsFormatter(),
		NewDASTFormatter(),
		NewComplexityFormatter(),
	}

	m := make(map[string]Formatter, len(all))
	for _, f := range all {
		m[f.Name()] = f
	}
	return m
}

func Names(registry map[string]Formatter) []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
