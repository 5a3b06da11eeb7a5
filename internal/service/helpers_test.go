package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tracker-tv/docs-governance-bots/internal/policy"
)

// writeTree creates files below root. Keys ending in "/" create directories.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if name[len(name)-1] == '/' {
			require.NoError(t, os.MkdirAll(p, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

func defaultRules(t *testing.T) *policy.Rules {
	t.Helper()
	rules, err := policy.Default()
	require.NoError(t, err)
	return rules
}
