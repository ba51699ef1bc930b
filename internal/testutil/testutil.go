// Package testutil provides shared test helpers for creating config files
// and history fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file pointing every path at the
// temp directory. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	exportDir := filepath.Join(tmpDir, "exports")
	require.NoError(t, os.MkdirAll(exportDir, 0755))

	configContent := fmt.Sprintf(`files:
  history_file: %s
  audit_log: %s
exports:
  directory: %s
mood:
  classifier: keyword
`,
		filepath.Join(tmpDir, "learnflow.json"),
		filepath.Join(tmpDir, "learnflow.log"),
		exportDir,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteHistoryFile writes raw JSON history content into the temp directory's
// history file location used by SetupTestConfig.
func WriteHistoryFile(t *testing.T, tmpDir, content string) string {
	t.Helper()

	path := filepath.Join(tmpDir, "learnflow.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
