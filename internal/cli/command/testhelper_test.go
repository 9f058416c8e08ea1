package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// smallConfig keeps runs fast and logs quiet.
const smallConfig = `log:
  level: error
  format: text
bench:
  sizes: [2]
  rounds: 2
  contenders: [vecmap, gomap]
  seed: 3
  value_kind: static
output:
  format: table
`

// writeConfig writes content to a YAML file in a temp dir.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vecmap.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// runApp runs the application with args and captures both streams.
func runApp(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := App()
	app.Writer = &out
	app.ErrWriter = &errOut

	err = app.Run(append([]string{"vecmap-bench"}, args...))
	return out.String(), errOut.String(), err
}
