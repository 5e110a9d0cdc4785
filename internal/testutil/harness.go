// Package testutil provides the shared harness for integration tests: it
// materializes manifest passes on disk, runs the generator end to end, and
// exposes the artifacts it produced.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/modweld/internal/app"
	"github.com/specialistvlad/modweld/internal/hcl"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Harness owns the temporary directories of one generator scenario. The
// index directory survives across Run calls, so a test can simulate an
// upstream library build followed by an independent application build.
type Harness struct {
	t        *testing.T
	tmpDir   string
	IndexDir string
	OutDir   string

	passCount int
}

// NewHarness creates a scenario rooted in a fresh temporary directory.
func NewHarness(t *testing.T) *Harness {
	t.Helper()
	tmpDir := t.TempDir()
	return &Harness{
		t:        t,
		tmpDir:   tmpDir,
		IndexDir: filepath.Join(tmpDir, "index"),
		OutDir:   filepath.Join(tmpDir, "out"),
	}
}

// WritePass materializes one pass worth of manifest files (relative name to
// content) and returns the pass directory.
func (h *Harness) WritePass(files map[string]string) string {
	h.t.Helper()
	h.passCount++
	passDir := filepath.Join(h.tmpDir, fmt.Sprintf("pass%d", h.passCount))

	for name, content := range files {
		filePath := filepath.Join(passDir, name)
		require.NoError(h.t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(h.t, os.WriteFile(filePath, []byte(content), 0o644))
	}
	return passDir
}

// HarnessResult holds the outcomes of one generator run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
}

// Run executes the generator over the given pass paths, sharing the
// harness's index and output directories.
func (h *Harness) Run(passPaths ...string) *HarnessResult {
	h.t.Helper()

	cfg, err := app.NewConfig(app.Config{
		PassPaths: passPaths,
		IndexDir:  h.IndexDir,
		OutDir:    h.OutDir,
		LogLevel:  "debug",
		LogFormat: "text",
	})
	require.NoError(h.t, err)

	logBuffer := &SafeBuffer{}
	testApp := app.NewApp(logBuffer, cfg, hcl.NewLoader())
	runErr := testApp.Run(context.Background())

	if os.Getenv("MODWELD_TEST_LOGS") == "true" {
		h.t.Logf("--- Full Log Output for %s ---\n%s", h.t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}

// Artifact reads a generated artifact from the output directory.
func (h *Harness) Artifact(name string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(h.OutDir, name))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// ArtifactNames lists the generated artifacts present in the output
// directory.
func (h *Harness) ArtifactNames() []string {
	entries, err := os.ReadDir(h.OutDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
