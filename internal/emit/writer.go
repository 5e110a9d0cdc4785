package emit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/specialistvlad/modweld/internal/ctxlog"
)

// Writer is the sink for generated artifacts.
type Writer interface {
	// WriteArtifact stores one named artifact, replacing any previous
	// artifact of the same name.
	WriteArtifact(ctx context.Context, name string, data []byte) error
}

// FSWriter writes artifacts into a single output directory.
type FSWriter struct {
	dir string
}

// NewFSWriter creates a writer rooted at the given output directory. The
// directory is created lazily on first write.
func NewFSWriter(dir string) *FSWriter {
	return &FSWriter{dir: dir}
}

// WriteArtifact writes the artifact to <dir>/<name>.
func (w *FSWriter) WriteArtifact(ctx context.Context, name string, data []byte) error {
	logger := ctxlog.FromContext(ctx)

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", w.dir, err)
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write artifact %s: %w", name, err)
	}

	logger.Info("Artifact written.", "file", path, "bytes", len(data))
	return nil
}

// MemWriter captures artifacts in memory for tests.
type MemWriter struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMemWriter creates an empty in-memory artifact writer.
func NewMemWriter() *MemWriter {
	return &MemWriter{files: make(map[string][]byte)}
}

// WriteArtifact stores the artifact in memory.
func (w *MemWriter) WriteArtifact(ctx context.Context, name string, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[name] = data
	return nil
}

// Artifact returns the stored artifact content, if any.
func (w *MemWriter) Artifact(name string) ([]byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	data, ok := w.files[name]
	return data, ok
}

// Names returns the names of every stored artifact.
func (w *MemWriter) Names() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	names := make([]string, 0, len(w.files))
	for name := range w.files {
		names = append(names, name)
	}
	return names
}
