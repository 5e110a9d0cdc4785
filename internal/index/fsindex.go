package index

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/specialistvlad/modweld/internal/ctxlog"
	"github.com/specialistvlad/modweld/internal/fsutil"
)

// FSStore is the filesystem implementation of Store. Each fact lives in its
// own TOML file so that independent builds writing into a shared index
// directory never contend over a single artifact.
type FSStore struct {
	root string
}

// NewFSStore creates a store rooted at the given index directory. The
// directory is created lazily on first write.
func NewFSStore(root string) *FSStore {
	return &FSStore{root: root}
}

// WriteFact records a fact as <root>/<namespace>/<file>.toml. If the fact
// is already visible, the write is a no-op.
func (s *FSStore) WriteFact(ctx context.Context, namespace, name string) error {
	logger := ctxlog.FromContext(ctx)

	dir := filepath.Join(s.root, namespace)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create index namespace %s: %w", namespace, err)
	}

	path := filepath.Join(dir, factFileName(name))
	if existing, err := readFactFile(path); err == nil {
		if existing.Name != name {
			return fmt.Errorf("index fact file %s holds %q, refusing to overwrite with %q", path, existing.Name, name)
		}
		logger.Debug("Fact already indexed, skipping write.", "namespace", namespace, "name", name)
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read existing index fact %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(Fact{Name: name, Kind: namespace}); err != nil {
		return fmt.Errorf("failed to encode index fact %q: %w", name, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write index fact %q: %w", name, err)
	}

	logger.Debug("Index fact written.", "namespace", namespace, "name", name, "file", path)
	return nil
}

// Facts returns the sorted union of every fact file in the namespace. A
// missing namespace directory yields an empty set, not an error.
func (s *FSStore) Facts(ctx context.Context, namespace string) ([]string, error) {
	dir := filepath.Join(s.root, namespace)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	filePaths, err := fsutil.FindFilesByExtension(dir, ".toml")
	if err != nil {
		return nil, fmt.Errorf("failed to walk index namespace %s: %w", namespace, err)
	}

	seen := make(map[string]struct{}, len(filePaths))
	for _, path := range filePaths {
		fact, err := readFactFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read index fact %s: %w", path, err)
		}
		if fact.Name == "" {
			return nil, fmt.Errorf("index fact %s is missing a name", path)
		}
		seen[fact.Name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func readFactFile(path string) (*Fact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fact Fact
	if err := toml.Unmarshal(data, &fact); err != nil {
		return nil, err
	}
	return &fact, nil
}

// factFileName derives a stable file name from a fact name. The readable
// prefix is for humans; the FNV suffix keeps distinct names from colliding
// after sanitization.
func factFileName(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)

	h := fnv.New32a()
	h.Write([]byte(name))
	return fmt.Sprintf("%s-%08x.toml", sanitized, h.Sum32())
}
