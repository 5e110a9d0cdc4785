package index

import "context"

// NamespaceModules is the namespace holding library contribution facts.
const NamespaceModules = "modules"

// Fact is the persisted record format. Kind is informational; identity is
// the name within its namespace.
type Fact struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"`
}

// Store is the interface for a marker fact index.
type Store interface {
	// WriteFact durably records that a contribution with the given name
	// exists. Writing a fact identical to one already visible is a no-op.
	WriteFact(ctx context.Context, namespace, name string) error

	// Facts returns every fact name visible in the namespace, including
	// facts written by earlier independent builds, sorted lexicographically.
	Facts(ctx context.Context, namespace string) ([]string, error)
}
