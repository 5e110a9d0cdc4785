package decl

import "context"

// Loader is the interface for a format-specific declaration loader. It is
// the injection point that keeps the aggregation core testable without a
// real manifest format on disk.
type Loader interface {
	// Load reads every declaration visible under the given paths and
	// translates them into one format-agnostic pass.
	Load(ctx context.Context, paths ...string) (*Pass, error)
}
