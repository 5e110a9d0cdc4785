// Package hcl implements the decl.Loader interface for HCL contribution
// manifests. It parses manifest files with hclparse, decodes them against
// the block schemas in the schema package, and translates the result into
// the format-agnostic decl model consumed by the aggregation core.
package hcl
