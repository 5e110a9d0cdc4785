// Package index persists marker facts: durable records that a given
// contribution exists, written so that later, independent builds of a
// downstream application can rediscover contributions from libraries that
// were compiled long before. A fact is minimal on purpose (a qualified name
// in a namespace); everything else is re-derived from the declarations
// themselves.
//
// The filesystem store writes one TOML file per fact under
// <root>/<namespace>/. Readers take the union of every fact file present,
// regardless of which build wrote it. Writes are idempotent: re-recording a
// visible fact is a no-op, never a duplicate.
package index
