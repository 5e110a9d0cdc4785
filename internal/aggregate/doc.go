// Package aggregate implements the discovery-and-merge core: the library
// aggregator that records index facts, the extension aggregator that folds
// method contributions into one merged API, and the application finalizer
// that emits the composition artifact once discovery has settled.
//
// All three share one run-scoped State. Every fatal condition surfaces as a
// typed error from this package and aborts the build; nothing is downgraded
// to a warning, and artifacts for a role are only written after every
// declaration of that role in the pass has been validated.
package aggregate
