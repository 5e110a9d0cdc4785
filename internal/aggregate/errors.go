package aggregate

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/modweld/internal/decl"
)

// DuplicateRoleError reports that more than one application-role
// declaration was observed over the course of a run.
type DuplicateRoleError struct {
	Role  decl.Role
	Names []string
}

func (e *DuplicateRoleError) Error() string {
	return fmt.Sprintf("exactly one '%s' declaration is allowed per build, found %d: %s",
		e.Role, len(e.Names), strings.Join(e.Names, ", "))
}

// ConformanceError reports a declaration that does not extend the contract
// its role requires.
type ConformanceError struct {
	Name    string
	File    string
	Extends string
	Want    string
}

func (e *ConformanceError) Error() string {
	return fmt.Sprintf("declaration '%s' (%s) must extend %q, declares %q",
		e.Name, e.File, e.Want, e.Extends)
}

// ConflictingContributionError reports two extension declarations whose
// method contributions collide on the same generated entry point: either an
// identical signature or two names that export to the same Go identifier.
type ConflictingContributionError struct {
	// Prior is the signature of the method merged first.
	Prior string
	// Signature is the signature of the colliding contribution.
	Signature string
	First     string
	Second    string
}

func (e *ConflictingContributionError) Error() string {
	if e.Prior == "" || e.Prior == e.Signature {
		return fmt.Sprintf("method '%s' is contributed by both '%s' and '%s'; overriding an extension method is ambiguous",
			e.Signature, e.First, e.Second)
	}
	return fmt.Sprintf("method '%s' from '%s' and method '%s' from '%s' would generate the same entry point; method overloading is not supported",
		e.Prior, e.First, e.Signature, e.Second)
}

// ProtocolViolationError reports discovery activity after the composition
// artifact has been written. The contract with the host is that no further
// generation happens once finalization is done.
type ProtocolViolationError struct {
	Activity string
}

func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("cannot process %s after the composition artifact has been written", e.Activity)
}
