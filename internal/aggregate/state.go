package aggregate

import "github.com/specialistvlad/modweld/internal/decl"

// State is the orchestration state shared by the aggregators and the round
// driver. It lives for exactly one build invocation and is mutated only by
// the single active pass.
type State struct {
	// FinalizationDone is set once the composition artifact has been
	// written. Any discovery activity afterwards is a protocol violation.
	FinalizationDone bool

	// Merged accumulates every extension method contribution seen across
	// all passes of the run.
	Merged *MergedAPI

	// Apps holds every application-role declaration seen so far. More than
	// one is a fatal configuration error.
	Apps []*decl.Module

	// indexed tracks library names already recorded during this run, so a
	// declaration rediscovered in a later pass is not re-emitted.
	indexed map[string]struct{}
}

// NewState creates a fresh run-scoped state.
func NewState() *State {
	return &State{
		Merged:  NewMergedAPI(),
		indexed: make(map[string]struct{}),
	}
}

// markIndexed records that a fact for the name was written this run.
func (s *State) markIndexed(name string) {
	s.indexed[name] = struct{}{}
}

// alreadyIndexed reports whether a fact for the name was written this run.
func (s *State) alreadyIndexed(name string) bool {
	_, ok := s.indexed[name]
	return ok
}
