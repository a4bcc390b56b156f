package nfa

import (
	"errors"
	"fmt"

	"github.com/lexforge/microdfa/automaton"
)

// ErrInvalidState is the sentinel wrapped by InvalidStateError. Builder
// methods that take a StateID (SetStart, SetAccept, AddTransition,
// Transitions) panic with an *InvalidStateError when given an id outside
// [0, NumStates) — a state id that didn't come from this Builder's own
// AddState is a caller bug, not a recoverable runtime condition.
var ErrInvalidState = errors.New("nfa: invalid state id")

// InvalidStateError wraps ErrInvalidState with the offending id for
// diagnostics.
type InvalidStateError struct {
	ID automaton.StateID
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("nfa: invalid state id %d", e.ID)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
