package dfa

import (
	"errors"
	"fmt"

	"github.com/lexforge/microdfa/automaton"
)

// ErrInvalidState is the sentinel wrapped by invariant violations: subset
// construction and minimization never return it as an error value, they
// panic with it, since a bad state id at this layer is a programmer bug
// rather than a user-facing condition.
var ErrInvalidState = errors.New("dfa: invalid state id")

// invariant panics with ErrInvalidState if id does not index a state of
// d. Internal helper for guarding reachable-but-impossible states with a
// panic rather than a recoverable error.
func (d *DFA) invariant(id automaton.StateID) {
	if int(id) < 0 || int(id) >= len(d.states) {
		panic(fmt.Errorf("%w: %d (have %d states)", ErrInvalidState, id, len(d.states)))
	}
}
