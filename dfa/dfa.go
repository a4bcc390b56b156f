// Package dfa is the automaton produced by subset construction
// (dfa/subset) and consumed by minimization (dfa/minimize): a
// deterministic state graph with at most one target per symbol and no
// epsilon transitions.
package dfa

import (
	"github.com/lexforge/microdfa/automaton"
	"github.com/lexforge/microdfa/internal/bitset"
)

// dfaState is one DFA state: at most one transition target per character,
// never epsilon.
type dfaState struct {
	trans map[rune]automaton.StateID
}

// DFA is a deterministic finite automaton over runes. Once returned from
// dfa/subset.Construct or dfa/minimize.Minimize it is never mutated;
// callers needing a different automaton build a new one.
type DFA struct {
	states   []dfaState
	start    automaton.StateID
	accept   bitset.Bitset
	alphabet *automaton.Alphabet
	pattern  string
}

// New returns an empty DFA of n states (all transition-less, all
// non-accepting) ranging over alphabet, with pattern retained verbatim
// for diagnostics.
func New(n int, start automaton.StateID, alphabet *automaton.Alphabet, pattern string) *DFA {
	states := make([]dfaState, n)
	for i := range states {
		states[i] = dfaState{trans: make(map[rune]automaton.StateID)}
	}
	return &DFA{
		states:   states,
		start:    start,
		accept:   bitset.New(n),
		alphabet: alphabet,
		pattern:  pattern,
	}
}

// NumStates returns the number of states, identified 0..NumStates()-1.
func (d *DFA) NumStates() int { return len(d.states) }

// Start returns the start state id.
func (d *DFA) Start() automaton.StateID { return d.start }

// Alphabet returns the characters appearing on some transition.
func (d *DFA) Alphabet() *automaton.Alphabet { return d.alphabet }

// Pattern returns the originating pattern text.
func (d *DFA) Pattern() string { return d.pattern }

// IsAccept reports whether id is an accepting state.
func (d *DFA) IsAccept(id automaton.StateID) bool {
	d.invariant(id)
	return d.accept.Test(int(id))
}

// SetAccept marks id as accepting or not. Exported for dfa/subset and
// dfa/minimize, the only callers expected to mutate a DFA under
// construction; once returned to the rest of the pipeline a DFA is
// treated as immutable.
func (d *DFA) SetAccept(id automaton.StateID, accept bool) {
	d.invariant(id)
	if accept {
		d.accept.Set(int(id))
	} else {
		d.accept.Clear(int(id))
	}
}

// AcceptSet returns the accepting states as a bitset.
func (d *DFA) AcceptSet() bitset.Bitset {
	return d.accept
}

// AddTransition sets the transition from -> c -> to, overwriting any
// existing target for c out of from (a DFA has at most one target per
// symbol).
func (d *DFA) AddTransition(from automaton.StateID, c rune, to automaton.StateID) {
	d.invariant(from)
	d.invariant(to)
	d.states[from].trans[c] = to
}

// Transition returns the target of from on c, or (InvalidState, false) if
// none exists.
func (d *DFA) Transition(from automaton.StateID, c rune) (automaton.StateID, bool) {
	d.invariant(from)
	to, ok := d.states[from].trans[c]
	if !ok {
		return automaton.InvalidState, false
	}
	return to, true
}

// Accepts simulates d against s, consuming one rune per step from the
// current state's transition table.
func (d *DFA) Accepts(s string) bool {
	cur := d.start
	for _, c := range s {
		next, ok := d.Transition(cur, c)
		if !ok {
			return false
		}
		cur = next
	}
	return d.IsAccept(cur)
}
