// Package nfa defines the read/write contract for an epsilon-NFA.
//
// This package does not compile a syntax tree into an NFA — Thompson
// construction is explicitly out of scope. What it provides instead is
// the Automaton interface the subset constructor (dfa/subset) depends on,
// and a Builder that implements it, so tests and any future Thompson
// construction collaborator can populate an Automaton without coupling
// to a particular construction algorithm.
package nfa

import (
	"github.com/lexforge/microdfa/automaton"
	"github.com/lexforge/microdfa/internal/bitset"
)

// Automaton is the read-only surface the subset constructor consumes:
// state count, start state, acceptors, alphabet, per-state/per-symbol
// transition targets, and the originating pattern text.
type Automaton interface {
	// NumStates returns the number of states, which are identified
	// 0..NumStates()-1.
	NumStates() int
	// Start returns the start state id.
	Start() automaton.StateID
	// Accept returns a bitset over state ids, sized NumStates(), with bit
	// i set iff state i is accepting.
	Accept() bitset.Bitset
	// Alphabet returns the set of non-epsilon characters appearing on any
	// transition.
	Alphabet() *automaton.Alphabet
	// Transitions returns the (possibly empty, possibly multi-valued)
	// set of target states reachable from id on sym.
	Transitions(id automaton.StateID, sym automaton.Symbol) []automaton.StateID
	// Pattern returns the originating pattern text, retained for
	// diagnostics.
	Pattern() string
}

// transitionSet is a set of target state ids, keyed by id to reject
// duplicate insertion.
type transitionSet map[automaton.StateID]struct{}

// state is one NFA state record: a bag of outgoing transitions keyed by
// symbol, each mapping to a set of targets (nondeterministic, ε
// transitions allowed).
type state struct {
	out map[automaton.Symbol]transitionSet
}

// Builder is the write side of Automaton: AddState, AddTransition,
// SetAccept. It implements Automaton directly, so a fully populated
// Builder can be handed to the subset constructor without a separate
// freeze step.
type Builder struct {
	states   []state
	start    automaton.StateID
	accept   map[automaton.StateID]struct{}
	alphabet *automaton.Alphabet
	pattern  string
}

// NewBuilder returns an empty Builder for pattern, which is carried
// through to Pattern() for diagnostics only.
func NewBuilder(pattern string) *Builder {
	return &Builder{
		start:    automaton.InvalidState,
		accept:   make(map[automaton.StateID]struct{}),
		alphabet: automaton.NewAlphabet(),
		pattern:  pattern,
	}
}

// AddState appends a new, transition-less state and returns its id.
func (b *Builder) AddState() automaton.StateID {
	id := automaton.StateID(len(b.states))
	b.states = append(b.states, state{out: make(map[automaton.Symbol]transitionSet)})
	return id
}

// SetStart marks id as the start state. Panics with InvalidStateError if
// id was not returned by AddState on this Builder.
func (b *Builder) SetStart(id automaton.StateID) {
	b.checkState(id)
	b.start = id
}

// SetAccept marks id as accepting. Panics with InvalidStateError if id
// was not returned by AddState on this Builder.
func (b *Builder) SetAccept(id automaton.StateID) {
	b.checkState(id)
	b.accept[id] = struct{}{}
}

// AddTransition adds a transition from -> to labeled sym. Adding the same
// (from, sym, to) triple twice is a no-op, matching the set semantics of
// an NFA's transition mapping. Panics with InvalidStateError if from or
// to was not returned by AddState on this Builder.
func (b *Builder) AddTransition(from automaton.StateID, sym automaton.Symbol, to automaton.StateID) {
	b.checkState(from)
	b.checkState(to)
	targets := b.states[from].out[sym]
	if targets == nil {
		targets = make(transitionSet)
		b.states[from].out[sym] = targets
	}
	targets[to] = struct{}{}
	if c, ok := sym.Rune(); ok {
		b.alphabet.Add(c)
	}
}

// checkState panics with InvalidStateError if id does not index a state
// of b.
func (b *Builder) checkState(id automaton.StateID) {
	if int(id) < 0 || int(id) >= len(b.states) {
		panic(&InvalidStateError{ID: id})
	}
}

// NumStates implements Automaton.
func (b *Builder) NumStates() int { return len(b.states) }

// Start implements Automaton.
func (b *Builder) Start() automaton.StateID { return b.start }

// Accept implements Automaton.
func (b *Builder) Accept() bitset.Bitset {
	bs := bitset.New(len(b.states))
	for id := range b.accept {
		bs.Set(int(id))
	}
	return bs
}

// Alphabet implements Automaton.
func (b *Builder) Alphabet() *automaton.Alphabet { return b.alphabet }

// Transitions implements Automaton. Panics with InvalidStateError if id
// was not returned by AddState on this Builder.
func (b *Builder) Transitions(id automaton.StateID, sym automaton.Symbol) []automaton.StateID {
	b.checkState(id)
	targets := b.states[id].out[sym]
	if len(targets) == 0 {
		return nil
	}
	out := make([]automaton.StateID, 0, len(targets))
	for t := range targets {
		out = append(out, t)
	}
	return out
}

// Pattern implements Automaton.
func (b *Builder) Pattern() string { return b.pattern }
