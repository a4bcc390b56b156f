// Package subset implements subset construction: turning an epsilon-NFA
// into an equivalent DFA by treating sets of NFA states as single DFA
// states.
package subset

import (
	"github.com/projectdiscovery/gologger"

	"github.com/lexforge/microdfa/automaton"
	"github.com/lexforge/microdfa/dfa"
	"github.com/lexforge/microdfa/internal/bitset"
	"github.com/lexforge/microdfa/nfa"
)

// epsilonClosure returns the smallest superset of q closed under
// epsilon-transitions: every state in q is in its own closure, and every
// epsilon-reachable state is added until no more can be found.
func epsilonClosure(n nfa.Automaton, q bitset.Bitset) bitset.Bitset {
	closure := q.Clone()
	queue := q.Elements()
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, t := range n.Transitions(automaton.StateID(s), automaton.Epsilon) {
			if !closure.Test(int(t)) {
				closure.Set(int(t))
				queue = append(queue, int(t))
			}
		}
	}
	return closure
}

// delta is the symbol transition function: the union of every
// c-transition target reachable from any state in q.
func delta(n nfa.Automaton, q bitset.Bitset, c rune) bitset.Bitset {
	out := bitset.New(n.NumStates())
	for _, s := range q.Elements() {
		for _, t := range n.Transitions(automaton.StateID(s), automaton.Char(c)) {
			out.Set(int(t))
		}
	}
	return out
}

// Construct runs the subset-construction loop against n and returns an
// equivalent DFA. Alphabet characters are visited in ascending
// code-point order (Alphabet.Ordered) so that, for a fixed NFA, the
// resulting state numbering is reproducible across calls.
func Construct(n nfa.Automaton) *dfa.DFA {
	gologger.Debug().Msgf("subset: constructing DFA for pattern %q", n.Pattern())

	alphabet := n.Alphabet().Clone()
	ordered := alphabet.Ordered()
	nfaAccept := n.Accept()

	startSet := bitset.New(n.NumStates())
	startSet.Set(int(n.Start()))
	q0 := epsilonClosure(n, startSet)

	stateSets := make(map[string]automaton.StateID)
	var sets []bitset.Bitset
	var transitions []map[rune]automaton.StateID

	register := func(set bitset.Bitset) automaton.StateID {
		id := automaton.StateID(len(sets))
		stateSets[set.Key()] = id
		sets = append(sets, set)
		transitions = append(transitions, make(map[rune]automaton.StateID))
		return id
	}

	startID := register(q0)
	queue := []bitset.Bitset{q0}

	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		qID := stateSets[q.Key()]

		for _, c := range ordered {
			t := epsilonClosure(n, delta(n, q, c))
			if t.IsEmpty() {
				continue
			}
			tID, ok := stateSets[t.Key()]
			if !ok {
				tID = register(t)
				queue = append(queue, t)
				gologger.Verbose().Msgf("subset: discovered state %d (from %d on %q)", tID, qID, c)
			}
			transitions[qID][c] = tID
		}
	}

	d := dfa.New(len(sets), startID, alphabet, n.Pattern())
	for id, set := range sets {
		if set.Intersects(nfaAccept) {
			d.SetAccept(automaton.StateID(id), true)
		}
		for c, to := range transitions[id] {
			d.AddTransition(automaton.StateID(id), c, to)
		}
	}

	gologger.Debug().Msgf("subset: constructed %d states for pattern %q", len(sets), n.Pattern())
	return d
}
