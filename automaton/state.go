package automaton

// StateID is a dense integer identifier into an automaton's state array.
// Both nfa.Automaton and dfa.DFA index their states this way, so that a
// subset-construction state-set (a bitset over NFA StateIDs) and a
// minimizer partition (a set of DFA StateIDs) are built from the same
// underlying type.
type StateID int

// InvalidState marks the absence of a state, e.g. a DFA transition that
// has no target for a given symbol.
const InvalidState StateID = -1
