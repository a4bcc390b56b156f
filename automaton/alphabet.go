package automaton

import "sort"

// Alphabet is the set of concrete characters appearing on non-epsilon
// transitions of an automaton. Patterns are short and rune-addressed,
// so this Alphabet keeps every distinct rune as its own symbol rather
// than grouping characters into equivalence classes.
//
// Iteration order matters: subset construction needs to visit the
// alphabet in a fixed order so that state identifiers are reproducible
// across runs. Ordered fixes that order to ascending code point.
type Alphabet struct {
	set map[rune]struct{}
}

// NewAlphabet returns an empty Alphabet.
func NewAlphabet() *Alphabet {
	return &Alphabet{set: make(map[rune]struct{})}
}

// Add inserts c into the alphabet. Adding the same rune twice is a no-op.
func (a *Alphabet) Add(c rune) {
	a.set[c] = struct{}{}
}

// AddAll inserts every rune in chars.
func (a *Alphabet) AddAll(chars []rune) {
	for _, c := range chars {
		a.Add(c)
	}
}

// Contains reports whether c is part of the alphabet.
func (a *Alphabet) Contains(c rune) bool {
	_, ok := a.set[c]
	return ok
}

// Len returns the number of distinct runes in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.set)
}

// Ordered returns the alphabet's runes in ascending code-point order.
// Subset construction and minimization both iterate the alphabet via
// Ordered so that two calls against the same automaton produce
// identical state numbering.
func (a *Alphabet) Ordered() []rune {
	out := make([]rune, 0, len(a.set))
	for c := range a.set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Union returns a new Alphabet containing every rune from a and other.
func (a *Alphabet) Union(other *Alphabet) *Alphabet {
	out := NewAlphabet()
	for c := range a.set {
		out.Add(c)
	}
	for c := range other.set {
		out.Add(c)
	}
	return out
}

// Clone returns an independent copy of a.
func (a *Alphabet) Clone() *Alphabet {
	out := NewAlphabet()
	for c := range a.set {
		out.Add(c)
	}
	return out
}
