package dfa

import (
	"testing"

	"github.com/lexforge/microdfa/automaton"
)

func buildSingleCharDFA() *DFA {
	alphabet := automaton.NewAlphabet()
	alphabet.Add('a')
	d := New(2, 0, alphabet, "a")
	d.AddTransition(0, 'a', 1)
	d.SetAccept(1, true)
	return d
}

func TestAcceptsSingleChar(t *testing.T) {
	d := buildSingleCharDFA()
	tests := []struct {
		in   string
		want bool
	}{
		{"a", true},
		{"", false},
		{"b", false},
		{"aa", false},
	}
	for _, tt := range tests {
		if got := d.Accepts(tt.in); got != tt.want {
			t.Errorf("Accepts(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTransitionMissingTarget(t *testing.T) {
	d := buildSingleCharDFA()
	if _, ok := d.Transition(0, 'z'); ok {
		t.Fatalf("Transition(0, 'z') reported ok, want none")
	}
}

func TestTransitionOverwrite(t *testing.T) {
	alphabet := automaton.NewAlphabet()
	alphabet.Add('a')
	d := New(3, 0, alphabet, "a")
	d.AddTransition(0, 'a', 1)
	d.AddTransition(0, 'a', 2)
	got, ok := d.Transition(0, 'a')
	if !ok || got != 2 {
		t.Fatalf("Transition(0, 'a') = (%d, %v), want (2, true)", got, ok)
	}
}

func TestInvalidStatePanics(t *testing.T) {
	d := buildSingleCharDFA()
	defer func() {
		if recover() == nil {
			t.Fatal("IsAccept with out-of-range id did not panic")
		}
	}()
	d.IsAccept(99)
}

func TestPatternAndAlphabet(t *testing.T) {
	d := buildSingleCharDFA()
	if d.Pattern() != "a" {
		t.Fatalf("Pattern() = %q, want %q", d.Pattern(), "a")
	}
	if d.Alphabet().Len() != 1 || !d.Alphabet().Contains('a') {
		t.Fatalf("Alphabet() = %v, want {'a'}", d.Alphabet().Ordered())
	}
}
