package automaton

import "testing"

func TestSymbolEpsilon(t *testing.T) {
	if !Epsilon.IsEpsilon() {
		t.Fatal("Epsilon.IsEpsilon() = false")
	}
	if _, ok := Epsilon.Rune(); ok {
		t.Fatal("Epsilon.Rune() reported a rune")
	}
}

func TestSymbolChar(t *testing.T) {
	s := Char('a')
	if s.IsEpsilon() {
		t.Fatal("Char('a').IsEpsilon() = true")
	}
	r, ok := s.Rune()
	if !ok || r != 'a' {
		t.Fatalf("Rune() = %q, %v, want 'a', true", r, ok)
	}
}

func TestSymbolEquality(t *testing.T) {
	if Char('a') != Char('a') {
		t.Fatal("Char('a') != Char('a')")
	}
	if Char('a') == Char('b') {
		t.Fatal("Char('a') == Char('b')")
	}
	if Char('a') == Epsilon {
		t.Fatal("Char('a') == Epsilon")
	}
}

func TestSymbolAsMapKey(t *testing.T) {
	m := map[Symbol]int{
		Char('a'): 1,
		Epsilon:   2,
	}
	if m[Char('a')] != 1 || m[Epsilon] != 2 {
		t.Fatal("Symbol does not behave as a comparable map key")
	}
}
