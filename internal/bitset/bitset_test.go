package bitset

import "testing"

func TestSetTestClear(t *testing.T) {
	b := New(10)
	if !b.IsEmpty() {
		t.Fatal("new bitset should be empty")
	}
	b.Set(3)
	b.Set(9)
	if !b.Test(3) || !b.Test(9) {
		t.Fatal("expected 3 and 9 set")
	}
	if b.Test(4) {
		t.Fatal("did not expect 4 set")
	}
	if b.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", b.Count())
	}
	b.Clear(3)
	if b.Test(3) {
		t.Fatal("expected 3 cleared")
	}
	if b.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", b.Count())
	}
}

func TestUnionIntersects(t *testing.T) {
	a := New(130)
	a.Set(1)
	a.Set(65)
	b := New(130)
	b.Set(65)
	b.Set(129)

	if !a.Intersects(b) {
		t.Fatal("expected intersection on 65")
	}

	u := a.Union(b)
	for _, id := range []int{1, 65, 129} {
		if !u.Test(id) {
			t.Fatalf("union missing %d", id)
		}
	}
	if u.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", u.Count())
	}
}

func TestEqualAndKey(t *testing.T) {
	a := FromSlice(64, []int{0, 10, 63})
	b := FromSlice(64, []int{0, 10, 63})
	c := FromSlice(64, []int{0, 10})

	if !a.Equal(b) {
		t.Fatal("expected a == b")
	}
	if a.Equal(c) {
		t.Fatal("expected a != c")
	}
	if a.Key() != b.Key() {
		t.Fatal("expected matching keys for equal sets")
	}
	if a.Key() == c.Key() {
		t.Fatal("expected differing keys for unequal sets")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := New(8)
	a.Set(2)
	clone := a.Clone()
	clone.Set(5)

	if a.Test(5) {
		t.Fatal("mutating clone should not affect original")
	}
	if !clone.Test(2) || !clone.Test(5) {
		t.Fatal("clone should have both bits")
	}
}

func TestElements(t *testing.T) {
	b := FromSlice(200, []int{0, 63, 64, 127, 199})
	got := b.Elements()
	want := []int{0, 63, 64, 127, 199}
	if len(got) != len(want) {
		t.Fatalf("Elements() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Elements()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
