package engine

import "testing"

func TestSessionSeedDeterminism(t *testing.T) {
	s1, _ := NewSessionSeed("alpha-seed")
	s2, _ := NewSessionSeed("alpha-seed")
	a := s1.Stream("x").Intn(1000000)
	b := s2.Stream("x").Intn(1000000)
	if a != b {
		t.Fatalf("streams differ: %d vs %d", a, b)
	}
	// child streams
	c1 := s1.Stream("x").Child("y").Intn(1000000)
	c2 := s2.Stream("x").Child("y").Intn(1000000)
	if c1 != c2 {
		t.Fatalf("child streams differ: %d vs %d", c1, c2)
	}
}

func TestSessionSeedRejectsEmpty(t *testing.T) {
	if _, err := NewSessionSeed(""); err == nil {
		t.Fatal("expected error for empty seed text")
	}
}
