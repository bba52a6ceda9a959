package util

import (
	"slices"
	"testing"
)

func TestCapitalized(t *testing.T) {
	words := []string{"Ok,", "because", "I", "have", "Way", "too", "Moment", "", "élan", "Élan", "42nd"}
	got := Capitalized(words)
	want := []string{"Ok,", "I", "Way", "Moment", "Élan", "42nd"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCapitalized_Empty(t *testing.T) {
	if got := Capitalized(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestFlatten(t *testing.T) {
	m := map[float64]rune{12: 'C', 123.55: 'Q', -56: 'A'}
	got := Flatten(m)
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(got))
	}
	for _, line := range []string{"12 -> 67", "123.55 -> 81", "-56 -> 65"} {
		if !Contains(got, line) {
			t.Errorf("expected %q in %v", line, got)
		}
	}
}

func TestFlattenSorted(t *testing.T) {
	m := map[string]string{"b": "two", "a": "one", "c": "three"}
	got := FlattenSorted(m)
	want := []string{"a -> one", "b -> two", "c -> three"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if len(FlattenSorted(map[int]int{})) != 0 {
		t.Error("expected no lines for empty map")
	}
}
