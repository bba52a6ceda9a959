package selector

import (
	"cmp"
	"iter"
	"slices"
	"testing"
)

// tagged pairs a value with its position so ties are observable.
type tagged struct {
	value int
	pos   int
}

func (t tagged) Compare(other tagged) int { return cmp.Compare(t.value, other.value) }

func tag(values ...int) []tagged {
	out := make([]tagged, len(values))
	for i, v := range values {
		out[i] = tagged{value: v, pos: i}
	}
	return out
}

func TestLongest_TieBreak(t *testing.T) {
	words := []string{"Ok", "Way", "too"}
	tests := []struct {
		name string
		tie  TieBreak
		want string
	}{
		{"prefer earlier", PreferEarlier, "Way"},
		{"prefer later", PreferLater, "too"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Longest(words, tc.tie)
			if !ok {
				t.Fatal("expected a result")
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestLongest_CountsRunes(t *testing.T) {
	got, _ := Longest([]string{"ééé", "abcd"}, PreferEarlier)
	if got != "abcd" {
		t.Errorf("expected abcd (4 runes beats 3), got %q", got)
	}
}

func TestLongest_StrictlyLongerAlwaysWins(t *testing.T) {
	words := []string{"because", "I", "have", "mecanique", "Example", "questions"}
	if got, _ := Longest(words, PreferEarlier); got != "mecanique" {
		t.Errorf("expected mecanique, got %q", got)
	}
	if got, _ := Longest(words, PreferLater); got != "questions" {
		t.Errorf("expected questions, got %q", got)
	}
}

func TestShortest(t *testing.T) {
	words := []string{"Way", "Ok", "no", "Moment"}
	if got, _ := Shortest(words, PreferEarlier); got != "Ok" {
		t.Errorf("expected Ok, got %q", got)
	}
	if got, _ := Shortest(words, PreferLater); got != "no" {
		t.Errorf("expected no, got %q", got)
	}
}

func TestSelectors_EmptyIsAbsent(t *testing.T) {
	if _, ok := Greatest([]float64{}, PreferEarlier); ok {
		t.Error("expected Greatest of empty to be absent")
	}
	if _, ok := Least[int](nil, PreferLater); ok {
		t.Error("expected Least of nil to be absent")
	}
	if _, ok := Longest(nil, PreferEarlier); ok {
		t.Error("expected Longest of nil to be absent")
	}
	if _, ok := GreatestComparable([]tagged{}, PreferEarlier); ok {
		t.Error("expected GreatestComparable of empty to be absent")
	}
}

func TestGreatestComparable_PositionalTies(t *testing.T) {
	items := tag(3, 1, 3)

	got, ok := GreatestComparable(items, PreferEarlier)
	if !ok || got != (tagged{value: 3, pos: 0}) {
		t.Errorf("expected first 3 at position 0, got %+v", got)
	}
	got, _ = GreatestComparable(items, PreferLater)
	if got != (tagged{value: 3, pos: 2}) {
		t.Errorf("expected last 3 at position 2, got %+v", got)
	}
}

func TestLeastComparable_PositionalTies(t *testing.T) {
	items := tag(1, 3, 1, 2)

	got, _ := LeastComparable(items, PreferEarlier)
	if got != (tagged{value: 1, pos: 0}) {
		t.Errorf("expected first 1 at position 0, got %+v", got)
	}
	got, _ = LeastComparable(items, PreferLater)
	if got != (tagged{value: 1, pos: 2}) {
		t.Errorf("expected last 1 at position 2, got %+v", got)
	}
}

func TestGreatestAndLeast_NaturalOrder(t *testing.T) {
	items := []int{3, 1, 3}
	if got, _ := Greatest(items, PreferEarlier); got != 3 {
		t.Errorf("expected greatest 3, got %d", got)
	}
	if got, _ := Least(items, PreferEarlier); got != 1 {
		t.Errorf("expected least 1, got %d", got)
	}
	if got, _ := Least([]string{"pear", "apple", "fig"}, PreferLater); got != "apple" {
		t.Errorf("expected apple, got %q", got)
	}
}

func TestMaxFunc_TaggedWithKey(t *testing.T) {
	items := tag(5, 9, 9, 2)
	byValue := func(a, b tagged) int { return cmp.Compare(a.value, b.value) }

	if got, _ := MaxFunc(items, byValue, PreferEarlier); got.pos != 1 {
		t.Errorf("expected position 1, got %d", got.pos)
	}
	if got, _ := MaxFunc(items, byValue, PreferLater); got.pos != 2 {
		t.Errorf("expected position 2, got %d", got.pos)
	}
	if got, _ := MinFunc(items, byValue, PreferEarlier); got.pos != 3 {
		t.Errorf("expected position 3, got %d", got.pos)
	}
}

func TestMaxBy_AllEqualKeys(t *testing.T) {
	items := tag(4, 4, 4)
	key := func(tagged) int { return 0 }
	if got, _ := MaxBy(items, key, PreferEarlier); got.pos != 0 {
		t.Errorf("expected first element, got position %d", got.pos)
	}
	if got, _ := MaxBy(items, key, PreferLater); got.pos != 2 {
		t.Errorf("expected last element, got position %d", got.pos)
	}
	if got, _ := MinBy(items, key, PreferLater); got.pos != 2 {
		t.Errorf("expected last element, got position %d", got.pos)
	}
}

func TestMaxSeq(t *testing.T) {
	var seq iter.Seq[tagged] = func(yield func(tagged) bool) {
		for i, v := range []int{2, 7, 7} {
			if !yield(tagged{value: v, pos: i}) {
				return
			}
		}
	}
	got, ok := MaxSeq(seq, tagged.Compare, PreferEarlier)
	if !ok || got.pos != 1 {
		t.Errorf("expected position 1, got %+v (ok=%v)", got, ok)
	}
}

func TestSelectors_Idempotent(t *testing.T) {
	words := []string{"Ok", "Way", "too"}
	snapshot := slices.Clone(words)
	for _, tie := range []TieBreak{PreferEarlier, PreferLater} {
		first, _ := Longest(words, tie)
		second, _ := Longest(words, tie)
		if first != second {
			t.Errorf("expected repeat calls to agree, got %q then %q", first, second)
		}
	}
	if !slices.Equal(words, snapshot) {
		t.Errorf("expected input untouched, got %v", words)
	}

	items := tag(3, 1, 3)
	a, _ := LeastComparable(items, PreferLater)
	b, _ := LeastComparable(items, PreferLater)
	if a != b {
		t.Errorf("expected repeat calls to agree, got %+v then %+v", a, b)
	}
}

func TestTieBreak_Parse(t *testing.T) {
	tests := []struct {
		in      string
		want    TieBreak
		wantErr bool
	}{
		{"", PreferEarlier, false},
		{"earlier", PreferEarlier, false},
		{"FIRST", PreferEarlier, false},
		{"later", PreferLater, false},
		{" last ", PreferLater, false},
		{"middle", PreferEarlier, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTieBreak(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestTieBreak_FromBool(t *testing.T) {
	if TieBreakFromBool(true) != PreferEarlier {
		t.Error("expected true to mean PreferEarlier")
	}
	if TieBreakFromBool(false) != PreferLater {
		t.Error("expected false to mean PreferLater")
	}
	if PreferLater.String() != "later" || PreferEarlier.String() != "earlier" {
		t.Error("unexpected String values")
	}
}
