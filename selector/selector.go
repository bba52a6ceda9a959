package selector

import (
	"cmp"
	"iter"
	"slices"
	"unicode/utf8"
)

// Comparable is implemented by types with a natural total order.
// Compare returns a negative number, zero or a positive number when the
// receiver orders before, equal to or after other.
type Comparable[T any] interface {
	Compare(other T) int
}

// MaxSeq returns the greatest element of seq under compare, resolving ties by tie.
func MaxSeq[T any](seq iter.Seq[T], compare func(a, b T) int, tie TieBreak) (T, bool) {
	var best T
	found := false
	for x := range seq {
		if !found || tie.replaces(compare(x, best)) {
			best = x
			found = true
		}
	}
	return best, found
}

// MaxFunc returns the greatest element of items under compare, resolving ties by tie.
func MaxFunc[T any](items []T, compare func(a, b T) int, tie TieBreak) (T, bool) {
	return MaxSeq(slices.Values(items), compare, tie)
}

// MinFunc returns the least element of items under compare. The tie policy
// stays positional: PreferEarlier still returns the first of equal minima.
func MinFunc[T any](items []T, compare func(a, b T) int, tie TieBreak) (T, bool) {
	return MaxFunc(items, reverse(compare), tie)
}

// MaxBy returns the element whose derived key is greatest.
func MaxBy[T any, K cmp.Ordered](items []T, key func(T) K, tie TieBreak) (T, bool) {
	return MaxFunc(items, byKey(key), tie)
}

// MinBy returns the element whose derived key is least.
func MinBy[T any, K cmp.Ordered](items []T, key func(T) K, tie TieBreak) (T, bool) {
	return MinFunc(items, byKey(key), tie)
}

// Longest returns the string with the most runes.
func Longest(strs []string, tie TieBreak) (string, bool) {
	return MaxBy(strs, utf8.RuneCountInString, tie)
}

// Shortest returns the string with the fewest runes.
func Shortest(strs []string, tie TieBreak) (string, bool) {
	return MinBy(strs, utf8.RuneCountInString, tie)
}

// Greatest returns the greatest element under the natural order.
func Greatest[T cmp.Ordered](items []T, tie TieBreak) (T, bool) {
	return MaxFunc(items, cmp.Compare[T], tie)
}

// Least returns the least element under the natural order.
func Least[T cmp.Ordered](items []T, tie TieBreak) (T, bool) {
	return MinFunc(items, cmp.Compare[T], tie)
}

// GreatestComparable returns the greatest element under T's Compare method.
func GreatestComparable[T Comparable[T]](items []T, tie TieBreak) (T, bool) {
	return MaxFunc(items, compareMethod[T], tie)
}

// LeastComparable returns the least element under T's Compare method.
func LeastComparable[T Comparable[T]](items []T, tie TieBreak) (T, bool) {
	return MinFunc(items, compareMethod[T], tie)
}

func compareMethod[T Comparable[T]](a, b T) int {
	return a.Compare(b)
}

func byKey[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

func reverse[T any](compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return compare(b, a)
	}
}
