package util

import (
	"cmp"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// FlattenSeparator joins key and value in Flatten output.
const FlattenSeparator = " -> "

// IsCapitalized reports whether the first rune of s is unchanged by upper-casing.
// Empty strings are not capitalized. Digits and punctuation count as capitalized.
func IsCapitalized(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return false
	}
	return unicode.ToUpper(r) == r
}

// Capitalized returns the strings whose first character is unchanged by upper-casing,
// preserving input order.
func Capitalized(strs []string) []string {
	return Filter(strs, IsCapitalized)
}

// Flatten renders each map entry as "<key> -> <value>". Order follows map
// iteration and is therefore unspecified.
func Flatten[K comparable, V any](m map[K]V) []string {
	return Map(Keys(m), func(k K) string {
		return flattenEntry(k, m[k])
	})
}

// FlattenSorted is Flatten with entries ordered by ascending key.
func FlattenSorted[K cmp.Ordered, V any](m map[K]V) []string {
	return Map(SortedKeys(m), func(k K) string {
		return flattenEntry(k, m[k])
	})
}

func flattenEntry(k, v any) string {
	return fmt.Sprintf("%v%s%v", k, FlattenSeparator, v)
}
