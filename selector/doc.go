// Package selector finds extremal elements of a collection with an explicit
// positional tie-break policy.
//
// Every selector is the same left-to-right scan parameterized by an ordering:
// a candidate that orders strictly after the running best replaces it, one
// that orders strictly before is ignored, and order-equal candidates are
// resolved by TieBreak. Selectors never mutate their input and report an
// empty input as absent (ok == false), never as an error.
//
//	s, ok := selector.Longest([]string{"Ok", "Way", "too"}, selector.PreferEarlier) // "Way", true
//	n, ok := selector.Least([]int{3, 1, 3}, selector.PreferEarlier)                  // 1, true
package selector
