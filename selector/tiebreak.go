package selector

import (
	"fmt"
	"strings"
)

// TieBreak decides which of several order-equal elements a selector returns.
type TieBreak int

const (
	// PreferEarlier keeps the element encountered first in iteration order.
	PreferEarlier TieBreak = iota
	// PreferLater replaces the running best with each later order-equal element.
	PreferLater
)

// TieBreakFromBool maps a preferEarlier flag to a TieBreak.
func TieBreakFromBool(preferEarlier bool) TieBreak {
	if preferEarlier {
		return PreferEarlier
	}
	return PreferLater
}

// ParseTieBreak accepts "earlier"/"first"/"start" and "later"/"last"/"end".
// An empty string means PreferEarlier.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "earlier", "first", "start":
		return PreferEarlier, nil
	case "later", "last", "end":
		return PreferLater, nil
	default:
		return PreferEarlier, fmt.Errorf("unknown tie-break %q (want earlier or later)", s)
	}
}

// String returns "earlier" or "later".
func (t TieBreak) String() string {
	if t == PreferLater {
		return "later"
	}
	return "earlier"
}

// replaces reports whether a candidate that compared as c against the running best wins.
func (t TieBreak) replaces(c int) bool {
	return c > 0 || (c == 0 && t == PreferLater)
}
