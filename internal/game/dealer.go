package game

import (
	"fmt"
	"strings"
)

const dealerStandTotal = 17

// Rule is the dealer's soft 17 rule, fixed for a session.
type Rule int

const (
	// S17: stand on every 17.
	S17 Rule = iota
	// H17: hit a soft 17.
	H17
)

func (r Rule) String() string {
	switch r {
	case S17:
		return "S17"
	case H17:
		return "H17"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

func ParseRule(s string) (Rule, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "S17":
		return S17, nil
	case "H17":
		return H17, nil
	}
	return S17, fmt.Errorf("unknown dealer rule %q", s)
}

func DealerShouldHit(h *Hand, rule Rule) bool {
	total := h.Total()
	if total < dealerStandTotal {
		return true
	}
	return rule == H17 && total == dealerStandTotal && h.IsSoft()
}
