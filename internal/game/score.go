package game

import (
	"fmt"
	"strings"
)

const blackjackTotal = 21

// Hand is the ordered cards of one participant.
type Hand struct {
	Cards []Card
}

func NewHand(cards ...Card) *Hand {
	h := &Hand{Cards: make([]Card, 0, 10)}
	h.Cards = append(h.Cards, cards...)
	return h
}

func (h *Hand) Add(c Card) {
	h.Cards = append(h.Cards, c)
}

// score counts every ace as 11 and then demotes them to 1 one at a time
// while the total is over 21. softAces is the number still counted as 11.
func (h *Hand) score() (total, softAces int) {
	for _, c := range h.Cards {
		total += c.Value()
		if c.IsAce() {
			softAces++
		}
	}

	for total > blackjackTotal && softAces > 0 {
		total -= 10
		softAces--
	}

	return total, softAces
}

// Total is the highest total not over 21, or the all-aces-as-one total
// when every valuation busts.
func (h *Hand) Total() int {
	total, _ := h.score()
	return total
}

// HardTotal counts every ace as 1.
func (h *Hand) HardTotal() int {
	total := 0
	for _, c := range h.Cards {
		if c.IsAce() {
			total++
			continue
		}
		total += c.Value()
	}
	return total
}

// IsSoft reports whether an ace is currently counted as 11.
func (h *Hand) IsSoft() bool {
	_, soft := h.score()
	return soft > 0
}

// IsBlackjack is only possible on the two dealt cards; a three card 21 is not one.
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.Total() == blackjackTotal
}

func (h *Hand) IsBust() bool {
	return h.Total() > blackjackTotal
}

func (h *Hand) Len() int {
	return len(h.Cards)
}

func (h *Hand) String() string {
	parts := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s (%d)", strings.Join(parts, " "), h.Total())
}
