package game

import (
	"math/rand"
)

// DefaultPenetration is the share of the deck dealt before the session
// reshuffles at the next round boundary.
const DefaultPenetration = 0.75

const deckSize = 52

type Deck struct {
	cards       []Card
	rng         *rand.Rand
	Penetration float64
}

// NewDeck builds the 52 cards and shuffles them with rng.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		rng:         rng,
		Penetration: DefaultPenetration,
	}
	d.Reshuffle()
	return d
}

// NewStackedDeck deals cards in the given order and only reshuffles once
// they run out. rng is used for that reshuffle.
func NewStackedDeck(rng *rand.Rand, cards ...Card) *Deck {
	d := &Deck{
		cards:       make([]Card, len(cards)),
		rng:         rng,
		Penetration: 1,
	}
	copy(d.cards, cards)
	return d
}

func fullDeck() []Card {
	cards := make([]Card, 0, deckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return cards
}

// Reshuffle rebuilds the deck without the held cards and shuffles it.
func (d *Deck) Reshuffle(held ...Card) {
	skip := make(map[Card]bool, len(held))
	for _, c := range held {
		skip[c] = true
	}

	d.cards = d.cards[:0]
	for _, c := range fullDeck() {
		if !skip[c] {
			d.cards = append(d.cards, c)
		}
	}

	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the front card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

// NeedsShuffle reports whether more than Penetration of the deck has been dealt.
func (d *Deck) NeedsShuffle() bool {
	if d.Penetration <= 0 || d.Penetration >= 1 {
		return len(d.cards) == 0
	}
	return float64(len(d.cards)) < deckSize*(1-d.Penetration)
}
