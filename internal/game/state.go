package game

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
)

type Phase int

const (
	PhaseBetting Phase = iota
	PhaseInitialDeal
	PhasePlayerTurn
	PhaseDealerTurn
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseBetting:
		return "betting"
	case PhaseInitialDeal:
		return "initial_deal"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseDealerTurn:
		return "dealer_turn"
	case PhaseResolved:
		return "resolved"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

type Decision int

const (
	Hit Decision = iota + 1
	Stand
)

func (d Decision) String() string {
	switch d {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

func ParseDecision(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hit":
		return Hit, nil
	case "s", "stand":
		return Stand, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDecision, s)
}

// Round is one hand of blackjack from the initial deal to the outcome.
// It is owned by a single caller and is not safe for concurrent use.
type Round struct {
	ID     uuid.UUID
	Bet    float64
	Player *Hand
	Dealer *Hand

	deck    *Deck
	rule    Rule
	phase   Phase
	outcome Outcome
	settled bool
}

func NewRound(deck *Deck, rule Rule, bet float64) *Round {
	return &Round{
		ID:     uuid.New(),
		Bet:    bet,
		Player: NewHand(),
		Dealer: NewHand(),
		deck:   deck,
		rule:   rule,
		phase:  PhaseBetting,
	}
}

func (r *Round) Phase() Phase {
	return r.phase
}

// Outcome reports the result once the round is resolved.
func (r *Round) Outcome() (Outcome, bool) {
	return r.outcome, r.phase == PhaseResolved
}

func (r *Round) phaseError(err error) error {
	return fmt.Errorf("round %s: %w (phase %s)", r.ID, err, r.phase)
}

// draw takes the next card. An exhausted deck is rebuilt without the cards
// already in either hand.
func (r *Round) draw() (Card, error) {
	card, err := r.deck.Draw()
	if errors.Is(err, ErrEmptyDeck) {
		held := append(append([]Card{}, r.Player.Cards...), r.Dealer.Cards...)
		log.Printf("round %s: deck empty, reshuffling without %d held cards", r.ID, len(held))
		r.deck.Reshuffle(held...)
		card, err = r.deck.Draw()
	}
	if err != nil {
		return Card{}, fmt.Errorf("round %s: draw: %w", r.ID, err)
	}
	return card, nil
}

// Deal gives two cards each, alternating player and dealer. A natural on
// either side resolves the round immediately.
func (r *Round) Deal() error {
	if r.phase != PhaseBetting {
		return r.phaseError(ErrWrongPhase)
	}
	r.phase = PhaseInitialDeal

	for i := 0; i < 2; i++ {
		for _, h := range []*Hand{r.Player, r.Dealer} {
			card, err := r.draw()
			if err != nil {
				return err
			}
			h.Add(card)
		}
	}

	if r.Player.IsBlackjack() || r.Dealer.IsBlackjack() {
		r.resolve()
		return nil
	}

	r.phase = PhasePlayerTurn
	return nil
}

// Apply feeds one player decision into the round.
func (r *Round) Apply(d Decision) error {
	if r.phase != PhasePlayerTurn {
		return r.phaseError(ErrWrongPhase)
	}

	switch d {
	case Hit:
		return r.hit()
	case Stand:
		return r.stand()
	default:
		return r.phaseError(fmt.Errorf("%w: %v", ErrInvalidDecision, d))
	}
}

func (r *Round) Hit() error {
	return r.Apply(Hit)
}

func (r *Round) Stand() error {
	return r.Apply(Stand)
}

func (r *Round) hit() error {
	card, err := r.draw()
	if err != nil {
		return err
	}
	r.Player.Add(card)

	// dealer never draws after a player bust
	if r.Player.IsBust() {
		r.resolve()
	}
	return nil
}

func (r *Round) stand() error {
	r.phase = PhaseDealerTurn
	if err := r.dealerPlay(); err != nil {
		return err
	}
	r.resolve()
	return nil
}

func (r *Round) dealerPlay() error {
	for DealerShouldHit(r.Dealer, r.rule) {
		card, err := r.draw()
		if err != nil {
			return err
		}
		r.Dealer.Add(card)
	}
	return nil
}

func (r *Round) resolve() {
	r.phase = PhaseResolved
	r.outcome = DetermineOutcome(r.Player, r.Dealer)
	log.Printf("round %s: resolved %s (player %d, dealer %d)",
		r.ID, r.outcome, r.Player.Total(), r.Dealer.Total())
}

// HoleHidden reports whether the dealer's second card is still face down.
func (r *Round) HoleHidden() bool {
	return r.phase == PhaseInitialDeal || r.phase == PhasePlayerTurn
}

// Snapshot is a read-only view of the round for rendering.
type Snapshot struct {
	RoundID     uuid.UUID
	Phase       Phase
	Player      []Card
	Dealer      []Card
	PlayerTotal int
	DealerTotal int
	PlayerSoft  bool
	HoleHidden  bool
	Bet         float64
	Bankroll    float64
	Outcome     Outcome
	Resolved    bool
}

// Snapshot copies the current state. While the hole card is hidden,
// DealerTotal only counts the up card.
func (r *Round) Snapshot() Snapshot {
	s := Snapshot{
		RoundID:     r.ID,
		Phase:       r.phase,
		Player:      append([]Card(nil), r.Player.Cards...),
		Dealer:      append([]Card(nil), r.Dealer.Cards...),
		PlayerTotal: r.Player.Total(),
		PlayerSoft:  r.Player.IsSoft(),
		HoleHidden:  r.HoleHidden(),
		Bet:         r.Bet,
		Outcome:     r.outcome,
		Resolved:    r.phase == PhaseResolved,
	}

	if s.HoleHidden && len(r.Dealer.Cards) > 0 {
		s.DealerTotal = NewHand(r.Dealer.Cards[0]).Total()
	} else {
		s.DealerTotal = r.Dealer.Total()
	}
	return s
}
