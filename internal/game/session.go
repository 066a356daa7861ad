package game

import (
	"fmt"
	"log"
	"math/rand"
)

// Rules are the session settings.
type Rules struct {
	DealerRule       Rule
	BlackjackPays    float64
	FixedBet         float64
	StartingBankroll float64
}

// DefaultRules: stand on all 17s, 3:2 blackjack, bet 1 against a bankroll of 10.
func DefaultRules() Rules {
	return Rules{
		DealerRule:       S17,
		BlackjackPays:    1.5,
		FixedBet:         1,
		StartingBankroll: 10,
	}
}

func (r Rules) Validate() error {
	if r.FixedBet <= 0 {
		return fmt.Errorf("fixed bet must be positive, got %g", r.FixedBet)
	}
	if r.StartingBankroll < 0 {
		return fmt.Errorf("starting bankroll must not be negative, got %g", r.StartingBankroll)
	}
	if r.BlackjackPays <= 0 {
		return fmt.Errorf("blackjack payout must be positive, got %g", r.BlackjackPays)
	}
	if r.DealerRule != S17 && r.DealerRule != H17 {
		return fmt.Errorf("unknown dealer rule %v", r.DealerRule)
	}
	return nil
}

// Decider supplies player decisions during the player turn.
type Decider interface {
	Decide(s Snapshot) (Decision, error)
}

// Display receives a snapshot after every state transition.
type Display interface {
	Show(s Snapshot)
}

// Stats counts rounds per outcome over a session.
type Stats struct {
	Rounds int
	ByKind map[Outcome]int
}

func (s *Stats) record(o Outcome) {
	if s.ByKind == nil {
		s.ByKind = make(map[Outcome]int)
	}
	s.Rounds++
	s.ByKind[o]++
}

func (s Stats) Wins() int {
	return s.ByKind[PlayerBlackjack] + s.ByKind[PlayerWin] + s.ByKind[DealerBust]
}

func (s Stats) Losses() int {
	return s.ByKind[DealerWin] + s.ByKind[PlayerBust]
}

func (s Stats) Pushes() int {
	return s.ByKind[Push]
}

// Session owns the bankroll and the deck shared by consecutive rounds.
type Session struct {
	Rules    Rules
	Bankroll float64
	Stats    Stats

	deck *Deck
}

func NewSession(rules Rules, rng *rand.Rand) *Session {
	return NewSessionWithDeck(rules, NewDeck(rng))
}

func NewSessionWithDeck(rules Rules, deck *Deck) *Session {
	return &Session{
		Rules:    rules,
		Bankroll: rules.StartingBankroll,
		deck:     deck,
	}
}

func (s *Session) Deck() *Deck {
	return s.deck
}

func (s *Session) CanPlay() bool {
	return s.Rules.FixedBet <= s.Bankroll
}

// StartRound validates the bet and returns a round in the betting phase.
func (s *Session) StartRound() (*Round, error) {
	bet := s.Rules.FixedBet
	if bet > s.Bankroll {
		return nil, &InsufficientBankrollError{Bankroll: s.Bankroll, Bet: bet}
	}

	if s.deck.NeedsShuffle() {
		log.Printf("reshuffling deck, %d cards left", s.deck.Remaining())
		s.deck.Reshuffle()
	}

	return NewRound(s.deck, s.Rules.DealerRule, bet), nil
}

// Settle applies the payout of a resolved round to the bankroll exactly once.
func (s *Session) Settle(r *Round) (float64, error) {
	outcome, ok := r.Outcome()
	if !ok {
		return 0, r.phaseError(ErrWrongPhase)
	}
	if r.settled {
		return 0, r.phaseError(ErrAlreadySettled)
	}

	delta := Payout(outcome, r.Bet, s.Rules.BlackjackPays)
	s.Bankroll += delta
	r.settled = true
	s.Stats.record(outcome)

	return delta, nil
}

// Snapshot is the round snapshot with the session bankroll filled in.
func (s *Session) Snapshot(r *Round) Snapshot {
	snap := r.Snapshot()
	snap.Bankroll = s.Bankroll
	return snap
}

type RoundResult struct {
	Outcome  Outcome
	Delta    float64
	Bankroll float64
	Final    Snapshot
}

// PlayRound runs one round to completion, asking decider for every player
// decision and showing each transition on display.
func (s *Session) PlayRound(decider Decider, display Display) (RoundResult, error) {
	r, err := s.StartRound()
	if err != nil {
		return RoundResult{}, err
	}

	if err := r.Deal(); err != nil {
		return RoundResult{}, err
	}

	for r.Phase() == PhasePlayerTurn {
		snap := s.Snapshot(r)
		display.Show(snap)

		d, err := decider.Decide(snap)
		if err != nil {
			return RoundResult{}, err
		}
		if err := r.Apply(d); err != nil {
			return RoundResult{}, err
		}
	}

	delta, err := s.Settle(r)
	if err != nil {
		return RoundResult{}, err
	}

	outcome, _ := r.Outcome()
	final := s.Snapshot(r)
	display.Show(final)

	return RoundResult{
		Outcome:  outcome,
		Delta:    delta,
		Bankroll: s.Bankroll,
		Final:    final,
	}, nil
}
