package game

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDeck            = errors.New("deck is empty")
	ErrInvalidDecision      = errors.New("invalid decision")
	ErrWrongPhase           = errors.New("action not allowed in this phase")
	ErrAlreadySettled       = errors.New("round already settled")
	ErrInsufficientBankroll = errors.New("insufficient bankroll")
)

// InsufficientBankrollError is returned when the bet exceeds the bankroll.
// The round is not started and the bankroll is untouched.
type InsufficientBankrollError struct {
	Bankroll float64
	Bet      float64
}

func (e *InsufficientBankrollError) Error() string {
	return fmt.Sprintf("insufficient bankroll: bet %g, bankroll %g", e.Bet, e.Bankroll)
}

func (e *InsufficientBankrollError) Is(target error) bool {
	return target == ErrInsufficientBankroll
}
