package game

import "math"

type Outcome int

const (
	OutcomeNone Outcome = iota
	PlayerBlackjack
	PlayerWin
	DealerWin
	Push
	PlayerBust
	DealerBust
)

func (o Outcome) String() string {
	switch o {
	case PlayerBlackjack:
		return "player_blackjack"
	case PlayerWin:
		return "player_win"
	case DealerWin:
		return "dealer_win"
	case Push:
		return "push"
	case PlayerBust:
		return "player_bust"
	case DealerBust:
		return "dealer_bust"
	default:
		return "none"
	}
}

func (o Outcome) IsWin() bool {
	return o == PlayerBlackjack || o == PlayerWin || o == DealerBust
}

func (o Outcome) IsLoss() bool {
	return o == DealerWin || o == PlayerBust
}

// DetermineOutcome resolves two final hands; the first matching rule wins.
func DetermineOutcome(player, dealer *Hand) Outcome {
	playerBJ := player.IsBlackjack()
	dealerBJ := dealer.IsBlackjack()

	switch {
	case player.IsBust():
		return PlayerBust
	case playerBJ && !dealerBJ:
		return PlayerBlackjack
	case dealerBJ && !playerBJ:
		return DealerWin
	case playerBJ && dealerBJ:
		return Push
	case dealer.IsBust():
		return DealerBust
	}

	playerScore := player.Total()
	dealerScore := dealer.Total()

	if playerScore > dealerScore {
		return PlayerWin
	} else if playerScore < dealerScore {
		return DealerWin
	}
	return Push
}

// Payout is the signed bankroll change for an outcome. Blackjack pays
// bet*blackjackPays rounded to the nearest half unit.
func Payout(o Outcome, bet, blackjackPays float64) float64 {
	switch o {
	case PlayerBlackjack:
		return roundHalfUnit(bet * blackjackPays)
	case PlayerWin, DealerBust:
		return bet
	case DealerWin, PlayerBust:
		return -bet
	default:
		return 0
	}
}

func roundHalfUnit(x float64) float64 {
	return math.Round(x*2) / 2
}
