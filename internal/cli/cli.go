package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nahuelkryc0405/Black-Jack-Game/internal/game"
)

// PromptDecider asks for hit or stand on every player turn and re-prompts
// on anything else.
type PromptDecider struct {
	In  *bufio.Scanner
	Out io.Writer
}

func (p *PromptDecider) Decide(game.Snapshot) (game.Decision, error) {
	for {
		line, err := prompt(p.In, p.Out, "[H]it or [S]tand? ")
		if err != nil {
			return 0, err
		}

		d, err := game.ParseDecision(line)
		if errors.Is(err, game.ErrInvalidDecision) {
			fmt.Fprintln(p.Out, "Invalid option. Use H or S.")
			continue
		}
		return d, err
	}
}

// prompt returns io.EOF once the input is exhausted.
func prompt(in *bufio.Scanner, out io.Writer, text string) (string, error) {
	fmt.Fprint(out, text)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(in.Text()), nil
}

// Run plays rounds until the bankroll cannot cover the bet, the player
// declines another hand, or the input ends.
func Run(s *game.Session, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Blackjack - single deck, %s, blackjack pays %g:1\n",
		s.Rules.DealerRule, s.Rules.BlackjackPays)

	scanner := bufio.NewScanner(in)
	decider := &PromptDecider{In: scanner, Out: out}
	display := &TableDisplay{Out: out}

	for {
		if !s.CanPlay() {
			fmt.Fprintf(out, "\nBankroll %g does not cover the bet of %g.\n", s.Bankroll, s.Rules.FixedBet)
			break
		}

		fmt.Fprintf(out, "\nBankroll: %g | Bet: %g\n", s.Bankroll, s.Rules.FixedBet)

		res, err := s.PlayRound(decider, display)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(out, "Result:", describe(res.Outcome, res.Delta))

		again, err := prompt(scanner, out, "Another hand? [Y/n] ")
		if err != nil || strings.EqualFold(again, "n") {
			break
		}
	}

	st := s.Stats
	fmt.Fprintf(out, "\nRounds: %d | Won: %d | Lost: %d | Pushed: %d | Bankroll: %g\n",
		st.Rounds, st.Wins(), st.Losses(), st.Pushes(), s.Bankroll)
	fmt.Fprintln(out, "Thanks for playing.")
	return nil
}
