package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/nahuelkryc0405/Black-Jack-Game/internal/game"
)

const cardHeight = 5

var suitLetters = map[game.Suit]string{
	game.Spades:   "S",
	game.Hearts:   "H",
	game.Diamonds: "D",
	game.Clubs:    "C",
}

var hiddenCard = []string{
	"+-------+",
	"|#######|",
	"|#######|",
	"|#######|",
	"+-------+",
}

// RenderCard draws a card as a 9x5 box.
func RenderCard(c game.Card) []string {
	left, right := string(c.Rank)+" ", " "+string(c.Rank)
	if c.Rank == game.Ten {
		left, right = "10", "10"
	}

	return []string{
		"+-------+",
		fmt.Sprintf("|%s     |", left),
		fmt.Sprintf("|   %s   |", suitLetters[c.Suit]),
		fmt.Sprintf("|     %s|", right),
		"+-------+",
	}
}

// RenderHand draws cards side by side. With hideHole the second card is
// drawn face down.
func RenderHand(cards []game.Card, hideHole bool) string {
	if len(cards) == 0 {
		return "(no cards)"
	}

	boxes := make([][]string, len(cards))
	for i, c := range cards {
		if hideHole && i == 1 {
			boxes[i] = hiddenCard
			continue
		}
		boxes[i] = RenderCard(c)
	}

	rows := make([]string, cardHeight)
	for line := range rows {
		parts := make([]string, len(boxes))
		for i, b := range boxes {
			parts[i] = b[line]
		}
		rows[line] = strings.Join(parts, "  ")
	}
	return strings.Join(rows, "\n")
}

// TableDisplay prints the table after every state change.
type TableDisplay struct {
	Out io.Writer
}

func (d *TableDisplay) Show(s game.Snapshot) {
	fmt.Fprintln(d.Out, "\nDealer:")
	fmt.Fprintln(d.Out, RenderHand(s.Dealer, s.HoleHidden))
	if !s.HoleHidden {
		fmt.Fprintf(d.Out, "Dealer total: %d\n", s.DealerTotal)
	}

	fmt.Fprintln(d.Out, "\nPlayer:")
	fmt.Fprintln(d.Out, RenderHand(s.Player, false))
	fmt.Fprintf(d.Out, "Player total: %d\n", s.PlayerTotal)
}

func describe(o game.Outcome, delta float64) string {
	var text string
	switch o {
	case game.PlayerBlackjack:
		text = "Blackjack!"
	case game.PlayerWin:
		text = "You win!"
	case game.DealerWin:
		text = "You lose"
	case game.Push:
		text = "Push"
	case game.PlayerBust:
		text = "Bust"
	case game.DealerBust:
		text = "Dealer busts!"
	default:
		text = o.String()
	}
	return fmt.Sprintf("%s %+g", text, delta)
}
