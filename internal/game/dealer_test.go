package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealerShouldHit(t *testing.T) {
	tests := []struct {
		name string
		hand []Card
		s17  bool
		h17  bool
	}{
		{"hard 16", cards(Ten, Six), true, true},
		{"soft 16", cards(Ace, Five), true, true},
		{"hard 17", cards(Ten, Seven), false, false},
		{"soft 17", cards(Ace, Six), false, true},
		{"three card soft 17", cards(Ace, Two, Four), false, true},
		{"soft 18", []Card{{Seven, Clubs}, {Ace, Diamonds}}, false, false},
		{"hard 17 with ace as one", cards(Ace, Six, King), false, false},
		{"bust", cards(Ten, Six, Nine), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHand(tt.hand...)
			assert.Equal(t, tt.s17, DealerShouldHit(h, S17), "S17")
			assert.Equal(t, tt.h17, DealerShouldHit(h, H17), "H17")
		})
	}
}

func TestDealerS17NeverHitsSeventeenOrMore(t *testing.T) {
	for _, a := range Ranks {
		for _, b := range Ranks {
			for _, c := range Ranks {
				h := NewHand(cards(a, b, c)...)
				if h.Total() >= 17 {
					assert.False(t, DealerShouldHit(h, S17), "hand %v", h)
				}
			}
		}
	}
}

func TestParseRule(t *testing.T) {
	r, err := ParseRule("h17")
	require.NoError(t, err)
	assert.Equal(t, H17, r)

	r, err = ParseRule("")
	require.NoError(t, err)
	assert.Equal(t, S17, r)

	_, err = ParseRule("stand-on-16")
	assert.Error(t, err)

	assert.Equal(t, "S17", S17.String())
}
