package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedDecider struct {
	decisions []Decision
	asked     int
}

func (s *scriptedDecider) Decide(Snapshot) (Decision, error) {
	if s.asked >= len(s.decisions) {
		return 0, errors.New("no more decisions")
	}
	d := s.decisions[s.asked]
	s.asked++
	return d, nil
}

type recordingDisplay struct {
	shown []Snapshot
}

func (r *recordingDisplay) Show(s Snapshot) {
	r.shown = append(r.shown, s)
}

func stackedSession(rules Rules, order ...Card) *Session {
	return NewSessionWithDeck(rules, NewStackedDeck(seeded(1), order...))
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	require.NoError(t, rules.Validate())
	assert.Equal(t, S17, rules.DealerRule)
	assert.Equal(t, 1.5, rules.BlackjackPays)
	assert.Equal(t, 1.0, rules.FixedBet)
	assert.Equal(t, 10.0, rules.StartingBankroll)
}

func TestRulesValidate(t *testing.T) {
	rules := DefaultRules()
	rules.FixedBet = 0
	assert.Error(t, rules.Validate())

	rules = DefaultRules()
	rules.DealerRule = Rule(5)
	assert.Error(t, rules.Validate())
}

func TestSessionBlackjackPaysThreeToTwo(t *testing.T) {
	s := stackedSession(DefaultRules(),
		Card{Ace, Spades}, Card{King, Hearts}, Card{Ten, Diamonds}, Card{Nine, Clubs})
	display := &recordingDisplay{}

	res, err := s.PlayRound(&scriptedDecider{}, display)
	require.NoError(t, err)

	assert.Equal(t, PlayerBlackjack, res.Outcome)
	assert.Equal(t, 1.5, res.Delta)
	assert.Equal(t, 11.5, res.Bankroll)
	assert.Equal(t, 11.5, s.Bankroll)

	require.Len(t, display.shown, 1)
	assert.True(t, display.shown[0].Resolved)
	assert.Equal(t, 11.5, display.shown[0].Bankroll)
}

func TestSessionPlayRoundDrivesDecisions(t *testing.T) {
	s := stackedSession(DefaultRules(),
		Card{Two, Clubs}, Card{Ten, Hearts}, Card{Three, Diamonds}, Card{Seven, Spades},
		Card{Five, Hearts}, Card{Ten, Spades})
	decider := &scriptedDecider{decisions: []Decision{Hit, Hit, Stand}}
	display := &recordingDisplay{}

	res, err := s.PlayRound(decider, display)
	require.NoError(t, err)

	// 2+3+5+10 = 20 against a standing 17
	assert.Equal(t, PlayerWin, res.Outcome)
	assert.Equal(t, 11.0, s.Bankroll)
	assert.Equal(t, 3, decider.asked)
	require.Len(t, display.shown, 4)
	assert.True(t, display.shown[0].HoleHidden)
	assert.False(t, display.shown[3].HoleHidden)
	assert.Equal(t, 1, s.Stats.Wins())
}

func TestSessionPlayRoundStopsOnDeciderError(t *testing.T) {
	s := stackedSession(DefaultRules(),
		Card{Two, Clubs}, Card{Ten, Hearts}, Card{Three, Diamonds}, Card{Seven, Spades})

	_, err := s.PlayRound(&scriptedDecider{}, &recordingDisplay{})
	assert.EqualError(t, err, "no more decisions")
	assert.Equal(t, 10.0, s.Bankroll)
}

func TestSessionLossReducesBankroll(t *testing.T) {
	s := stackedSession(DefaultRules(),
		Card{Ten, Spades}, Card{Five, Clubs}, Card{Six, Hearts}, Card{Four, Clubs},
		Card{Eight, Diamonds})

	res, err := s.PlayRound(&scriptedDecider{decisions: []Decision{Hit}}, &recordingDisplay{})
	require.NoError(t, err)

	assert.Equal(t, PlayerBust, res.Outcome)
	assert.Equal(t, 9.0, s.Bankroll)
	assert.Equal(t, 1, s.Stats.Losses())
}

func TestSessionInsufficientBankroll(t *testing.T) {
	rules := DefaultRules()
	rules.StartingBankroll = 0.5
	s := NewSession(rules, seeded(1))

	assert.False(t, s.CanPlay())

	r, err := s.StartRound()
	assert.Nil(t, r)
	require.ErrorIs(t, err, ErrInsufficientBankroll)

	var ibe *InsufficientBankrollError
	require.True(t, errors.As(err, &ibe))
	assert.Equal(t, 0.5, ibe.Bankroll)
	assert.Equal(t, 1.0, ibe.Bet)
	assert.Equal(t, 0.5, s.Bankroll)
}

func TestSessionSettle(t *testing.T) {
	s := stackedSession(DefaultRules(),
		Card{Ten, Clubs}, Card{Ten, Hearts}, Card{Nine, Diamonds}, Card{Nine, Spades})

	r, err := s.StartRound()
	require.NoError(t, err)

	_, err = s.Settle(r)
	assert.ErrorIs(t, err, ErrWrongPhase)

	require.NoError(t, r.Deal())
	require.NoError(t, r.Stand())

	delta, err := s.Settle(r)
	require.NoError(t, err)
	assert.Equal(t, 0.0, delta)
	assert.Equal(t, 1, s.Stats.Pushes())

	_, err = s.Settle(r)
	assert.ErrorIs(t, err, ErrAlreadySettled)
	assert.Equal(t, 10.0, s.Bankroll)
	assert.Equal(t, 1, s.Stats.Rounds)
}

func TestSessionReshufflesAtRoundBoundary(t *testing.T) {
	s := NewSession(DefaultRules(), seeded(5))
	for i := 0; i < 45; i++ {
		_, err := s.Deck().Draw()
		require.NoError(t, err)
	}
	require.True(t, s.Deck().NeedsShuffle())

	_, err := s.StartRound()
	require.NoError(t, err)
	assert.Equal(t, 52, s.Deck().Remaining())
}
