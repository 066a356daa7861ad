package player

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahuelkryc0405/Black-Jack-Game/internal/database"
	"github.com/nahuelkryc0405/Black-Jack-Game/internal/game"
)

func newRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db.DB)
}

func TestGetOrCreate(t *testing.T) {
	repo := newRepo(t)

	p, err := repo.GetOrCreate(42, 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, p.Bankroll)
	assert.Zero(t, p.Rounds)

	p.Record(game.PlayerBlackjack, 11.5)
	require.NoError(t, repo.Save(p))

	again, err := repo.GetOrCreate(42, 10)
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestRecord(t *testing.T) {
	p := &Player{Bankroll: 10}

	p.Record(game.PlayerBlackjack, 11.5)
	p.Record(game.DealerBust, 12.5)
	p.Record(game.PlayerBust, 11.5)
	p.Record(game.Push, 11.5)

	assert.Equal(t, 11.5, p.Bankroll)
	assert.Equal(t, 4, p.Rounds)
	assert.Equal(t, 2, p.Wins)
	assert.Equal(t, 1, p.Blackjacks)
	assert.Equal(t, 1, p.Losses)
	assert.Equal(t, 1, p.Pushes)
	assert.Equal(t, 50.0, p.WinRate())
}

func TestGetTopByBankroll(t *testing.T) {
	repo := newRepo(t)

	for chatID, bankroll := range map[int64]float64{1: 12, 2: 8.5, 3: 15} {
		p, err := repo.GetOrCreate(chatID, 10)
		require.NoError(t, err)
		p.Record(game.PlayerWin, bankroll)
		require.NoError(t, repo.Save(p))
	}

	// never played, not ranked
	_, err := repo.GetOrCreate(4, 10)
	require.NoError(t, err)

	top, err := repo.GetTopByBankroll(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, int64(3), top[0].ChatID)
	assert.Equal(t, int64(1), top[1].ChatID)
	assert.Equal(t, 100.0, top[0].WinRate)
}
