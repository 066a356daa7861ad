package player

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/nahuelkryc0405/Black-Jack-Game/internal/game"
)

type Player struct {
	ChatID     int64
	Bankroll   float64
	Rounds     int
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
}

type Stats struct {
	ChatID   int64
	Bankroll float64
	Wins     int
	Rounds   int
	WinRate  float64
}

type Repository interface {
	GetOrCreate(chatID int64, startingBankroll float64) (*Player, error)
	Save(player *Player) error
	GetTopByBankroll(limit int) ([]Stats, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetOrCreate(chatID int64, startingBankroll float64) (*Player, error) {
	player := &Player{ChatID: chatID}

	err := r.db.QueryRow(`
		SELECT bankroll, rounds, wins, losses, pushes, blackjacks
		FROM players WHERE chat_id = ?
	`, chatID).Scan(
		&player.Bankroll, &player.Rounds, &player.Wins,
		&player.Losses, &player.Pushes, &player.Blackjacks,
	)

	if errors.Is(err, sql.ErrNoRows) {
		player.Bankroll = startingBankroll

		_, err = r.db.Exec(`
			INSERT INTO players (chat_id, bankroll)
			VALUES (?, ?)
		`, chatID, player.Bankroll)

		if err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
		return player, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (r *SQLiteRepository) Save(player *Player) error {
	_, err := r.db.Exec(`
		UPDATE players SET
			bankroll = ?, rounds = ?, wins = ?, losses = ?, pushes = ?,
			blackjacks = ?, updated_at = CURRENT_TIMESTAMP
		WHERE chat_id = ?
	`, player.Bankroll, player.Rounds, player.Wins, player.Losses,
		player.Pushes, player.Blackjacks, player.ChatID)

	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetTopByBankroll(limit int) ([]Stats, error) {
	rows, err := r.db.Query(`
		SELECT chat_id, bankroll, wins, rounds
		FROM players
		WHERE rounds > 0
		ORDER BY bankroll DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []Stats
	for rows.Next() {
		var s Stats
		if err := rows.Scan(&s.ChatID, &s.Bankroll, &s.Wins, &s.Rounds); err != nil {
			return nil, err
		}
		if s.Rounds > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Rounds) * 100
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// Record stores the result of a settled round. bankroll is the session
// bankroll after the payout.
func (p *Player) Record(outcome game.Outcome, bankroll float64) {
	p.Bankroll = bankroll
	p.Rounds++

	switch {
	case outcome.IsWin():
		p.Wins++
		if outcome == game.PlayerBlackjack {
			p.Blackjacks++
		}
	case outcome.IsLoss():
		p.Losses++
	default:
		p.Pushes++
	}
}

func (p *Player) WinRate() float64 {
	if p.Rounds == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Rounds) * 100
}
