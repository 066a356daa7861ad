package config

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/nahuelkryc0405/Black-Jack-Game/internal/game"
)

type Config struct {
	BotToken         string
	DatabasePath     string
	StartingBankroll float64
	FixedBet         float64
	DealerRule       game.Rule
	BlackjackPays    float64
	DeckPenetration  float64
	// ShuffleSeed is nil when the shuffle should be seeded from the clock.
	ShuffleSeed *int64
}

// Load reads the game settings from the environment and an optional .env file.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		DatabasePath: os.Getenv("DATABASE_PATH"),
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "./blackjack.db"
	}

	defaults := game.DefaultRules()
	var err error

	if cfg.StartingBankroll, err = floatEnv("STARTING_BANKROLL", defaults.StartingBankroll); err != nil {
		return nil, err
	}
	if cfg.FixedBet, err = floatEnv("FIXED_BET", defaults.FixedBet); err != nil {
		return nil, err
	}
	if cfg.BlackjackPays, err = floatEnv("BLACKJACK_PAYS", defaults.BlackjackPays); err != nil {
		return nil, err
	}
	if cfg.DeckPenetration, err = floatEnv("DECK_PENETRATION", game.DefaultPenetration); err != nil {
		return nil, err
	}

	if cfg.DealerRule, err = game.ParseRule(os.Getenv("DEALER_RULE")); err != nil {
		return nil, fmt.Errorf("DEALER_RULE: %w", err)
	}

	if v := os.Getenv("SHUFFLE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("SHUFFLE_SEED: %w", err)
		}
		cfg.ShuffleSeed = &seed
	}

	if err := cfg.Rules().Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadBot is Load plus the Telegram token check.
func LoadBot() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set")
	}
	return cfg, nil
}

func floatEnv(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func (c *Config) Rules() game.Rules {
	return game.Rules{
		DealerRule:       c.DealerRule,
		BlackjackPays:    c.BlackjackPays,
		FixedBet:         c.FixedBet,
		StartingBankroll: c.StartingBankroll,
	}
}

func (c *Config) Rand() *rand.Rand {
	seed := time.Now().UnixNano()
	if c.ShuffleSeed != nil {
		seed = *c.ShuffleSeed
	}
	return rand.New(rand.NewSource(seed))
}

// NewSession builds a session with the configured rules and deck penetration.
func (c *Config) NewSession() *game.Session {
	s := game.NewSession(c.Rules(), c.Rand())
	s.Deck().Penetration = c.DeckPenetration
	return s
}
