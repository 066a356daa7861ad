package main

import (
	"log"

	"github.com/nahuelkryc0405/Black-Jack-Game/internal/bot"
	"github.com/nahuelkryc0405/Black-Jack-Game/internal/config"
	"github.com/nahuelkryc0405/Black-Jack-Game/internal/database"
	"github.com/nahuelkryc0405/Black-Jack-Game/internal/player"
)

func main() {
	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Database connected")

	playerRepo := player.NewRepository(db.DB)

	b, err := bot.New(cfg, playerRepo)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	if err := b.Run(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
