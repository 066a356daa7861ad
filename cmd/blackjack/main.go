package main

import (
	"io"
	"log"
	"os"

	"github.com/nahuelkryc0405/Black-Jack-Game/internal/cli"
	"github.com/nahuelkryc0405/Black-Jack-Game/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// round logs would interleave with the table
	if os.Getenv("BLACKJACK_DEBUG") == "" {
		log.SetOutput(io.Discard)
	}

	if err := cli.Run(cfg.NewSession(), os.Stdin, os.Stdout); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Game error: %v", err)
	}
}
