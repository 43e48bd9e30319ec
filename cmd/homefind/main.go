package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/lagoshomes/homefind/internal/homefind/app"
)

func main() {
	// Local development convenience, missing .env is fine
	_ = godotenv.Load()

	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
