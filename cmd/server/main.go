// Package main is the entry point for the catalog service.
//
// The service exposes the jewelry product catalog with prices computed per
// request from a live gold price quote.
package main

import (
	"github.com/rs/zerolog/log"
	"github.com/talhanuhuymaz/Renart-Case/config"
	"github.com/talhanuhuymaz/Renart-Case/internal/app"
)

func main() {
	cfg := config.Load()

	router, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization failed")
	}

	server := app.NewServer(router, cfg.Server.Port)
	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
