package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/docchat/internal/config"
	"github.com/nfrund/docchat/internal/logging"
	"github.com/nfrund/docchat/internal/server"
)

func main() {
	cfg := config.New() // Loads .env before the logger reads LOG_FORMAT.
	logging.New()

	s, err := server.New(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	if err := s.Start(cfg.GetServerAddr()); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
