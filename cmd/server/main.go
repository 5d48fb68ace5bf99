package main

import (
	"log/slog"
	"os"

	"github.com/nfrund/cbt/internal/config"
	"github.com/nfrund/cbt/internal/logging"
	"github.com/nfrund/cbt/internal/server"
)

func main() {
	cfg := config.New()
	logging.New()

	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
