package main

import (
	"log/slog"
	"os"

	"github.com/plus3/trispin/window"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := window.DefaultConfig()
	cfg.Logger = logger
	cfg.Loop.Logger = logger

	if err := window.Run(cfg); err != nil {
		logger.Error("trispin failed", "err", err)
		os.Exit(1)
	}
}
