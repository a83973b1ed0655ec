package main

import (
	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source locations only in dev
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)

	logger.InitLogger(loggerConfig)
}
