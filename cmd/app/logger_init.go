package main

import (
	"github.com/ghostcity-rp/companion/internal/config"
	"github.com/ghostcity-rp/companion/internal/logger"
)

const serviceName = "companion-api"

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Determine if we should add source info (only in dev)
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: serviceName,
		Environment: cfg.Environment,
		AddSource:   addSource,
	})
}
