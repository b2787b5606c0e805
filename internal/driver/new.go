package driver

import (
	"github.com/arkivtek/ocrflow/internal/config"
	"github.com/arkivtek/ocrflow/internal/generator"
	"github.com/arkivtek/ocrflow/internal/logger"
)

type implDriver struct {
	cfg       *config.Config
	generator generator.Generator
	logger    logger.Logger
}

// New creates a Driver for the configured mode.
func New(cfg *config.Config, gen generator.Generator, log logger.Logger) Driver {
	return &implDriver{
		cfg:       cfg,
		generator: gen,
		logger:    log,
	}
}
