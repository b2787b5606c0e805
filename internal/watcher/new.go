package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/arkivtek/ocrflow/internal/logger"
)

// New creates a Watcher on inputDir. settleDelay is how long to wait after a
// create event before reading the file, so a transcription still being copied
// in is not picked up half-written.
func New(inputDir string, handler EventHandler, log logger.Logger, settleDelay time.Duration) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inputDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir:    inputDir,
		handler:     handler,
		logger:      log,
		watcher:     fsw,
		settleDelay: settleDelay,
	}, nil
}
