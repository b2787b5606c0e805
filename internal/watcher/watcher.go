package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/arkivtek/ocrflow/internal/logger"
)

type implWatcher struct {
	inputDir    string
	handler     EventHandler
	logger      logger.Logger
	watcher     *fsnotify.Watcher
	settleDelay time.Duration
	wg          sync.WaitGroup
	busy        chan struct{}
}

// Start begins monitoring the input directory for new transcription files.
// Files are handled one at a time; the generation backend gets a single
// in-flight request, same as a batch run.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching for transcriptions in: %s", w.inputDir)
	w.busy = make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isTranscriptionFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-transcription file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New transcription detected: %s", event.Name)

			select {
			case w.busy <- struct{}{}:
				w.wg.Add(1)
				go func(filePath string) {
					defer w.wg.Done()
					defer func() { <-w.busy }()

					// Let the file finish being copied in before reading
					// it. Sleeping here keeps the event loop draining while
					// the file settles.
					time.Sleep(w.settleDelay)

					if err := w.handler(ctx, filePath); err != nil {
						w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
					}
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isTranscriptionFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(path), ".txt")
}
