package watcher

import "context"

// Watcher monitors the polish corpus directory and runs the pipeline for
// every transcription file dropped into it.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly created transcription file.
type EventHandler func(ctx context.Context, filePath string) error
