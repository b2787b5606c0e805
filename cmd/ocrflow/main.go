// ocrflow reconciles OCR transcriptions of scanned documents into clean text.
//
// In ensemble mode every subdirectory of the corpus holds one or more .txt
// transcriptions of the same source document; the tool sends them together to
// the generation backend and writes one reconciled <dir>-ensemble.txt per
// document. In polish mode every .txt file in the corpus is a single
// transcription that gets cleaned on its own, written under the output
// directory with the engine tag swapped (ABBYY_001.txt -> PROCESSED_001.txt).
//
// Usage:
//
//	ocrflow [-config config.yaml] [-mode ensemble|polish] [-watch]
//
// Flags:
//
//	-config string  Path to yaml configuration (default "config.yaml")
//	-mode string    Override the configured mode
//	-watch          Polish mode only: keep running and process new files
//	                as they are dropped into the corpus directory
//
// A batch run is fail-fast: the first unreadable file, empty document, or
// backend failure aborts the run with a nonzero exit status. Artifacts
// already written stay in place.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arkivtek/ocrflow/internal/config"
	"github.com/arkivtek/ocrflow/internal/driver"
	"github.com/arkivtek/ocrflow/internal/generator"
	"github.com/arkivtek/ocrflow/internal/logger"
	"github.com/arkivtek/ocrflow/internal/watcher"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to yaml configuration")
	mode := flag.String("mode", "", "override the configured mode (ensemble or polish)")
	watch := flag.Bool("watch", false, "polish mode only: process new files as they arrive")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *mode != "" {
		cfg.Mode = *mode
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid mode override: %v\n", err)
			os.Exit(1)
		}
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "OCR reconciliation pipeline")
	log.Info(ctx, "Mode: %s", cfg.Mode)
	log.Info(ctx, "Corpus: %s", cfg.Paths.Corpus)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Model: %s (max %d output tokens)", cfg.Gemini.Model, cfg.Gemini.MaxOutputTokens)

	apiKey, err := generator.KeyFromFile(cfg.Paths.APIKeyFile)
	if err != nil {
		log.Error(ctx, "Failed to read API key: %v", err)
		os.Exit(1)
	}

	gen, err := generator.New(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxOutputTokens)
	if err != nil {
		log.Error(ctx, "Failed to create generator: %v", err)
		os.Exit(1)
	}

	drv := driver.New(cfg, gen, log)

	if *watch {
		if cfg.Mode != config.ModePolish {
			log.Error(ctx, "-watch requires polish mode")
			os.Exit(1)
		}
		if err := runWatch(ctx, cfg, drv, log); err != nil {
			log.Error(ctx, "Watcher failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := drv.Run(ctx); err != nil {
		log.Error(ctx, "Batch failed: %v", err)
		os.Exit(1)
	}
}

// runWatch keeps the polish pipeline running until SIGINT or SIGTERM,
// processing transcription files as they are dropped into the corpus
// directory.
func runWatch(ctx context.Context, cfg *config.Config, drv driver.Driver, log logger.Logger) error {
	settle := time.Duration(cfg.Watch.SettleDelayMs) * time.Millisecond
	w, err := watcher.New(cfg.Paths.Corpus, drv.PolishFile, log, settle)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		// Start drains the in-flight handler before returning; wait for it
		// so an artifact being written is never cut off mid-file.
		if err := <-done; err != nil && err != context.Canceled {
			return err
		}
		return nil
	case err := <-done:
		if err == context.Canceled {
			return nil
		}
		return err
	}
}
