package driver

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/arkivtek/ocrflow/internal/artifact"
	"github.com/arkivtek/ocrflow/internal/config"
	"github.com/arkivtek/ocrflow/internal/corpus"
	"github.com/arkivtek/ocrflow/internal/prompt"
)

// Run processes every logical document in the corpus, strictly sequentially,
// one blocking generation call per document. Any failure aborts the whole
// batch and propagates with the failing document named; completed artifacts
// from earlier in the run stay on disk.
func (d *implDriver) Run(ctx context.Context) error {
	switch d.cfg.Mode {
	case config.ModePolish:
		return d.runPolish(ctx)
	default:
		return d.runEnsemble(ctx)
	}
}

func (d *implDriver) runEnsemble(ctx context.Context) error {
	docs, err := corpus.ListDocuments(d.cfg.Paths.Corpus)
	if err != nil {
		return err
	}
	d.logger.Info(ctx, "Found %d documents in %s", len(docs), d.cfg.Paths.Corpus)

	for i, doc := range docs {
		d.logger.Info(ctx, "[%d/%d] Reconciling: %s", i+1, len(docs), doc.ID)

		candidates, err := corpus.Candidates(doc)
		if err != nil {
			return fmt.Errorf("document %s: %w", doc.ID, err)
		}

		payload := prompt.BuildEnsemble(candidates)
		text, err := d.generator.Generate(ctx, payload)
		if err != nil {
			return fmt.Errorf("document %s: %w", doc.ID, err)
		}

		path, err := artifact.Write(d.cfg.Paths.Output, artifact.EnsembleName(doc.ID), text)
		if err != nil {
			return fmt.Errorf("document %s: %w", doc.ID, err)
		}
		d.logger.Info(ctx, "[%d/%d] Wrote: %s (%d candidates)", i+1, len(docs), path, len(candidates))
	}

	d.logger.Info(ctx, "DONE")
	return nil
}

func (d *implDriver) runPolish(ctx context.Context) error {
	docs, err := corpus.ListFiles(d.cfg.Paths.Corpus)
	if err != nil {
		return err
	}
	d.logger.Info(ctx, "Found %d transcriptions in %s", len(docs), d.cfg.Paths.Corpus)

	for i, doc := range docs {
		d.logger.Info(ctx, "[%d/%d] Polishing: %s", i+1, len(docs), doc.ID)
		if err := d.PolishFile(ctx, doc.Path); err != nil {
			return err
		}
	}

	d.logger.Info(ctx, "DONE")
	return nil
}

// PolishFile runs the polish pipeline for one transcription file: load,
// compose, generate, write. Used per document by the batch loop and per
// created file by watch mode.
func (d *implDriver) PolishFile(ctx context.Context, path string) error {
	name := filepath.Base(path)

	candidates, err := corpus.Candidates(corpus.Document{ID: name, Path: path})
	if err != nil {
		return fmt.Errorf("transcription %s: %w", name, err)
	}

	payload := prompt.BuildPolish(candidates[0])
	text, err := d.generator.Generate(ctx, payload)
	if err != nil {
		return fmt.Errorf("transcription %s: %w", name, err)
	}

	outName := artifact.PolishName(name, d.cfg.Polish.InputTag, d.cfg.Polish.OutputTag)
	outPath, err := artifact.Write(d.cfg.Paths.Output, outName, text)
	if err != nil {
		return fmt.Errorf("transcription %s: %w", name, err)
	}

	d.logger.Info(ctx, "Wrote: %s", outPath)
	return nil
}
