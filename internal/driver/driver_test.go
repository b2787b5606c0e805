package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arkivtek/ocrflow/internal/config"
	"github.com/arkivtek/ocrflow/internal/corpus"
	"github.com/arkivtek/ocrflow/internal/logger"
	"github.com/arkivtek/ocrflow/internal/prompt"
)

// echoGenerator concatenates the text of every user segment, standing in for
// the real backend.
type echoGenerator struct {
	calls int
	fail  error
}

func (g *echoGenerator) Generate(_ context.Context, payload prompt.Payload) (string, error) {
	g.calls++
	if g.fail != nil {
		return "", g.fail
	}
	var b strings.Builder
	for _, seg := range payload.Segments {
		if seg.Role == prompt.RoleUser {
			b.WriteString(seg.Text)
		}
	}
	return b.String(), nil
}

func testConfig(t *testing.T, mode, corpusDir, outputDir string) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Mode: mode,
		Paths: config.PathsConfig{
			Corpus:     corpusDir,
			Output:     outputDir,
			APIKeyFile: "unused",
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRunEnsemble(t *testing.T) {
	corpusDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	docDir := filepath.Join(corpusDir, "report1")
	if err := os.Mkdir(docDir, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(docDir, "a.txt"), "Hello wrold")
	writeFile(t, filepath.Join(docDir, "b.txt"), "Hello world")

	gen := &echoGenerator{}
	d := New(testConfig(t, config.ModeEnsemble, corpusDir, outputDir), gen, logger.New("error"))

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}

	out, err := os.ReadFile(filepath.Join(outputDir, "report1-ensemble.txt"))
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	for _, want := range []string{"Hello wrold", "Hello world"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("artifact does not contain %q", want)
		}
	}
}

func TestRunEnsembleEmptyDocumentAborts(t *testing.T) {
	corpusDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	if err := os.Mkdir(filepath.Join(corpusDir, "empty"), 0755); err != nil {
		t.Fatal(err)
	}

	gen := &echoGenerator{}
	d := New(testConfig(t, config.ModeEnsemble, corpusDir, outputDir), gen, logger.New("error"))

	err := d.Run(context.Background())

	var emptyErr *corpus.EmptyDocumentError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("Run() error = %v, want EmptyDocumentError", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times for empty document, want 0", gen.calls)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "empty-ensemble.txt")); !os.IsNotExist(err) {
		t.Error("artifact written for empty document")
	}
}

func TestRunMissingCorpusRootFailsBeforeGeneration(t *testing.T) {
	gen := &echoGenerator{}
	cfg := testConfig(t, config.ModeEnsemble, filepath.Join(t.TempDir(), "nope"), t.TempDir())
	d := New(cfg, gen, logger.New("error"))

	err := d.Run(context.Background())
	if !errors.Is(err, corpus.ErrCorpusNotFound) {
		t.Fatalf("Run() error = %v, want ErrCorpusNotFound", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times, want 0", gen.calls)
	}
}

func TestRunEnsembleFailFast(t *testing.T) {
	corpusDir := t.TempDir()
	for _, id := range []string{"doc1", "doc2"} {
		dir := filepath.Join(corpusDir, id)
		if err := os.Mkdir(dir, 0755); err != nil {
			t.Fatal(err)
		}
		writeFile(t, filepath.Join(dir, "a.txt"), "text")
	}

	gen := &echoGenerator{fail: errors.New("quota exceeded")}
	d := New(testConfig(t, config.ModeEnsemble, corpusDir, t.TempDir()), gen, logger.New("error"))

	err := d.Run(context.Background())
	if err == nil {
		t.Fatal("Run() should propagate the service failure")
	}
	if !strings.Contains(err.Error(), "doc1") {
		t.Errorf("error %q should name the failing document", err)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1 (no continuation after failure)", gen.calls)
	}
}

func TestRunPolish(t *testing.T) {
	corpusDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(corpusDir, "ABBYY_001.txt"), "rått OCR-utdrag")

	gen := &echoGenerator{}
	d := New(testConfig(t, config.ModePolish, corpusDir, outputDir), gen, logger.New("error"))

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out, err := os.ReadFile(filepath.Join(outputDir, "PROCESSED_001.txt"))
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	// The polish payload embeds the transcription twice; the echo generator
	// therefore returns it twice.
	if strings.Count(string(out), "rått OCR-utdrag") != 2 {
		t.Errorf("artifact = %q, want the transcription embedded twice", out)
	}
}

func TestPolishFile(t *testing.T) {
	corpusDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	path := filepath.Join(corpusDir, "ABBYY_007.txt")
	writeFile(t, path, "ny fil")

	d := New(testConfig(t, config.ModePolish, corpusDir, outputDir), &echoGenerator{}, logger.New("error"))

	if err := d.PolishFile(context.Background(), path); err != nil {
		t.Fatalf("PolishFile() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "PROCESSED_007.txt")); err != nil {
		t.Errorf("artifact missing: %v", err)
	}
}
