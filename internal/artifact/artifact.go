package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsembleName derives the output filename for a reconciled document.
func EnsembleName(documentID string) string {
	return documentID + "-ensemble.txt"
}

// PolishName derives the output filename for a polished transcription by
// swapping the OCR engine tag for the processed tag, e.g.
// ABBYY_001.txt -> PROCESSED_001.txt.
func PolishName(filename, inputTag, outputTag string) string {
	return strings.ReplaceAll(filename, inputTag, outputTag)
}

// Write persists generated text under outputRoot/name as UTF-8, creating the
// output directory as needed. An existing artifact at the same path is
// replaced; reruns are expected to overwrite.
func Write(outputRoot, name, content string) (string, error) {
	if err := os.MkdirAll(outputRoot, 0755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", outputRoot, err)
	}

	path := filepath.Join(outputRoot, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write artifact %s: %w", path, err)
	}
	return path, nil
}
