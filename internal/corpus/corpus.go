package corpus

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

// Document is a handle to one logical document in the corpus: a subdirectory
// of candidate transcriptions in ensemble mode, a single file in polish mode.
type Document struct {
	ID   string // subdirectory name or filename
	Path string
	Dir  bool
}

// ListDocuments enumerates the logical documents of an ensemble corpus: every
// subdirectory of corpusRoot is one document. Results are sorted by ID so a
// batch visits documents in a stable order.
func ListDocuments(corpusRoot string) ([]Document, error) {
	entries, err := readRoot(corpusRoot)
	if err != nil {
		return nil, err
	}

	var docs []Document
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		docs = append(docs, Document{
			ID:   e.Name(),
			Path: filepath.Join(corpusRoot, e.Name()),
			Dir:  true,
		})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// ListFiles enumerates the logical documents of a polish corpus: every regular
// .txt file directly under corpusRoot is one document.
func ListFiles(corpusRoot string) ([]Document, error) {
	entries, err := readRoot(corpusRoot)
	if err != nil {
		return nil, err
	}

	var docs []Document
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if !isTextFile(e.Name()) {
			continue
		}
		docs = append(docs, Document{
			ID:   e.Name(),
			Path: filepath.Join(corpusRoot, e.Name()),
		})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// Candidates loads the candidate transcriptions of one document, decoded to
// UTF-8. For a directory handle it reads every .txt file inside, filenames
// sorted lexicographically so label numbering is deterministic across
// filesystems. A directory document with zero readable candidates is an
// EmptyDocumentError, not an empty slice.
func Candidates(doc Document) ([]string, error) {
	if !doc.Dir {
		text, err := readText(doc.Path)
		if err != nil {
			return nil, err
		}
		return []string{text}, nil
	}

	entries, err := os.ReadDir(doc.Path)
	if err != nil {
		return nil, fmt.Errorf("read document directory %s: %w", doc.Path, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if isTextFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, &EmptyDocumentError{Document: doc.ID}
	}

	candidates := make([]string, 0, len(names))
	for _, name := range names {
		text, err := readText(filepath.Join(doc.Path, name))
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, text)
	}
	return candidates, nil
}

func readRoot(corpusRoot string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(corpusRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCorpusNotFound, corpusRoot)
		}
		return nil, fmt.Errorf("read corpus root %s: %w", corpusRoot, err)
	}
	return entries, nil
}

func isTextFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".txt")
}

// readText reads one candidate file and decodes it to UTF-8. OCR engines emit
// whatever encoding they please, so the charset is sniffed per file from the
// raw bytes rather than assumed.
func readText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read candidate file %s: %w", path, err)
	}
	text, err := decodeText(raw)
	if err != nil {
		return "", &UnreadableFileError{Path: path, Err: err}
	}
	return text, nil
}

func decodeText(raw []byte) (string, error) {
	// Already valid UTF-8 (the common case, and what the fixtures use).
	if utf8.Valid(raw) {
		return string(raw), nil
	}

	enc, name, _ := charset.DetermineEncoding(raw, "text/plain")
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode as %s: %w", name, err)
	}
	// The decoders substitute U+FFFD for unmappable input instead of
	// failing. A replacement rune the raw bytes didn't carry means the file
	// is not text under the detected encoding; refuse it rather than feed
	// mojibake to the generator.
	if bytes.ContainsRune(decoded, utf8.RuneError) && !bytes.Contains(raw, []byte("�")) {
		return "", fmt.Errorf("decode as %s: undecodable bytes", name)
	}
	return string(decoded), nil
}
