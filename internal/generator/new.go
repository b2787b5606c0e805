package generator

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

type implGenerator struct {
	client          *genai.Client
	model           string
	maxOutputTokens int32
}

// New creates a Generator backed by the Gemini API.
func New(ctx context.Context, apiKey, model string, maxOutputTokens int32) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &ServiceError{Op: "create client", Err: err}
	}

	return &implGenerator{
		client:          client,
		model:           model,
		maxOutputTokens: maxOutputTokens,
	}, nil
}

// KeyFromFile reads the API key from a plaintext file, trimming whitespace.
func KeyFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read API key file %s: %w", path, err)
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("API key file %s is empty", path)
	}
	return key, nil
}
