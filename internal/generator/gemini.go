package generator

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/arkivtek/ocrflow/internal/prompt"
)

// Generate sends the payload to Gemini as one blocking round-trip and returns
// the generated text. There is no retry and no internal timeout; cancellation
// and deadlines belong to the caller's context. Every failure comes back as a
// ServiceError.
func (g *implGenerator) Generate(ctx context.Context, payload prompt.Payload) (string, error) {
	system, contents := splitPayload(payload)

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: g.maxOutputTokens,
	}
	if system != nil {
		config.SystemInstruction = system
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", &ServiceError{Op: "generate content", Err: err}
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", &ServiceError{Op: "generate content", Err: fmt.Errorf("empty response")}
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", &ServiceError{Op: "generate content", Err: fmt.Errorf("response contains no text parts")}
	}
	return text, nil
}

// splitPayload maps the role-tagged payload onto the Gemini request shape:
// the system segment becomes the system instruction, every other segment
// becomes one user content block, order preserved.
func splitPayload(payload prompt.Payload) (*genai.Content, []*genai.Content) {
	var system *genai.Content
	var contents []*genai.Content

	for _, seg := range payload.Segments {
		if seg.Role == prompt.RoleSystem && system == nil {
			system = genai.NewContentFromText(seg.Text, genai.RoleUser)
			continue
		}
		contents = append(contents, genai.NewContentFromText(seg.Text, genai.RoleUser))
	}
	return system, contents
}
