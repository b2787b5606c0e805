package generator

import (
	"context"

	"github.com/arkivtek/ocrflow/internal/prompt"
)

// Generator sends a composed payload to the text-generation backend and
// returns the generated reconstruction.
type Generator interface {
	Generate(ctx context.Context, payload prompt.Payload) (string, error)
}
