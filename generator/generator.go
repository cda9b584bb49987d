package generator

import (
	"context"
	"errors"
)

var (
	ErrGenerationFailed = errors.New("generation failed")
)

// Generator sends a prompt to a text-generation service. Failures wrap
// ErrGenerationFailed.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
