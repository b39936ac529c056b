// Package llm talks to the Generative Language API.
package llm

import (
	"context"
	"errors"
)

var (
	ErrAPIKeyMissing = errors.New("GEMINI_API_KEY is not set")
	ErrEmptyResponse = errors.New("gemini returned no content")
)

// Generator produces the model's text answer for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
