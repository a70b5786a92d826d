// Package report builds the monthly financial report prompt and talks to the
// language-model provider that turns it into reader-facing text.
package report

import "context"

// Generator produces free-form report text from a prompt. It is an opaque
// external service: given the numbers, it returns a string.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
