package synth

import "context"

// Provider generates answer text from a fully rendered prompt.
// Implementations must be thread-safe for concurrent use.
type Provider interface {
	// Synthesize sends the prompt to the underlying model and returns
	// the generated text. Returns an error if generation fails; the
	// synthesizer then moves on to the next provider in its chain.
	Synthesize(ctx context.Context, prompt string) (string, error)

	// Name identifies the provider for attribution in answers.
	Name() string
}
