// Package gemini implements docscout.Completer using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/docscout"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements docscout.Completer at compile time.
var _ docscout.Completer = (*Completer)(nil)

// Completer sends prompts to a Gemini model and returns the raw text of
// the response. Parsing is left to the caller.
type Completer struct {
	client      *genai.Client
	model       string
	temperature float32
}

// Option configures a Completer.
type Option func(*Completer)

// WithModel overrides the model name.
func WithModel(model string) Option {
	return func(c *Completer) { c.model = model }
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float32) Option {
	return func(c *Completer) { c.temperature = t }
}

// NewCompleter creates a new Completer over the given client.
func NewCompleter(client *genai.Client, opts ...Option) *Completer {
	c := &Completer{client: client, model: DefaultModel, temperature: 0.1}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends the prompt and returns the model's text response.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", docscout.Errorf(docscout.EINVALID, "prompt required")
	}

	config := &genai.GenerateContentConfig{
		Temperature: &c.temperature,
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", docscout.Errorf(docscout.EUNAVAILABLE, "gemini request failed: %v", err)
	}
	if result == nil {
		return "", docscout.Errorf(docscout.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}
