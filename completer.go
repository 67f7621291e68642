package docscout

import "context"

// Completer sends a prompt to a text-completion model and returns the raw
// response text. The pipeline is agnostic to which backend answers as long
// as it returns plain text synchronously or fails.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
