package llm

import "context"

// CompletionProvider generates a reply for an assembled prompt. It is the
// single external call in the chat pipeline and is injected so tests can
// substitute a deterministic implementation.
type CompletionProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
