package llm

import "context"

//go:generate mockgen -source=client.go -destination=../mocks/llm_client_mock.go -package=mocks

// Client produces a single text completion for a prompt.
type Client interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
