package llm

import "context"

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// Concrete providers live in subpackages.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
