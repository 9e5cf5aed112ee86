package llm

import "context"

type Message struct {
	Role    string
	Content string
}

// Vision is a transient image attachment for a single request. It is never
// cached; only the resolved URL and the accompanying caption travel with the
// request.
type Vision struct {
	ImageURL string
	Text     string
}

// Request carries everything one completion call needs. Context holds prior
// turns oldest first and must not include the active query itself.
type Request struct {
	SystemPrompt string
	Context      []Message
	UserText     string
	Vision       *Vision
}

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type Client interface {
	Generate(ctx context.Context, req Request) (Response, error)
}
