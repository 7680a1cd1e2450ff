package llm

import (
	"context"
	"fmt"
)

// Message is a single role-tagged chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseSchema asks the backend to constrain output to a JSON schema.
// Backends that cannot enforce schemas ignore it; callers must still parse
// defensively.
type ResponseSchema struct {
	Name   string
	Schema interface{}
	Strict bool
}

// Request carries one completion call to a backend.
type Request struct {
	Model            string
	Messages         []Message
	Temperature      float64
	MaxTokens        int
	TopP             float64
	PresencePenalty  float64
	FrequencyPenalty float64
	Schema           *ResponseSchema
}

// Usage tracks token counts reported by the backend.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Completion is the raw result of one request/response round-trip.
// Mock is set when the content came from the canned development backend
// rather than a live call.
type Completion struct {
	Content string
	Model   string
	Usage   Usage
	Mock    bool
}

// Client is an opaque text-completion backend. Implementations must return
// a *Error for every failure so callers can branch on the error kind.
type Client interface {
	Name() string
	Complete(ctx context.Context, req *Request) (*Completion, error)
	Ping(ctx context.Context) error
}

// Validate checks parameter bounds before a request is sent.
func (r *Request) Validate() error {
	var hasSystem, hasUser bool
	for _, m := range r.Messages {
		switch m.Role {
		case "system":
			hasSystem = true
		case "user":
			hasUser = true
		}
	}
	if !hasSystem || !hasUser {
		return badRequest("request must include a system and a user message")
	}
	if r.Temperature < 0 || r.Temperature > 2 {
		return badRequest(fmt.Sprintf("temperature %v out of range [0,2]", r.Temperature))
	}
	if r.MaxTokens < 1 {
		return badRequest(fmt.Sprintf("max_tokens %d must be at least 1", r.MaxTokens))
	}
	if r.TopP < 0 || r.TopP > 1 {
		return badRequest(fmt.Sprintf("top_p %v out of range [0,1]", r.TopP))
	}
	if r.PresencePenalty < -2 || r.PresencePenalty > 2 {
		return badRequest(fmt.Sprintf("presence_penalty %v out of range [-2,2]", r.PresencePenalty))
	}
	if r.FrequencyPenalty < -2 || r.FrequencyPenalty > 2 {
		return badRequest(fmt.Sprintf("frequency_penalty %v out of range [-2,2]", r.FrequencyPenalty))
	}
	return nil
}
