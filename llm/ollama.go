package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OllamaClient talks to a locally hosted Ollama server.
type OllamaClient struct {
	host       string
	model      string
	httpClient *http.Client
}

// NewOllamaClient creates a client for an Ollama server. The host defaults
// to the standard local address.
func NewOllamaClient(host, model string, timeout time.Duration) *OllamaClient {
	if host == "" {
		host = "http://localhost:11434"
	}
	return &OllamaClient{
		host:  host,
		model: model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (o *OllamaClient) Name() string { return "ollama" }

// Ping checks that the local server is up before any generation runs.
func (o *OllamaClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", o.host+"/api/tags", nil)
	if err != nil {
		return err
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindUnreachable, Message: fmt.Sprintf("cannot connect to Ollama at %s", o.host), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &Error{Kind: KindUnreachable, Message: fmt.Sprintf("ollama returned status %d", resp.StatusCode)}
	}
	return nil
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []Message       `json:"messages"`
	Stream   bool            `json:"stream"`
	Format   json.RawMessage `json:"format,omitempty"`
	Options  *ollamaOptions  `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
	TopP        float64 `json:"top_p,omitempty"`
}

type ollamaChatResponse struct {
	Model      string  `json:"model"`
	Message    Message `json:"message"`
	Done       bool    `json:"done"`
	DoneReason string  `json:"done_reason,omitempty"`
	PromptEval int     `json:"prompt_eval_count,omitempty"`
	EvalCount  int     `json:"eval_count,omitempty"`
}

func (o *OllamaClient) Complete(ctx context.Context, req *Request) (*Completion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = o.model
	}

	ollamaReq := ollamaChatRequest{
		Model:    model,
		Messages: req.Messages,
		Stream:   false,
		Options: &ollamaOptions{
			Temperature: req.Temperature,
			NumPredict:  req.MaxTokens,
			TopP:        req.TopP,
		},
	}

	// Ollama enforces structured output through the format field.
	if req.Schema != nil {
		raw, err := json.Marshal(req.Schema.Schema)
		if err != nil {
			return nil, badRequest("invalid response schema: " + err.Error())
		}
		ollamaReq.Format = raw
	}

	body, err := json.Marshal(ollamaReq)
	if err != nil {
		return nil, badRequest("marshaling request: " + err.Error())
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.host+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, badRequest("creating request: " + err.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, wrapTransport("ollama", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, &Error{
			Kind:    kindForStatus(resp.StatusCode),
			Message: fmt.Sprintf("ollama error (status %d): %s", resp.StatusCode, string(respBody)),
		}
	}

	var ollamaResp ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&ollamaResp); err != nil {
		return nil, &Error{Kind: KindServer, Message: "failed to decode ollama response", Err: err}
	}

	return &Completion{
		Content: ollamaResp.Message.Content,
		Model:   ollamaResp.Model,
		Usage: Usage{
			PromptTokens:     ollamaResp.PromptEval,
			CompletionTokens: ollamaResp.EvalCount,
			TotalTokens:      ollamaResp.PromptEval + ollamaResp.EvalCount,
		},
	}, nil
}
