// Package processing implements the generation pipelines: build a prompt,
// call a completion backend, defensively parse the output, and normalize it
// into well-formed records.
package processing

import (
	"context"
	"log"

	"github.com/Biswa2Das/marketing-storyline/config"
	"github.com/Biswa2Das/marketing-storyline/llm"
)

// completeWithFallback runs a completion against the configured model,
// advancing through the fallback candidates on server-side errors only.
// Client-side failures (auth, rate-limit, bad request) surface immediately.
// The rendered prompt is reused unchanged for each candidate.
func completeWithFallback(ctx context.Context, client llm.Client, cfg *config.Config, req *llm.Request) (*llm.Completion, error) {
	candidates := append([]string{cfg.Model}, cfg.FallbackModels...)

	var lastErr error
	for i, model := range candidates {
		req.Model = model
		completion, err := client.Complete(ctx, req)
		if err == nil {
			return completion, nil
		}
		lastErr = err
		if !llm.IsServerError(err) {
			return nil, err
		}
		if i < len(candidates)-1 {
			log.Printf("Model %s failed with server error, trying %s: %v", model, candidates[i+1], err)
		}
	}
	return nil, lastErr
}
