package processing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/Biswa2Das/marketing-storyline/cache"
	"github.com/Biswa2Das/marketing-storyline/config"
	"github.com/Biswa2Das/marketing-storyline/llm"
	"github.com/Biswa2Das/marketing-storyline/models"
)

// Generation parameters for storylines: higher temperature favors more
// creative copy, and the package needs room for every section.
const (
	storylineTemperature = 0.8
	storylineMaxTokens   = 3000
	taglineTemperature   = 0.7
	taglineMaxTokens     = 1000
)

// StoryGenerator produces marketing storyline packages and compact
// tagline/narrative storylines.
type StoryGenerator struct {
	client    llm.Client
	cfg       *config.Config
	cache     cache.Cache
	extractor *FeatureExtractor
}

// NewStoryGenerator creates a generator. The extractor supplies features
// when a request carries none; the cache may be nil.
func NewStoryGenerator(client llm.Client, cfg *config.Config, c cache.Cache, extractor *FeatureExtractor) *StoryGenerator {
	return &StoryGenerator{client: client, cfg: cfg, cache: c, extractor: extractor}
}

// Generate runs the storyline pipeline: validate, resolve features, check
// cache, prompt, complete, parse, normalize, cache.
func (g *StoryGenerator) Generate(ctx context.Context, req *models.StorylineRequest) (*models.StorylinePackage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	features := req.Features
	if len(features) == 0 {
		log.Println("No features provided, extracting from product prompt")
		extracted, err := g.extractor.Extract(ctx, &models.ExtractRequest{
			ProductPrompt: req.ProductPrompt,
			MaxFeatures:   models.Int(models.DefaultMaxFeatures),
		})
		if err != nil {
			return nil, err
		}
		features = extracted
	}

	key := storylineCacheKey(req, features)
	pkg, cached, err := cache.GetOrCompute(ctx, g.cache, key, func() (*models.StorylinePackage, error) {
		return g.generate(ctx, req, features)
	})
	if err != nil {
		return nil, err
	}
	if cached {
		log.Println("Returning cached storyline generation result")
	}
	return pkg, nil
}

// storylineCacheKey hashes the semantically relevant request parameters:
// the prompt, a feature summary, and the tone/length/audience knobs.
func storylineCacheKey(req *models.StorylineRequest, features []models.Feature) string {
	summaries := make([]string, 0, len(features))
	for _, f := range features {
		summaries = append(summaries, f.Name+":"+string(f.Type))
	}
	audience := req.Audience
	if audience == "" {
		audience = "default"
	}
	return cache.Key("storyline",
		req.ProductPrompt,
		strings.Join(summaries, "|"),
		string(req.Tone),
		string(req.Length),
		audience,
	)
}

func (g *StoryGenerator) generate(ctx context.Context, req *models.StorylineRequest, features []models.Feature) (*models.StorylinePackage, error) {
	prompt := BuildStorylinePrompt(req.ProductPrompt, features, req.Tone, req.Length, req.Audience)

	log.Printf("Generating storyline with tone=%q, length=%q", req.Tone, req.Length)
	completion, err := completeWithFallback(ctx, g.client, g.cfg, &llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: fmt.Sprintf(storylineSystemFormat, req.Tone)},
			{Role: "user", Content: prompt},
		},
		Temperature: storylineTemperature,
		MaxTokens:   storylineMaxTokens,
		TopP:        g.cfg.TopP,
	})
	if err != nil {
		return nil, fmt.Errorf("storyline generation failed: %w", err)
	}

	raw, err := ExtractJSONObject(completion.Content)
	if err != nil {
		return nil, fmt.Errorf("storyline generation failed: %w", err)
	}

	var pkg models.StorylinePackage
	if err := json.Unmarshal(raw, &pkg); err != nil {
		return nil, fmt.Errorf("storyline generation failed: %w", err)
	}

	// Missing fields in an otherwise well-shaped object are repaired, not
	// surfaced as errors.
	NormalizeStoryline(&pkg, req.Length)

	log.Println("Successfully generated marketing storyline")
	return &pkg, nil
}

// GenerateStoryline produces the compact tagline/narrative storyline used
// to hand off to scene generation. Word budgets are enforced after parsing.
func (g *StoryGenerator) GenerateStoryline(ctx context.Context, productInput string) (*models.Storyline, error) {
	productInput = strings.TrimSpace(productInput)
	if productInput == "" {
		return nil, &models.ValidationError{Field: "product_prompt", Message: "product prompt cannot be empty or only whitespace"}
	}

	key := cache.Key("tagline", productInput)
	storyline, cached, err := cache.GetOrCompute(ctx, g.cache, key, func() (*models.Storyline, error) {
		return g.generateStoryline(ctx, productInput)
	})
	if err != nil {
		return nil, err
	}
	if cached {
		log.Println("Returning cached storyline result")
	}
	return storyline, nil
}

func (g *StoryGenerator) generateStoryline(ctx context.Context, productInput string) (*models.Storyline, error) {
	prompt := BuildTaglinePrompt(productInput)

	completion, err := completeWithFallback(ctx, g.client, g.cfg, &llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: taglineSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: taglineTemperature,
		MaxTokens:   taglineMaxTokens,
		TopP:        g.cfg.TopP,
	})
	if err != nil {
		return nil, fmt.Errorf("storyline generation failed: %w", err)
	}

	tagline, narrative := ParseLabeledStoryline(completion.Content)

	return &models.Storyline{
		Tagline:   ClampTagline(tagline),
		Narrative: ClampNarrative(narrative),
		Model:     completion.Model,
		Success:   true,
	}, nil
}
