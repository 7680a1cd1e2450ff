package processing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Biswa2Das/marketing-storyline/cache"
	"github.com/Biswa2Das/marketing-storyline/config"
	"github.com/Biswa2Das/marketing-storyline/llm"
	"github.com/Biswa2Das/marketing-storyline/models"
)

// Generation parameters for extraction: lower temperature keeps the output
// consistent across runs.
const (
	extractionTemperature = 0.3
	extractionMaxTokens   = 2000
)

// FeatureExtractor extracts, deduplicates, and ranks marketing features
// from product descriptions.
type FeatureExtractor struct {
	client llm.Client
	cfg    *config.Config
	cache  cache.Cache
}

// NewFeatureExtractor creates an extractor. The cache may be nil.
func NewFeatureExtractor(client llm.Client, cfg *config.Config, c cache.Cache) *FeatureExtractor {
	return &FeatureExtractor{client: client, cfg: cfg, cache: c}
}

// parsedFeature tolerates partially-populated model output; missing fields
// receive defaults before validation.
type parsedFeature struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	ImportanceRank int      `json:"importance_rank"`
	Confidence     *float64 `json:"confidence"`
	ExamplePhrase  string   `json:"example_phrase"`
}

// Extract runs the feature-extraction pipeline: validate, check cache,
// prompt, complete, parse, default-fill, dedupe, rank, cache.
func (e *FeatureExtractor) Extract(ctx context.Context, req *models.ExtractRequest) ([]models.Feature, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key := cache.Key("extract", req.ProductPrompt, fmt.Sprint(*req.MaxFeatures))
	features, cached, err := cache.GetOrCompute(ctx, e.cache, key, func() ([]models.Feature, error) {
		return e.extract(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	if cached {
		log.Println("Returning cached feature extraction result")
	}
	return features, nil
}

func (e *FeatureExtractor) extract(ctx context.Context, req *models.ExtractRequest) ([]models.Feature, error) {
	prompt := BuildExtractionPrompt(req.ProductPrompt, *req.MaxFeatures)

	log.Printf("Extracting features for product: %.100s...", req.ProductPrompt)
	completion, err := completeWithFallback(ctx, e.client, e.cfg, &llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: extractionSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: extractionTemperature,
		MaxTokens:   extractionMaxTokens,
		TopP:        e.cfg.TopP,
	})
	if err != nil {
		return nil, fmt.Errorf("feature extraction failed: %w", err)
	}

	raw, err := ExtractJSONArray(completion.Content)
	if err != nil {
		return nil, fmt.Errorf("feature extraction failed: %w", err)
	}

	var parsed []parsedFeature
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("feature extraction failed: %w", err)
	}

	if len(parsed) > *req.MaxFeatures {
		parsed = parsed[:*req.MaxFeatures]
	}

	features := make([]models.Feature, 0, len(parsed))
	for i, p := range parsed {
		f, ok := buildFeature(p, i)
		if !ok {
			log.Printf("Skipping invalid feature data at index %d", i)
			continue
		}
		features = append(features, f)
	}

	features = DedupeFeatures(features)
	features = RankFeatures(features)

	log.Printf("Successfully extracted %d features", len(features))
	return features, nil
}

// buildFeature fills defaults for absent fields and rejects records that
// cannot be repaired.
func buildFeature(p parsedFeature, idx int) (models.Feature, bool) {
	if p.ID == "" {
		p.ID = fmt.Sprintf("f%d", idx+1)
	}
	if p.ImportanceRank <= 0 {
		p.ImportanceRank = idx + 1
	}
	confidence := 0.8
	if p.Confidence != nil {
		confidence = *p.Confidence
	}

	if p.Name == "" {
		return models.Feature{}, false
	}
	if !models.ValidFeatureType(models.FeatureType(p.Type)) {
		return models.Feature{}, false
	}
	if confidence < 0 || confidence > 1 {
		return models.Feature{}, false
	}

	return models.Feature{
		ID:             p.ID,
		Name:           p.Name,
		Type:           models.FeatureType(p.Type),
		ImportanceRank: p.ImportanceRank,
		Confidence:     confidence,
		ExamplePhrase:  p.ExamplePhrase,
	}, true
}
