package processing

import (
	"context"
	"fmt"
	"log"

	"github.com/invopop/jsonschema"

	"github.com/Biswa2Das/marketing-storyline/cache"
	"github.com/Biswa2Das/marketing-storyline/config"
	"github.com/Biswa2Das/marketing-storyline/llm"
	"github.com/Biswa2Das/marketing-storyline/models"
)

// sceneBreakdown is the structured-output shape for scene generation.
type sceneBreakdown struct {
	Scenes []models.Scene `json:"scenes" jsonschema_description:"Ordered list of scenes that make up the commercial"`
}

// GenerateSchema generates a JSON schema for structured outputs.
func GenerateSchema[T any]() interface{} {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// sceneBreakdownSchema is the cached schema.
var sceneBreakdownSchema = GenerateSchema[sceneBreakdown]()

// SceneGenerator turns a storyline into a video scene breakdown.
type SceneGenerator struct {
	client llm.Client
	cfg    *config.Config
	cache  cache.Cache
}

// NewSceneGenerator creates a scene generator. The cache may be nil.
func NewSceneGenerator(client llm.Client, cfg *config.Config, c cache.Cache) *SceneGenerator {
	return &SceneGenerator{client: client, cfg: cfg, cache: c}
}

// Generate runs the scene pipeline: validate, check cache, prompt, complete
// with a schema constraint, parse tolerantly, renumber, cache.
//
// The scene count is requested from the model but not enforced; callers get
// however many scenes it produced, renumbered 1..N.
func (g *SceneGenerator) Generate(ctx context.Context, req *models.SceneRequest) ([]models.Scene, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key := cache.Key("scenes",
		req.Storyline.Tagline,
		req.Storyline.Narrative,
		fmt.Sprint(req.NumScenes),
		req.VideoLength,
	)
	scenes, cached, err := cache.GetOrCompute(ctx, g.cache, key, func() ([]models.Scene, error) {
		return g.generate(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	if cached {
		log.Println("Returning cached scene generation result")
	}
	return scenes, nil
}

func (g *SceneGenerator) generate(ctx context.Context, req *models.SceneRequest) ([]models.Scene, error) {
	prompt := BuildScenePrompt(req.Storyline, req.NumScenes, req.VideoLength)

	completion, err := completeWithFallback(ctx, g.client, g.cfg, &llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: sceneSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
		TopP:        g.cfg.TopP,
		Schema: &llm.ResponseSchema{
			Name:   "scenes",
			Schema: sceneBreakdownSchema,
			Strict: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scene generation failed: %w", err)
	}

	// Even with the schema constraint the output is parsed defensively:
	// some backends ignore the constraint and wrap the JSON in fences or
	// commentary.
	scenes, ok := ParseScenes(completion.Content)
	if !ok || len(scenes) == 0 {
		return nil, fmt.Errorf("scene generation failed: %w", &ParseError{Expected: "scenes object", Snippet: completion.Content})
	}

	if len(scenes) != req.NumScenes {
		log.Printf("Requested %d scenes but model produced %d", req.NumScenes, len(scenes))
	}

	scenes = NormalizeScenes(scenes)
	log.Printf("Generated %d scenes", len(scenes))
	return scenes, nil
}
