package processing

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Biswa2Das/marketing-storyline/cache"
	"github.com/Biswa2Das/marketing-storyline/llm"
	"github.com/Biswa2Das/marketing-storyline/models"
)

const packageJSON = `{
  "headline": "Present Anywhere, Anytime",
  "subhead": "Your palm-sized powerhouse",
  "hero_paragraph": "A projector built for the road.",
  "bulleted_features": ["Pocket size", "4K output", "8h battery"],
  "persona": "Traveling professionals",
  "use_cases": ["Client pitches", "Backyard cinema"],
  "ctas": ["Order Today", "Learn More"],
  "email_subject": "Present anywhere",
  "email_body": "Take the boardroom with you.",
  "social_posts": ["Any wall, any time.", "4K in your pocket."]
}`

func newTestGenerator(content string, c cache.Cache) (*StoryGenerator, *stubClient) {
	client := &stubClient{responses: map[string]string{"primary": content}}
	cfg := testConfig()
	extractor := NewFeatureExtractor(client, cfg, c)
	return NewStoryGenerator(client, cfg, c, extractor), client
}

func TestGenerateStorylinePackage(t *testing.T) {
	gen, client := newTestGenerator(packageJSON, nil)

	pkg, err := gen.Generate(context.Background(), &models.StorylineRequest{
		ProductPrompt: productPrompt,
		Features:      []models.Feature{feat("Portable Design", 1, 0.9)},
		Tone:          models.TonePlayful,
		Length:        models.LengthMedium,
	})
	require.NoError(t, err)

	assert.Equal(t, "Present Anywhere, Anytime", pkg.Headline)
	assert.GreaterOrEqual(t, len(pkg.BulletedFeatures), minBulletedFeatures)
	assert.GreaterOrEqual(t, len(pkg.CTAs), minCTAs)

	require.NotNil(t, client.lastReq)
	assert.Equal(t, storylineTemperature, client.lastReq.Temperature)
	assert.Equal(t, storylineMaxTokens, client.lastReq.MaxTokens)
	assert.Equal(t, 1, client.calls, "supplied features must not trigger extraction")
}

func TestGenerateExtractsFeaturesWhenMissing(t *testing.T) {
	// First completion extracts features, second generates the package.
	cfg := testConfig()
	seq := &sequenceClient{responses: []string{featuresJSON, packageJSON}}
	extractor := NewFeatureExtractor(seq, cfg, nil)
	gen := NewStoryGenerator(seq, cfg, nil, extractor)

	pkg, err := gen.Generate(context.Background(), &models.StorylineRequest{
		ProductPrompt: "Eco-friendly water bottle for Gen Z with temperature retention",
		Tone:          models.TonePlayful,
		Length:        models.LengthShort,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, seq.calls)
	assert.LessOrEqual(t, len([]rune(pkg.Headline)), 63)
	assert.GreaterOrEqual(t, len(pkg.BulletedFeatures), minBulletedFeatures)
}

func TestGenerateShortLengthTruncatesHeadline(t *testing.T) {
	long := strings.Replace(packageJSON,
		"Present Anywhere, Anytime",
		strings.Repeat("Present Anywhere ", 8), 1)
	gen, _ := newTestGenerator(long, nil)

	pkg, err := gen.Generate(context.Background(), &models.StorylineRequest{
		ProductPrompt: productPrompt,
		Features:      []models.Feature{feat("Portable Design", 1, 0.9)},
		Length:        models.LengthShort,
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(pkg.Headline)), 63)
	assert.True(t, strings.HasSuffix(pkg.Headline, "..."))
}

func TestGenerateUsesCache(t *testing.T) {
	c := cache.NewMemory(10, time.Minute)
	gen, client := newTestGenerator(packageJSON, c)

	req := func() *models.StorylineRequest {
		return &models.StorylineRequest{
			ProductPrompt: productPrompt,
			Features:      []models.Feature{feat("Portable Design", 1, 0.9)},
		}
	}

	first, err := gen.Generate(context.Background(), req())
	require.NoError(t, err)
	second, err := gen.Generate(context.Background(), req())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.calls)
}

func TestGenerateValidation(t *testing.T) {
	gen, client := newTestGenerator(packageJSON, nil)

	cases := []*models.StorylineRequest{
		{ProductPrompt: "short", Features: []models.Feature{feat("f", 1, 0.9)}},
		{ProductPrompt: productPrompt, Tone: "sarcastic", Features: []models.Feature{feat("f", 1, 0.9)}},
		{ProductPrompt: productPrompt, Length: "epic", Features: []models.Feature{feat("f", 1, 0.9)}},
		{ProductPrompt: productPrompt, Audience: strings.Repeat("a", models.MaxAudienceLen+1), Features: []models.Feature{feat("f", 1, 0.9)}},
	}
	for _, req := range cases {
		_, err := gen.Generate(context.Background(), req)
		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr)
	}
	assert.Zero(t, client.calls)
}

func TestGenerateFallsBackOnServerError(t *testing.T) {
	cfg := testConfig()
	cfg.FallbackModels = []string{"backup"}
	client := &stubClient{
		responses: map[string]string{"backup": packageJSON},
		errors:    map[string]error{"primary": &llm.Error{Kind: llm.KindServer, Message: "down"}},
	}
	extractor := NewFeatureExtractor(client, cfg, nil)
	gen := NewStoryGenerator(client, cfg, nil, extractor)

	pkg, err := gen.Generate(context.Background(), &models.StorylineRequest{
		ProductPrompt: productPrompt,
		Features:      []models.Feature{feat("Portable Design", 1, 0.9)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Present Anywhere, Anytime", pkg.Headline)
	assert.Equal(t, 2, client.calls)
}

func TestGenerateStorylineTaglineNarrative(t *testing.T) {
	text := "TAGLINE: The portable projector that turns any wall into a screen today\n" +
		"NARRATIVE: " + strings.TrimSpace(strings.Repeat("word ", 120))
	gen, _ := newTestGenerator(text, nil)

	storyline, err := gen.GenerateStoryline(context.Background(), "A portable 4K projector")
	require.NoError(t, err)

	assert.True(t, storyline.Success)
	assert.Equal(t, "primary", storyline.Model)
	words := strings.Fields(storyline.Tagline)
	assert.GreaterOrEqual(t, len(words), 10)
	assert.LessOrEqual(t, len(words), taglineMaxWords)
	narrativeWords := strings.Fields(storyline.Narrative)
	assert.GreaterOrEqual(t, len(narrativeWords), narrativeMinWords)
	assert.LessOrEqual(t, len(narrativeWords), narrativeMaxWords)
}

func TestGenerateStorylineEmptyInput(t *testing.T) {
	gen, client := newTestGenerator(mockPlainText, nil)

	_, err := gen.GenerateStoryline(context.Background(), "   ")
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Zero(t, client.calls)
}

const mockPlainText = "just some text"

// sequenceClient returns scripted responses in order.
type sequenceClient struct {
	responses []string
	calls     int
}

func (s *sequenceClient) Name() string                 { return "sequence" }
func (s *sequenceClient) Ping(_ context.Context) error { return nil }
func (s *sequenceClient) Complete(_ context.Context, req *llm.Request) (*llm.Completion, error) {
	if s.calls >= len(s.responses) {
		return nil, &llm.Error{Kind: llm.KindServer, Message: "out of scripted responses"}
	}
	content := s.responses[s.calls]
	s.calls++
	return &llm.Completion{Content: content, Model: req.Model}, nil
}
