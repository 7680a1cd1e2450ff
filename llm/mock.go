package llm

import (
	"context"
	"strings"
)

// MockClient returns canned deterministic responses for local development
// when no API key is configured. Every completion it produces carries the
// Mock flag so callers can tell it apart from a live backend.
type MockClient struct{}

func NewMockClient() *MockClient { return &MockClient{} }

func (m *MockClient) Name() string { return "mock" }

func (m *MockClient) Ping(ctx context.Context) error { return nil }

func (m *MockClient) Complete(ctx context.Context, req *Request) (*Completion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var last string
	if len(req.Messages) > 0 {
		last = strings.ToLower(req.Messages[len(req.Messages)-1].Content)
	}

	var content string
	switch {
	case strings.Contains(last, "tagline:"):
		content = mockStorylineText
	case strings.Contains(last, "scene"):
		content = mockScenesJSON
	case strings.Contains(last, "storyline package"):
		content = mockPackageJSON
	case strings.Contains(last, "extract") || strings.Contains(last, "features"):
		content = mockFeaturesJSON
	default:
		content = mockPackageJSON
	}

	return &Completion{
		Content: content,
		Model:   "mock",
		Usage:   Usage{PromptTokens: 100, CompletionTokens: 200, TotalTokens: 300},
		Mock:    true,
	}, nil
}

const mockFeaturesJSON = `[
    {
        "id": "f1",
        "name": "Portable Design",
        "type": "benefit",
        "importance_rank": 1,
        "confidence": 0.95,
        "example_phrase": "Fits in your hand for presentations anywhere"
    },
    {
        "id": "f2",
        "name": "4K Streaming",
        "type": "spec",
        "importance_rank": 2,
        "confidence": 0.90,
        "example_phrase": "Crystal-clear 4K resolution for professional presentations"
    },
    {
        "id": "f3",
        "name": "Long Battery Life",
        "type": "benefit",
        "importance_rank": 3,
        "confidence": 0.88,
        "example_phrase": "4-hour battery lasts through the longest meetings"
    }
]`

const mockPackageJSON = `{
    "headline": "Present Anywhere, Anytime - The Ultimate Portable 4K Projector",
    "subhead": "Transform any space into your presentation room with our palm-sized powerhouse",
    "hero_paragraph": "Gone are the days of being tethered to conference rooms and bulky equipment. Our revolutionary portable projector delivers stunning 4K visuals wherever your work takes you. Whether you're a digital nomad presenting from a coffee shop or a teacher bringing lessons to life, this pocket-sized projector adapts to your world.",
    "bulleted_features": [
        "Fits in your hand for presentations anywhere",
        "Crystal-clear 4K resolution for professional quality",
        "4-hour battery lasts through the longest meetings",
        "Auto keystone correction for perfect alignment",
        "Built-in speakers eliminate extra equipment"
    ],
    "persona": "Tech-savvy professionals and educators who value mobility and quality",
    "use_cases": [
        "Remote work presentations from any location",
        "Interactive classroom teaching without fixed equipment",
        "Client meetings in unconventional spaces"
    ],
    "ctas": ["Get Your Portable Projector Today", "Start Presenting Anywhere"],
    "email_subject": "Break free from conference rooms - Present anywhere with 4K clarity",
    "email_body": "Imagine never having to say 'sorry, I can't present there' again. Our new portable 4K projector fits in your hand but delivers boardroom-quality visuals anywhere you go.",
    "social_posts": [
        "Conference room or coffee shop? Doesn't matter anymore. 4K presentations anywhere. #PortableProjector",
        "Teaching just got more flexible. Bring stunning 4K visuals to any classroom - no installation required. #EdTech"
    ]
}`

const mockStorylineText = `TAGLINE: The portable projector that turns any wall into a boardroom screen instantly
NARRATIVE: Meet the projector built for people who refuse to be tied down. Small enough to slip into a jacket pocket yet powerful enough to fill a wall with crisp 4K detail, it frees your presentations from the conference room forever. Set up in seconds with automatic keystone correction, run for four hours on a single charge, and let the built-in speakers carry your message without extra gear. From coffee-shop pitches to pop-up classrooms, it adapts to wherever your ideas need to be seen. Stop booking rooms and start owning them. Your next big presentation deserves a screen as ambitious as you are, wherever that happens to be today.`

const mockScenesJSON = `{
    "scenes": [
        {
            "scene": 1,
            "visuals": "A commuter pulls a palm-sized projector from a backpack on a crowded train platform",
            "camera": "Close-up, shallow depth of field",
            "on_screen_text": "Meetings happen everywhere",
            "sound": "Upbeat electronic track fades in over station ambience",
            "duration": 4
        },
        {
            "scene": 2,
            "visuals": "The projector beams a bright 4K dashboard onto a cafe wall as colleagues lean in",
            "camera": "Slow dolly-in from behind the table",
            "on_screen_text": "4K clarity, zero setup",
            "sound": "Voiceover: 'Any wall is your boardroom'",
            "duration": 6
        },
        {
            "scene": 3,
            "visuals": "Logo and product shot on a clean background with the tagline below",
            "camera": "Static wide shot",
            "on_screen_text": "Present anywhere",
            "sound": "Music resolves with a short sting",
            "duration": 5,
            "cta": "Order yours today"
        }
    ]
}`
