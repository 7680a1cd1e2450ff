package processing

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Biswa2Das/marketing-storyline/models"
)

// System prompts for each pipeline.
const (
	extractionSystemPrompt = "You are an expert marketing analyst. Always return valid JSON."
	storylineSystemFormat  = "You are an expert marketing copywriter specializing in %s content. Always return valid JSON."
	taglineSystemPrompt    = "Return only the requested sections."
	sceneSystemPrompt      = "You are a creative director. Respond ONLY with JSON matching the schema."
)

// lengthGuidance maps a length tier to prompt guidance. Unknown tiers fall
// back to medium.
var lengthGuidance = map[models.Length]string{
	models.LengthShort:  "Keep all content concise and punchy. Headlines under 60 chars, paragraphs under 100 words.",
	models.LengthMedium: "Use moderate length content. Headlines 60-80 chars, paragraphs 100-200 words.",
	models.LengthLong:   "Create detailed, comprehensive content. Headlines can be longer, paragraphs 200+ words with rich detail.",
}

// toneGuidance maps a tone to prompt guidance. Unknown tones fall back to
// friendly.
var toneGuidance = map[models.Tone]string{
	models.ToneFriendly:      "Use warm, approachable language. Include conversational elements and focus on helpfulness.",
	models.ToneAuthoritative: "Use professional, expert language. Focus on credibility, data, and proven results.",
	models.TonePlayful:       "Use fun, creative language with personality. Include humor and engaging metaphors where appropriate.",
	models.ToneLuxury:        "Use sophisticated, premium language. Focus on exclusivity, quality, and elevated experiences.",
	models.ToneCasual:        "Use relaxed, informal language. Write as you would speak to a friend, avoiding jargon.",
}

// BuildExtractionPrompt renders the feature-extraction prompt.
func BuildExtractionPrompt(productPrompt string, maxFeatures int) string {
	return fmt.Sprintf(`You are an expert marketing analyst. Extract key marketing features from the following product description.

Product Description:
%s

Instructions:
1. Identify marketing features that would be valuable for promoting this product
2. Classify each feature as: benefit, spec, use-case, or audience
3. Rank features by marketing importance (1 = most important)
4. Provide confidence score (0.0 to 1.0) for each extraction
5. Create an example marketing phrase for each feature
6. Return exactly %d features maximum
7. Ensure each feature has a unique ID (f1, f2, f3, etc.)

Return the results as a JSON array with this exact structure:
[
    {
        "id": "f1",
        "name": "Feature Name",
        "type": "benefit|spec|use-case|audience",
        "importance_rank": 1,
        "confidence": 0.95,
        "example_phrase": "Marketing phrase using this feature"
    }
]

Focus on features that would be most compelling to potential customers and easiest to market effectively.`,
		strings.TrimSpace(productPrompt), maxFeatures)
}

// BuildStorylinePrompt renders the storyline-package prompt.
func BuildStorylinePrompt(productPrompt string, features []models.Feature, tone models.Tone, length models.Length, audience string) string {
	var lines []string
	for _, f := range features {
		name := f.Name
		if name == "" {
			name = "Unknown"
		}
		phrase := f.ExamplePhrase
		if phrase == "" {
			phrase = "No example"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", name, phrase))
	}
	featuresList := strings.Join(lines, "\n")

	lg, ok := lengthGuidance[length]
	if !ok {
		lg = lengthGuidance[models.LengthMedium]
	}
	tg, ok := toneGuidance[tone]
	if !ok {
		tg = toneGuidance[models.ToneFriendly]
	}
	if audience == "" {
		audience = "general consumers"
	}

	return fmt.Sprintf(`You are an expert marketing copywriter. Create a comprehensive marketing storyline package for the following product.

Product Description:
%s

Key Features to Highlight:
%s

Marketing Parameters:
- Tone: %s
- Content Length: %s
- Target Audience: %s

Instructions:
Create a complete marketing package that tells a compelling story following this narrative arc:
1. Problem identification (what challenge does this solve?)
2. Solution presentation (how does this product help?)
3. Value demonstration (why is this better?)
4. Social proof/examples (who would use this and how?)

Generate content with the specified tone (%s) and length (%s).
%s
%s

Return the results as JSON with this exact structure:
{
    "headline": "Compelling main headline (under 80 characters)",
    "subhead": "Supporting subheadline that adds context",
    "hero_paragraph": "Hero section paragraph that tells the problem->solution->value story",
    "bulleted_features": ["Feature 1 as benefit statement", "Feature 2 as benefit statement", "Feature 3 as benefit statement"],
    "persona": "Primary target customer persona description",
    "use_cases": ["Use case 1", "Use case 2", "Use case 3"],
    "ctas": ["Primary CTA text", "Secondary CTA text"],
    "email_subject": "Email subject line (under 50 characters)",
    "email_body": "Email body text following the same narrative arc",
    "social_posts": ["Tweet-sized post (under 280 chars)", "LinkedIn post (longer form)"]
}

Make the content compelling, specific, and action-oriented. Focus on customer benefits rather than just features.`,
		strings.TrimSpace(productPrompt), featuresList, tone, length, audience, tone, length, lg, tg)
}

// BuildTaglinePrompt renders the tagline/narrative storyline prompt.
func BuildTaglinePrompt(productInput string) string {
	return fmt.Sprintf(`You are a creative marketing expert. Based on the following product details, create:

1. A short tagline (10-15 words maximum)
2. A full marketing narrative (100-150 words)

Product Details: %s

Format your response exactly as:
TAGLINE: <tagline>
NARRATIVE: <narrative>`,
		strings.TrimSpace(productInput))
}

// BuildScenePrompt renders the scene-breakdown prompt from a storyline.
func BuildScenePrompt(storyline models.Storyline, numScenes int, videoLength string) string {
	view := struct {
		Tagline   string `json:"tagline"`
		Narrative string `json:"narrative"`
	}{storyline.Tagline, storyline.Narrative}
	storyTxt, _ := json.MarshalIndent(view, "", "  ")

	return fmt.Sprintf(`Here is the marketing storyline (tagline + narrative):
%s

Generate exactly %d scene descriptions for a %s commercial.

Rules:
- Return ONLY a valid JSON object conforming to the provided JSON Schema.
- No commentary, no markdown, no backticks.`,
		string(storyTxt), numScenes, videoLength)
}
