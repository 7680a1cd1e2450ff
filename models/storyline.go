package models

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"
)

// Tone selects the marketing voice for generated copy.
type Tone string

const (
	ToneFriendly      Tone = "friendly"
	ToneAuthoritative Tone = "authoritative"
	TonePlayful       Tone = "playful"
	ToneLuxury        Tone = "luxury"
	ToneCasual        Tone = "casual"
)

// Length selects the target content length tier.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// MaxAudienceLen bounds the optional audience description.
const MaxAudienceLen = 200

// StorylineRequest is the input to storyline package generation.
type StorylineRequest struct {
	ProductPrompt string    `json:"product_prompt"`
	Features      []Feature `json:"features,omitempty"`
	Tone          Tone      `json:"tone"`
	Length        Length    `json:"length"`
	Audience      string    `json:"audience,omitempty"`
}

// Validate checks bounds, trims the prompt, and fills enum defaults.
func (r *StorylineRequest) Validate() error {
	r.ProductPrompt = trimPrompt(r.ProductPrompt)
	if err := validatePrompt(r.ProductPrompt); err != nil {
		return err
	}
	if r.Tone == "" {
		r.Tone = ToneFriendly
	}
	switch r.Tone {
	case ToneFriendly, ToneAuthoritative, TonePlayful, ToneLuxury, ToneCasual:
	default:
		return &ValidationError{Field: "tone", Message: fmt.Sprintf("unknown tone %q", r.Tone)}
	}
	if r.Length == "" {
		r.Length = LengthMedium
	}
	switch r.Length {
	case LengthShort, LengthMedium, LengthLong:
	default:
		return &ValidationError{Field: "length", Message: fmt.Sprintf("unknown length %q", r.Length)}
	}
	if utf8.RuneCountInString(r.Audience) > MaxAudienceLen {
		return &ValidationError{Field: "audience", Message: fmt.Sprintf("audience must be at most %d characters", MaxAudienceLen)}
	}
	return nil
}

// StorylinePackage is the full marketing bundle returned by storyline
// generation. Normalization guarantees every field is populated.
type StorylinePackage struct {
	Headline         string   `json:"headline"`
	Subhead          string   `json:"subhead"`
	HeroParagraph    string   `json:"hero_paragraph"`
	BulletedFeatures []string `json:"bulleted_features"`
	Persona          string   `json:"persona"`
	UseCases         []string `json:"use_cases"`
	CTAs             []string `json:"ctas"`
	EmailSubject     string   `json:"email_subject"`
	EmailBody        string   `json:"email_body"`
	SocialPosts      []string `json:"social_posts"`
}

// Storyline is the compact tagline/narrative form used to hand a storyline
// from one pipeline stage to the next.
type Storyline struct {
	Tagline   string `json:"tagline"`
	Narrative string `json:"narrative"`
	Model     string `json:"model"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// Save writes the storyline as an indented JSON snapshot.
func (s *Storyline) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling storyline: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing storyline snapshot: %w", err)
	}
	return nil
}

// LoadStoryline reads a storyline snapshot written by Save.
func LoadStoryline(path string) (*Storyline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading storyline snapshot: %w", err)
	}
	var s Storyline
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing storyline snapshot: %w", err)
	}
	return &s, nil
}
