package models

import "fmt"

// FeatureType classifies a marketing feature.
type FeatureType string

const (
	FeatureBenefit  FeatureType = "benefit"
	FeatureSpec     FeatureType = "spec"
	FeatureUseCase  FeatureType = "use-case"
	FeatureAudience FeatureType = "audience"
)

// ValidFeatureType reports whether t is one of the known feature types.
func ValidFeatureType(t FeatureType) bool {
	switch t {
	case FeatureBenefit, FeatureSpec, FeatureUseCase, FeatureAudience:
		return true
	}
	return false
}

// Feature is a single marketing feature extracted from a product description.
type Feature struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Type           FeatureType `json:"type"`
	ImportanceRank int         `json:"importance_rank"`
	Confidence     float64     `json:"confidence"`
	ExamplePhrase  string      `json:"example_phrase"`
}

const (
	// MinPromptLen and MaxPromptLen bound the product description length.
	MinPromptLen = 10
	MaxPromptLen = 5000

	// MinFeatures and MaxFeatures bound the requested feature count.
	MinFeatures = 1
	MaxFeatures = 50

	// DefaultMaxFeatures is used when a storyline request supplies no features.
	DefaultMaxFeatures = 10
)

// ExtractRequest is the input to feature extraction. MaxFeatures is a
// pointer so an absent field (defaulted to 10) can be told apart from an
// explicit, invalid zero.
type ExtractRequest struct {
	ProductPrompt string `json:"product_prompt"`
	MaxFeatures   *int   `json:"max_features,omitempty"`
}

// Int wraps an int for optional request fields.
func Int(n int) *int { return &n }

// Validate checks bounds, trims the product prompt, and fills the
// max-features default in place.
func (r *ExtractRequest) Validate() error {
	r.ProductPrompt = trimPrompt(r.ProductPrompt)
	if err := validatePrompt(r.ProductPrompt); err != nil {
		return err
	}
	if r.MaxFeatures == nil {
		r.MaxFeatures = Int(DefaultMaxFeatures)
	}
	if *r.MaxFeatures < MinFeatures || *r.MaxFeatures > MaxFeatures {
		return &ValidationError{Field: "max_features", Message: fmt.Sprintf("max_features must be between %d and %d", MinFeatures, MaxFeatures)}
	}
	return nil
}
