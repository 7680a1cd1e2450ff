package models

import "time"

// ExtractionRecord persists one feature-extraction result for later review.
type ExtractionRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProductPrompt string    `gorm:"type:text;not null" json:"product_prompt"`
	MaxFeatures   int       `gorm:"not null" json:"max_features"`
	FeatureCount  int       `gorm:"not null" json:"feature_count"`
	FeaturesJSON  string    `gorm:"type:text" json:"features_json"`
	Model         string    `json:"model"`
	CreatedAt     time.Time `json:"created_at"`
}

func (ExtractionRecord) TableName() string {
	return "extractions"
}

// StorylineRecord persists one generated storyline package.
type StorylineRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProductPrompt string    `gorm:"type:text;not null" json:"product_prompt"`
	Tone          string    `json:"tone"`
	Length        string    `json:"length"`
	Audience      string    `json:"audience"`
	PackageJSON   string    `gorm:"type:text" json:"package_json"`
	Model         string    `json:"model"`
	CreatedAt     time.Time `json:"created_at"`
}

func (StorylineRecord) TableName() string {
	return "storylines"
}
