package models

import "fmt"

// Scene is a single shot in a video scene breakdown.
type Scene struct {
	Scene        int     `json:"scene" jsonschema_description:"1-based sequence number of the scene"`
	Visuals      string  `json:"visuals" jsonschema_description:"Detailed visual description of the scene's action and setting"`
	Camera       string  `json:"camera" jsonschema_description:"Camera direction for the shot (e.g. slow dolly-in, wide angle)"`
	OnScreenText string  `json:"on_screen_text" jsonschema_description:"Text overlaid on screen during the scene"`
	Sound        string  `json:"sound" jsonschema_description:"Sound design or voiceover for the scene"`
	Duration     float64 `json:"duration,omitempty" jsonschema_description:"Approximate duration of the scene in seconds"`
	CTA          string  `json:"cta,omitempty" jsonschema_description:"Optional call-to-action shown in the scene"`
}

const (
	// MinScenes and MaxScenes bound the requested scene count.
	MinScenes = 2
	MaxScenes = 8
)

// SceneRequest is the input to scene generation.
type SceneRequest struct {
	Storyline   Storyline `json:"storyline"`
	NumScenes   int       `json:"num_scenes"`
	VideoLength string    `json:"video_length"`
}

// Validate checks scene-count bounds and that the storyline carries content.
func (r *SceneRequest) Validate() error {
	if r.Storyline.Tagline == "" && r.Storyline.Narrative == "" {
		return &ValidationError{Field: "storyline", Message: "storyline must include a tagline or narrative"}
	}
	if r.NumScenes < MinScenes || r.NumScenes > MaxScenes {
		return &ValidationError{Field: "num_scenes", Message: fmt.Sprintf("num_scenes must be between %d and %d", MinScenes, MaxScenes)}
	}
	if r.VideoLength == "" {
		r.VideoLength = "15-second"
	}
	return nil
}
