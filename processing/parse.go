package processing

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Biswa2Das/marketing-storyline/models"
)

// ParseError reports that model output could not be parsed into the
// expected shape. Pipelines absorb it through normalization whenever the
// top-level shape is recoverable; it surfaces only when nothing of the
// expected shape can be located at all.
type ParseError struct {
	Expected string
	Snippet  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not locate %s in model output: %.120s", e.Expected, e.Snippet)
}

// StripCodeFence removes a surrounding triple-backtick code fence, with or
// without a language tag, and trims whitespace.
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop a language tag like "json" on the opening fence line.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		if isLanguageTag(s[:idx]) {
			s = s[idx+1:]
		}
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func isLanguageTag(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	if len(line) > 12 {
		return false
	}
	for _, r := range line {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// ExtractJSONObject locates a JSON object in raw model output. It strips a
// code fence, then tries a direct parse, then slices from the first "{" to
// the last "}" to tolerate leading or trailing commentary.
func ExtractJSONObject(text string) (json.RawMessage, error) {
	return extractJSON(text, '{', '}', "JSON object")
}

// ExtractJSONArray locates a JSON array in raw model output using the same
// strategies as ExtractJSONObject.
func ExtractJSONArray(text string) (json.RawMessage, error) {
	return extractJSON(text, '[', ']', "JSON array")
}

func extractJSON(text string, open, close byte, expected string) (json.RawMessage, error) {
	s := StripCodeFence(text)

	if len(s) > 0 && s[0] == open && json.Valid([]byte(s)) {
		return json.RawMessage(s), nil
	}

	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, close)
	if start >= 0 && end > start {
		candidate := s[start : end+1]
		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate), nil
		}
	}

	return nil, &ParseError{Expected: expected, Snippet: s}
}

const (
	taglinePrefix   = "TAGLINE:"
	narrativePrefix = "NARRATIVE:"
)

// ParseLabeledStoryline scans raw output for TAGLINE:/NARRATIVE: labeled
// lines. When a label is missing it falls back to the first non-empty line
// as the tagline and the remaining lines, length-capped, as the narrative.
func ParseLabeledStoryline(text string) (tagline, narrative string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, taglinePrefix) {
			tagline = strings.TrimSpace(line[len(taglinePrefix):])
		} else if strings.HasPrefix(line, narrativePrefix) {
			narrative = strings.TrimSpace(line[len(narrativePrefix):])
		}
	}

	if tagline != "" && narrative != "" {
		return tagline, narrative
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return tagline, narrative
	}
	if tagline == "" {
		tagline = truncateRunes(lines[0], 120)
	}
	if narrative == "" && len(lines) > 1 {
		narrative = truncateRunes(strings.Join(lines[1:], " "), 1500)
	}
	return tagline, narrative
}

// ParseScenes extracts a {"scenes": [...]} payload from raw output. A
// missing or misshapen scenes property is reported as no match, not a hard
// failure; the caller decides whether to surface an error.
func ParseScenes(text string) ([]models.Scene, bool) {
	raw, err := ExtractJSONObject(text)
	if err != nil {
		return nil, false
	}

	var payload struct {
		Scenes []models.Scene `json:"scenes"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}
	if payload.Scenes == nil {
		return nil, false
	}
	return payload.Scenes, true
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
