package processing

import (
	"log"
	"sort"
	"strings"

	"github.com/Biswa2Das/marketing-storyline/models"
)

// similarityThreshold is the Jaccard bound above which two feature names
// count as duplicates. 0.8 is deliberately strict: short names rarely
// collide, so only near-identical names are collapsed.
const similarityThreshold = 0.8

// DedupeFeatures drops later features whose names are near-duplicates of an
// earlier one. The pass is greedy and order-preserving: first occurrence
// wins. Pure function, no I/O beyond logging.
func DedupeFeatures(features []models.Feature) []models.Feature {
	if len(features) == 0 {
		return features
	}

	unique := make([]models.Feature, 0, len(features))
	var seen []string

	for _, f := range features {
		normalized := strings.ToLower(strings.TrimSpace(f.Name))

		duplicate := false
		for _, s := range seen {
			if namesSimilar(normalized, s, similarityThreshold) {
				duplicate = true
				break
			}
		}
		if duplicate {
			log.Printf("Skipping duplicate feature: %s", f.Name)
			continue
		}

		seen = append(seen, normalized)
		unique = append(unique, f)
	}

	if len(unique) < len(features) {
		log.Printf("Deduplicated %d features to %d unique features", len(features), len(unique))
	}
	return unique
}

// namesSimilar computes Jaccard similarity over whitespace-split word sets:
// |intersection| / |union| >= threshold.
func namesSimilar(name1, name2 string, threshold float64) bool {
	words1 := wordSet(name1)
	words2 := wordSet(name2)
	if len(words1) == 0 || len(words2) == 0 {
		return false
	}

	overlap := 0
	for w := range words1 {
		if _, ok := words2[w]; ok {
			overlap++
		}
	}
	union := len(words1) + len(words2) - overlap
	if union == 0 {
		return false
	}
	return float64(overlap)/float64(union) >= threshold
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}

// RankFeatures sorts by importance rank ascending with confidence descending
// as tie-break, then reassigns ranks to a contiguous 1..N sequence. Calling
// it on an already-ranked list is a no-op.
func RankFeatures(features []models.Feature) []models.Feature {
	sort.SliceStable(features, func(i, j int) bool {
		if features[i].ImportanceRank != features[j].ImportanceRank {
			return features[i].ImportanceRank < features[j].ImportanceRank
		}
		return features[i].Confidence > features[j].Confidence
	})
	for i := range features {
		features[i].ImportanceRank = i + 1
	}
	return features
}
