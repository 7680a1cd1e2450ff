package processing

import (
	"log"
	"strings"

	"github.com/Biswa2Das/marketing-storyline/models"
)

// Defaults substituted for fields the model left absent or empty. Each
// substitution is logged, never an error.
const (
	defaultHeadline     = "Discover Your Perfect Solution"
	defaultSubhead      = "Transform your experience with our innovative product"
	defaultHero         = "Our product solves your challenges with innovative features designed for your success."
	defaultPersona      = "Target customers who value quality and innovation"
	defaultEmailSubject = "Transform your experience today"
	defaultEmailBody    = "Discover how our innovative solution can transform your experience."

	fillerFeature    = "Additional benefit"
	fillerUseCase    = "Additional use case"
	fillerCTA        = "Take Action"
	fillerSocialPost = "Check out this amazing product!"
)

var (
	defaultFeatures    = []string{"Key benefit 1", "Key benefit 2", "Key benefit 3"}
	defaultUseCases    = []string{"Primary use case", "Secondary use case"}
	defaultCTAs        = []string{"Get Started Today", "Learn More"}
	defaultSocialPosts = []string{"Great solution for your needs!", "Transform your workflow with innovation."}
)

// Minimum list cardinalities after normalization.
const (
	minBulletedFeatures = 3
	minUseCases         = 2
	minCTAs             = 2
	minSocialPosts      = 2
)

// Word budgets for the tagline/narrative storyline form.
const (
	taglineMaxWords   = 15
	taglineMinWords   = 10
	taglineCharCap    = 120
	narrativeMaxWords = 150
	narrativeMinWords = 100
)

// NormalizeStoryline repairs a parsed storyline package in place so every
// field satisfies the downstream schema: defaults for empty fields, length
// constraints per tier, then list padding up to the minimum cardinality.
func NormalizeStoryline(pkg *models.StorylinePackage, length models.Length) {
	defaultStr(&pkg.Headline, "headline", defaultHeadline)
	defaultStr(&pkg.Subhead, "subhead", defaultSubhead)
	defaultStr(&pkg.HeroParagraph, "hero_paragraph", defaultHero)
	defaultStr(&pkg.Persona, "persona", defaultPersona)
	defaultStr(&pkg.EmailSubject, "email_subject", defaultEmailSubject)
	defaultStr(&pkg.EmailBody, "email_body", defaultEmailBody)
	defaultList(&pkg.BulletedFeatures, "bulleted_features", defaultFeatures)
	defaultList(&pkg.UseCases, "use_cases", defaultUseCases)
	defaultList(&pkg.CTAs, "ctas", defaultCTAs)
	defaultList(&pkg.SocialPosts, "social_posts", defaultSocialPosts)

	applyLengthConstraints(pkg, length)

	pkg.BulletedFeatures = padList(pkg.BulletedFeatures, minBulletedFeatures, fillerFeature)
	pkg.UseCases = padList(pkg.UseCases, minUseCases, fillerUseCase)
	pkg.CTAs = padList(pkg.CTAs, minCTAs, fillerCTA)
	pkg.SocialPosts = padList(pkg.SocialPosts, minSocialPosts, fillerSocialPost)
}

func defaultStr(field *string, name, fallback string) {
	if strings.TrimSpace(*field) == "" {
		*field = fallback
		log.Printf("Applied default value for missing field: %s", name)
	}
}

func defaultList(field *[]string, name string, fallback []string) {
	if len(*field) == 0 {
		*field = append([]string(nil), fallback...)
		log.Printf("Applied default value for missing field: %s", name)
	}
}

func padList(list []string, min int, filler string) []string {
	for len(list) < min {
		list = append(list, filler)
	}
	return list
}

// applyLengthConstraints truncates over-length content for the short tier.
// Long content is trusted as-is and medium needs no adjustment.
func applyLengthConstraints(pkg *models.StorylinePackage, length models.Length) {
	if length != models.LengthShort {
		return
	}
	if runes := []rune(pkg.Headline); len(runes) > 60 {
		pkg.Headline = string(runes[:60]) + "..."
	}
	if words := strings.Fields(pkg.HeroParagraph); len(words) > 100 {
		pkg.HeroParagraph = strings.Join(words[:100], " ") + "..."
	}
}

// ClampTagline enforces the 10-15 word tagline budget. Over-long taglines
// are cut at 15 words; under-short ones are blank-padded to 10 words and
// then capped at 120 characters. Padding keeps the result syntactically
// well-formed when the model under-produces.
func ClampTagline(tagline string) string {
	words := strings.Fields(tagline)
	if len(words) > taglineMaxWords {
		return strings.Join(words[:taglineMaxWords], " ")
	}
	if len(words) < taglineMinWords {
		padded := append(words, make([]string, taglineMinWords-len(words))...)
		return strings.TrimSpace(truncateRunes(strings.Join(padded, " "), taglineCharCap))
	}
	return tagline
}

// ClampNarrative enforces the 100-150 word narrative budget the same way.
func ClampNarrative(narrative string) string {
	words := strings.Fields(narrative)
	if len(words) > narrativeMaxWords {
		return strings.Join(words[:narrativeMaxWords], " ")
	}
	if len(words) < narrativeMinWords {
		padded := append(words, make([]string, narrativeMinWords-len(words))...)
		return strings.TrimSpace(strings.Join(padded, " "))
	}
	return narrative
}

// NormalizeScenes renumbers scenes to a contiguous 1..N sequence when the
// model misnumbers them. The scene count itself is not adjusted; callers
// get however many scenes the model produced.
func NormalizeScenes(scenes []models.Scene) []models.Scene {
	contiguous := true
	for i := range scenes {
		if scenes[i].Scene != i+1 {
			contiguous = false
			break
		}
	}
	if contiguous {
		return scenes
	}
	log.Printf("Renumbering %d scenes with non-contiguous sequence numbers", len(scenes))
	for i := range scenes {
		scenes[i].Scene = i + 1
	}
	return scenes
}
