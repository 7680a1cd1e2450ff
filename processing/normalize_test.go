package processing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Biswa2Das/marketing-storyline/models"
)

func TestNormalizeStorylineFillsAllDefaults(t *testing.T) {
	var pkg models.StorylinePackage
	NormalizeStoryline(&pkg, models.LengthMedium)

	assert.Equal(t, defaultHeadline, pkg.Headline)
	assert.Equal(t, defaultSubhead, pkg.Subhead)
	assert.Equal(t, defaultHero, pkg.HeroParagraph)
	assert.Equal(t, defaultPersona, pkg.Persona)
	assert.Equal(t, defaultEmailSubject, pkg.EmailSubject)
	assert.Equal(t, defaultEmailBody, pkg.EmailBody)
	assert.GreaterOrEqual(t, len(pkg.BulletedFeatures), minBulletedFeatures)
	assert.GreaterOrEqual(t, len(pkg.UseCases), minUseCases)
	assert.GreaterOrEqual(t, len(pkg.CTAs), minCTAs)
	assert.GreaterOrEqual(t, len(pkg.SocialPosts), minSocialPosts)
}

func TestNormalizeStorylinePreservesPresentFields(t *testing.T) {
	pkg := models.StorylinePackage{
		Headline:         "Go Anywhere",
		BulletedFeatures: []string{"Pocket size", "4K output", "8h battery"},
	}
	NormalizeStoryline(&pkg, models.LengthMedium)

	assert.Equal(t, "Go Anywhere", pkg.Headline)
	assert.Equal(t, []string{"Pocket size", "4K output", "8h battery"}, pkg.BulletedFeatures)
}

func TestNormalizeStorylinePadsShortLists(t *testing.T) {
	pkg := models.StorylinePackage{
		BulletedFeatures: []string{"Pocket size"},
		UseCases:         []string{"Travel"},
	}
	NormalizeStoryline(&pkg, models.LengthMedium)

	assert.Len(t, pkg.BulletedFeatures, minBulletedFeatures)
	assert.Equal(t, "Pocket size", pkg.BulletedFeatures[0])
	assert.Equal(t, fillerFeature, pkg.BulletedFeatures[1])
	assert.Len(t, pkg.UseCases, minUseCases)
	assert.Equal(t, fillerUseCase, pkg.UseCases[1])
}

func TestNormalizeStorylineShortTierTruncates(t *testing.T) {
	pkg := models.StorylinePackage{
		Headline:      strings.Repeat("x", 80),
		HeroParagraph: strings.TrimSpace(strings.Repeat("word ", 120)),
	}
	NormalizeStoryline(&pkg, models.LengthShort)

	assert.Len(t, []rune(pkg.Headline), 63)
	assert.True(t, strings.HasSuffix(pkg.Headline, "..."))
	assert.Len(t, strings.Fields(pkg.HeroParagraph), 100)
	assert.True(t, strings.HasSuffix(pkg.HeroParagraph, "..."))
}

func TestNormalizeStorylineMediumTierDoesNotTruncate(t *testing.T) {
	long := strings.Repeat("x", 80)
	pkg := models.StorylinePackage{Headline: long}
	NormalizeStoryline(&pkg, models.LengthMedium)
	assert.Equal(t, long, pkg.Headline)
}

func TestClampTagline(t *testing.T) {
	over := strings.TrimSpace(strings.Repeat("word ", 20))
	assert.Len(t, strings.Fields(ClampTagline(over)), taglineMaxWords)

	within := strings.TrimSpace(strings.Repeat("word ", 12))
	assert.Equal(t, within, ClampTagline(within))

	short := ClampTagline("Go anywhere")
	assert.LessOrEqual(t, len([]rune(short)), taglineCharCap)
	assert.True(t, strings.HasPrefix(short, "Go anywhere"))
}

func TestClampNarrative(t *testing.T) {
	over := strings.TrimSpace(strings.Repeat("word ", 200))
	assert.Len(t, strings.Fields(ClampNarrative(over)), narrativeMaxWords)

	within := strings.TrimSpace(strings.Repeat("word ", 120))
	assert.Equal(t, within, ClampNarrative(within))
}

func TestNormalizeScenesRenumbers(t *testing.T) {
	scenes := []models.Scene{
		{Scene: 1, Visuals: "a"},
		{Scene: 3, Visuals: "b"},
		{Scene: 7, Visuals: "c"},
	}
	out := NormalizeScenes(scenes)
	for i, s := range out {
		assert.Equal(t, i+1, s.Scene)
	}
}

func TestNormalizeScenesContiguousUntouched(t *testing.T) {
	scenes := []models.Scene{{Scene: 1}, {Scene: 2}}
	out := NormalizeScenes(scenes)
	assert.Equal(t, scenes, out)
}
