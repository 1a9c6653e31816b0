package services

import (
	"math"

	"meprofiled/backend/internal/models"
)

type ScoreBlender struct {
	weights models.WeightTable
	matcher KeywordMatcher
	floor   int
	ceiling int
}

func NewScoreBlender(weights models.WeightTable, matcher KeywordMatcher, floor, ceiling int) *ScoreBlender {
	return &ScoreBlender{
		weights: weights,
		matcher: matcher,
		floor:   floor,
		ceiling: ceiling,
	}
}

// Blend combines the boosted similarity with keyword overlap using the weights
// of level. Every percentage lands in [0,100] and the match score inside the
// configured band.
func (b *ScoreBlender) Blend(similarity float64, resumeKeywords, jobKeywords models.KeywordSet, level models.ExperienceLevel) models.ScoreBundle {
	common := b.matcher.Match(resumeKeywords, jobKeywords)

	ratio := 0.0
	if jobKeywords.Len() > 0 {
		ratio = float64(common.Len()) / float64(jobKeywords.Len())
	}

	w := b.weights.For(level)
	sim := clamp01(similarity)

	skills := percent(sim*w.SkillsSimilarity + ratio*w.SkillsKeyword)
	experience := percent(sim*(1-w.ExperienceKeyword) + ratio*w.ExperienceKeyword)
	keyword := percent(ratio)

	match := int(math.Round(float64(skills)*w.Skills + float64(experience)*w.Experience + float64(keyword)*w.Keyword))
	match = clampInt(match, b.floor, b.ceiling)

	return models.ScoreBundle{
		MatchScore:             match,
		SkillsMatchPercent:     skills,
		ExperienceMatchPercent: experience,
		KeywordMatchPercent:    keyword,
		CommonKeywords:         common,
	}
}

func percent(fraction float64) int {
	return clampInt(int(math.Round(100*fraction)), 0, 100)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
