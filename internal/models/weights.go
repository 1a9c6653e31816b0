package models

import (
	"fmt"
	"math"
)

const weightEpsilon = 1e-6

// LevelWeights holds the blend constants for one experience level.
//
// Skills, Experience and Keyword weight the three sub-scores in the overall
// match score and must sum to 1. SkillsSimilarity and SkillsKeyword split the
// skills sub-score between semantic similarity and keyword overlap and must
// also sum to 1. ExperienceKeyword is the share of keyword overlap mixed into
// the experience sub-score (0 means similarity only).
type LevelWeights struct {
	Skills            float64
	Experience        float64
	Keyword           float64
	SkillsSimilarity  float64
	SkillsKeyword     float64
	ExperienceKeyword float64
}

func (w LevelWeights) Validate() error {
	if sum := w.Skills + w.Experience + w.Keyword; math.Abs(sum-1) > weightEpsilon {
		return fmt.Errorf("score weights must sum to 1, got %.4f", sum)
	}
	if sum := w.SkillsSimilarity + w.SkillsKeyword; math.Abs(sum-1) > weightEpsilon {
		return fmt.Errorf("skills blend must sum to 1, got %.4f", sum)
	}
	for _, v := range []float64{w.Skills, w.Experience, w.Keyword, w.SkillsSimilarity, w.SkillsKeyword} {
		if math.IsNaN(v) || v < 0 {
			return fmt.Errorf("weights must not be negative, got %.4f", v)
		}
	}
	if math.IsNaN(w.ExperienceKeyword) || w.ExperienceKeyword < 0 || w.ExperienceKeyword > 1 {
		return fmt.Errorf("experience keyword share must be within [0,1], got %.4f", w.ExperienceKeyword)
	}
	return nil
}

type WeightTable map[ExperienceLevel]LevelWeights

// DefaultWeightTable favours skills and keywords for interns and experience
// for experienced candidates.
func DefaultWeightTable() WeightTable {
	return WeightTable{
		LevelIntern: {
			Skills: 0.60, Experience: 0.20, Keyword: 0.20,
			SkillsSimilarity: 0.5, SkillsKeyword: 0.5,
		},
		LevelFresher: {
			Skills: 0.55, Experience: 0.30, Keyword: 0.15,
			SkillsSimilarity: 0.6, SkillsKeyword: 0.4,
		},
		LevelExperienced: {
			Skills: 0.50, Experience: 0.40, Keyword: 0.10,
			SkillsSimilarity: 0.7, SkillsKeyword: 0.3,
		},
	}
}

// For returns the weights for level, falling back to the experienced row for
// unresolved levels.
func (t WeightTable) For(level ExperienceLevel) LevelWeights {
	if w, ok := t[level]; ok {
		return w
	}
	return t[LevelExperienced]
}

func (t WeightTable) Validate() error {
	for _, level := range []ExperienceLevel{LevelIntern, LevelFresher, LevelExperienced} {
		w, ok := t[level]
		if !ok {
			return fmt.Errorf("missing weights for level %q", level)
		}
		if err := w.Validate(); err != nil {
			return fmt.Errorf("invalid weights for level %q: %w", level, err)
		}
	}
	return nil
}
