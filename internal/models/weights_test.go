package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeightTableSumsToOne(t *testing.T) {
	table := DefaultWeightTable()
	require.NoError(t, table.Validate())

	for _, level := range []ExperienceLevel{LevelIntern, LevelFresher, LevelExperienced} {
		w := table[level]
		assert.InDelta(t, 1.0, w.Skills+w.Experience+w.Keyword, 1e-6, level)
		assert.InDelta(t, 1.0, w.SkillsSimilarity+w.SkillsKeyword, 1e-6, level)
	}
}

func TestWeightTableFor(t *testing.T) {
	table := DefaultWeightTable()

	assert.Equal(t, table[LevelIntern], table.For(LevelIntern))
	assert.Equal(t, table[LevelExperienced], table.For(LevelAuto))
	assert.Equal(t, table[LevelExperienced], table.For(ExperienceLevel("principal")))
}

func TestLevelWeightsValidate(t *testing.T) {
	testCases := []struct {
		name    string
		weights LevelWeights
		wantErr bool
	}{
		{
			name:    "valid",
			weights: LevelWeights{Skills: 0.5, Experience: 0.4, Keyword: 0.1, SkillsSimilarity: 0.7, SkillsKeyword: 0.3},
		},
		{
			name:    "within epsilon",
			weights: LevelWeights{Skills: 0.5 + 5e-7, Experience: 0.4, Keyword: 0.1, SkillsSimilarity: 0.7, SkillsKeyword: 0.3},
		},
		{
			name:    "triple off by a percent",
			weights: LevelWeights{Skills: 0.51, Experience: 0.4, Keyword: 0.1, SkillsSimilarity: 0.7, SkillsKeyword: 0.3},
			wantErr: true,
		},
		{
			name:    "blend does not sum",
			weights: LevelWeights{Skills: 0.5, Experience: 0.4, Keyword: 0.1, SkillsSimilarity: 0.7, SkillsKeyword: 0.4},
			wantErr: true,
		},
		{
			name:    "negative weight",
			weights: LevelWeights{Skills: 1.2, Experience: -0.3, Keyword: 0.1, SkillsSimilarity: 0.7, SkillsKeyword: 0.3},
			wantErr: true,
		},
		{
			name:    "experience keyword share above one",
			weights: LevelWeights{Skills: 0.5, Experience: 0.4, Keyword: 0.1, SkillsSimilarity: 0.7, SkillsKeyword: 0.3, ExperienceKeyword: 1.5},
			wantErr: true,
		},
		{
			name:    "nan",
			weights: LevelWeights{Skills: math.NaN(), Experience: 0.4, Keyword: 0.1, SkillsSimilarity: 0.7, SkillsKeyword: 0.3},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.weights.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWeightTableValidateMissingLevel(t *testing.T) {
	table := DefaultWeightTable()
	delete(table, LevelFresher)

	err := table.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fresher")
}
