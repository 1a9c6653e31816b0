package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meprofiled/backend/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "5001", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 300*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"http://localhost:5173", "https://me-profiled-frontend.vercel.app"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, int64(16*1024*1024), cfg.Upload.MaxFileSize)
	assert.Equal(t, []string{".pdf"}, cfg.Upload.Extensions)
	assert.Equal(t, 5000, cfg.Model.MaxTextLength)
	assert.Equal(t, 512, cfg.Model.MaxSequenceLength)
	assert.Equal(t, 128, cfg.Model.CacheSize)
	assert.Equal(t, 50, cfg.Validation.MinJobDescriptionLength)
	assert.Equal(t, 10000, cfg.Validation.MaxJobDescriptionLength)
	assert.Equal(t, 100, cfg.Validation.MinResumeTextLength)
	assert.Equal(t, 20, cfg.Validation.MaxPDFPages)
	assert.Equal(t, models.ValidExperienceLevels, cfg.Validation.ExperienceLevels)
	assert.Equal(t, BoostLinear, cfg.Scoring.Boost.Mode)
	assert.Equal(t, MatcherSubstring, cfg.Scoring.KeywordMatcher)
	assert.Equal(t, models.DefaultWeightTable(), cfg.Scoring.Weights)

	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "development")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , https://b.example ,")
	t.Setenv("READ_TIMEOUT", "not-a-duration")
	t.Setenv("WEIGHTS_INTERN", "0.5, 0.3, 0.2")
	t.Setenv("SKILLS_BLEND_FRESHER", "0.8,0.2")
	t.Setenv("WEIGHTS_EXPERIENCED", "0.5,0.5")
	t.Setenv("EXPERIENCE_KEYWORD_SHARE", "0.25")
	t.Setenv("SIMILARITY_BOOST", "Logistic")
	t.Setenv("MATCH_SCORE_CEILING", "95")
	t.Setenv("EXPERIENCE_LEVELS", "Auto, experienced")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 300*time.Second, cfg.Server.ReadTimeout)

	intern := cfg.Scoring.Weights[models.LevelIntern]
	assert.Equal(t, 0.5, intern.Skills)
	assert.Equal(t, 0.3, intern.Experience)
	assert.Equal(t, 0.2, intern.Keyword)
	assert.Equal(t, 0.25, intern.ExperienceKeyword)

	fresher := cfg.Scoring.Weights[models.LevelFresher]
	assert.Equal(t, 0.8, fresher.SkillsSimilarity)
	assert.Equal(t, 0.2, fresher.SkillsKeyword)

	// a triple with the wrong arity is ignored
	assert.Equal(t, models.DefaultWeightTable()[models.LevelExperienced].Skills, cfg.Scoring.Weights[models.LevelExperienced].Skills)

	assert.Equal(t, BoostLogistic, cfg.Scoring.Boost.Mode)
	assert.Equal(t, 95, cfg.Scoring.MatchScoreCeiling)
	assert.Equal(t, []models.ExperienceLevel{models.LevelAuto, models.LevelExperienced}, cfg.Validation.ExperienceLevels)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "defaults",
			mutate: func(cfg *Config) {},
		},
		{
			name: "weights do not sum to one",
			mutate: func(cfg *Config) {
				w := cfg.Scoring.Weights[models.LevelFresher]
				w.Skills = 0.9
				cfg.Scoring.Weights[models.LevelFresher] = w
			},
			wantErr: "fresher",
		},
		{
			name: "floor above ceiling",
			mutate: func(cfg *Config) {
				cfg.Scoring.MatchScoreFloor = 80
				cfg.Scoring.MatchScoreCeiling = 70
			},
			wantErr: "match score band",
		},
		{
			name: "linear boost with inverted bounds",
			mutate: func(cfg *Config) {
				cfg.Scoring.Boost.Low = 0.9
				cfg.Scoring.Boost.High = 0.4
			},
			wantErr: "must exceed low",
		},
		{
			name: "unknown boost",
			mutate: func(cfg *Config) {
				cfg.Scoring.Boost.Mode = "cubic"
			},
			wantErr: "unknown similarity boost mode",
		},
		{
			name: "unknown matcher",
			mutate: func(cfg *Config) {
				cfg.Scoring.KeywordMatcher = "fuzzy"
			},
			wantErr: "unknown keyword matcher",
		},
		{
			name: "job description bounds inverted",
			mutate: func(cfg *Config) {
				cfg.Validation.MinJobDescriptionLength = 500
				cfg.Validation.MaxJobDescriptionLength = 100
			},
			wantErr: "exceeds max",
		},
		{
			name: "unknown experience level",
			mutate: func(cfg *Config) {
				cfg.Validation.ExperienceLevels = []models.ExperienceLevel{models.LevelAuto, "senior"}
			},
			wantErr: "unknown experience level: senior",
		},
		{
			name: "experience levels without auto",
			mutate: func(cfg *Config) {
				cfg.Validation.ExperienceLevels = []models.ExperienceLevel{models.LevelIntern}
			},
			wantErr: "must include auto",
		},
		{
			name: "zero page cap",
			mutate: func(cfg *Config) {
				cfg.Validation.MaxPDFPages = 0
			},
			wantErr: "must be positive",
		},
		{
			name: "negative cache size",
			mutate: func(cfg *Config) {
				cfg.Model.CacheSize = -1
			},
			wantErr: "cache size",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Load()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
