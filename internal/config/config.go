package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"meprofiled/backend/internal/models"
)

type Config struct {
	Server     ServerConfig
	Gemini     GeminiConfig
	Upload     UploadConfig
	Model      ModelConfig
	Validation ValidationConfig
	Scoring    ScoringConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
	CORSMaxAge     int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type GeminiConfig struct {
	APIKey     string
	EmbedModel string
}

type UploadConfig struct {
	MaxFileSize int64
	Extensions  []string
}

type ModelConfig struct {
	MaxTextLength     int
	MaxSequenceLength int
	CacheSize         int
}

type ValidationConfig struct {
	MinJobDescriptionLength int
	MaxJobDescriptionLength int
	MinResumeTextLength     int
	MaxPDFPages             int
	ExperienceLevels        []models.ExperienceLevel
}

type ScoringConfig struct {
	Weights           models.WeightTable
	MatchScoreFloor   int
	MatchScoreCeiling int
	Boost             BoostConfig
	KeywordMatcher    string
}

type BoostConfig struct {
	Mode      string
	Low       float64
	High      float64
	Mid       float64
	Steepness float64
}

const (
	BoostNone     = "none"
	BoostLinear   = "linear"
	BoostLogistic = "logistic"

	MatcherExact     = "exact"
	MatcherSubstring = "substring"
)

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	defaults := models.DefaultWeightTable()
	experienceKeyword := getEnvAsFloat("EXPERIENCE_KEYWORD_SHARE", 0)

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "5001"),
			Env:            getEnv("ENV", "production"),
			AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", "http://localhost:5173,https://me-profiled-frontend.vercel.app"),
			CORSMaxAge:     getEnvAsInt("CORS_MAX_AGE", 3600),
			ReadTimeout:    getEnvAsDuration("READ_TIMEOUT", "300s"),
			WriteTimeout:   getEnvAsDuration("WRITE_TIMEOUT", "300s"),
		},
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			EmbedModel: getEnv("EMBEDDING_MODEL", "text-embedding-004"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 16*1024*1024),
			Extensions:  getEnvAsList("UPLOAD_EXTENSIONS", ".pdf"),
		},
		Model: ModelConfig{
			MaxTextLength:     getEnvAsInt("MAX_TEXT_LENGTH", 5000),
			MaxSequenceLength: getEnvAsInt("MAX_SEQUENCE_LENGTH", 512),
			CacheSize:         getEnvAsInt("EMBEDDINGS_CACHE_SIZE", 128),
		},
		Validation: ValidationConfig{
			MinJobDescriptionLength: getEnvAsInt("MIN_JOB_DESCRIPTION_LENGTH", 50),
			MaxJobDescriptionLength: getEnvAsInt("MAX_JOB_DESCRIPTION_LENGTH", 10000),
			MinResumeTextLength:     getEnvAsInt("MIN_RESUME_TEXT_LENGTH", 100),
			MaxPDFPages:             getEnvAsInt("MAX_PDF_PAGES", 20),
			ExperienceLevels:        getEnvAsLevels("EXPERIENCE_LEVELS", "auto,intern,fresher,experienced"),
		},
		Scoring: ScoringConfig{
			Weights: models.WeightTable{
				models.LevelIntern:      getEnvAsWeights("INTERN", defaults[models.LevelIntern], experienceKeyword),
				models.LevelFresher:     getEnvAsWeights("FRESHER", defaults[models.LevelFresher], experienceKeyword),
				models.LevelExperienced: getEnvAsWeights("EXPERIENCED", defaults[models.LevelExperienced], experienceKeyword),
			},
			MatchScoreFloor:   getEnvAsInt("MATCH_SCORE_FLOOR", 0),
			MatchScoreCeiling: getEnvAsInt("MATCH_SCORE_CEILING", 100),
			Boost: BoostConfig{
				Mode:      strings.ToLower(getEnv("SIMILARITY_BOOST", BoostLinear)),
				Low:       getEnvAsFloat("SIMILARITY_BOOST_LOW", 0.45),
				High:      getEnvAsFloat("SIMILARITY_BOOST_HIGH", 0.90),
				Mid:       getEnvAsFloat("SIMILARITY_BOOST_MID", 0.65),
				Steepness: getEnvAsFloat("SIMILARITY_BOOST_STEEPNESS", 10),
			},
			KeywordMatcher: strings.ToLower(getEnv("KEYWORD_MATCHER", MatcherSubstring)),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func (c *Config) Validate() error {
	if err := c.Scoring.Weights.Validate(); err != nil {
		return err
	}

	s := c.Scoring
	if s.MatchScoreFloor < 0 || s.MatchScoreCeiling > 100 || s.MatchScoreFloor > s.MatchScoreCeiling {
		return fmt.Errorf("invalid match score band [%d,%d]", s.MatchScoreFloor, s.MatchScoreCeiling)
	}

	switch s.Boost.Mode {
	case BoostNone:
	case BoostLinear:
		if s.Boost.High <= s.Boost.Low {
			return fmt.Errorf("similarity boost high (%.2f) must exceed low (%.2f)", s.Boost.High, s.Boost.Low)
		}
	case BoostLogistic:
		if s.Boost.Steepness <= 0 {
			return fmt.Errorf("similarity boost steepness must be positive, got %.2f", s.Boost.Steepness)
		}
	default:
		return fmt.Errorf("unknown similarity boost mode: %s", s.Boost.Mode)
	}

	if s.KeywordMatcher != MatcherExact && s.KeywordMatcher != MatcherSubstring {
		return fmt.Errorf("unknown keyword matcher: %s", s.KeywordMatcher)
	}

	v := c.Validation
	if v.MinJobDescriptionLength > v.MaxJobDescriptionLength {
		return fmt.Errorf("min job description length (%d) exceeds max (%d)", v.MinJobDescriptionLength, v.MaxJobDescriptionLength)
	}
	if v.MaxPDFPages <= 0 || c.Model.MaxTextLength <= 0 || c.Model.MaxSequenceLength <= 0 {
		return fmt.Errorf("page, text and sequence limits must be positive")
	}
	hasAuto := false
	for _, level := range v.ExperienceLevels {
		if !level.IsKnown() {
			return fmt.Errorf("unknown experience level: %s", level)
		}
		hasAuto = hasAuto || level == models.LevelAuto
	}
	if !hasAuto {
		return fmt.Errorf("experience levels must include %s", models.LevelAuto)
	}
	if c.Model.CacheSize < 0 {
		return fmt.Errorf("embeddings cache size must not be negative")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnvAsLevels(key, defaultValue string) []models.ExperienceLevel {
	items := getEnvAsList(key, defaultValue)
	levels := make([]models.ExperienceLevel, 0, len(items))
	for _, item := range items {
		levels = append(levels, models.ExperienceLevel(strings.ToLower(item)))
	}
	return levels
}

// getEnvAsFloats parses a comma separated list of exactly n floats.
func getEnvAsFloats(key string, n int) ([]float64, bool) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return nil, false
	}

	parts := strings.Split(valueStr, ",")
	if len(parts) != n {
		log.Printf("⚠️  %s must hold %d comma separated numbers, ignoring %q", key, n, valueStr)
		return nil, false
	}

	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			log.Printf("⚠️  %s has an invalid number %q, ignoring", key, p)
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// getEnvAsWeights reads WEIGHTS_<LEVEL> ("skills,experience,keyword") and
// SKILLS_BLEND_<LEVEL> ("similarity,keyword") on top of the defaults.
func getEnvAsWeights(level string, defaults models.LevelWeights, experienceKeyword float64) models.LevelWeights {
	w := defaults
	if v, ok := getEnvAsFloats("WEIGHTS_"+level, 3); ok {
		w.Skills, w.Experience, w.Keyword = v[0], v[1], v[2]
	}
	if v, ok := getEnvAsFloats("SKILLS_BLEND_"+level, 2); ok {
		w.SkillsSimilarity, w.SkillsKeyword = v[0], v[1]
	}
	w.ExperienceKeyword = experienceKeyword
	return w
}
