package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"meprofiled/backend/internal/config"
	"meprofiled/backend/internal/models"
)

//go:generate mockgen -source=./analyzer.go -destination=./mocks/analyzer.mock.go -package=svcmocks AnalyzerService

type AnalyzerService interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)
}

type analyzerService struct {
	pdfParser  PDFParserService
	similarity *SimilarityEngine
	blender    *ScoreBlender
	metrics    *AnalysisMetrics
	validation config.ValidationConfig
}

func NewAnalyzerService(
	pdfParser PDFParserService,
	similarity *SimilarityEngine,
	blender *ScoreBlender,
	metrics *AnalysisMetrics,
	validation config.ValidationConfig,
) AnalyzerService {
	return &analyzerService{
		pdfParser:  pdfParser,
		similarity: similarity,
		blender:    blender,
		metrics:    metrics,
		validation: validation,
	}
}

// ValidateJobDescription checks the trimmed job description against the
// configured length bounds, counted in characters.
func ValidateJobDescription(jobDescription string, v config.ValidationConfig) error {
	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" {
		return NewValidationError("No job description provided")
	}

	n := utf8.RuneCountInString(jobDescription)
	if n < v.MinJobDescriptionLength {
		return NewValidationError("Job description must be at least %d characters", v.MinJobDescriptionLength)
	}
	if n > v.MaxJobDescriptionLength {
		return NewValidationError("Job description must be less than %d characters", v.MaxJobDescriptionLength)
	}
	return nil
}

func (a *analyzerService) Analyze(ctx context.Context, req models.AnalysisRequest) (result *models.AnalysisResult, err error) {
	start := time.Now()
	level := req.ExperienceLevel
	if level == "" {
		level = models.LevelAuto
	}

	defer func() {
		score := 0
		if result != nil {
			score = result.MatchScore
		}
		a.metrics.Record(string(level), outcomeOf(err), score)
	}()

	jobDescription := strings.TrimSpace(req.JobDescription)
	if err := ValidateJobDescription(jobDescription, a.validation); err != nil {
		return nil, err
	}

	// Step 1: Extract resume text
	log.Println("📄 Extracting text from resume...")
	content, err := a.pdfParser.ExtractTextWithMetaData(req.ResumePDF)
	if err != nil {
		log.Printf("❌ Resume extraction failed: %v\n", err)
		return nil, err
	}
	log.Printf("✅ Extracted %d characters from %d of %d pages\n",
		utf8.RuneCountInString(content.Text), content.PagesProcessed, content.PageCount)

	// Step 2: Resolve experience level
	if !level.IsResolved() {
		detection := ClassifyExperience(content.Text)
		level = detection.Level
		log.Printf("🔍 Detected experience level: %s (%s)\n", level, detection.Rule)
	}

	// Step 3: Semantic similarity
	log.Println("🤖 Computing semantic similarity...")
	sim, err := a.similarity.Compare(ctx, content.Text, jobDescription)
	if err != nil {
		log.Printf("❌ Similarity failed: %v\n", err)
		return nil, err
	}
	log.Printf("✅ Similarity raw=%.4f boosted=%.4f\n", sim.Raw, sim.Score)

	// Step 4: Keywords and scores
	resumeKeywords := ExtractKeywords(content.Text)
	jobKeywords := ExtractKeywords(jobDescription)
	scores := a.blender.Blend(sim.Score, resumeKeywords, jobKeywords, level)
	log.Printf("📊 Scores for %s: match=%d skills=%d experience=%d keywords=%d (%d/%d common)\n",
		level, scores.MatchScore, scores.SkillsMatchPercent, scores.ExperienceMatchPercent,
		scores.KeywordMatchPercent, scores.CommonKeywords.Len(), jobKeywords.Len())

	// Step 5: Feedback
	feedback := GenerateFeedback(scores, level)

	elapsed := math.Round(time.Since(start).Seconds()*100) / 100
	log.Printf("✅ Analysis completed in %.2fs\n", elapsed)

	return &models.AnalysisResult{
		MatchScore:             scores.MatchScore,
		SkillsMatchPercent:     scores.SkillsMatchPercent,
		ExperienceMatchPercent: scores.ExperienceMatchPercent,
		KeywordMatchPercent:    scores.KeywordMatchPercent,
		ExperienceLevel:        level,
		Summary:                feedback.Summary,
		Strengths:              feedback.Strengths,
		AreasForImprovement:    feedback.Improvements,
		ProcessingTime:         elapsed,
	}, nil
}

func outcomeOf(err error) string {
	var (
		validationErr *ValidationError
		extractionErr *ExtractionError
		embeddingErr  *EmbeddingError
	)

	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.As(err, &validationErr):
		return OutcomeInvalidInput
	case errors.As(err, &extractionErr):
		return OutcomeExtractionError
	case errors.As(err, &embeddingErr):
		return OutcomeEmbeddingError
	default:
		return OutcomeError
	}
}

// NewAnalyzerFromConfig wires the analysis pipeline on top of an embedder.
func NewAnalyzerFromConfig(cfg *config.Config, embedder Embedder, metrics *AnalysisMetrics) (AnalyzerService, error) {
	boost, err := NewBoost(cfg.Scoring.Boost)
	if err != nil {
		return nil, fmt.Errorf("failed to build similarity boost: %w", err)
	}

	matcher, err := NewKeywordMatcher(cfg.Scoring.KeywordMatcher)
	if err != nil {
		return nil, err
	}

	return NewAnalyzerService(
		NewPDFParserService(cfg.Validation.MaxPDFPages, cfg.Validation.MinResumeTextLength),
		NewSimilarityEngine(embedder, boost, cfg.Model.MaxTextLength, cfg.Model.MaxSequenceLength),
		NewScoreBlender(cfg.Scoring.Weights, matcher, cfg.Scoring.MatchScoreFloor, cfg.Scoring.MatchScoreCeiling),
		metrics,
		cfg.Validation,
	), nil
}
