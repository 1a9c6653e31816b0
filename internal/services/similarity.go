package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"meprofiled/backend/internal/config"
)

// Similarity holds the raw cosine of two embeddings and its boosted score.
type Similarity struct {
	Raw   float64
	Score float64
}

// Boost maps a raw similarity in [0,1] onto [0,1] without reordering inputs.
type Boost func(raw float64) float64

func NewBoost(cfg config.BoostConfig) (Boost, error) {
	switch cfg.Mode {
	case config.BoostNone:
		return func(raw float64) float64 { return clamp01(raw) }, nil
	case config.BoostLinear:
		if cfg.High <= cfg.Low {
			return nil, fmt.Errorf("linear boost needs high > low, got [%.2f,%.2f]", cfg.Low, cfg.High)
		}
		return func(raw float64) float64 {
			return clamp01((raw - cfg.Low) / (cfg.High - cfg.Low))
		}, nil
	case config.BoostLogistic:
		if cfg.Steepness <= 0 {
			return nil, fmt.Errorf("logistic boost needs a positive steepness, got %.2f", cfg.Steepness)
		}
		sigmoid := func(x float64) float64 {
			return 1 / (1 + math.Exp(-cfg.Steepness*(x-cfg.Mid)))
		}
		lo, hi := sigmoid(0), sigmoid(1)
		return func(raw float64) float64 {
			return clamp01((sigmoid(clamp01(raw)) - lo) / (hi - lo))
		}, nil
	default:
		return nil, fmt.Errorf("unknown similarity boost mode: %s", cfg.Mode)
	}
}

type SimilarityEngine struct {
	embedder  Embedder
	boost     Boost
	maxChars  int
	maxTokens int
}

func NewSimilarityEngine(embedder Embedder, boost Boost, maxChars, maxTokens int) *SimilarityEngine {
	return &SimilarityEngine{
		embedder:  embedder,
		boost:     boost,
		maxChars:  maxChars,
		maxTokens: maxTokens,
	}
}

// Compare embeds both texts concurrently and scores how close they are.
// Every failure is returned as an *EmbeddingError.
func (s *SimilarityEngine) Compare(ctx context.Context, resumeText, jobText string) (Similarity, error) {
	resumeText = TruncateText(resumeText, s.maxChars, s.maxTokens)
	jobText = TruncateText(jobText, s.maxChars, s.maxTokens)

	var resumeVec, jobVec []float32
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := s.embedder.Embed(gctx, resumeText)
		if err != nil {
			return fmt.Errorf("failed to embed resume: %w", err)
		}
		resumeVec = v
		return nil
	})
	g.Go(func() error {
		v, err := s.embedder.Embed(gctx, jobText)
		if err != nil {
			return fmt.Errorf("failed to embed job description: %w", err)
		}
		jobVec = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return Similarity{}, &EmbeddingError{Err: err}
	}

	raw, err := CosineSimilarity(resumeVec, jobVec)
	if err != nil {
		return Similarity{}, &EmbeddingError{Err: err}
	}

	return Similarity{Raw: raw, Score: s.boost(raw)}, nil
}

// CosineSimilarity returns the cosine of a and b clamped to [0,1].
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, errors.New("empty embedding vector")
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimensions differ: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0, errors.New("zero norm embedding vector")
	}

	return clamp01(dot / (math.Sqrt(normA) * math.Sqrt(normB))), nil
}

// TruncateText keeps at most maxChars runes and then at most maxTokens
// whitespace separated tokens.
func TruncateText(text string, maxChars, maxTokens int) string {
	if maxChars > 0 {
		if runes := []rune(text); len(runes) > maxChars {
			text = string(runes[:maxChars])
		}
	}

	if maxTokens > 0 {
		if fields := strings.Fields(text); len(fields) > maxTokens {
			text = strings.Join(fields[:maxTokens], " ")
		}
	}
	return text
}

func clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
