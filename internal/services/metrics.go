package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess         = "success"
	OutcomeInvalidInput    = "invalid_input"
	OutcomeExtractionError = "extraction_error"
	OutcomeEmbeddingError  = "embedding_error"
	OutcomeError           = "error"
)

type AnalysisMetrics struct {
	analyses   *prometheus.CounterVec
	matchScore prometheus.Histogram
}

func NewAnalysisMetrics(reg prometheus.Registerer) *AnalysisMetrics {
	factory := promauto.With(reg)

	return &AnalysisMetrics{
		analyses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_analyses_total",
				Help: "Total number of resume analyses by experience level and outcome",
			},
			[]string{"level", "outcome"},
		),
		matchScore: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "resume_match_score",
				Help:    "Distribution of overall match scores",
				Buckets: prometheus.LinearBuckets(10, 10, 10),
			},
		),
	}
}

func (m *AnalysisMetrics) Record(level, outcome string, matchScore int) {
	m.analyses.WithLabelValues(level, outcome).Inc()
	if outcome == OutcomeSuccess {
		m.matchScore.Observe(float64(matchScore))
	}
}
