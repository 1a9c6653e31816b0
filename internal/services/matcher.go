package services

import (
	"fmt"
	"strings"

	"meprofiled/backend/internal/config"
	"meprofiled/backend/internal/models"
)

// KeywordMatcher decides which job keywords the resume covers. The result is
// always a subset of job.
type KeywordMatcher interface {
	Match(resume, job models.KeywordSet) models.KeywordSet
}

func NewKeywordMatcher(name string) (KeywordMatcher, error) {
	switch name {
	case config.MatcherExact:
		return exactMatcher{}, nil
	case config.MatcherSubstring:
		return substringMatcher{minLength: 3}, nil
	default:
		return nil, fmt.Errorf("unknown keyword matcher: %s", name)
	}
}

type exactMatcher struct{}

func (exactMatcher) Match(resume, job models.KeywordSet) models.KeywordSet {
	return job.Intersect(resume)
}

// substringMatcher also accepts partial matches such as "react" against
// "react.js". Only keywords longer than minLength take part.
type substringMatcher struct {
	minLength int
}

func (m substringMatcher) Match(resume, job models.KeywordSet) models.KeywordSet {
	common := job.Intersect(resume)

	var candidates []string
	for kw := range resume {
		if len(kw) > m.minLength {
			candidates = append(candidates, kw)
		}
	}

	for jobKW := range job {
		if common.Has(jobKW) || len(jobKW) <= m.minLength {
			continue
		}
		for _, resumeKW := range candidates {
			if strings.Contains(resumeKW, jobKW) || strings.Contains(jobKW, resumeKW) {
				common.Add(jobKW)
				break
			}
		}
	}
	return common
}
