package models

import "strings"

type ExperienceLevel string

const (
	LevelAuto        ExperienceLevel = "auto"
	LevelIntern      ExperienceLevel = "intern"
	LevelFresher     ExperienceLevel = "fresher"
	LevelExperienced ExperienceLevel = "experienced"
)

// ValidExperienceLevels is the set accepted from clients, in display order.
var ValidExperienceLevels = []ExperienceLevel{LevelAuto, LevelIntern, LevelFresher, LevelExperienced}

// ParseExperienceLevel normalizes a client hint. Unknown values become LevelAuto.
func ParseExperienceLevel(s string) ExperienceLevel {
	return ParseExperienceLevelIn(s, ValidExperienceLevels)
}

// ParseExperienceLevelIn is ParseExperienceLevel restricted to allowed.
// Anything outside allowed becomes LevelAuto.
func ParseExperienceLevelIn(s string, allowed []ExperienceLevel) ExperienceLevel {
	level := ExperienceLevel(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range allowed {
		if level == valid {
			return level
		}
	}
	return LevelAuto
}

// IsKnown reports whether l is one of ValidExperienceLevels.
func (l ExperienceLevel) IsKnown() bool {
	for _, valid := range ValidExperienceLevels {
		if l == valid {
			return true
		}
	}
	return false
}

// IsResolved reports whether the level can select a weight table.
func (l ExperienceLevel) IsResolved() bool {
	return l == LevelIntern || l == LevelFresher || l == LevelExperienced
}

// Label returns the capitalized form used in summaries, e.g. "Fresher".
func (l ExperienceLevel) Label() string {
	if l == "" {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}

type AnalysisRequest struct {
	ResumePDF       []byte
	JobDescription  string
	ExperienceLevel ExperienceLevel
}

type ScoreBundle struct {
	MatchScore             int
	SkillsMatchPercent     int
	ExperienceMatchPercent int
	KeywordMatchPercent    int
	CommonKeywords         KeywordSet
}

type AnalysisResult struct {
	MatchScore             int             `json:"matchScore"`
	SkillsMatchPercent     int             `json:"skillsMatchPercent"`
	ExperienceMatchPercent int             `json:"experienceMatchPercent"`
	KeywordMatchPercent    int             `json:"keywordMatchPercent"`
	ExperienceLevel        ExperienceLevel `json:"experienceLevel"`
	Summary                string          `json:"summary"`
	Strengths              []string        `json:"strengths"`
	AreasForImprovement    []string        `json:"areasForImprovement"`
	ProcessingTime         float64         `json:"processingTime"`
}
