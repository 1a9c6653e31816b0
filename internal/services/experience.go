package services

import (
	"regexp"
	"strconv"
	"strings"

	"meprofiled/backend/internal/models"
)

var (
	internPhrases = []string{
		"intern", "internship", "student", "currently pursuing",
		"expected graduation", "undergraduate", "college student",
		"university student", "seeking internship",
	}
	fresherPhrases = []string{
		"fresher", "recent graduate", "entry level", "no experience",
		"graduated in", "bachelor", "degree in", "just completed",
		"newly graduated",
	}
	workWords = []string{"company", "project", "developed", "managed", "led", "implemented"}

	yearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*years?`)
)

const (
	// calendarYearCutoff drops matches like "2023 years" that are dates, not durations.
	calendarYearCutoff = 50
	seniorYears        = 3
	minWorkSignals     = 5
)

// Detection is the classifier's verdict together with the signals it used.
type Detection struct {
	Level          models.ExperienceLevel
	Rule           string
	MaxYears       int
	InternSignals  int
	FresherSignals int
	WorkSignals    int
	mentionsIntern bool
	mentionsGrad   bool
}

type levelRule struct {
	name  string
	when  func(d Detection) bool
	level models.ExperienceLevel
}

// levelRules is evaluated top to bottom; the first rule that holds wins.
var levelRules = []levelRule{
	{
		name:  "internship mentioned or several intern phrases",
		when:  func(d Detection) bool { return d.mentionsIntern || d.InternSignals >= 2 },
		level: models.LevelIntern,
	},
	{
		name:  "fresher phrase or graduate without years",
		when:  func(d Detection) bool { return d.FresherSignals >= 1 || (d.MaxYears == 0 && d.mentionsGrad) },
		level: models.LevelFresher,
	},
	{
		name:  "three or more years",
		when:  func(d Detection) bool { return d.MaxYears >= seniorYears },
		level: models.LevelExperienced,
	},
	{
		name:  "under three years",
		when:  func(d Detection) bool { return d.MaxYears > 0 },
		level: models.LevelFresher,
	},
	{
		name:  "many work indicators",
		when:  func(d Detection) bool { return d.WorkSignals >= minWorkSignals },
		level: models.LevelExperienced,
	},
}

// DetectExperienceLevel classifies resume text as intern, fresher or experienced.
func DetectExperienceLevel(resumeText string) models.ExperienceLevel {
	return ClassifyExperience(resumeText).Level
}

// ClassifyExperience applies the level rules in order and reports the signals
// it saw, with Detection.Rule naming the rule that decided the level.
func ClassifyExperience(resumeText string) Detection {
	text := strings.ToLower(resumeText)

	d := Detection{
		MaxYears:       maxYearsOfExperience(text),
		InternSignals:  countPhrases(text, internPhrases),
		FresherSignals: countPhrases(text, fresherPhrases),
		WorkSignals:    countPhrases(text, workWords),
		mentionsIntern: strings.Contains(text, "internship"),
		mentionsGrad:   strings.Contains(text, "graduate"),
	}

	d.Level, d.Rule = models.LevelFresher, "default"
	for _, rule := range levelRules {
		if rule.when(d) {
			d.Level, d.Rule = rule.level, rule.name
			break
		}
	}
	return d
}

// maxYearsOfExperience returns the largest "N years" figure below the calendar
// cutoff, or 0 when there is none.
func maxYearsOfExperience(text string) int {
	maxYears := 0
	for _, m := range yearsPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n >= calendarYearCutoff {
			continue
		}
		if n > maxYears {
			maxYears = n
		}
	}
	return maxYears
}

func countPhrases(text string, phrases []string) int {
	count := 0
	for _, p := range phrases {
		if strings.Contains(text, p) {
			count++
		}
	}
	return count
}
