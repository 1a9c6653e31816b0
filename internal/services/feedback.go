package services

import (
	"fmt"
	"strings"

	"meprofiled/backend/internal/models"
)

const (
	maxFeedbackItems = 5

	strongMatchScore   = 85
	moderateMatchScore = 70

	fallbackStrength  = "Shows foundational knowledge in the field"
	tailorImprovement = "Tailor resume content to emphasize achievements that directly relate to job responsibilities"
)

type Feedback struct {
	Summary      string
	Strengths    []string
	Improvements []string
}

// feedbackRule adds text when fires holds. A nil fires always holds. Text may
// carry one %d verb, filled with the number of common keywords.
type feedbackRule struct {
	fires func(b models.ScoreBundle) bool
	text  string
}

func skillsAtLeast(n int) func(models.ScoreBundle) bool {
	return func(b models.ScoreBundle) bool { return b.SkillsMatchPercent >= n }
}

func skillsBelow(n int) func(models.ScoreBundle) bool {
	return func(b models.ScoreBundle) bool { return b.SkillsMatchPercent < n }
}

func experienceAtLeast(n int) func(models.ScoreBundle) bool {
	return func(b models.ScoreBundle) bool { return b.ExperienceMatchPercent >= n }
}

func experienceBelow(n int) func(models.ScoreBundle) bool {
	return func(b models.ScoreBundle) bool { return b.ExperienceMatchPercent < n }
}

func keywordsAtLeast(n int) func(models.ScoreBundle) bool {
	return func(b models.ScoreBundle) bool { return b.KeywordMatchPercent >= n }
}

func keywordsBelow(n int) func(models.ScoreBundle) bool {
	return func(b models.ScoreBundle) bool { return b.KeywordMatchPercent < n }
}

func commonMoreThan(n int) func(models.ScoreBundle) bool {
	return func(b models.ScoreBundle) bool { return b.CommonKeywords.Len() > n }
}

func commonFewerThan(n int) func(models.ScoreBundle) bool {
	return func(b models.ScoreBundle) bool { return b.CommonKeywords.Len() < n }
}

var strengthRules = map[models.ExperienceLevel][]feedbackRule{
	models.LevelIntern: {
		{skillsAtLeast(60), "Good foundational technical skills for an internship role"},
		{keywordsAtLeast(40), "Demonstrates awareness of relevant technologies and tools"},
		{commonMoreThan(5), "Shows familiarity with %d key terms from the job posting"},
		{nil, "Eager to learn and grow in the field"},
	},
	models.LevelFresher: {
		{skillsAtLeast(65), "Solid technical skills for an entry-level candidate"},
		{keywordsAtLeast(50), "Good understanding of relevant technologies and frameworks"},
		{commonMoreThan(8), "Familiar with %d important industry keywords"},
		{experienceAtLeast(60), "Shows academic or project experience relevant to the role"},
	},
	models.LevelExperienced: {
		{skillsAtLeast(75), "Strong technical skills alignment with job requirements"},
		{experienceAtLeast(75), "Relevant work experience matching the role's expectations"},
		{keywordsAtLeast(60), "Good coverage of key technologies and tools mentioned in job description"},
		{commonMoreThan(10), "Demonstrates knowledge of %d relevant keywords and technologies"},
	},
}

var improvementRules = map[models.ExperienceLevel][]feedbackRule{
	models.LevelIntern: {
		{skillsBelow(60), "Build foundational skills in the key technologies mentioned in the job description"},
		{keywordsBelow(40), "Learn and include relevant technical keywords in your resume"},
		{nil, "Highlight academic projects and coursework related to the role"},
		{nil, "Add any relevant certifications or online courses completed"},
		{nil, tailorImprovement},
	},
	models.LevelFresher: {
		{skillsBelow(65), "Strengthen technical skills to better align with job requirements"},
		{keywordsBelow(50), "Include more technologies and tools mentioned in the job posting"},
		{nil, "Emphasize personal projects and academic achievements"},
		{experienceBelow(60), "Add more details about relevant coursework and hands-on experience"},
		{nil, tailorImprovement},
	},
	models.LevelExperienced: {
		{skillsBelow(75), "Enhance technical skills section to better match job requirements"},
		{experienceBelow(75), "Highlight more relevant work experience and projects related to the role"},
		{keywordsBelow(60), "Include more specific technologies, tools, and frameworks mentioned in the job description"},
		{commonFewerThan(10), "Add industry-specific keywords and technical terminology from the job posting"},
		{nil, tailorImprovement},
	},
}

// GenerateFeedback renders the summary and the strength and improvement lists
// for a scored resume. Unresolved levels use the experienced tables.
func GenerateFeedback(b models.ScoreBundle, level models.ExperienceLevel) Feedback {
	tableLevel := level
	if !tableLevel.IsResolved() {
		tableLevel = models.LevelExperienced
	}

	strengths := applyRules(strengthRules[tableLevel], b)
	if len(strengths) == 0 {
		strengths = []string{fallbackStrength}
	}

	return Feedback{
		Summary:      buildSummary(b.MatchScore, level.Label()),
		Strengths:    strengths,
		Improvements: applyRules(improvementRules[tableLevel], b),
	}
}

func buildSummary(matchScore int, levelLabel string) string {
	switch {
	case matchScore >= strongMatchScore:
		return fmt.Sprintf("Strong match with %d%% overall compatibility. As a %s, the candidate's profile aligns well with the job requirements and demonstrates relevant expertise.",
			matchScore, levelLabel)
	case matchScore >= moderateMatchScore:
		return fmt.Sprintf("Moderate match with %d%% overall compatibility. As a %s, the candidate shows good potential with some areas that could be enhanced to better align with the role.",
			matchScore, levelLabel)
	default:
		return fmt.Sprintf("Developing match with %d%% overall compatibility. As a %s, the candidate has foundational qualities but would benefit from developing additional skills and experience for this role.",
			matchScore, levelLabel)
	}
}

func applyRules(rules []feedbackRule, b models.ScoreBundle) []string {
	out := make([]string, 0, maxFeedbackItems)
	for _, rule := range rules {
		if rule.fires != nil && !rule.fires(b) {
			continue
		}
		out = append(out, render(rule.text, b))
	}
	if len(out) > maxFeedbackItems {
		out = out[:maxFeedbackItems]
	}
	return out
}

func render(text string, b models.ScoreBundle) string {
	if strings.Contains(text, "%d") {
		return fmt.Sprintf(text, b.CommonKeywords.Len())
	}
	return text
}
