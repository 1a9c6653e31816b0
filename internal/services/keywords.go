package services

import (
	"strings"
	"unicode"

	"meprofiled/backend/internal/models"
)

var stopWords = toSet(
	"a", "an", "the", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did", "will", "would", "should",
	"can", "could", "may", "might", "must", "and", "or", "but", "in",
	"on", "at", "to", "for", "of", "with", "by", "from", "as", "that",
	"this", "these", "those", "it", "its", "about", "into", "through",
	"during", "before", "after", "above", "below", "up", "down", "out",
	"off", "over", "under", "again", "further", "then", "once", "here",
	"there", "when", "where", "why", "how", "all", "both", "each", "few",
	"more", "most", "other", "some", "such", "no", "nor", "not", "only",
	"own", "same", "so", "than", "too", "very", "we", "you", "your",
	"our", "their", "his", "her", "my", "me", "him", "them", "us",
)

// bigramRule keeps a bigram when First or Second (or Either) contains the
// corresponding word. Empty sets don't constrain.
type bigramRule struct {
	First  map[string]struct{}
	Second map[string]struct{}
	Either map[string]struct{}
}

func (r bigramRule) matches(first, second string) bool {
	if r.Either != nil {
		_, a := r.Either[first]
		_, b := r.Either[second]
		return a || b
	}
	if r.First != nil {
		if _, ok := r.First[first]; !ok {
			return false
		}
	}
	if r.Second != nil {
		if _, ok := r.Second[second]; !ok {
			return false
		}
	}
	return r.First != nil || r.Second != nil
}

var bigramRules = []bigramRule{
	{Second: toSet("learning", "science", "engineering", "development", "testing", "management", "analysis", "design", "architecture")},
	{First: toSet("machine", "deep", "data", "web", "mobile", "software", "full", "front", "back", "cloud", "artificial")},
	{Second: toSet("sql", "api", "devops", "cloud", "stack", "end")},
	{Either: toSet("react", "angular", "vue", "node", "python", "java", "javascript", "typescript", "docker", "kubernetes", "aws", "azure", "gcp")},
	{Second: toSet("developer", "engineer", "analyst", "designer", "manager", "lead", "architect")},
}

var bigramIndicators = []string{
	"learning", "science", "development", "engineering", "testing",
	"design", "management", "analysis", "stack", "framework", "database",
	"server", "client", "backend", "frontend", "fullstack",
}

// ExtractKeywords returns the significant unigrams of text plus the adjacent
// pairs that look like technical terms ("machine learning", "react developer").
// Bigrams never span a line break.
func ExtractKeywords(text string) models.KeywordSet {
	keywords := make(models.KeywordSet)

	for _, line := range strings.Split(normalizeText(text), "\n") {
		var prev string
		for _, word := range strings.Fields(line) {
			word = strings.Trim(word, ".")
			if !isSignificant(word) {
				prev = ""
				continue
			}

			keywords.Add(word)
			if prev != "" && isTechnicalBigram(prev, word) {
				keywords.Add(prev + " " + word)
			}
			prev = word
		}
	}

	return keywords
}

// normalizeText lowercases text and blanks out everything except ASCII
// letters, digits, whitespace, '+', '#' and '.'.
func normalizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		switch {
		case r == '\n':
			b.WriteRune('\n')
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+', r == '#', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func isSignificant(word string) bool {
	if len(word) <= 2 {
		return false
	}
	_, stop := stopWords[word]
	return !stop
}

func isTechnicalBigram(first, second string) bool {
	for _, rule := range bigramRules {
		if rule.matches(first, second) {
			return true
		}
	}

	bigram := first + " " + second
	for _, indicator := range bigramIndicators {
		if strings.Contains(bigram, indicator) {
			return true
		}
	}
	return false
}

func toSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
