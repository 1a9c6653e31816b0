package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		want    []string
		notWant []string
	}{
		{
			name:    "technical bigrams",
			text:    "Experienced Python developer with Machine Learning and React.js skills.",
			want:    []string{"python", "developer", "python developer", "machine learning", "react.js", "skills"},
			notWant: []string{"with", "and", "react.js skills", "skills."},
		},
		{
			name:    "symbols in technology names",
			text:    "Proficient in C++, Node.js and .NET (Core)",
			want:    []string{"c++", "node.js", "net", "core", "proficient"},
			notWant: []string{"in", "(core)"},
		},
		{
			name: "indicator substrings",
			text: "postgres database tuning",
			want: []string{"postgres database"},
		},
		{
			name:    "bigrams never span lines",
			text:    "machine\nlearning",
			want:    []string{"machine", "learning"},
			notWant: []string{"machine learning"},
		},
		{
			name:    "stop words break bigrams",
			text:    "data and science",
			want:    []string{"data", "science"},
			notWant: []string{"data science", "data and", "and science"},
		},
		{
			name:    "short words dropped",
			text:    "Go AI ML is ok",
			notWant: []string{"go", "ai", "ml", "is", "ok"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractKeywords(tc.text)
			for _, w := range tc.want {
				assert.True(t, got.Has(w), "missing %q in %v", w, got.Sorted())
			}
			for _, w := range tc.notWant {
				assert.False(t, got.Has(w), "unexpected %q in %v", w, got.Sorted())
			}
		})
	}
}

func TestExtractKeywords_StopWordsOnly(t *testing.T) {
	got := ExtractKeywords("The and of with from. This, these; those? It is!")
	assert.Equal(t, 0, got.Len())
}

func TestExtractKeywords_Reextraction(t *testing.T) {
	texts := []string{
		strings.Join(sampleResumeLines, "\n"),
		"Senior Full Stack Engineer: React, Node, TypeScript, AWS Lambda, CI/CD, SQL Server.",
		"Looking for a data scientist with deep learning, NLP and cloud architecture expertise.",
	}

	for _, text := range texts {
		first := ExtractKeywords(text)
		again := ExtractKeywords(strings.Join(first.Sorted(), "\n"))

		for w := range again {
			assert.True(t, first.Has(w), "re-extraction produced %q", w)
		}
	}
}
