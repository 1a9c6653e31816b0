package models

import "sort"

// KeywordSet is a set of normalized lowercase tokens.
type KeywordSet map[string]struct{}

func NewKeywordSet(words ...string) KeywordSet {
	s := make(KeywordSet, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

func (s KeywordSet) Add(word string) {
	s[word] = struct{}{}
}

func (s KeywordSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

func (s KeywordSet) Len() int {
	return len(s)
}

// Intersect returns the keywords present in both sets.
func (s KeywordSet) Intersect(other KeywordSet) KeywordSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	out := make(KeywordSet)
	for w := range small {
		if large.Has(w) {
			out.Add(w)
		}
	}
	return out
}

// Sorted returns the keywords in lexical order.
func (s KeywordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
