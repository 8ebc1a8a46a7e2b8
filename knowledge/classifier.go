package knowledge

import (
	"regexp"
	"strings"
	"sync"
)

// MatchMode selects how keywords are matched against queries
type MatchMode string

const (
	// MatchSubstring is the historical behavior: plain containment,
	// so "rent" also matches "parent". Kept as the default so existing
	// fixtures and cached behavior stay stable.
	MatchSubstring MatchMode = "substring"
	// MatchWord matches on word boundaries only
	MatchWord MatchMode = "word"
)

// ParseMatchMode normalizes a configured match mode, defaulting to substring
func ParseMatchMode(s string) MatchMode {
	if MatchMode(strings.ToLower(strings.TrimSpace(s))) == MatchWord {
		return MatchWord
	}
	return MatchSubstring
}

// heuristicPhrase maps a colloquial phrase to a category when no keyword
// matched. Checked in declaration order.
type heuristicPhrase struct {
	phrase   string
	category string
}

var heuristicPhrases = []heuristicPhrase{
	{"can't pay", "debt_money"},
	{"cannot pay", "debt_money"},
	{"unable to pay", "debt_money"},
	{"owe money", "debt_money"},
	{"kicked out", "tenant_rights"},
	{"thrown out of", "tenant_rights"},
	{"locked me out", "tenant_rights"},
	{"scammed", "cyber_law"},
	{"cheated online", "cyber_law"},
	{"beaten", "criminal_law"},
	{"threatening me", "criminal_law"},
}

// CategoryGeneral is returned when no topic category matches
const CategoryGeneral = "general"

// Classifier maps free-text queries to topic category IDs
type Classifier struct {
	mode MatchMode

	once       sync.Once
	wordRegexp map[string]*regexp.Regexp
}

// NewClassifier creates a classifier with the given match mode
func NewClassifier(mode MatchMode) *Classifier {
	return &Classifier{mode: mode}
}

// Classify returns the first topic category whose keyword list matches
// the query, falling back to heuristic phrase checks, then "general".
// Matching is case-insensitive and deterministic: categories and their
// keywords are scanned in declaration order, first hit wins.
func (c *Classifier) Classify(query string) string {
	q := strings.ToLower(query)

	for _, cat := range topicCategories {
		for _, kw := range cat.Keywords {
			if c.matches(q, kw) {
				return cat.ID
			}
		}
	}

	for _, h := range heuristicPhrases {
		if strings.Contains(q, h.phrase) {
			return h.category
		}
	}

	return CategoryGeneral
}

func (c *Classifier) matches(query, keyword string) bool {
	if c.mode == MatchWord {
		return c.wordPattern(keyword).MatchString(query)
	}
	return strings.Contains(query, keyword)
}

// wordPattern lazily compiles and caches word-boundary patterns for
// every keyword in the knowledge base
func (c *Classifier) wordPattern(keyword string) *regexp.Regexp {
	c.once.Do(func() {
		c.wordRegexp = make(map[string]*regexp.Regexp)
		for _, cat := range topicCategories {
			for _, kw := range cat.Keywords {
				c.wordRegexp[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
			}
		}
	})
	return c.wordRegexp[keyword]
}
