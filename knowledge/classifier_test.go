package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMatchMode(t *testing.T) {
	assert.Equal(t, MatchWord, ParseMatchMode("word"))
	assert.Equal(t, MatchWord, ParseMatchMode("  WORD "))
	assert.Equal(t, MatchSubstring, ParseMatchMode("substring"))
	assert.Equal(t, MatchSubstring, ParseMatchMode(""))
	assert.Equal(t, MatchSubstring, ParseMatchMode("anything-else"))
}

func TestClassifyKeywordMatch(t *testing.T) {
	c := NewClassifier(MatchSubstring)

	tests := []struct {
		query string
		want  string
	}{
		{"I was arrested last night", "arrest_rights"},
		{"How do I file an FIR", "criminal_law"},
		{"what is a contract", "contract_law"},
		{"my landlord won't return the deposit", "tenant_rights"},
		{"I want a refund for a defective phone", "consumer_rights"},
		{"my salary has not been paid", "employment_law"},
		{"how does divorce work", "family_law"},
		{"who inherits the land without a will", "property_law"},
		{"my cheque bounced", "debt_money"},
		{"I was a victim of upi fraud", "cyber_law"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(tt.query), "query: %s", tt.query)
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	c := NewClassifier(MatchSubstring)

	// "arrest" (first category) beats "divorce" (family_law, later)
	assert.Equal(t, "arrest_rights", c.Classify("arrest during a divorce dispute"))
}

func TestClassifySubstringContainment(t *testing.T) {
	c := NewClassifier(MatchSubstring)

	// "parent" contains "rent", so plain containment hits tenant_rights
	assert.Equal(t, "tenant_rights", c.Classify("I had an argument with my parent"))

	// "fired" contains "fir", which belongs to criminal_law and is
	// checked before the employment keywords
	assert.Equal(t, "criminal_law", c.Classify("I was fired from my job"))
}

func TestClassifyWordMode(t *testing.T) {
	c := NewClassifier(MatchWord)

	// Word boundaries prevent the "rent" in "parent" hit
	assert.Equal(t, CategoryGeneral, c.Classify("I had an argument with my parent"))

	// "fired" is matched as a whole word by the employment keywords
	assert.Equal(t, "employment_law", c.Classify("I was fired from my job"))

	// Exact keywords still match
	assert.Equal(t, "tenant_rights", c.Classify("my rent is overdue"))
	assert.Equal(t, "arrest_rights", c.Classify("police arrest procedure"))
}

func TestClassifyHeuristicPhrases(t *testing.T) {
	c := NewClassifier(MatchSubstring)

	assert.Equal(t, "debt_money", c.Classify("I can't pay my bills this month"))
	assert.Equal(t, "tenant_rights", c.Classify("I got kicked out of my flat today"))
	assert.Equal(t, "cyber_law", c.Classify("someone scammed me yesterday"))
	assert.Equal(t, "criminal_law", c.Classify("a neighbour keeps threatening me"))
}

func TestClassifyGeneral(t *testing.T) {
	c := NewClassifier(MatchSubstring)

	assert.Equal(t, CategoryGeneral, c.Classify("hello there friend"))
	assert.Equal(t, CategoryGeneral, c.Classify(""))
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := NewClassifier(MatchSubstring)

	assert.Equal(t, c.Classify("how do i file an fir"), c.Classify("HOW DO I FILE AN FIR"))
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier(MatchSubstring)

	query := "my landlord is about to arrest my deposit"
	first := c.Classify(query)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify(query))
	}
}
