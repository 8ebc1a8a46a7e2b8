package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"legalease-backend/models"
)

// corpusCandidatePaths are probed in order when no explicit path is
// configured. The first existing file wins; this keeps the bundled data
// loadable across local runs and container deployments.
var corpusCandidatePaths = []string{
	"data/legal_corpus.json",
	"./data/legal_corpus.json",
	"../data/legal_corpus.json",
	"../../data/legal_corpus.json",
	"/app/data/legal_corpus.json",
}

// CorpusRepository holds the static legal-code corpus, parsed once at
// startup and read-only afterwards
type CorpusRepository struct {
	records []models.CorpusRecord
}

// NewCorpusRepository loads the corpus from path, or probes the default
// candidate paths when path is empty. A missing or unreadable corpus is
// never fatal: the repository stays usable and empty, and the answer
// chain falls through to the next stage.
func NewCorpusRepository(path string) *CorpusRepository {
	r := &CorpusRepository{}

	paths := corpusCandidatePaths
	if path != "" {
		paths = []string{path}
	}

	var tried []string
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			tried = append(tried, p)
			continue
		}
		var records []models.CorpusRecord
		if err := json.Unmarshal(data, &records); err != nil {
			log.Printf("Warning: corpus file %s is not valid JSON: %v", p, err)
			tried = append(tried, p)
			continue
		}
		r.records = records
		log.Printf("Legal corpus loaded: %d records from %s", len(records), p)
		return r
	}

	log.Printf("Warning: no legal corpus found (tried: %s); corpus search disabled", strings.Join(tried, ", "))
	return r
}

// Len reports the number of loaded corpus records
func (r *CorpusRepository) Len() int {
	return len(r.records)
}

// corpusMatch pairs a record with its term-hit score for ranking
type corpusMatch struct {
	record models.CorpusRecord
	score  int
	index  int
}

// Search returns up to limit records whose title or text contains the
// query's terms, ranked by the number of distinct terms hit. Ties break
// by record order so results are deterministic. Terms shorter than
// three characters are ignored.
func (r *CorpusRepository) Search(query string, limit int) []models.CorpusRecord {
	if len(r.records) == 0 || limit <= 0 {
		return nil
	}

	terms := searchTerms(query)
	if len(terms) == 0 {
		return nil
	}

	var matches []corpusMatch
	for i, rec := range r.records {
		haystack := strings.ToLower(rec.Title + " " + rec.Text)
		score := 0
		for _, term := range terms {
			if strings.Contains(haystack, term) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, corpusMatch{record: rec, score: score, index: i})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].score != matches[b].score {
			return matches[a].score > matches[b].score
		}
		return matches[a].index < matches[b].index
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]models.CorpusRecord, len(matches))
	for i, m := range matches {
		out[i] = m.record
	}
	return out
}

// searchTerms lower-cases and tokenizes a query, dropping short tokens
// and common stopwords that would match almost every record
func searchTerms(query string) []string {
	stopwords := map[string]bool{
		"the": true, "and": true, "for": true, "what": true, "how": true,
		"can": true, "are": true, "you": true, "with": true, "this": true,
		"that": true, "about": true, "does": true, "have": true, "when": true,
	}
	fields := strings.Fields(strings.ToLower(query))
	var terms []string
	for _, f := range fields {
		f = strings.Trim(f, ".,?!\"'()")
		if len(f) < 3 || stopwords[f] {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}

// FormatRecords renders corpus records into a readable answer body
func FormatRecords(records []models.CorpusRecord) string {
	var b strings.Builder
	b.WriteString("The following provisions of the legal code appear relevant to your question:\n\n")
	for i, rec := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("**Section %s: %s**", rec.Section, rec.Title))
		if rec.Chapter != "" {
			b.WriteString(fmt.Sprintf(" (%s)", rec.Chapter))
		}
		b.WriteString("\n")
		b.WriteString(rec.Text)
		b.WriteString("\n")
	}
	b.WriteString("\nThis is the text of the law itself; how it applies depends on your specific facts. Consider consulting a lawyer for advice on your situation.")
	return b.String()
}
