package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"legalease-backend/cache"
	"legalease-backend/models"
	"legalease-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator is a canned Generator for exercising the chain without
// the real generation service
type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	return g.text, g.err
}

// missesKnowledgeBase is a query no keyword or heuristic matches
const missesKnowledgeBase = "zoning permission question for warehouse rooftop"

func TestAnswerTooShortQuery(t *testing.T) {
	respCache := cache.New(4)
	svc := NewAnswerService(WithResponseCache(respCache))

	for _, q := range []string{"hi", "  a b  ", "", "   "} {
		answer := svc.Answer(context.Background(), AnswerRequest{Query: q, Level: models.LevelLawyer})
		require.NotNil(t, answer)
		assert.Equal(t, tooShortAnswerText, answer.Answer, "query: %q", q)
		assert.Equal(t, models.UrgencyLow, answer.Urgency)
		assert.NotNil(t, answer.Sources)
		assert.Empty(t, answer.Sources)
		assert.False(t, answer.Fallback)
	}

	// Too-short responses are never cached
	assert.Equal(t, 0, respCache.Len())
}

func TestAnswerFromKnowledgeBase(t *testing.T) {
	gen := &stubGenerator{text: "should not be used"}
	svc := NewAnswerService(WithGenerator(gen))

	answer := svc.Answer(context.Background(), AnswerRequest{
		Query: "How do I file an FIR",
		Level: models.LevelLawyer,
	})

	require.NotNil(t, answer)
	assert.Equal(t, "Criminal Law & FIR", answer.Category)
	assert.Equal(t, models.UrgencyHigh, answer.Urgency)
	assert.Contains(t, answer.Answer, "First Information Report")
	assert.False(t, answer.Fallback)
	require.NotEmpty(t, answer.Sources)

	var hasConcept bool
	for _, src := range answer.Sources {
		if src.Type == models.SourceTypeLegalConcept {
			hasConcept = true
		}
	}
	assert.True(t, hasConcept)

	// A knowledge-base hit never reaches the generation stage
	assert.Equal(t, 0, gen.calls)
}

func TestAnswerMergesConstitutionalReferences(t *testing.T) {
	svc := NewAnswerService()

	answer := svc.Answer(context.Background(), AnswerRequest{
		Query: "I was arrested by the police",
		Level: models.LevelLawyer,
	})

	require.NotNil(t, answer)
	assert.Equal(t, "Arrest & Police Rights", answer.Category)
	assert.Contains(t, answer.ConstitutionalBasis, "Article 22")
	assert.Contains(t, answer.ConstitutionalBasis, "**Relevant Statutes:**")

	var hasConstitutionalSource bool
	for _, src := range answer.Sources {
		if src.Title == "Article 22" && src.Type == models.SourceTypeConstitutional {
			hasConstitutionalSource = true
		}
	}
	assert.True(t, hasConstitutionalSource)
}

func TestAnswerFromCorpus(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.json")
	corpusJSON := `[
		{"id": "test-1", "section": "12", "title": "Registration of bicycles",
		 "chapter": "Test Act", "text": "Every bicycle must be registered with the municipal office."},
		{"id": "test-2", "section": "13", "title": "Street lighting",
		 "chapter": "Test Act", "text": "Streets shall be lit between sunset and sunrise."}
	]`
	require.NoError(t, os.WriteFile(path, []byte(corpusJSON), 0o644))

	gen := &stubGenerator{text: "should not be used"}
	svc := NewAnswerService(
		WithCorpusRepository(repository.NewCorpusRepository(path)),
		WithGenerator(gen),
	)

	answer := svc.Answer(context.Background(), AnswerRequest{
		Query: "bicycle registration at the municipal office",
		Level: models.LevelLawyer,
	})

	require.NotNil(t, answer)
	assert.Equal(t, "Legal Code", answer.Category)
	assert.Contains(t, answer.Answer, "Registration of bicycles")
	assert.Contains(t, answer.Answer, "Every bicycle must be registered")
	assert.False(t, answer.Fallback)
	require.NotEmpty(t, answer.Sources)
	assert.Equal(t, models.SourceTypeStatute, answer.Sources[0].Type)

	// A corpus hit never reaches the generation stage
	assert.Equal(t, 0, gen.calls)
}

func TestAnswerFromGenerator(t *testing.T) {
	gen := &stubGenerator{
		text: "Zoning permissions are granted by the municipal planning authority after a review of the site plan.",
	}
	svc := NewAnswerService(WithGenerator(gen), WithResponseCache(cache.New(4)))

	answer := svc.Answer(context.Background(), AnswerRequest{
		Query: missesKnowledgeBase,
		Level: models.LevelLawyer,
	})

	require.NotNil(t, answer)
	assert.Equal(t, gen.text, answer.Answer)
	assert.Equal(t, "legal_guidance", answer.Category)
	assert.False(t, answer.Fallback)
	require.Len(t, answer.Sources, 1)
	assert.Equal(t, models.SourceTypeAIGenerated, answer.Sources[0].Type)
	assert.Equal(t, 1, gen.calls)

	// The second identical request is served from the cache
	again := svc.Answer(context.Background(), AnswerRequest{
		Query: missesKnowledgeBase,
		Level: models.LevelLawyer,
	})
	assert.Equal(t, answer, again)
	assert.Equal(t, 1, gen.calls)
}

func TestAnswerGeneratorFailureFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream unavailable")}
	svc := NewAnswerService(WithGenerator(gen))

	answer := svc.Answer(context.Background(), AnswerRequest{
		Query: missesKnowledgeBase,
		Level: models.LevelLawyer,
	})

	require.NotNil(t, answer)
	assert.True(t, answer.Fallback)
	assert.Equal(t, "General", answer.Category)
	assert.Equal(t, 1, gen.calls)
}

func TestAnswerShortGenerationFallsBack(t *testing.T) {
	gen := &stubGenerator{text: "too short"}
	svc := NewAnswerService(WithGenerator(gen))

	answer := svc.Answer(context.Background(), AnswerRequest{
		Query: missesKnowledgeBase,
		Level: models.LevelLawyer,
	})

	require.NotNil(t, answer)
	assert.True(t, answer.Fallback)
	assert.Equal(t, 1, gen.calls)
}

func TestAnswerNoGeneratorFallsBack(t *testing.T) {
	svc := NewAnswerService()

	answer := svc.Answer(context.Background(), AnswerRequest{
		Query: missesKnowledgeBase,
		Level: models.LevelLawyer,
	})

	require.NotNil(t, answer)
	assert.True(t, answer.Fallback)
	assert.Equal(t, "General", answer.Category)
}

func TestAnswerAppliesReadingLevel(t *testing.T) {
	svc := NewAnswerService()

	answer := svc.Answer(context.Background(), AnswerRequest{
		Query: "How do I file an FIR",
		Level: models.LevelChild,
	})

	require.NotNil(t, answer)
	assert.True(t, strings.HasSuffix(answer.Answer, childDisclaimer))
	assert.NotContains(t, answer.Answer, "**")
}

func TestAnswerInvalidLevelDefaultsToLawyer(t *testing.T) {
	svc := NewAnswerService()

	plain := svc.Answer(context.Background(), AnswerRequest{
		Query: "what is a contract",
		Level: models.LevelLawyer,
	})
	defaulted := svc.Answer(context.Background(), AnswerRequest{
		Query: "what is a contract",
		Level: models.Level("phd"),
	})

	assert.Equal(t, plain.Answer, defaulted.Answer)
}

func TestAnswerCacheReturnsIndependentCopies(t *testing.T) {
	svc := NewAnswerService(WithResponseCache(cache.New(4)))

	first := svc.Answer(context.Background(), AnswerRequest{
		Query: "what is a contract",
		Level: models.LevelLawyer,
	})
	require.NotNil(t, first)
	original := first.Answer
	first.Answer = "mutated by caller"

	second := svc.Answer(context.Background(), AnswerRequest{
		Query: "what is a contract",
		Level: models.LevelLawyer,
	})
	assert.Equal(t, original, second.Answer)
}

func TestAnswerDeterministicWithoutGenerator(t *testing.T) {
	svc := NewAnswerService()

	for _, level := range []models.Level{models.LevelChild, models.LevelTeen, models.LevelLawyer} {
		first := svc.Answer(context.Background(), AnswerRequest{Query: "what is a contract", Level: level})
		for i := 0; i < 3; i++ {
			again := svc.Answer(context.Background(), AnswerRequest{Query: "what is a contract", Level: level})
			assert.Equal(t, first, again)
		}
	}
}

func TestRecentQuestionsWithoutRepository(t *testing.T) {
	svc := NewAnswerService()

	logs, err := svc.RecentQuestions(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}
