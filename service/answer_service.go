package service

import (
	"context"
	"log"
	"strings"
	"time"
	"unicode"

	"legalease-backend/cache"
	"legalease-backend/knowledge"
	"legalease-backend/models"
	"legalease-backend/repository"

	"github.com/google/uuid"
)

// AnswerService runs the fallback chain for legal-guidance queries:
// knowledge base, then corpus search, then a single LLM attempt, then
// static guidance. Every stage degrades into the next; the caller is
// always handed a well-formed answer.
type AnswerService struct {
	classifier *knowledge.Classifier
	corpusRepo *repository.CorpusRepository
	logRepo    *repository.QuestionLogRepository
	respCache  *cache.ResponseCache
	generator  Generator
	llmTimeout time.Duration
}

// AnswerServiceOption is a functional option for AnswerService
type AnswerServiceOption func(*AnswerService)

// WithClassifier sets the keyword classifier
func WithClassifier(c *knowledge.Classifier) AnswerServiceOption {
	return func(s *AnswerService) {
		s.classifier = c
	}
}

// WithCorpusRepository sets the legal-code corpus
func WithCorpusRepository(repo *repository.CorpusRepository) AnswerServiceOption {
	return func(s *AnswerService) {
		s.corpusRepo = repo
	}
}

// WithQuestionLogRepository enables best-effort question logging
func WithQuestionLogRepository(repo *repository.QuestionLogRepository) AnswerServiceOption {
	return func(s *AnswerService) {
		s.logRepo = repo
	}
}

// WithResponseCache sets the response cache
func WithResponseCache(c *cache.ResponseCache) AnswerServiceOption {
	return func(s *AnswerService) {
		s.respCache = c
	}
}

// WithGenerator sets the external generation service
func WithGenerator(g Generator) AnswerServiceOption {
	return func(s *AnswerService) {
		s.generator = g
	}
}

// WithLLMTimeout overrides the generation-call deadline
func WithLLMTimeout(d time.Duration) AnswerServiceOption {
	return func(s *AnswerService) {
		s.llmTimeout = d
	}
}

// NewAnswerService creates a new answer service
func NewAnswerService(opts ...AnswerServiceOption) *AnswerService {
	s := &AnswerService{
		classifier: knowledge.NewClassifier(knowledge.MatchSubstring),
		llmTimeout: 25 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AnswerRequest represents a legal-guidance query
type AnswerRequest struct {
	Query string
	Level models.Level
}

const (
	// tooShortAnswerText is the fixed response for queries under three
	// non-whitespace characters. Never cached.
	tooShortAnswerText = `Your question is too short for me to understand. Please describe your situation in a few more words, for example: "My landlord is not returning my security deposit."`

	// minQueryChars is the minimum number of non-whitespace characters
	minQueryChars = 3

	// minLLMAnswerChars treats implausibly short generation output as a
	// failure so the chain falls through to static guidance
	minLLMAnswerChars = 40
)

// Answer resolves a query through the fallback chain and applies the
// age-level rewriter to whichever answer is chosen. It never fails:
// total backend failure still yields the static-guidance answer.
func (s *AnswerService) Answer(ctx context.Context, req AnswerRequest) *models.Answer {
	query := strings.TrimSpace(req.Query)
	level := models.ParseLevel(string(req.Level))

	if countNonSpace(query) < minQueryChars {
		return &models.Answer{
			Answer:  tooShortAnswerText,
			Urgency: models.UrgencyLow,
			Sources: []models.Source{},
		}
	}

	if s.respCache != nil {
		if cached := s.respCache.Get(query, level); cached != nil {
			return cached
		}
	}

	answer, origin := s.resolve(ctx, query, level)
	answer.Answer = Simplify(answer.Answer, level)

	ttl := cache.SuccessTTL
	if answer.Fallback {
		ttl = cache.FallbackTTL
	}
	if s.respCache != nil {
		s.respCache.Set(query, level, answer, ttl)
	}

	s.logQuestion(query, level, answer, origin)

	return answer
}

// resolve walks the chain and returns the chosen answer plus which
// stage produced it
func (s *AnswerService) resolve(ctx context.Context, query string, level models.Level) (*models.Answer, models.AnswerOrigin) {
	// Knowledge base: synchronous, deterministic, never touches the network
	if categoryID := s.classifier.Classify(query); categoryID != knowledge.CategoryGeneral {
		if ka := knowledge.Lookup(categoryID); ka != nil {
			return s.buildKnowledgeAnswer(query, ka), models.OriginKnowledgeBase
		}
	}

	// Corpus search over the bundled legal code
	if s.corpusRepo != nil && s.corpusRepo.Len() > 0 {
		if records := s.corpusRepo.Search(query, 3); len(records) > 0 {
			sources := make([]models.Source, 0, len(records))
			for _, rec := range records {
				sources = append(sources, models.Source{
					Title: "Section " + rec.Section + ": " + rec.Title,
					Type:  models.SourceTypeStatute,
				})
			}
			return &models.Answer{
				Answer:   repository.FormatRecords(records),
				Category: "Legal Code",
				Urgency:  models.UrgencyMedium,
				Sources:  sources,
			}, models.OriginCorpus
		}
	}

	// Single LLM attempt with a hard deadline, no retries
	if s.generator != nil {
		llmCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
		defer cancel()

		text, err := s.generator.Generate(llmCtx, buildPrompt(query, level))
		if err == nil && len(strings.TrimSpace(text)) >= minLLMAnswerChars {
			return &models.Answer{
				Answer:   text,
				Category: "legal_guidance",
				Urgency:  models.UrgencyMedium,
				Sources: []models.Source{
					{Title: "AI Legal Assistant", Type: models.SourceTypeAIGenerated},
				},
			}, models.OriginLLM
		}
		if err != nil {
			log.Printf("Warning: generation failed, using static fallback: %v", err)
		} else {
			log.Printf("Warning: generation returned %d chars, using static fallback", len(text))
		}
	}

	return StaticFallback(query), models.OriginStatic
}

// buildKnowledgeAnswer assembles the canned answer for a matched
// category, merging constitutional references when the category is
// flagged for them
func (s *AnswerService) buildKnowledgeAnswer(query string, ka *models.KnowledgeAnswer) *models.Answer {
	answer := &models.Answer{
		Answer:   ka.Answer,
		Category: ka.Category,
		Urgency:  ka.Urgency,
		Sources:  append([]models.Source{}, ka.Sources...),
	}

	if ka.HasConstitutionalRefs {
		refs, statutes := knowledge.Annotate(query + " " + ka.Category)
		if len(refs) > 0 {
			basis := knowledge.FormatReferences(refs)
			if st := knowledge.FormatStatutes(statutes); st != "" {
				basis += "\n" + st
			}
			answer.ConstitutionalBasis = strings.TrimRight(basis, "\n")
			for _, ref := range refs {
				answer.Sources = append(answer.Sources, models.Source{
					Title: ref.Article,
					Type:  models.SourceTypeConstitutional,
				})
			}
		}
	}

	return answer
}

// logQuestion records the answered query when a log repository is
// wired. Best effort, off the request path, and detached from the
// request context so a client disconnect does not lose the row.
func (s *AnswerService) logQuestion(query string, level models.Level, answer *models.Answer, origin models.AnswerOrigin) {
	if s.logRepo == nil {
		return
	}
	entry := &models.QuestionLog{
		ID:       uuid.New(),
		Query:    query,
		Level:    level,
		Category: answer.Category,
		Urgency:  answer.Urgency,
		Origin:   origin,
		Fallback: answer.Fallback,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.logRepo.Create(ctx, entry); err != nil {
			log.Printf("Warning: failed to record question log: %v", err)
		}
	}()
}

// RecentQuestions lists recent question-log rows, or an empty slice
// when logging is not configured
func (s *AnswerService) RecentQuestions(ctx context.Context, limit int) ([]models.QuestionLog, error) {
	if s.logRepo == nil {
		return []models.QuestionLog{}, nil
	}
	return s.logRepo.Recent(ctx, limit)
}

func countNonSpace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
