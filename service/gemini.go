package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"legalease-backend/models"

	"github.com/google/generative-ai-go/genai"
)

// Generator is the external text-generation collaborator. It is an
// interface so the orchestrator can be tested without network access
// and so a missing API key simply leaves it nil.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var (
	ErrGenerationFailed = errors.New("failed to generate content")
	ErrEmptyGeneration  = errors.New("generation service returned empty content")
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiGenerator generates answers through the Gemini API
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator wraps a genai client. An empty model name selects
// the default model.
func NewGeminiGenerator(client *genai.Client, model string) *GeminiGenerator {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiGenerator{client: client, model: model}
}

// Generate sends a single prompt and returns the concatenated text of
// the response. One attempt only; the orchestrator treats any error as
// a signal to fall back to static guidance.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", errors.New("gemini client not set")
	}

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.4)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}

	result := strings.TrimSpace(b.String())
	if result == "" {
		return "", ErrEmptyGeneration
	}
	return result, nil
}

// buildPrompt embeds the user's question and target reading level into
// the generation prompt
func buildPrompt(query string, level models.Level) string {
	audience := map[models.Level]string{
		models.LevelChild:  "a 12-year-old, using short sentences, everyday words, and friendly examples",
		models.LevelTeen:   "a 15-year-old, using clear language and concrete examples",
		models.LevelLawyer: "an adult reader, with precise legal terminology and statutory citations",
	}[level]

	return fmt.Sprintf(`You are a legal-education assistant for Indian law. Answer the question below for %s.

QUESTION:
%s

REQUIREMENTS:
- Explain the relevant legal concepts and the practical steps the person can take
- Name the applicable statutes or constitutional articles where relevant
- Be accurate; when something varies by State or by facts, say so
- Do not present this as formal legal advice; close by suggesting a lawyer or legal aid for real disputes
- Keep the answer under 400 words

Answer now:`, audience, query)
}
