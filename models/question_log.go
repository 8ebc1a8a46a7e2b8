package models

import (
	"time"

	"github.com/google/uuid"
)

// AnswerOrigin identifies which stage of the fallback chain produced an answer
type AnswerOrigin string

const (
	OriginKnowledgeBase AnswerOrigin = "knowledge_base"
	OriginCorpus        AnswerOrigin = "corpus"
	OriginLLM           AnswerOrigin = "llm"
	OriginStatic        AnswerOrigin = "static_fallback"
)

// QuestionLog records an answered query for analytics
type QuestionLog struct {
	ID        uuid.UUID    `json:"id"`
	Query     string       `json:"query"`
	Level     Level        `json:"level"`
	Category  string       `json:"category"`
	Urgency   Urgency      `json:"urgency"`
	Origin    AnswerOrigin `json:"origin"`
	Fallback  bool         `json:"fallback"`
	CreatedAt time.Time    `json:"created_at"`
}
