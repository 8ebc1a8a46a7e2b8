package models

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded document entity
type Document struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}

// Concern is a single flagged issue in a document analysis
type Concern struct {
	Level       string `json:"level"` // "low", "medium", "high"
	Issue       string `json:"issue"`
	Description string `json:"description"`
}

// DocumentAnalysis is the structured result of analyzing a document
type DocumentAnalysis struct {
	DocumentType      string    `json:"documentType"`
	Summary           string    `json:"summary"`
	KeyPoints         []string  `json:"keyPoints"`
	PotentialConcerns []Concern `json:"potentialConcerns"`
	Recommendations   []string  `json:"recommendations"`
	Complexity        string    `json:"complexity"` // "low", "medium", "high"
	ReadingTime       string    `json:"readingTime"`
}
