package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeByFileName(t *testing.T) {
	svc := NewDocumentService()

	tests := []struct {
		fileName string
		wantType string
	}{
		{"rental-agreement-2026.pdf", "Rental Agreement"},
		{"LEASE_final.docx", "Rental Agreement"},
		{"offer_letter.pdf", "Employment Contract"},
		{"appointment-letter.pdf", "Employment Contract"},
		{"mutual-nda-v2.pdf", "Non-Disclosure Agreement"},
		{"home-loan-sanction.pdf", "Loan Agreement"},
		{"scan0001.pdf", "Legal Document"},
		{"", "Legal Document"},
	}
	for _, tt := range tests {
		analysis := svc.Analyze(tt.fileName)
		require.NotNil(t, analysis, "file: %s", tt.fileName)
		assert.Equal(t, tt.wantType, analysis.DocumentType, "file: %s", tt.fileName)
	}
}

func TestAnalyzeIsStructured(t *testing.T) {
	analysis := NewDocumentService().Analyze("rent-agreement.pdf")
	require.NotNil(t, analysis)

	assert.NotEmpty(t, analysis.Summary)
	assert.NotEmpty(t, analysis.KeyPoints)
	assert.NotEmpty(t, analysis.PotentialConcerns)
	assert.NotEmpty(t, analysis.Recommendations)
	assert.NotEmpty(t, analysis.Complexity)
	assert.NotEmpty(t, analysis.ReadingTime)
}

func TestAnalyzeReturnsCopy(t *testing.T) {
	svc := NewDocumentService()

	first := svc.Analyze("nda.pdf")
	require.NotNil(t, first)
	first.Summary = "mutated"

	second := svc.Analyze("nda.pdf")
	assert.NotEqual(t, "mutated", second.Summary)
}

func TestAnalyzeDeterministic(t *testing.T) {
	svc := NewDocumentService()

	first := svc.Analyze("loan-papers.pdf")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, svc.Analyze("loan-papers.pdf"))
	}
}
