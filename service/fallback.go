package service

import (
	"strings"

	"legalease-backend/models"
)

// Static fallback answers returned when every other stage of the chain
// has failed. Deterministic: identical queries always produce identical
// output, so the caller never sees a raw failure.

const fallbackArrestAnswer = `If you or someone you know is dealing with the police or an arrest, keep these basics in mind:

1. You have the right to know why you are being arrested.
2. You have the right to remain silent and to speak to a lawyer.
3. An arrested person must be produced before a magistrate within 24 hours.
4. Free legal aid is available through the District Legal Services Authority if you cannot afford a lawyer.

Our full answer service is temporarily unavailable, so this is general guidance only. For anything urgent, contact a lawyer or the legal aid helpline 15100 right away.`

const fallbackContractAnswer = `For questions about a contract or agreement, the essentials are:

1. A contract needs offer, acceptance, consideration, and free consent to be valid (Indian Contract Act, 1872).
2. Read every clause before signing, especially termination and penalty clauses.
3. Keep signed copies and all related messages; they are your evidence.
4. If the other side breaks the agreement, remedies include damages and, for some contracts, an order to actually perform.

Our full answer service is temporarily unavailable, so this is general guidance only. For a dispute that matters to you, have a lawyer read the document.`

const fallbackGenericAnswer = `We could not generate a detailed answer for your question right now.

General guidance that applies to most legal situations:

1. Write down what happened, with dates, and keep every document and message.
2. Act promptly; many legal remedies have strict time limits.
3. Free legal aid is available through the District Legal Services Authority and the 15100 helpline.
4. For anything involving police, courts, or significant money, consult a lawyer before acting.

Please try asking again in a few minutes, or rephrase your question with more detail.`

// StaticFallback returns one of three fixed template answers based on a
// small local keyword check. This is the terminal stage of the chain
// and never fails.
func StaticFallback(query string) *models.Answer {
	q := strings.ToLower(query)

	switch {
	case strings.Contains(q, "arrest") || strings.Contains(q, "police"):
		return &models.Answer{
			Answer:   fallbackArrestAnswer,
			Category: "Arrest & Police Rights",
			Urgency:  models.UrgencyHigh,
			Sources: []models.Source{
				{Title: "General Legal Guidance", Type: models.SourceTypeGuidance},
			},
			Fallback: true,
		}
	case strings.Contains(q, "contract") || strings.Contains(q, "agreement"):
		return &models.Answer{
			Answer:   fallbackContractAnswer,
			Category: "Contract Law",
			Urgency:  models.UrgencyMedium,
			Sources: []models.Source{
				{Title: "General Legal Guidance", Type: models.SourceTypeGuidance},
			},
			Fallback: true,
		}
	default:
		return &models.Answer{
			Answer:   fallbackGenericAnswer,
			Category: "General",
			Urgency:  models.UrgencyLow,
			Sources: []models.Source{
				{Title: "General Legal Guidance", Type: models.SourceTypeGuidance},
			},
			Fallback: true,
		}
	}
}
