package service

import (
	"strings"

	"legalease-backend/models"
)

// DocumentService produces structured analyses for uploaded documents.
// Classification is by file name only and the analysis content per type
// is fixed, so results are deterministic.
type DocumentService struct{}

// NewDocumentService creates a new document service
func NewDocumentService() *DocumentService {
	return &DocumentService{}
}

// documentProfile is the fixed analysis for one document type
type documentProfile struct {
	keywords []string
	analysis models.DocumentAnalysis
}

var documentProfiles = []documentProfile{
	{
		keywords: []string{"rent", "lease", "tenancy"},
		analysis: models.DocumentAnalysis{
			DocumentType: "Rental Agreement",
			Summary:      "This appears to be a rental agreement between a landlord and tenant. It sets the rent, deposit, duration, and the duties of both sides.",
			KeyPoints: []string{
				"Monthly rent amount and due date",
				"Security deposit and the conditions for its refund",
				"Lock-in period and notice required to vacate",
				"Who pays for maintenance and repairs",
			},
			PotentialConcerns: []models.Concern{{
				Level:       "medium",
				Issue:       "Deposit refund terms",
				Description: "Agreements often leave deposit deductions vague; insist on a written condition report at move-in.",
			}, {
				Level:       "medium",
				Issue:       "Registration",
				Description: "Agreements of 12 months or longer must be registered to be fully enforceable.",
			}, {
				Level:       "low",
				Issue:       "Rent escalation",
				Description: "Check whether yearly rent increases are capped at a stated percentage.",
			}},
			Recommendations: []string{
				"Photograph the property's condition before moving in",
				"Ask for rent receipts every month",
				"Verify the owner's title documents before signing",
			},
			Complexity:  "medium",
			ReadingTime: "10-15 minutes",
		},
	},
	{
		keywords: []string{"offer", "employment", "appointment"},
		analysis: models.DocumentAnalysis{
			DocumentType: "Employment Contract",
			Summary:      "This appears to be an employment contract or offer letter. It defines compensation, duties, notice periods, and restrictions that continue after you leave.",
			KeyPoints: []string{
				"Salary structure and variable components",
				"Notice period for resignation and termination",
				"Probation period terms",
				"Non-compete and confidentiality clauses",
			},
			PotentialConcerns: []models.Concern{{
				Level:       "high",
				Issue:       "Non-compete clause",
				Description: "Broad post-employment non-competes are generally unenforceable in India, but can still be used to pressure you.",
			}, {
				Level:       "medium",
				Issue:       "Bond or training-cost recovery",
				Description: "Clauses demanding payment for leaving early are only enforceable to the extent of actual training costs.",
			}},
			Recommendations: []string{
				"Negotiate the notice period before signing, not after",
				"Keep a signed copy of every version you sign",
				"Check how variable pay is calculated and when it is forfeited",
			},
			Complexity:  "medium",
			ReadingTime: "15-20 minutes",
		},
	},
	{
		keywords: []string{"nda", "non-disclosure", "confidentiality"},
		analysis: models.DocumentAnalysis{
			DocumentType: "Non-Disclosure Agreement",
			Summary:      "This appears to be a non-disclosure agreement restricting how you may use or share certain information.",
			KeyPoints: []string{
				"Definition of what counts as confidential information",
				"How long the confidentiality obligation lasts",
				"Permitted disclosures (lawyers, courts, regulators)",
				"Consequences of breach",
			},
			PotentialConcerns: []models.Concern{{
				Level:       "high",
				Issue:       "Overbroad definition",
				Description: "If everything is confidential forever, the clause may be hard to comply with; ask for a time limit and exclusions for public information.",
			}, {
				Level:       "medium",
				Issue:       "One-sided obligations",
				Description: "Check whether the duty to protect information runs both ways.",
			}},
			Recommendations: []string{
				"Ask for a fixed confidentiality term (2-5 years is common)",
				"Ensure information you already knew is excluded",
			},
			Complexity:  "low",
			ReadingTime: "5-10 minutes",
		},
	},
	{
		keywords: []string{"loan", "credit", "mortgage"},
		analysis: models.DocumentAnalysis{
			DocumentType: "Loan Agreement",
			Summary:      "This appears to be a loan agreement. It sets the amount, interest, repayment schedule, and what happens on default.",
			KeyPoints: []string{
				"Principal amount and the effective interest rate",
				"Repayment schedule and prepayment charges",
				"Security or guarantee being given",
				"Default consequences and recovery process",
			},
			PotentialConcerns: []models.Concern{{
				Level:       "high",
				Issue:       "Effective interest rate",
				Description: "Processing fees and insurance add-ons can raise the real cost well above the quoted rate; compute the all-in cost.",
			}, {
				Level:       "high",
				Issue:       "Blank or undated documents",
				Description: "Never sign blank cheques or undated documents as security.",
			}},
			Recommendations: []string{
				"Compare the annual percentage rate, not the monthly EMI",
				"Keep stamped receipts for every payment",
				"Check foreclosure charges before signing",
			},
			Complexity:  "high",
			ReadingTime: "20-30 minutes",
		},
	},
}

// genericAnalysis is returned when no profile matches the file name
var genericAnalysis = models.DocumentAnalysis{
	DocumentType: "Legal Document",
	Summary:      "This appears to be a legal document. Without more context, review the parties, obligations, payment terms, and termination conditions carefully.",
	KeyPoints: []string{
		"Identify all parties and their obligations",
		"Look for payment amounts, dates, and penalties",
		"Find the termination and dispute-resolution clauses",
	},
	PotentialConcerns: []models.Concern{{
		Level:       "medium",
		Issue:       "Unreviewed terms",
		Description: "Automated analysis could not classify this document; a lawyer should review it before you sign or act on it.",
	}},
	Recommendations: []string{
		"Read the entire document, including annexures",
		"Do not sign anything you do not fully understand",
		"Keep signed copies of every page",
	},
	Complexity:  "medium",
	ReadingTime: "10-20 minutes",
}

// Analyze classifies fileName into a document type and returns the
// fixed structured analysis for that type
func (s *DocumentService) Analyze(fileName string) *models.DocumentAnalysis {
	name := strings.ToLower(fileName)
	for _, p := range documentProfiles {
		for _, kw := range p.keywords {
			if strings.Contains(name, kw) {
				analysis := p.analysis
				return &analysis
			}
		}
	}
	analysis := genericAnalysis
	return &analysis
}
