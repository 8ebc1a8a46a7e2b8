package knowledge

import (
	"strings"

	"legalease-backend/models"
)

// constitutionalTopic bundles the constitutional references and statutes
// relevant to one coarse topic bucket
type constitutionalTopic struct {
	triggers []string
	refs     []models.ConstitutionalReference
	statutes []string
}

// constitutionalTopics is keyed by a coarser topic grouping than the
// knowledge-base categories. Buckets are checked in declaration order;
// the first trigger hit wins. Immutable static data.
var constitutionalTopics = []constitutionalTopic{
	{
		triggers: []string{"alimony", "maintenance", "divorce", "spouse"},
		refs: []models.ConstitutionalReference{
			{Article: "Article 15(3)", Description: "Permits special provisions for women and children", Relevance: "Foundation for maintenance laws favouring dependent spouses"},
			{Article: "Article 21", Description: "Right to life and personal liberty", Relevance: "Maintenance is part of the right to live with dignity"},
			{Article: "Article 39", Description: "Directive on adequate means of livelihood", Relevance: "Guides courts in fixing fair maintenance amounts"},
		},
		statutes: []string{
			"Section 125, Code of Criminal Procedure, 1973",
			"Sections 24-25, Hindu Marriage Act, 1955",
			"Sections 36-37, Special Marriage Act, 1954",
		},
	},
	{
		triggers: []string{"arrest", "custody", "police", "detention", "detained"},
		refs: []models.ConstitutionalReference{
			{Article: "Article 22", Description: "Protection against arbitrary arrest and detention", Relevance: "Guarantees grounds of arrest, counsel, and production before a magistrate within 24 hours"},
			{Article: "Article 21", Description: "Right to life and personal liberty", Relevance: "No deprivation of liberty except by fair procedure established by law"},
			{Article: "Article 20(3)", Description: "Protection against self-incrimination", Relevance: "An accused cannot be compelled to be a witness against themselves"},
		},
		statutes: []string{
			"Sections 41, 46, 50, Code of Criminal Procedure, 1973",
			"D.K. Basu v. State of West Bengal (arrest guidelines)",
		},
	},
	{
		triggers: []string{"name change", "change my name", "rename", "gazette"},
		refs: []models.ConstitutionalReference{
			{Article: "Article 19(1)(a)", Description: "Freedom of speech and expression", Relevance: "One's name is part of personal identity and expression"},
			{Article: "Article 21", Description: "Right to life and personal liberty", Relevance: "Includes the right to identity and to change one's name"},
		},
		statutes: []string{
			"Gazette of India name-change notification procedure",
			"Press and Registration of Books Act, 1867 (newspaper publication)",
		},
	},
	{
		triggers: []string{"document", "paperwork", "affidavit", "notary", "attestation", "stamp paper"},
		refs: []models.ConstitutionalReference{
			{Article: "Article 21", Description: "Right to life and personal liberty", Relevance: "Access to identity documents underpins access to rights and services"},
		},
		statutes: []string{
			"Notaries Act, 1952",
			"Indian Stamp Act, 1899",
			"Registration Act, 1908",
		},
	},
	{
		triggers: []string{"court", "hearing", "judge", "appeal", "litigation", "case file"},
		refs: []models.ConstitutionalReference{
			{Article: "Article 39A", Description: "Equal justice and free legal aid", Relevance: "The State must provide free legal aid so justice is not denied for poverty"},
			{Article: "Article 14", Description: "Equality before the law", Relevance: "Every litigant is entitled to equal treatment by courts"},
			{Article: "Article 21", Description: "Right to life and personal liberty", Relevance: "Includes the right to a speedy and fair trial"},
		},
		statutes: []string{
			"Code of Civil Procedure, 1908",
			"Code of Criminal Procedure, 1973",
			"Legal Services Authorities Act, 1987",
		},
	},
	{
		triggers: []string{"procedure", "limitation", "evidence", "summons", "notice period"},
		refs: []models.ConstitutionalReference{
			{Article: "Article 14", Description: "Equality before the law", Relevance: "Procedural law must apply equally to all parties"},
			{Article: "Article 32", Description: "Right to constitutional remedies", Relevance: "Fundamental rights can be enforced directly in the Supreme Court"},
			{Article: "Article 226", Description: "Writ jurisdiction of High Courts", Relevance: "High Courts can issue writs for rights violations and legal errors"},
		},
		statutes: []string{
			"Limitation Act, 1963",
			"Indian Evidence Act, 1872",
		},
	},
	{
		triggers: []string{"property", "land", "inheritance", "succession", "title", "registry"},
		refs: []models.ConstitutionalReference{
			{Article: "Article 300A", Description: "No deprivation of property save by authority of law", Relevance: "Property is a constitutional (though not fundamental) right"},
			{Article: "Schedule VII, List II Entry 18", Description: "Land is a State subject", Relevance: "Land laws, tenancy, and records vary by State"},
		},
		statutes: []string{
			"Transfer of Property Act, 1882",
			"Registration Act, 1908",
			"Indian Succession Act, 1925",
			"Hindu Succession Act, 1956",
		},
	},
}

// Annotate classifies topicText into a coarse constitutional bucket and
// returns the matching references and statutes. Unmatched text yields
// empty slices; that is a silent no-op, not an error.
func Annotate(topicText string) ([]models.ConstitutionalReference, []string) {
	t := strings.ToLower(topicText)
	for _, bucket := range constitutionalTopics {
		for _, trigger := range bucket.triggers {
			if strings.Contains(t, trigger) {
				refs := make([]models.ConstitutionalReference, len(bucket.refs))
				copy(refs, bucket.refs)
				statutes := make([]string, len(bucket.statutes))
				copy(statutes, bucket.statutes)
				return refs, statutes
			}
		}
	}
	return nil, nil
}

// FormatReferences renders constitutional references as a fixed-header
// text block. Pure string formatting.
func FormatReferences(refs []models.ConstitutionalReference) string {
	if len(refs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("**Constitutional Basis:**\n")
	for _, r := range refs {
		b.WriteString("- ")
		b.WriteString(r.Article)
		b.WriteString(": ")
		b.WriteString(r.Description)
		b.WriteString(" — ")
		b.WriteString(r.Relevance)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatStatutes renders statute citations as a fixed-header text block
func FormatStatutes(statutes []string) string {
	if len(statutes) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("**Relevant Statutes:**\n")
	for _, s := range statutes {
		b.WriteString("- ")
		b.WriteString(s)
		b.WriteString("\n")
	}
	return b.String()
}
