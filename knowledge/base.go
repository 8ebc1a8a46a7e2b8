// Package knowledge holds the static legal knowledge base shared by every
// answer path: keyword-triggered topic categories with canned guidance,
// and the constitutional/statutory annotator.
package knowledge

import "legalease-backend/models"

// topicCategories is the full knowledge base. Declaration order is the
// match priority: the first category with a keyword hit wins.
// Defined once at init and never mutated at runtime.
var topicCategories = []models.TopicCategory{
	{
		ID: "arrest_rights",
		Keywords: []string{
			"arrest", "arrested", "police custody", "detained", "detention",
			"handcuff", "police station", "bail",
		},
		KnowledgeAnswer: models.KnowledgeAnswer{
			Category: "Arrest & Police Rights",
			Urgency:  models.UrgencyHigh,
			Answer: `**Your rights during an arrest are constitutionally protected.**

Under Article 22 of the Constitution and Sections 41 to 60A of the Code of Criminal Procedure, an arrested person has the right to be informed of the grounds of arrest, the right to consult and be defended by a legal practitioner of their choice, and the right to be produced before the nearest magistrate within 24 hours of arrest (excluding journey time).

Key protections you should know:
1. The police must prepare an arrest memo attested by a family member or a respectable local witness (D.K. Basu v. State of West Bengal guidelines).
2. A woman cannot be arrested after sunset and before sunrise except in exceptional circumstances with a magistrate's prior permission.
3. You cannot be compelled to be a witness against yourself (Article 20(3)).
4. For bailable offences, bail is a matter of right; for non-bailable offences, it is at the court's discretion.

If you or a family member has been arrested, contact a criminal lawyer immediately and insist on the arrest memo. The District Legal Services Authority provides free legal aid if you cannot afford a lawyer.`,
			Sources: []models.Source{
				{Title: "Article 22, Constitution of India", Type: models.SourceTypeConstitutional},
				{Title: "Sections 41-60A, Code of Criminal Procedure, 1973", Type: models.SourceTypeStatute},
				{Title: "D.K. Basu Guidelines on Arrest", Type: models.SourceTypeProcedure},
				{Title: "District Legal Services Authority (free legal aid)", Type: models.SourceTypePractical},
			},
			HasConstitutionalRefs: true,
		},
	},
	{
		ID: "criminal_law",
		Keywords: []string{
			"fir", "first information report", "police complaint",
			"criminal complaint", "theft", "robbery", "assault", "threat",
			"crime", "stolen",
		},
		KnowledgeAnswer: models.KnowledgeAnswer{
			Category: "Criminal Law & FIR",
			Urgency:  models.UrgencyHigh,
			Answer: `**A First Information Report (FIR) is the starting point of the criminal process.**

A First Information Report is registered by the police under Section 154 of the Code of Criminal Procedure when they receive information about a cognizable offence (one where police can investigate and arrest without prior court approval, such as theft, robbery, or assault).

How to file an FIR:
1. Go to the police station with jurisdiction over the place where the offence occurred. For cognizable offences you may also file at any station (a "Zero FIR"), which is then transferred.
2. Narrate the facts; the officer must reduce them to writing and read the record back to you.
3. Sign the FIR only after verifying the contents are accurate.
4. You are entitled to a free copy of the FIR (Section 154(2)).

If the police refuse to register your FIR, you can send your complaint in writing to the Superintendent of Police (Section 154(3)), or approach the Magistrate under Section 156(3) to direct registration. Refusal to register an FIR for a cognizable offence is itself misconduct under Lalita Kumari v. Government of U.P.`,
			Sources: []models.Source{
				{Title: "First Information Report (FIR)", Type: models.SourceTypeLegalConcept},
				{Title: "Section 154, Code of Criminal Procedure, 1973", Type: models.SourceTypeStatute},
				{Title: "How to file an FIR (step-by-step)", Type: models.SourceTypeProcedure},
				{Title: "Lalita Kumari v. Government of U.P.", Type: models.SourceTypeGuidance},
			},
			HasConstitutionalRefs: true,
		},
	},
	{
		ID: "contract_law",
		Keywords: []string{
			"contract", "agreement", "breach", "terms and conditions",
			"memorandum of understanding", "signed", "consideration",
		},
		KnowledgeAnswer: models.KnowledgeAnswer{
			Category: "Contract Law",
			Urgency:  models.UrgencyMedium,
			Answer: `**A contract is a legally enforceable agreement under the Indian Contract Act, 1872.**

For an agreement to be a valid contract under Section 10, it requires: (a) offer and acceptance, (b) lawful consideration, (c) free consent of parties competent to contract, and (d) a lawful object. Minors, persons of unsound mind, and persons disqualified by law cannot enter binding contracts (Section 11).

If the other party breaks the contract (breach), your remedies include:
1. Damages — monetary compensation for the loss caused (Section 73).
2. Specific performance — a court order compelling the party to actually perform, available for certain contracts under the Specific Relief Act, 1963.
3. Rescission — cancelling the contract and restoring the parties to their original position.

Before signing any contract, read every clause, especially termination, penalty, and dispute-resolution clauses. An oral agreement can also be a valid contract, but written terms are far easier to prove. Keep signed copies and all related correspondence.`,
			Sources: []models.Source{
				{Title: "Indian Contract Act, 1872 (Sections 10, 11, 73)", Type: models.SourceTypeStatute},
				{Title: "Specific Relief Act, 1963", Type: models.SourceTypeStatute},
				{Title: "Checklist before signing a contract", Type: models.SourceTypePractical},
			},
		},
	},
	{
		ID: "tenant_rights",
		Keywords: []string{
			"rent", "landlord", "tenant", "lease", "eviction", "evict",
			"security deposit", "housing", "flat owner",
		},
		KnowledgeAnswer: models.KnowledgeAnswer{
			Category: "Housing & Tenant Rights",
			Urgency:  models.UrgencyMedium,
			Answer: `**Tenants are protected by state Rent Control Acts and the registered rent agreement.**

Rental relationships in India are governed by state-specific Rent Control Acts and by the terms of your rent agreement. A landlord cannot evict a tenant without following due process: valid grounds (such as non-payment of rent or personal necessity), proper written notice, and, where contested, an eviction order from the Rent Controller or civil court. Cutting electricity or water, changing locks, or removing belongings to force a tenant out is illegal.

Practical protections:
1. Insist on a written, registered rent agreement; agreements for 12 months or more must be registered (Registration Act, 1908).
2. The security deposit and the conditions for its refund should be stated in the agreement; document the flat's condition with photos at move-in and move-out.
3. Rent receipts are your proof of payment — ask for them every month.
4. Notice periods for termination are governed by the agreement, or by Section 106 of the Transfer of Property Act, 1882 where the agreement is silent.

If your landlord is harassing you or withholding the deposit without cause, send a written legal notice first; most deposit disputes settle at that stage.`,
			Sources: []models.Source{
				{Title: "State Rent Control Acts", Type: models.SourceTypeStatute},
				{Title: "Section 106, Transfer of Property Act, 1882", Type: models.SourceTypeStatute},
				{Title: "Tenant eviction due process", Type: models.SourceTypeProcedure},
				{Title: "Security deposit documentation tips", Type: models.SourceTypePractical},
			},
		},
	},
	{
		ID: "consumer_rights",
		Keywords: []string{
			"refund", "defective", "consumer", "warranty", "overcharged",
			"faulty product", "service deficiency", "mrp",
		},
		KnowledgeAnswer: models.KnowledgeAnswer{
			Category: "Consumer Rights",
			Urgency:  models.UrgencyLow,
			Answer: `**The Consumer Protection Act, 2019 gives you fast, low-cost remedies for defective goods and deficient services.**

If you bought a defective product or received a deficient service, you can file a complaint before the Consumer Disputes Redressal Commission: the District Commission for claims up to Rs. 50 lakh, the State Commission up to Rs. 2 crore, and the National Commission above that. Charging above the printed MRP is also an unfair trade practice.

Steps to enforce your rights:
1. Write to the seller or service provider first, asking for repair, replacement, or refund; keep proof of delivery.
2. Preserve the bill, warranty card, and photographs of the defect — these are your core evidence.
3. File your consumer complaint within two years of the cause of action. You do not need a lawyer; complaints can be filed online at the e-Daakhil portal.
4. The Commission can order refund, replacement, compensation, and discontinuation of unfair practices.

Court fees are nominal and the process is designed for consumers to represent themselves.`,
			Sources: []models.Source{
				{Title: "Consumer Protection Act, 2019", Type: models.SourceTypeStatute},
				{Title: "Filing a complaint on e-Daakhil", Type: models.SourceTypeProcedure},
				{Title: "Evidence to preserve for consumer disputes", Type: models.SourceTypePractical},
			},
		},
	},
	{
		ID: "employment_law",
		Keywords: []string{
			"salary", "fired", "terminated", "termination", "workplace",
			"employer", "wages", "notice period", "provident fund", "gratuity",
			"resignation",
		},
		KnowledgeAnswer: models.KnowledgeAnswer{
			Category: "Employment Law",
			Urgency:  models.UrgencyMedium,
			Answer: `**Employees are protected by labour statutes and the terms of the appointment letter.**

Unpaid salary, wrongful termination, and denial of statutory dues are the most common employment disputes. Your appointment letter or employment contract governs notice periods and termination grounds, but statutes set the floor: the Payment of Wages Act, 1936 mandates timely payment of wages; the Industrial Disputes Act, 1947 requires notice or pay in lieu for retrenchment of covered workmen; the Payment of Gratuity Act, 1972 entitles employees with five years of continuous service to gratuity.

If your employer has not paid your salary or dues:
1. Raise a written grievance with HR and keep the acknowledgment.
2. Send a formal demand notice through a lawyer.
3. Approach the Labour Commissioner for conciliation — this is free and often effective.
4. For provident fund issues, file a grievance on the EPFO portal (EPFiGMS).

Do not resign in anger while dues are pending; resignation can complicate retrenchment claims. Keep copies of your appointment letter, payslips, and all correspondence.`,
			Sources: []models.Source{
				{Title: "Payment of Wages Act, 1936", Type: models.SourceTypeStatute},
				{Title: "Industrial Disputes Act, 1947", Type: models.SourceTypeStatute},
				{Title: "Labour Commissioner conciliation process", Type: models.SourceTypeProcedure},
				{Title: "EPFO grievance portal (EPFiGMS)", Type: models.SourceTypePractical},
			},
		},
	},
	{
		ID: "family_law",
		Keywords: []string{
			"divorce", "custody", "alimony", "maintenance", "marriage",
			"dowry", "domestic violence", "separation",
		},
		KnowledgeAnswer: models.KnowledgeAnswer{
			Category: "Family Law",
			Urgency:  models.UrgencyMedium,
			Answer: `**Family disputes are governed by personal laws and uniform protective statutes.**

Divorce, maintenance, and custody in India depend on the personal law applicable to the marriage: the Hindu Marriage Act, 1955, the Special Marriage Act, 1954 for civil marriages, or other personal laws. Divorce may be by mutual consent (faster, typically 6 to 18 months) or contested on grounds such as cruelty, desertion, or adultery.

Financial and protective rights:
1. Maintenance (alimony) can be claimed under Section 125 of the Code of Criminal Procedure regardless of religion, and under Sections 24 and 25 of the Hindu Marriage Act during and after proceedings.
2. Child custody is decided on the welfare-of-the-child principle; courts increasingly grant shared parenting arrangements.
3. The Protection of Women from Domestic Violence Act, 2005 provides residence orders, protection orders, and monetary relief without requiring divorce.
4. Demanding dowry is a criminal offence under the Dowry Prohibition Act, 1961.

Family court proceedings are designed to be less formal; mediation is usually attempted first. Consult a family lawyer before filing, since the choice of forum and ground shapes the whole case.`,
			Sources: []models.Source{
				{Title: "Hindu Marriage Act, 1955 / Special Marriage Act, 1954", Type: models.SourceTypeStatute},
				{Title: "Section 125, Code of Criminal Procedure (maintenance)", Type: models.SourceTypeStatute},
				{Title: "Protection of Women from Domestic Violence Act, 2005", Type: models.SourceTypeStatute},
				{Title: "Family court mediation process", Type: models.SourceTypeProcedure},
			},
			HasConstitutionalRefs: true,
		},
	},
	{
		ID: "property_law",
		Keywords: []string{
			"property", "land", "inheritance", "succession", "will",
			"registry", "mutation", "encroachment", "title deed",
		},
		KnowledgeAnswer: models.KnowledgeAnswer{
			Category: "Property Law",
			Urgency:  models.UrgencyMedium,
			Answer: `**Property rights flow from valid title, registration, and succession law.**

No person can be deprived of property save by authority of law (Article 300A of the Constitution). Transfers of immovable property worth Rs. 100 or more must be by registered instrument (Registration Act, 1908); an unregistered sale agreement does not convey title. After purchase or inheritance, apply for mutation in municipal/revenue records — mutation is for tax purposes and does not itself confer title, but its absence invites disputes.

Inheritance essentials:
1. A will does not require registration to be valid, but registration adds strong evidentiary weight; it must be signed and attested by two witnesses (Indian Succession Act, 1925).
2. Where there is no will, property devolves by the applicable succession law — for Hindus, the Hindu Succession Act, 1956, under which daughters have equal coparcenary rights (2005 amendment).
3. For encroachment, a civil suit for possession and injunction is the remedy; criminal trespass complaints may supplement it.

Always verify the chain of title for at least 30 years, obtain an encumbrance certificate, and insist on registered documents before paying.`,
			Sources: []models.Source{
				{Title: "Article 300A, Constitution of India", Type: models.SourceTypeConstitutional},
				{Title: "Registration Act, 1908", Type: models.SourceTypeStatute},
				{Title: "Hindu Succession Act, 1956", Type: models.SourceTypeStatute},
				{Title: "Title verification checklist", Type: models.SourceTypePractical},
			},
			HasConstitutionalRefs: true,
		},
	},
	{
		ID: "debt_money",
		Keywords: []string{
			"loan", "debt", "emi", "cheque bounce", "cheque bounced",
			"recovery agent", "borrowed", "lent money", "moneylender",
		},
		KnowledgeAnswer: models.KnowledgeAnswer{
			Category: "Debt & Money Recovery",
			Urgency:  models.UrgencyMedium,
			Answer: `**Debt problems have defined legal remedies on both sides — for lenders and borrowers.**

If someone owes you money: a bounced cheque is a criminal offence under Section 138 of the Negotiable Instruments Act, 1881 — send a written demand notice within 30 days of the bank memo, and file a complaint if payment is not made within 15 days of the notice. For other debts, a civil suit for recovery (or a summary suit under Order XXXVII CPC for written contracts) is the route, subject to the three-year limitation period.

If you cannot repay a loan:
1. Defaulting on a loan is a civil matter, not a crime — you cannot be jailed for inability to pay (distinct from fraud or cheque dishonour).
2. RBI's Fair Practices Code binds banks and their recovery agents: no calls before 8 am or after 7 pm, no abuse, no intimidation. Report violations to the bank's nodal officer and the RBI Ombudsman.
3. Ask your bank in writing for restructuring or a one-time settlement; lenders routinely prefer settlement over litigation.
4. Do not hand over blank signed cheques or documents to recovery agents.

Keep every loan document, demand notice, and payment receipt. Limitation periods are strict — act within three years of the default.`,
			Sources: []models.Source{
				{Title: "Section 138, Negotiable Instruments Act, 1881", Type: models.SourceTypeStatute},
				{Title: "RBI Fair Practices Code for recovery agents", Type: models.SourceTypeGuidance},
				{Title: "Money recovery suit procedure (Order XXXVII CPC)", Type: models.SourceTypeProcedure},
				{Title: "Dealing with recovery agents", Type: models.SourceTypePractical},
			},
		},
	},
	{
		ID: "cyber_law",
		Keywords: []string{
			"online fraud", "cyber", "hacked", "phishing", "otp fraud",
			"upi fraud", "identity theft", "online scam",
		},
		KnowledgeAnswer: models.KnowledgeAnswer{
			Category: "Cyber Law & Online Fraud",
			Urgency:  models.UrgencyHigh,
			Answer: `**Speed matters most in online fraud — report within the "golden hour".**

Online financial fraud, hacking, and identity theft are offences under the Information Technology Act, 2000 (Sections 43, 66, 66C, 66D) and the Indian Penal Code. Money moved through UPI or net-banking fraud can often be frozen if reported fast enough.

Immediate steps:
1. Call the national cybercrime helpline 1930 immediately — within hours, banks can freeze the fraudulent transaction chain.
2. File a complaint at cybercrime.gov.in with transaction IDs, screenshots, and the fraudster's numbers/UPI handles.
3. Inform your bank in writing the same day; under RBI's limited-liability circular, your liability is zero if you report an unauthorized transaction within three working days.
4. File an FIR at the local police station or cyber cell for offences involving significant amounts.

Never share OTPs, PINs, or card details on calls — no bank or government agency asks for them. Preserve all digital evidence; do not delete the chats or messages used in the fraud.`,
			Sources: []models.Source{
				{Title: "Information Technology Act, 2000 (Sections 66C, 66D)", Type: models.SourceTypeStatute},
				{Title: "National cybercrime portal & helpline 1930", Type: models.SourceTypeProcedure},
				{Title: "RBI limited-liability circular for unauthorized transactions", Type: models.SourceTypeGuidance},
			},
		},
	},
}

// Lookup returns the canned knowledge answer for a category ID, or nil
// for "general" and unknown IDs. The returned value is shared static
// data; callers must not mutate it.
func Lookup(categoryID string) *models.KnowledgeAnswer {
	for i := range topicCategories {
		if topicCategories[i].ID == categoryID {
			return &topicCategories[i].KnowledgeAnswer
		}
	}
	return nil
}

// Categories exposes the category list for iteration in declaration order
func Categories() []models.TopicCategory {
	return topicCategories
}
