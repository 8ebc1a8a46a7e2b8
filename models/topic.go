package models

// KnowledgeAnswer is the canned guidance stored for a topic category.
// Answers are written for the adult/lawyer register; the simplifier
// rewrites them for younger reading levels at response time.
type KnowledgeAnswer struct {
	Answer                string   `json:"answer"`
	Category              string   `json:"category"`
	Urgency               Urgency  `json:"urgency"`
	Sources               []Source `json:"sources"`
	HasConstitutionalRefs bool     `json:"has_constitutional_refs"`
}

// TopicCategory binds keyword triggers to a knowledge answer.
// Keywords are matched case-insensitively in declaration order;
// the first category with any hit wins.
type TopicCategory struct {
	ID       string
	Keywords []string
	KnowledgeAnswer
}

// ConstitutionalReference cites a constitutional article, part or
// schedule together with its relevance to a topic
type ConstitutionalReference struct {
	Article     string `json:"article"`
	Description string `json:"description"`
	Relevance   string `json:"relevance"`
}
