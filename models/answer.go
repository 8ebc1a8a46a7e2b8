package models

// Level is the reading level an answer is written for
type Level string

const (
	LevelChild  Level = "12-year-old"
	LevelTeen   Level = "15-year-old"
	LevelLawyer Level = "lawyer"
)

// ParseLevel normalizes a client-supplied level, defaulting to lawyer
func ParseLevel(s string) Level {
	switch Level(s) {
	case LevelChild, LevelTeen, LevelLawyer:
		return Level(s)
	default:
		return LevelLawyer
	}
}

// Urgency classifies how time-sensitive a legal topic is
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// SourceType categorizes where a cited source comes from
type SourceType string

const (
	SourceTypeProcedure      SourceType = "procedure"
	SourceTypeStatute        SourceType = "statute"
	SourceTypeGuidance       SourceType = "guidance"
	SourceTypePractical      SourceType = "practical"
	SourceTypeConstitutional SourceType = "constitutional"
	SourceTypeLegalConcept   SourceType = "legal_concept"
	SourceTypeAIGenerated    SourceType = "ai_generated"
)

// Source is a citation attached to an answer
type Source struct {
	Title string     `json:"title"`
	Type  SourceType `json:"type"`
}

// Answer is the value returned to callers for a legal-guidance query.
// Constructed fresh per request; not persisted beyond the response cache.
type Answer struct {
	Answer              string   `json:"answer"`
	Sources             []Source `json:"sources"`
	Category            string   `json:"category,omitempty"`
	Urgency             Urgency  `json:"urgency,omitempty"`
	ConstitutionalBasis string   `json:"constitutionalBasis,omitempty"`
	Warning             string   `json:"warning,omitempty"`
	Fallback            bool     `json:"fallback,omitempty"`
	Error               bool     `json:"error,omitempty"`
}

// Clone returns a deep copy so callers can post-process an answer
// without mutating the cached value
func (a *Answer) Clone() *Answer {
	if a == nil {
		return nil
	}
	out := *a
	out.Sources = make([]Source, len(a.Sources))
	copy(out.Sources, a.Sources)
	return &out
}
