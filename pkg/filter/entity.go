package filter

// Verdict is the pre-retrieval decision for a user question.
type Verdict struct {
	Valid         bool   `json:"valid"`
	Reason        string `json:"reason"`
	CleanQuestion string `json:"clean_question"`
}

// Reasons reported when the model cannot be trusted. Downstream analytics
// match on these strings.
const (
	ReasonNoStructuredOutput = "AI tidak mengembalikan JSON"
	ReasonFallbackError      = "Fallback error AI Filter"
)

func permissive(question, reason string) Verdict {
	return Verdict{Valid: true, Reason: reason, CleanQuestion: question}
}
