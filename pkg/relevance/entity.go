package relevance

// Verdict tells whether a retrieval result answers the user's question.
// ReformulatedQuestion is only set when the result is judged irrelevant.
type Verdict struct {
	Relevant             bool   `json:"relevant"`
	Reason               string `json:"reason"`
	ReformulatedQuestion string `json:"reformulated_question"`
}

const (
	ReasonNoStructuredOutput = "-"
	ReasonCheckFailed        = "AI relevance check failed"

	// MaxReformulationWords caps reformulated questions; longer ones are cut
	// and suffixed with EllipsisMarker.
	MaxReformulationWords = 12
	EllipsisMarker        = "..."
)

func permissive(reason string) Verdict {
	return Verdict{Relevant: true, Reason: reason, ReformulatedQuestion: ""}
}
