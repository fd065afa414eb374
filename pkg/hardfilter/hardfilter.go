// Package hardfilter is the local, deterministic pre-check that runs before
// any model call. It never touches the network.
package hardfilter

import (
	"strings"
	"unicode/utf8"

	"github.com/artem13815/ragguard/pkg/nlp"
)

const (
	ReasonEmpty    = "Pertanyaan kosong"
	ReasonTooShort = "Pertanyaan terlalu pendek"
	ReasonBanned   = "Pertanyaan mengandung kata terlarang"
)

// Verdict is the {valid, reason} pair produced by the classifier.
type Verdict struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
}

// Classifier evaluates a raw question.
type Classifier interface {
	Evaluate(question string) Verdict
}

type Rules struct {
	MinChars int
	MinWords int
	Banned   []string
}

type filter struct {
	minChars int
	minWords int
	banned   []string
}

// New compiles rules into a Classifier. Banned phrases are matched as whole
// normalized words, case-insensitively.
func New(r Rules) Classifier {
	f := &filter{minChars: r.MinChars, minWords: r.MinWords}
	for _, b := range r.Banned {
		if n := nlp.NormalizeText(b); n != "" {
			f.banned = append(f.banned, n)
		}
	}
	return f
}

func (f *filter) Evaluate(question string) Verdict {
	q := strings.TrimSpace(question)
	if q == "" {
		return Verdict{Valid: false, Reason: ReasonEmpty}
	}
	if f.minChars > 0 && utf8.RuneCountInString(q) < f.minChars {
		return Verdict{Valid: false, Reason: ReasonTooShort}
	}
	normalized := nlp.NormalizeText(q)
	if f.minWords > 0 && len(strings.Fields(normalized)) < f.minWords {
		return Verdict{Valid: false, Reason: ReasonTooShort}
	}
	for _, b := range f.banned {
		if nlp.ContainsPhrase(normalized, b) {
			return Verdict{Valid: false, Reason: ReasonBanned}
		}
	}
	return Verdict{Valid: true, Reason: "ok"}
}
