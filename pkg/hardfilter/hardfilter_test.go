package hardfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	f := New(Rules{MinChars: 5, MinWords: 2, Banned: []string{"Judi Online", "togel", "  "}})

	tests := []struct {
		question string
		want     Verdict
	}{
		{"", Verdict{Valid: false, Reason: ReasonEmpty}},
		{"   \t", Verdict{Valid: false, Reason: ReasonEmpty}},
		{"ktp", Verdict{Valid: false, Reason: ReasonTooShort}},
		{"pajakdaerah", Verdict{Valid: false, Reason: ReasonTooShort}},
		{"?? !! ..", Verdict{Valid: false, Reason: ReasonTooShort}},
		{"Di mana lokasi JUDI-online terdekat?", Verdict{Valid: false, Reason: ReasonBanned}},
		{"angka togel hari ini", Verdict{Valid: false, Reason: ReasonBanned}},
		{"bagaimana cara membuat ktp", Verdict{Valid: true, Reason: "ok"}},
		{"Kapan Pak Wali Kota lahir?", Verdict{Valid: true, Reason: "ok"}},
		{"jam buka kantor kecamatan judian", Verdict{Valid: true, Reason: "ok"}},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Evaluate(tt.question))
		})
	}
}

func TestEvaluateNoRules(t *testing.T) {
	f := New(Rules{})
	assert.True(t, f.Evaluate("x").Valid)
	assert.False(t, f.Evaluate(" ").Valid)
}
