package auction

import (
	"testing"

	"auction-diff/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		bids []string
		want string
	}{
		{name: "empty", bids: nil, want: "(none)"},
		{name: "passed out", bids: []string{"PASS", "PASS", "PASS", "PASS"}, want: "PassOut"},
		{name: "passed out mixed spelling", bids: []string{"Pass", "p", "PASS", "--"}, want: "PassOut"},
		{name: "one bid then all pass", bids: []string{"1C", "PASS", "PASS", "PASS"}, want: "1C AllPass"},
		{name: "longer auction", bids: []string{"1NT", "PASS", "3NT", "PASS", "PASS", "PASS"}, want: "1NT PASS 3NT AllPass"},
		{name: "raw spelling kept", bids: []string{"1N", "Pass", "Pass", "Pass"}, want: "1N AllPass"},
		{name: "not finished", bids: []string{"1NT", "PASS", "2C"}, want: "1NT PASS 2C"},
		{name: "two trailing passes", bids: []string{"1NT", "PASS", "2C", "PASS", "PASS"}, want: "1NT PASS 2C PASS PASS"},
		{name: "three passes only", bids: []string{"PASS", "PASS", "PASS"}, want: "PASS PASS PASS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.bids))
		})
	}
}

func TestFormat_DoesNotAffectComparison(t *testing.T) {
	for _, s := range [][]string{
		{"PASS", "PASS", "PASS", "PASS"},
		{"1C", "PASS", "PASS", "PASS"},
	} {
		_ = Format(s)
		got, idx := Compare(s, s)
		assert.Equal(t, domain.OutcomeFullMatch, got)
		assert.Equal(t, domain.NoDivergence, idx)
		assert.Len(t, s, 4)
	}
}

func TestTruncateHands(t *testing.T) {
	hand := "N:AKQ2.KJ3.Q98.A76 T9.QT98.K765.432 J876.A542.AJ.J98 543.76.T432.KQT5"

	assert.Equal(t, "AKQ2.KJ3.Q98.A76 T9.QT98.K765.432 J87...", TruncateHands(hand, 40))
	assert.Len(t, TruncateHands(hand, 40), 40)
	assert.Equal(t, "AKQ2.KJ3.Q98.A76", TruncateHands("W:AKQ2.KJ3.Q98.A76", 40))
	assert.Equal(t, "no seat", TruncateHands("no seat", 40))
}
