// Package auction normalizes, compares and formats bidding sequences.
package auction

import "strings"

// Canonical call tokens.
const (
	Pass     = "PASS"
	Double   = "X"
	Redouble = "XX"
)

// Normalize maps a raw call to its canonical comparison form. Display code
// keeps the raw token.
func Normalize(bid string) string {
	b := strings.ToUpper(strings.TrimSpace(bid))
	switch b {
	case "PASS", "P", "--":
		return Pass
	case "X", "DBL", "DOUBLE", "DB":
		return Double
	case "XX", "RDBL", "REDOUBLE", "RD":
		return Redouble
	}
	if len(b) == 2 && b[0] >= '1' && b[0] <= '7' && b[1] == 'N' {
		return b + "T"
	}
	return b
}

// NormalizeAll normalizes every call of a sequence into a new slice.
func NormalizeAll(bids []string) []string {
	out := make([]string, len(bids))
	for i, b := range bids {
		out[i] = Normalize(b)
	}
	return out
}
