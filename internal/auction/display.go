package auction

import "strings"

// Display markers.
const (
	AllPass = "AllPass"
	PassOut = "PassOut"
	None    = "(none)"
)

// Format renders an auction for humans. Four passes render as PassOut and
// three or more trailing passes after an opening collapse to AllPass.
// The result must never be fed back into Compare.
func Format(bids []string) string {
	if len(bids) == 0 {
		return None
	}
	if len(bids) == 4 && trailingPasses(bids) == 4 {
		return PassOut
	}
	if len(bids) >= 4 {
		if n := trailingPasses(bids); n >= 3 && n < len(bids) {
			return strings.Join(append(append([]string{}, bids[:len(bids)-n]...), AllPass), " ")
		}
	}
	return strings.Join(bids, " ")
}

func trailingPasses(bids []string) int {
	n := 0
	for i := len(bids) - 1; i >= 0 && Normalize(bids[i]) == Pass; i-- {
		n++
	}
	return n
}

// TruncateHands drops the seat prefix of a hand string and shortens it to
// width characters for table cells.
func TruncateHands(hand string, width int) string {
	if _, rest, ok := strings.Cut(hand, ":"); ok {
		hand = rest
	}
	if width <= 3 || len(hand) <= width {
		return hand
	}
	return hand[:width-3] + "..."
}
