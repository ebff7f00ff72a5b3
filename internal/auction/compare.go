package auction

import "auction-diff/internal/domain"

// Compare classifies candidate against reference and returns the zero-based
// index of the first differing call, or domain.NoDivergence on a full match.
func Compare(reference, candidate []string) (domain.Outcome, int) {
	ref := NormalizeAll(reference)
	cand := NormalizeAll(candidate)

	n := min(len(ref), len(cand))
	for i := 0; i < n; i++ {
		if ref[i] != cand[i] {
			return domain.OutcomeBidDiffers, i
		}
	}
	if len(ref) != len(cand) {
		return domain.OutcomeLengthDiffers, n
	}
	return domain.OutcomeFullMatch, domain.NoDivergence
}
