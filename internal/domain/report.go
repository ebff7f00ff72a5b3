package domain

// Outcome classifies the comparison of two auctions.
type Outcome string

const (
	OutcomeFullMatch     Outcome = "FULL_MATCH"
	OutcomeBidDiffers    Outcome = "BID_DIFFERS"
	OutcomeLengthDiffers Outcome = "LENGTH_DIFFERS"
)

// NoDivergence is the divergence index reported for a full match.
const NoDivergence = -1

// MismatchSample provides details on a single non-matching deal pair.
type MismatchSample struct {
	Board            int            `json:"board,omitempty"`
	Dealer           Dealer         `json:"dealer,omitempty"`
	Vulnerability    Vulnerability  `json:"vulnerability,omitempty"`
	HandString       string         `json:"deal"`
	Outcome          Outcome        `json:"outcome"`
	DivergenceIndex  int            `json:"divergence_index"`
	ReferenceAuction []string       `json:"reference_auction"`
	CandidateAuction []string       `json:"candidate_auction"`
	Notes            map[int]string `json:"notes,omitempty"`
	Block            string         `json:"block,omitempty"`
}

// Summary provides high-level statistics of a comparison run.
type Summary struct {
	ReferenceSource string `json:"reference_source"`
	CandidateSource string `json:"candidate_source"`
	ReferenceDeals  int    `json:"reference_deals"`
	CandidateDeals  int    `json:"candidate_deals"`
	CommonDeals     int    `json:"common_deals"`
	FullMatch       int    `json:"full_match"`
	BidDiffers      int    `json:"bid_differs"`
	LengthDiffers   int    `json:"length_differs"`
	OnlyInReference int    `json:"only_in_reference"`
	OnlyInCandidate int    `json:"only_in_candidate"`
	Failed          int    `json:"failed"`
	NoCommonDeals   bool   `json:"no_common_deals"`

	FullMatchPercent     float64 `json:"full_match_percent"`
	BidDiffersPercent    float64 `json:"bid_differs_percent"`
	LengthDiffersPercent float64 `json:"length_differs_percent"`
}

// Mismatched is the number of common deals that did not match.
func (s Summary) Mismatched() int {
	return s.BidDiffers + s.LengthDiffers
}

// ComparisonReport is the top-level structure for the final output.
type ComparisonReport struct {
	RunID      string           `json:"run_id"`
	Summary    Summary          `json:"summary"`
	Divergence map[int]int      `json:"divergence_histogram"`
	Samples    []MismatchSample `json:"samples"`
	Failures   []DealFailure    `json:"failures"`
}

// HasFindings reports whether the run should be treated as failed:
// any mismatch, per-deal failure or one-sided deal.
func (r *ComparisonReport) HasFindings() bool {
	s := r.Summary
	return s.Mismatched() > 0 || s.Failed > 0 || s.OnlyInReference > 0 || s.OnlyInCandidate > 0
}
