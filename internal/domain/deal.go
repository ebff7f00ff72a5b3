package domain

import "strings"

// Dealer is the seat that makes the first call of an auction.
type Dealer string

const (
	DealerNorth Dealer = "N"
	DealerEast  Dealer = "E"
	DealerSouth Dealer = "S"
	DealerWest  Dealer = "W"
)

// ParseDealer accepts a seat letter or seat name. Unknown values map to "".
func ParseDealer(s string) Dealer {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N", "NORTH":
		return DealerNorth
	case "E", "EAST":
		return DealerEast
	case "S", "SOUTH":
		return DealerSouth
	case "W", "WEST":
		return DealerWest
	}
	return ""
}

// Vulnerability is the canonical vulnerability of a deal.
type Vulnerability string

const (
	VulnerableNone Vulnerability = "None"
	VulnerableNS   Vulnerability = "NS"
	VulnerableEW   Vulnerability = "EW"
	VulnerableAll  Vulnerability = "All"
)

// ParseVulnerability maps the textual variants found in PBN files to the
// canonical set. Unknown values map to "".
func ParseVulnerability(s string) Vulnerability {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE", "LOVE", "-", "":
		return VulnerableNone
	case "NS", "N-S", "NORTHSOUTH":
		return VulnerableNS
	case "EW", "E-W", "EASTWEST":
		return VulnerableEW
	case "ALL", "BOTH", "B":
		return VulnerableAll
	}
	return ""
}

// Scoring is the scoring method of a deal.
type Scoring string

const (
	ScoringMP  Scoring = "MP"
	ScoringIMP Scoring = "IMP"
)

// ParseScoring recognises matchpoint and IMP scoring. Other values map to "".
func ParseScoring(s string) Scoring {
	v := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.Contains(v, "IMP"):
		return ScoringIMP
	case v == "MP", v == "MATCHPOINTS", strings.HasPrefix(v, "MP"):
		return ScoringMP
	}
	return ""
}

// DealRecord represents one bridge deal read from a source.
type DealRecord struct {
	Board         int            `json:"board,omitempty"`
	Dealer        Dealer         `json:"dealer,omitempty"`
	Vulnerability Vulnerability  `json:"vulnerability,omitempty"`
	HandString    string         `json:"deal"`
	Scoring       Scoring        `json:"scoring,omitempty"`
	Auction       []string       `json:"auction"`
	Notes         map[int]string `json:"notes,omitempty"`

	// Block is the raw text of the deal block, kept for display only.
	Block string `json:"-"`
}

// DealFailure is a deal the candidate producer could not bid.
type DealFailure struct {
	Board      int    `json:"board,omitempty"`
	HandString string `json:"deal"`
	Error      string `json:"error"`
}

// DealSet is everything read from one source.
type DealSet struct {
	Source   string        `json:"source"`
	Deals    []DealRecord  `json:"deals"`
	Failures []DealFailure `json:"failures,omitempty"`
}

// Empty reports whether the source yielded nothing at all.
func (s *DealSet) Empty() bool {
	return s == nil || (len(s.Deals) == 0 && len(s.Failures) == 0)
}
