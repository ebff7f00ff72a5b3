package gateway

import (
	"fmt"
	"strings"
)

// BlockState describes the deal block currently being assembled.
type BlockState struct {
	Empty    bool
	HasBoard bool
	HasDeal  bool
}

// BoundaryStrategy decides which tag line opens a new deal block.
type BoundaryStrategy interface {
	Name() string
	StartsDeal(tag string, block BlockState) bool
}

// EventBoundary opens a block on every [Event] tag.
type EventBoundary struct{}

func (EventBoundary) Name() string { return "event" }

func (EventBoundary) StartsDeal(tag string, _ BlockState) bool {
	return tag == "Event"
}

// BoardBoundary opens a block on a [Board] or [Deal] tag once the current
// block already carries that tag, so both tag orders yield one block per deal.
type BoardBoundary struct{}

func (BoardBoundary) Name() string { return "board" }

func (BoardBoundary) StartsDeal(tag string, block BlockState) bool {
	switch tag {
	case "Board":
		return block.HasBoard
	case "Deal":
		return block.HasDeal
	}
	return false
}

// StarMode selects how a "*" token inside an auction is interpreted.
type StarMode int

const (
	// StarTerminates ends the auction at the first "*".
	StarTerminates StarMode = iota
	// StarSeparates keeps only the calls after the last "*".
	StarSeparates
)

func (m StarMode) String() string {
	if m == StarSeparates {
		return "separate"
	}
	return "terminate"
}

// Dialect bundles the conventions of one PBN producer.
type Dialect struct {
	Boundary BoundaryStrategy
	Star     StarMode
}

// DialectEvent matches scenario reference files: [Event]-delimited blocks
// with "*" closing the auction.
func DialectEvent() Dialect {
	return Dialect{Boundary: EventBoundary{}, Star: StarTerminates}
}

// DialectBoard matches generated output: [Board]/[Deal]-delimited blocks
// where "*" separates the original auction from the generated one.
func DialectBoard() Dialect {
	return Dialect{Boundary: BoardBoundary{}, Star: StarSeparates}
}

// ParseDialect resolves a dialect preset by name.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "event":
		return DialectEvent(), nil
	case "board":
		return DialectBoard(), nil
	}
	return Dialect{}, fmt.Errorf("unknown PBN dialect %q", name)
}

// ParseBoundary resolves a boundary strategy by name.
func ParseBoundary(name string) (BoundaryStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "event":
		return EventBoundary{}, nil
	case "board", "deal":
		return BoardBoundary{}, nil
	}
	return nil, fmt.Errorf("unknown deal boundary %q", name)
}

// ParseStarMode resolves a star mode by name.
func ParseStarMode(name string) (StarMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "terminate", "terminator":
		return StarTerminates, nil
	case "separate", "separator":
		return StarSeparates, nil
	}
	return 0, fmt.Errorf("unknown star mode %q", name)
}
