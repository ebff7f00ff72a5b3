package usecase

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"auction-diff/internal/domain"
)

const maxRangeSize = 10000

// BoardSelection is a set of board numbers. A nil selection selects every
// board.
type BoardSelection map[int]struct{}

// ParseBoardSelection parses a selection such as "1-3,5,7-9" or "all".
func ParseBoardSelection(spec string) (BoardSelection, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || strings.EqualFold(spec, "all") {
		return nil, nil
	}

	sel := make(BoardSelection)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		first, err := parseBoard(lo)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", domain.ErrInvalidSelection, spec, err)
		}
		last := first
		if isRange {
			if last, err = parseBoard(hi); err != nil {
				return nil, fmt.Errorf("%w %q: %v", domain.ErrInvalidSelection, spec, err)
			}
			if last < first {
				return nil, fmt.Errorf("%w %q: range %s is reversed", domain.ErrInvalidSelection, spec, part)
			}
			if last-first >= maxRangeSize {
				return nil, fmt.Errorf("%w %q: range %s is too large", domain.ErrInvalidSelection, spec, part)
			}
		}
		for n := first; n <= last; n++ {
			sel[n] = struct{}{}
		}
	}
	if len(sel) == 0 {
		return nil, fmt.Errorf("%w %q: no boards", domain.ErrInvalidSelection, spec)
	}
	return sel, nil
}

func parseBoard(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("board %q is not a number", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("board %d is not positive", n)
	}
	return n, nil
}

// Contains reports whether board is selected.
func (s BoardSelection) Contains(board int) bool {
	if s == nil {
		return true
	}
	_, ok := s[board]
	return ok
}

// Boards returns the selected boards in ascending order.
func (s BoardSelection) Boards() []int {
	boards := make([]int, 0, len(s))
	for n := range s {
		boards = append(boards, n)
	}
	sort.Ints(boards)
	return boards
}
