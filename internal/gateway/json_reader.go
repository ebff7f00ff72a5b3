package gateway

import (
	"fmt"
	"strings"

	"auction-diff/internal/domain"

	"github.com/tidwall/gjson"
)

const unknownFailure = "unknown error"

// ReadResultSet decodes the bidding wrapper's JSON output: an object with a
// "results" array whose elements carry "deal" and "auction". Elements with
// "success": false become failures; elements without a hand string are skipped.
func ReadResultSet(data []byte, source string) (*domain.DealSet, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("failed to decode result set %s: %w", source, domain.ErrSourceUnreadable)
	}
	results := gjson.GetBytes(data, "results")
	if !results.IsArray() {
		return nil, fmt.Errorf("result set %s has no results array: %w", source, domain.ErrSourceUnreadable)
	}

	set := &domain.DealSet{Source: source}
	results.ForEach(func(_, r gjson.Result) bool {
		hand := handString(r)
		if hand == "" {
			return true
		}
		board := int(r.Get("board").Int())

		if success := r.Get("success"); success.Exists() && !success.Bool() {
			msg := strings.TrimSpace(r.Get("error").String())
			if msg == "" {
				msg = unknownFailure
			}
			set.Failures = append(set.Failures, domain.DealFailure{
				Board:      board,
				HandString: hand,
				Error:      msg,
			})
			return true
		}

		rec := domain.DealRecord{
			Board:      board,
			Dealer:     domain.ParseDealer(r.Get("dealer").String()),
			HandString: hand,
			Scoring:    domain.ParseScoring(r.Get("scoring").String()),
			Auction:    make([]string, 0),
		}
		if v := r.Get("vulnerability"); v.Exists() {
			rec.Vulnerability = domain.ParseVulnerability(v.String())
		}
		for _, bid := range r.Get("auction").Array() {
			rec.Auction = append(rec.Auction, bid.String())
		}
		set.Deals = append(set.Deals, rec)
		return true
	})
	return set, nil
}

// handString accepts both a plain "deal" string and the request shape
// {"deal": {"pbn": "..."}}.
func handString(r gjson.Result) string {
	deal := r.Get("deal")
	if deal.IsObject() {
		return strings.TrimSpace(deal.Get("pbn").String())
	}
	return strings.TrimSpace(deal.String())
}
