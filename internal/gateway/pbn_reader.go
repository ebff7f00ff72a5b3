package gateway

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"auction-diff/internal/domain"
)

var (
	tagLine        = regexp.MustCompile(`^\[(\w+)\s+"(.*)"\]$`)
	annotationMark = regexp.MustCompile(`=\d+=`)
	braceComment   = regexp.MustCompile(`\{[^}]*\}`)
)

const maxLineSize = 1024 * 1024

// PBNParser converts PBN text into deal records.
type PBNParser struct {
	dialect Dialect
}

// NewPBNParser creates a parser for the given dialect. A nil boundary falls
// back to the event convention.
func NewPBNParser(d Dialect) *PBNParser {
	if d.Boundary == nil {
		d.Boundary = EventBoundary{}
	}
	return &PBNParser{dialect: d}
}

// Dialect returns the conventions the parser applies.
func (p *PBNParser) Dialect() Dialect {
	return p.dialect
}

// Parse reads every complete deal from r. Malformed lines and incomplete
// blocks are skipped; only read failures are returned.
func (p *PBNParser) Parse(r io.Reader) ([]domain.DealRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var deals []domain.DealRecord
	b := newDealBuilder(p.dialect.Star)

	for scanner.Scan() {
		raw := scanner.Text()
		line := strings.TrimSpace(raw)

		if b.inComment {
			end := strings.IndexByte(line, '}')
			b.lines = append(b.lines, raw)
			if end < 0 {
				continue
			}
			b.inComment = false
			line = strings.TrimSpace(line[end+1:])
			if line == "" {
				continue
			}
			if b.inAuction {
				b.consumeAuction(line)
			} else {
				b.skipComments(line)
			}
			continue
		}

		switch {
		case line == "":
			b.inAuction = false
		case strings.HasPrefix(line, "%"), strings.HasPrefix(line, ";"):
			b.lines = append(b.lines, raw)
		case strings.HasPrefix(line, "["):
			m := tagLine.FindStringSubmatch(line)
			if m == nil {
				b.inAuction = false
				b.lines = append(b.lines, raw)
				continue
			}
			if p.dialect.Boundary.StartsDeal(m[1], b.state()) && !b.empty() {
				if rec, ok := b.build(); ok {
					deals = append(deals, rec)
				}
				b = newDealBuilder(p.dialect.Star)
			}
			b.lines = append(b.lines, raw)
			b.applyTag(m[1], m[2])
		default:
			b.lines = append(b.lines, raw)
			if b.inAuction {
				b.consumeAuction(line)
			} else {
				b.skipComments(line)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read PBN text: %w", err)
	}

	if rec, ok := b.build(); ok {
		deals = append(deals, rec)
	}
	return deals, nil
}

// ParseString is a convenience wrapper around Parse.
func (p *PBNParser) ParseString(text string) ([]domain.DealRecord, error) {
	return p.Parse(strings.NewReader(text))
}

type dealBuilder struct {
	star StarMode

	rec        domain.DealRecord
	hasBoard   bool
	hasAuction bool
	lines      []string

	inAuction    bool
	inComment    bool
	pendingReset bool
}

func newDealBuilder(star StarMode) *dealBuilder {
	return &dealBuilder{star: star}
}

func (b *dealBuilder) empty() bool {
	return len(b.lines) == 0
}

func (b *dealBuilder) state() BlockState {
	return BlockState{
		Empty:    b.empty(),
		HasBoard: b.hasBoard,
		HasDeal:  b.rec.HandString != "",
	}
}

func (b *dealBuilder) applyTag(name, value string) {
	b.inAuction = false
	value = strings.TrimSpace(value)

	switch name {
	case "Board":
		b.hasBoard = true
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			b.rec.Board = n
		}
	case "Dealer":
		b.rec.Dealer = domain.ParseDealer(value)
	case "Vulnerable":
		b.rec.Vulnerability = domain.ParseVulnerability(value)
	case "Deal":
		b.rec.HandString = value
	case "Scoring":
		b.rec.Scoring = domain.ParseScoring(value)
	case "Auction":
		b.hasAuction = true
		b.inAuction = true
		if b.rec.Dealer == "" {
			b.rec.Dealer = domain.ParseDealer(value)
		}
	case "Note":
		idx, text, ok := strings.Cut(value, ":")
		if !ok {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil {
			return
		}
		if b.rec.Notes == nil {
			b.rec.Notes = make(map[int]string)
		}
		b.rec.Notes[n] = text
	}
}

// skipComments tracks a brace comment left open on a non-auction line.
func (b *dealBuilder) skipComments(line string) {
	line = braceComment.ReplaceAllString(line, " ")
	if strings.IndexByte(line, '{') >= 0 {
		b.inComment = true
	}
}

// consumeAuction extracts calls from one auction line.
func (b *dealBuilder) consumeAuction(line string) {
	line = braceComment.ReplaceAllString(line, " ")
	if open := strings.IndexByte(line, '{'); open >= 0 {
		line = line[:open]
		b.inComment = true
	}
	line = annotationMark.ReplaceAllString(line, " ")

	for _, tok := range strings.Fields(line) {
		if tok == "*" {
			if b.star == StarTerminates {
				b.inAuction = false
				return
			}
			b.pendingReset = true
			continue
		}
		if strings.HasPrefix(tok, "=") || strings.HasPrefix(tok, "$") {
			continue
		}
		if b.pendingReset {
			b.rec.Auction = b.rec.Auction[:0]
			b.pendingReset = false
		}
		b.rec.Auction = append(b.rec.Auction, tok)
	}
}

// build returns the record when the block is complete: it has a hand string
// and either a board number or an auction section. In separator mode the
// calls after the last "*" are the auction, and a block left without calls
// is dropped.
func (b *dealBuilder) build() (domain.DealRecord, bool) {
	if b.rec.HandString == "" || !(b.hasBoard || b.hasAuction) {
		return domain.DealRecord{}, false
	}
	if b.pendingReset {
		b.rec.Auction = b.rec.Auction[:0]
		b.pendingReset = false
	}
	if b.star == StarSeparates && len(b.rec.Auction) == 0 {
		return domain.DealRecord{}, false
	}
	rec := b.rec
	rec.Auction = append(make([]string, 0, len(b.rec.Auction)), b.rec.Auction...)
	rec.Block = strings.Join(b.lines, "\n")
	return rec, true
}
