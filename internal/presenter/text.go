// Package presenter renders comparison reports for humans and machines.
package presenter

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"auction-diff/internal/auction"
	"auction-diff/internal/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// DefaultHandWidth is the width of the hands column.
const DefaultHandWidth = 40

// TextOptions controls the human-readable report.
type TextOptions struct {
	HandWidth int
	ShowNotes bool
}

// TextRenderer writes the tabular report.
type TextRenderer struct {
	opts  TextOptions
	title lipgloss.Style
	good  lipgloss.Style
	bad   lipgloss.Style
	w     io.Writer
	err   error
}

// NewTextRenderer creates a renderer bound to w. Colors are only emitted
// when w is a terminal.
func NewTextRenderer(w io.Writer, opts TextOptions) *TextRenderer {
	if opts.HandWidth <= 0 {
		opts.HandWidth = DefaultHandWidth
	}
	r := lipgloss.NewRenderer(w)
	return &TextRenderer{
		opts:  opts,
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		good:  r.NewStyle().Foreground(lipgloss.Color("#04B575")),
		bad:   r.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
		w:     w,
	}
}

// Render writes the full report.
func (t *TextRenderer) Render(report *domain.ComparisonReport) error {
	s := report.Summary

	t.printf("Reference: %d deals from %s\n", s.ReferenceDeals, s.ReferenceSource)
	t.printf("Candidate: %d deals from %s\n\n", s.CandidateDeals, s.CandidateSource)
	t.printf("Common deals:      %d\n", s.CommonDeals)
	t.printf("Only in reference: %d\n", s.OnlyInReference)
	t.printf("Only in candidate: %d\n", s.OnlyInCandidate)
	t.printf("Failed:            %d\n\n", s.Failed)

	t.section("RESULTS")
	if s.NoCommonDeals {
		t.printf("No common deals.\n\n")
	} else {
		t.printf("%s\n\n", t.summaryTable(s))
	}

	if len(report.Divergence) > 0 {
		t.section("WHERE DIFFERENCES OCCUR")
		t.printf("(0 = opening bid, 1 = response to opening, etc.)\n")
		positions := make([]int, 0, len(report.Divergence))
		for pos := range report.Divergence {
			positions = append(positions, pos)
		}
		sort.Ints(positions)
		for _, pos := range positions {
			t.printf("  Position %d: %d differences\n", pos, report.Divergence[pos])
		}
		t.printf("\n")
	}

	if len(report.Samples) > 0 {
		t.section("SAMPLE DIFFERENCES")
		t.printf("%s\n", t.samplesTable(report.Samples))
		for _, m := range report.Samples {
			t.sampleDetail(m)
		}
		t.printf("\n")
	}

	if len(report.Failures) > 0 {
		t.section("FAILURES")
		for _, f := range report.Failures {
			t.printf("  %s %s: %s\n", boardLabel(f.Board), auction.TruncateHands(f.HandString, t.opts.HandWidth), f.Error)
		}
		t.printf("\n")
	}

	switch {
	case s.Mismatched() > 0:
		t.printf("%s\n", t.bad.Render(fmt.Sprintf("%d of %d common deals differ", s.Mismatched(), s.CommonDeals)))
	case report.HasFindings():
		t.printf("%s\n", t.bad.Render(fmt.Sprintf(
			"All %d common deals match, but %d only in reference, %d only in candidate, %d failed",
			s.CommonDeals, s.OnlyInReference, s.OnlyInCandidate, s.Failed)))
	default:
		t.printf("%s\n", t.good.Render(fmt.Sprintf("All %d common deals match", s.CommonDeals)))
	}
	return t.err
}

func (t *TextRenderer) summaryTable(s domain.Summary) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Outcome", "Count", "Percent").
		Row("Full match", strconv.Itoa(s.FullMatch), percent(s.FullMatchPercent)).
		Row("Bid differs", strconv.Itoa(s.BidDiffers), percent(s.BidDiffersPercent)).
		Row("Length differs", strconv.Itoa(s.LengthDiffers), percent(s.LengthDiffersPercent)).
		String()
}

func (t *TextRenderer) samplesTable(samples []domain.MismatchSample) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Board", "Dlr", "Vul", "Hands", "Reference", "Candidate", "Result")
	for _, m := range samples {
		tbl.Row(
			boardLabel(m.Board),
			string(m.Dealer),
			string(m.Vulnerability),
			auction.TruncateHands(m.HandString, t.opts.HandWidth),
			auction.Format(m.ReferenceAuction),
			auction.Format(m.CandidateAuction),
			outcomeLabel(m.Outcome),
		)
	}
	return tbl.String()
}

func (t *TextRenderer) sampleDetail(m domain.MismatchSample) {
	t.printf("\nBoard %s:\n", boardLabel(m.Board))
	t.printf("  Deal:      %s\n", m.HandString)
	t.printf("  Reference: %s\n", strings.Join(m.ReferenceAuction, " "))
	t.printf("  Candidate: %s\n", strings.Join(m.CandidateAuction, " "))
	i := m.DivergenceIndex
	if i >= 0 && i < len(m.ReferenceAuction) && i < len(m.CandidateAuction) {
		t.printf("  Diff at position %d: %s vs %s\n", i, m.ReferenceAuction[i], m.CandidateAuction[i])
	} else if i >= 0 {
		t.printf("  Length differs at position %d\n", i)
	}
	if t.opts.ShowNotes && len(m.Notes) > 0 {
		keys := make([]int, 0, len(m.Notes))
		for k := range m.Notes {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		for _, k := range keys {
			t.printf("  Note %d: %s\n", k, m.Notes[k])
		}
	}
	if t.opts.ShowNotes && m.Block != "" {
		t.printf("  Reference block:\n")
		for _, line := range strings.Split(m.Block, "\n") {
			t.printf("    %s\n", line)
		}
	}
}

func (t *TextRenderer) section(name string) {
	t.printf("%s\n", t.title.Render("=== "+name+" ==="))
}

func (t *TextRenderer) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func boardLabel(board int) string {
	if board <= 0 {
		return "?"
	}
	return strconv.Itoa(board)
}

func outcomeLabel(o domain.Outcome) string {
	switch o {
	case domain.OutcomeBidDiffers:
		return "bid differs"
	case domain.OutcomeLengthDiffers:
		return "length differs"
	}
	return "match"
}
