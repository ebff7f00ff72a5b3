package usecase

import (
	"context"
	"fmt"
	"sort"

	"auction-diff/internal/auction"
	"auction-diff/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultSampleLimit is the number of mismatch samples kept for display.
const DefaultSampleLimit = 10

// minChunkSize keeps tiny inputs on the sequential path.
const minChunkSize = 64

// Options tunes a comparison run.
type Options struct {
	// SampleLimit caps the mismatch samples; negative keeps all.
	SampleLimit int
	// Workers is the number of goroutines folding deal pairs.
	Workers int
	// Boards restricts the reference deals; nil selects all.
	Boards BoardSelection
}

// ComparisonUseCase orchestrates the comparison of two deal sources.
type ComparisonUseCase struct {
	repo     DealRepository
	logger   *zap.Logger
	opts     Options
	newRunID func() string
}

// NewComparisonUseCase creates a new instance of the usecase.
func NewComparisonUseCase(repo DealRepository, logger *zap.Logger, opts Options) *ComparisonUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComparisonUseCase{
		repo:     repo,
		logger:   logger,
		opts:     opts,
		newRunID: uuid.NewString,
	}
}

// Compare loads both sources and compares every deal they share.
func (uc *ComparisonUseCase) Compare(ctx context.Context, referencePath, candidatePath string) (*domain.ComparisonReport, error) {
	// Step 1: Data Ingestion
	reference, err := uc.load(ctx, "reference", referencePath)
	if err != nil {
		return nil, err
	}
	candidate, err := uc.load(ctx, "candidate", candidatePath)
	if err != nil {
		return nil, err
	}

	// Step 2: Board Selection
	refDeals, candDeals, failures := applySelection(reference, candidate, uc.opts.Boards)
	if uc.opts.Boards != nil {
		uc.logger.Debug("board selection applied",
			zap.Ints("boards", uc.opts.Boards.Boards()),
			zap.Int("reference_deals", len(refDeals)),
			zap.Int("candidate_deals", len(candDeals)))
	}

	// Step 3: Matching and Comparison
	report, err := Aggregate(ctx, refDeals, candDeals, failures, uc.opts)
	if err != nil {
		return nil, err
	}
	report.RunID = uc.newRunID()
	report.Summary.ReferenceSource = reference.Source
	report.Summary.CandidateSource = candidate.Source

	uc.logger.Info("comparison finished",
		zap.String("run_id", report.RunID),
		zap.Int("common", report.Summary.CommonDeals),
		zap.Int("full_match", report.Summary.FullMatch),
		zap.Int("mismatched", report.Summary.Mismatched()),
		zap.Int("failed", report.Summary.Failed))

	return report, nil
}

func (uc *ComparisonUseCase) load(ctx context.Context, side, path string) (*domain.DealSet, error) {
	set, err := uc.repo.GetDeals(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not get %s deals: %w", side, err)
	}
	if set.Empty() {
		return nil, fmt.Errorf("could not get %s deals from %s: %w", side, path, domain.ErrEmptySource)
	}
	if set.Source == "" {
		set.Source = path
	}
	uc.logger.Info("loaded deal source",
		zap.String("side", side),
		zap.String("source", set.Source),
		zap.Int("deals", len(set.Deals)),
		zap.Int("failures", len(set.Failures)))
	return set, nil
}

// applySelection keeps the selected reference deals and drops candidate
// deals and failures that belong to deselected reference deals.
func applySelection(reference, candidate *domain.DealSet, sel BoardSelection) ([]domain.DealRecord, []domain.DealRecord, []domain.DealFailure) {
	if sel == nil {
		return reference.Deals, candidate.Deals, candidate.Failures
	}

	excluded := make(map[string]bool)
	var refDeals []domain.DealRecord
	for _, d := range reference.Deals {
		if sel.Contains(d.Board) {
			refDeals = append(refDeals, d)
			excluded[d.HandString] = false
		} else if _, seen := excluded[d.HandString]; !seen {
			excluded[d.HandString] = true
		}
	}

	var candDeals []domain.DealRecord
	for _, d := range candidate.Deals {
		if !excluded[d.HandString] {
			candDeals = append(candDeals, d)
		}
	}
	var failures []domain.DealFailure
	for _, f := range candidate.Failures {
		if !excluded[f.HandString] {
			failures = append(failures, f)
		}
	}
	return refDeals, candDeals, failures
}

type dealPair struct {
	index     int
	reference domain.DealRecord
	candidate domain.DealRecord
}

type indexedSample struct {
	index  int
	sample domain.MismatchSample
}

type partialResult struct {
	counts  map[domain.Outcome]int
	hist    map[int]int
	samples []indexedSample
}

// Aggregate matches deals by hand string and folds the comparison of every
// common pair into a report. Pairs are visited in reference parse order;
// with more than one worker the fold runs in parallel and the samples are
// re-ordered by that position before the cap is applied.
func Aggregate(ctx context.Context, reference, candidate []domain.DealRecord, failures []domain.DealFailure, opts Options) (*domain.ComparisonReport, error) {
	refByHand := indexByHand(reference)
	candByHand := indexByHand(candidate)

	failed := make(map[string]bool, len(failures))
	for _, f := range failures {
		failed[f.HandString] = true
	}

	report := &domain.ComparisonReport{
		Summary: domain.Summary{
			ReferenceDeals: len(reference),
			CandidateDeals: len(candidate),
			Failed:         len(failures),
		},
		Divergence: make(map[int]int),
		Samples:    make([]domain.MismatchSample, 0),
		Failures:   make([]domain.DealFailure, 0, len(failures)),
	}
	report.Failures = append(report.Failures, failures...)

	var pairs []dealPair
	visited := make(map[string]bool, len(refByHand))
	for _, d := range reference {
		if visited[d.HandString] {
			continue
		}
		visited[d.HandString] = true

		cand, ok := candByHand[d.HandString]
		switch {
		case ok:
			pairs = append(pairs, dealPair{index: len(pairs), reference: refByHand[d.HandString], candidate: cand})
		case !failed[d.HandString]:
			report.Summary.OnlyInReference++
		}
	}
	for hand := range candByHand {
		if _, ok := refByHand[hand]; !ok {
			report.Summary.OnlyInCandidate++
		}
	}
	report.Summary.CommonDeals = len(pairs)

	partials, err := fold(ctx, pairs, opts.Workers)
	if err != nil {
		return nil, err
	}

	var samples []indexedSample
	for _, p := range partials {
		report.Summary.FullMatch += p.counts[domain.OutcomeFullMatch]
		report.Summary.BidDiffers += p.counts[domain.OutcomeBidDiffers]
		report.Summary.LengthDiffers += p.counts[domain.OutcomeLengthDiffers]
		for pos, n := range p.hist {
			report.Divergence[pos] += n
		}
		samples = append(samples, p.samples...)
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].index < samples[j].index })
	if opts.SampleLimit >= 0 && len(samples) > opts.SampleLimit {
		samples = samples[:opts.SampleLimit]
	}
	for _, s := range samples {
		report.Samples = append(report.Samples, s.sample)
	}

	setPercentages(&report.Summary)
	return report, nil
}

// fold compares the pairs, splitting them into contiguous chunks when more
// than one worker is requested.
func fold(ctx context.Context, pairs []dealPair, workers int) ([]partialResult, error) {
	if workers <= 1 || len(pairs) < 2*minChunkSize {
		return []partialResult{comparePairs(pairs)}, nil
	}

	chunk := (len(pairs) + workers - 1) / workers
	if chunk < minChunkSize {
		chunk = minChunkSize
	}
	n := (len(pairs) + chunk - 1) / chunk
	partials := make([]partialResult, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		lo := i * chunk
		hi := min(lo+chunk, len(pairs))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partials[i] = comparePairs(pairs[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("comparison interrupted: %w", err)
	}
	return partials, nil
}

func comparePairs(pairs []dealPair) partialResult {
	res := partialResult{
		counts: make(map[domain.Outcome]int),
		hist:   make(map[int]int),
	}
	for _, p := range pairs {
		outcome, idx := auction.Compare(p.reference.Auction, p.candidate.Auction)
		res.counts[outcome]++
		if outcome == domain.OutcomeFullMatch {
			continue
		}
		if outcome == domain.OutcomeBidDiffers {
			res.hist[idx]++
		}
		res.samples = append(res.samples, indexedSample{
			index: p.index,
			sample: domain.MismatchSample{
				Board:            p.reference.Board,
				Dealer:           p.reference.Dealer,
				Vulnerability:    p.reference.Vulnerability,
				HandString:       p.reference.HandString,
				Outcome:          outcome,
				DivergenceIndex:  idx,
				ReferenceAuction: p.reference.Auction,
				CandidateAuction: p.candidate.Auction,
				Notes:            p.reference.Notes,
				Block:            p.reference.Block,
			},
		})
	}
	return res
}

// indexByHand maps hand strings to records; the last duplicate wins.
func indexByHand(deals []domain.DealRecord) map[string]domain.DealRecord {
	m := make(map[string]domain.DealRecord, len(deals))
	for _, d := range deals {
		m[d.HandString] = d
	}
	return m
}

func setPercentages(s *domain.Summary) {
	if s.CommonDeals == 0 {
		s.NoCommonDeals = true
		return
	}
	total := float64(s.CommonDeals)
	s.FullMatchPercent = 100 * float64(s.FullMatch) / total
	s.BidDiffersPercent = 100 * float64(s.BidDiffers) / total
	s.LengthDiffersPercent = 100 * float64(s.LengthDiffers) / total
}
