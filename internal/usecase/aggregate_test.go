package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"auction-diff/internal/domain"
	"auction-diff/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// buildDeals returns n reference deals and candidates where every third deal
// differs at a position derived from its index and every fifth is truncated.
func buildDeals(n int) ([]domain.DealRecord, []domain.DealRecord) {
	base := []string{"1NT", "Pass", "2C", "Pass", "2S", "Pass", "4S", "Pass", "Pass", "Pass"}
	var ref, cand []domain.DealRecord
	for i := 0; i < n; i++ {
		hand := fmt.Sprintf("N:hand-%04d", i)
		r := append([]string(nil), base...)
		c := append([]string(nil), base...)
		switch {
		case i%3 == 0:
			c[i%len(c)] = "7NT"
		case i%5 == 0:
			c = c[:4]
		}
		ref = append(ref, deal(i+1, hand, r...))
		cand = append(cand, deal(0, hand, c...))
	}
	return ref, cand
}

func TestAggregate_SampleCapKeepsEncounterOrder(t *testing.T) {
	ref := []domain.DealRecord{
		deal(1, handA, "1C", "Pass"),
		deal(2, handB, "1D", "Pass"),
		deal(3, handC, "1H", "Pass"),
		deal(4, handD, "1S", "Pass"),
	}
	cand := []domain.DealRecord{
		deal(0, handD, "2S", "Pass"),
		deal(0, handC, "1H"),
		deal(0, handB, "1D", "Pass"),
		deal(0, handA, "1C", "X"),
	}

	got, err := usecase.Aggregate(context.Background(), ref, cand, nil, usecase.Options{SampleLimit: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, got.Summary.Mismatched())
	require.Len(t, got.Samples, 2)
	assert.Equal(t, 1, got.Samples[0].Board)
	assert.Equal(t, 3, got.Samples[1].Board)
	assert.Equal(t, domain.OutcomeLengthDiffers, got.Samples[1].Outcome)
	assert.Equal(t, 1, got.Samples[1].DivergenceIndex)
	assert.Equal(t, map[int]int{0: 1, 1: 1}, got.Divergence)
}

func TestAggregate_SampleCarriesReferenceBlock(t *testing.T) {
	ref := deal(1, handA, "1C", "Pass", "Pass", "Pass")
	ref.Block = "[Board \"1\"]\n1C Pass Pass Pass"
	cand := deal(0, handA, "1D", "Pass", "Pass", "Pass")
	cand.Block = "candidate text"

	got, err := usecase.Aggregate(context.Background(), []domain.DealRecord{ref}, []domain.DealRecord{cand}, nil, usecase.Options{SampleLimit: 10})
	require.NoError(t, err)

	require.Len(t, got.Samples, 1)
	assert.Equal(t, ref.Block, got.Samples[0].Block)
}

func TestAggregate_SampleLimitBounds(t *testing.T) {
	ref, cand := buildDeals(30)

	none, err := usecase.Aggregate(context.Background(), ref, cand, nil, usecase.Options{SampleLimit: 0})
	require.NoError(t, err)
	assert.Empty(t, none.Samples)

	all, err := usecase.Aggregate(context.Background(), ref, cand, nil, usecase.Options{SampleLimit: -1})
	require.NoError(t, err)
	assert.Len(t, all.Samples, all.Summary.Mismatched())
}

func TestAggregate_NoCommonDeals(t *testing.T) {
	got, err := usecase.Aggregate(context.Background(), nil, nil, nil, usecase.Options{SampleLimit: 10})
	require.NoError(t, err)

	assert.Equal(t, 0, got.Summary.CommonDeals)
	assert.True(t, got.Summary.NoCommonDeals)
	assert.Zero(t, got.Summary.FullMatchPercent)
	assert.Zero(t, got.Summary.BidDiffersPercent)
	assert.Zero(t, got.Summary.LengthDiffersPercent)
	assert.False(t, got.HasFindings())
}

func TestAggregate_DuplicateHandsLastWriteWins(t *testing.T) {
	ref := []domain.DealRecord{
		deal(1, handA, "1C", "Pass", "Pass", "Pass"),
		deal(2, handA, "1D", "Pass", "Pass", "Pass"),
	}
	cand := []domain.DealRecord{
		deal(0, handA, "1D", "Pass", "Pass", "Pass"),
	}

	got, err := usecase.Aggregate(context.Background(), ref, cand, nil, usecase.Options{SampleLimit: 10})
	require.NoError(t, err)

	assert.Equal(t, 1, got.Summary.CommonDeals)
	assert.Equal(t, 1, got.Summary.FullMatch)
	assert.Zero(t, got.Summary.OnlyInReference)
}

func TestAggregate_PercentagesUseCommonDeals(t *testing.T) {
	ref, cand := buildDeals(10)
	cand = append(cand, deal(0, handA, "1C"))

	got, err := usecase.Aggregate(context.Background(), ref, cand, nil, usecase.Options{SampleLimit: 10})
	require.NoError(t, err)

	s := got.Summary
	assert.Equal(t, 10, s.CommonDeals)
	assert.Equal(t, 1, s.OnlyInCandidate)
	assert.Equal(t, 4, s.BidDiffers)
	assert.Equal(t, 1, s.LengthDiffers)
	assert.Equal(t, 5, s.FullMatch)
	assert.InDelta(t, 40.0, s.BidDiffersPercent, 0.001)
	assert.InDelta(t, 10.0, s.LengthDiffersPercent, 0.001)
	assert.InDelta(t, 50.0, s.FullMatchPercent, 0.001)
}

func TestAggregate_ParallelMatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	ref, cand := buildDeals(1000)
	ctx := context.Background()

	sequential, err := usecase.Aggregate(ctx, ref, cand, nil, usecase.Options{SampleLimit: 10, Workers: 1})
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 7, 16} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			parallel, err := usecase.Aggregate(ctx, ref, cand, nil, usecase.Options{SampleLimit: 10, Workers: workers})
			require.NoError(t, err)

			assert.Equal(t, sequential.Summary, parallel.Summary)
			assert.Equal(t, sequential.Divergence, parallel.Divergence)
			assert.Equal(t, sequential.Samples, parallel.Samples)
		})
	}
}

func TestAggregate_CancelledContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ref, cand := buildDeals(1000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := usecase.Aggregate(ctx, ref, cand, nil, usecase.Options{SampleLimit: 10, Workers: 4})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

// Benchmark tests

func BenchmarkAggregate(b *testing.B) {
	ref, cand := buildDeals(5000)
	ctx := context.Background()

	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			opts := usecase.Options{SampleLimit: 10, Workers: workers}
			for i := 0; i < b.N; i++ {
				if _, err := usecase.Aggregate(ctx, ref, cand, nil, opts); err != nil {
					b.Fatalf("Error in benchmark: %v", err)
				}
			}
		})
	}
}
