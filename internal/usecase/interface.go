package usecase

import (
	"context"

	"auction-diff/internal/domain"
)

// DealRepository defines the interface for fetching deal sources.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go DealRepository
type DealRepository interface {
	GetDeals(ctx context.Context, path string) (*domain.DealSet, error)
}
