package gateway

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"auction-diff/internal/domain"
)

// FileDealRepository implements the DealRepository interface for PBN and
// JSON result files.
type FileDealRepository struct {
	parser *PBNParser
}

// NewFileDealRepository creates a new repository instance.
func NewFileDealRepository(parser *PBNParser) *FileDealRepository {
	if parser == nil {
		parser = NewPBNParser(DialectEvent())
	}
	return &FileDealRepository{parser: parser}
}

// GetDeals reads a deal source. Files ending in .json are read as a result
// set, anything else as PBN.
func (r *FileDealRepository) GetDeals(ctx context.Context, path string) (*domain.DealSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deal source %s: %w: %w", path, domain.ErrSourceUnreadable, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ReadResultSet(data, path)
	}

	deals, err := r.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w: %w", path, domain.ErrSourceUnreadable, err)
	}
	return &domain.DealSet{Source: path, Deals: deals}, nil
}
