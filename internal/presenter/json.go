package presenter

import (
	"encoding/json"
	"fmt"
	"io"

	"auction-diff/internal/domain"
)

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, report *domain.ComparisonReport) error {
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON report: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(output)); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}

// RenderDeals writes parsed deal records as indented JSON.
func RenderDeals(w io.Writer, deals []domain.DealRecord) error {
	if deals == nil {
		deals = []domain.DealRecord{}
	}
	output, err := json.MarshalIndent(deals, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode deals: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}
