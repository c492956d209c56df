package services

import (
	"database/sql"
	"fmt"

	"uvtab-emis/app/database"
	"uvtab-emis/app/models"
)

// ComputeInvoice folds invoice lines and the ledger amount into totals
// and a per-category breakdown. total_bill = amount_paid + outstanding.
func ComputeInvoice(lines []models.InvoiceLine, amountPaid float64) (float64, float64, []models.CategoryBreakdown) {
	var outstanding float64
	byCategory := map[models.RegistrationCategory]*models.CategoryBreakdown{}

	for _, line := range lines {
		outstanding += line.FeesBalance
		b, ok := byCategory[line.Category]
		if !ok {
			b = &models.CategoryBreakdown{Category: line.Category}
			byCategory[line.Category] = b
		}
		b.Candidates++
		b.Amount += line.FeesBalance + line.AmountCleared
	}

	// fixed presentation order
	var breakdown []models.CategoryBreakdown
	for _, category := range []models.RegistrationCategory{
		models.CategoryFormal, models.CategoryModular, models.CategoryInformal,
	} {
		if b, ok := byCategory[category]; ok {
			breakdown = append(breakdown, *b)
		}
	}

	return amountPaid + outstanding, outstanding, breakdown
}

// BuildInvoice assembles the billing statement for a (center, series).
// A center-series pair with no ledger row bills with amount_paid zero.
func BuildInvoice(db *sql.DB, centerID, seriesID string) (*models.Invoice, error) {
	center, err := database.GetCenterByID(db, centerID)
	if err != nil {
		return nil, fmt.Errorf("center not found: %w", err)
	}
	series, err := database.GetSeriesByID(db, seriesID)
	if err != nil {
		return nil, fmt.Errorf("series not found: %w", err)
	}

	amountPaid, err := database.GetLedgerAmount(db, centerID, seriesID)
	if err != nil {
		return nil, err
	}
	lines, err := database.GetInvoiceLines(db, centerID, seriesID)
	if err != nil {
		return nil, err
	}

	totalBill, outstanding, breakdown := ComputeInvoice(lines, amountPaid)

	return &models.Invoice{
		CenterID:    center.ID,
		CenterName:  center.Name,
		CenterCode:  center.Code,
		SeriesID:    series.ID,
		SeriesName:  series.Name,
		AmountPaid:  amountPaid,
		Outstanding: outstanding,
		TotalBill:   totalBill,
		Breakdown:   breakdown,
		Lines:       lines,
	}, nil
}

// ClearPayment marks a candidate's payment cleared and posts the amount
// to the center-series ledger atomically.
func ClearPayment(db *sql.DB, candidateID string, amount float64, clearedBy string) error {
	if amount <= 0 {
		return fmt.Errorf("payment amount must be positive")
	}
	return database.ClearCandidatePayment(db, candidateID, amount, clearedBy)
}
