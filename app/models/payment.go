package models

import "time"

// CenterSeriesPayment is the payment ledger: one row per (center, series)
// tracking the cumulative amount cleared for that center in that series.
// It is updated in the same transaction that marks a candidate paid, so
// amount_paid always equals the sum of cleared candidate amounts.
type CenterSeriesPayment struct {
	ID                 string    `json:"id"`
	AssessmentCenterID string    `json:"assessment_center_id" validate:"required,uuid"`
	AssessmentSeriesID string    `json:"assessment_series_id" validate:"required,uuid"`
	AmountPaid         float64   `json:"amount_paid"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// LedgerDrift reports a mismatch between the ledger and the cleared
// candidate amounts it should equal, found by the audit.
type LedgerDrift struct {
	CenterID     string  `json:"center_id"`
	CenterCode   string  `json:"center_code"`
	SeriesID     string  `json:"series_id"`
	SeriesName   string  `json:"series_name"`
	LedgerAmount float64 `json:"ledger_amount"`
	ClearedSum   float64 `json:"cleared_sum"`
}

// Delta returns ledger minus cleared sum (non-zero means drift).
func (d LedgerDrift) Delta() float64 {
	return d.LedgerAmount - d.ClearedSum
}
