package services

import (
	"database/sql"
	"log"

	"uvtab-emis/app/database"
	"uvtab-emis/app/models"
)

// AuditPaymentLedger checks every (center, series) ledger row against
// the sum of cleared candidate amounts in that scope. The ledger is
// written transactionally with each clearance, so any drift means data
// was changed outside the normal path.
func AuditPaymentLedger(db *sql.DB) ([]models.LedgerDrift, error) {
	drifts, err := database.FindLedgerDrift(db)
	if err != nil {
		return nil, err
	}
	for _, d := range drifts {
		log.Printf("Ledger drift: center %s series %q ledger %.2f vs cleared %.2f (delta %.2f)",
			d.CenterCode, d.SeriesName, d.LedgerAmount, d.ClearedSum, d.Delta())
	}
	return drifts, nil
}

// ReconcilePaymentLedger overwrites drifted ledger rows with the
// reconciled sums. Dry runs only report.
func ReconcilePaymentLedger(db *sql.DB, apply bool) ([]models.LedgerDrift, error) {
	drifts, err := AuditPaymentLedger(db)
	if err != nil {
		return nil, err
	}
	if !apply {
		return drifts, nil
	}
	for _, d := range drifts {
		if err := database.FixLedgerAmount(db, d.CenterID, d.SeriesID, d.ClearedSum); err != nil {
			return drifts, err
		}
		log.Printf("Fixed ledger for center %s series %q: %.2f -> %.2f",
			d.CenterCode, d.SeriesName, d.LedgerAmount, d.ClearedSum)
	}
	return drifts, nil
}
