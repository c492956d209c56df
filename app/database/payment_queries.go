package database

import (
	"database/sql"
	"errors"
	"fmt"

	"uvtab-emis/app/models"
)

// ErrAlreadyCleared is returned when clearing a payment for a candidate
// whose payment is already cleared.
var ErrAlreadyCleared = errors.New("candidate payment already cleared")

// billingScope selects the candidates that count toward a center-series
// invoice: any level enrollment, OR Modular with 1-2 declared/enrolled
// modules, OR a positive balance, OR already cleared. Dropping any arm
// undercounts the invoice.
const billingScope = `(
	EXISTS (SELECT 1 FROM candidate_levels cl WHERE cl.candidate_id = c.id)
	OR (c.registration_category = 'Modular' AND (
		(c.modular_module_count BETWEEN 1 AND 2)
		OR (SELECT COUNT(*) FROM candidate_modules cm WHERE cm.candidate_id = c.id) BETWEEN 1 AND 2
	))
	OR c.fees_balance > 0
	OR c.payment_cleared
)`

// GetLedgerAmount returns the cumulative amount paid for a (center, series).
// A missing ledger row reads as zero so invoices never fail.
func GetLedgerAmount(db *sql.DB, centerID, seriesID string) (float64, error) {
	var amount float64
	err := db.QueryRow(`SELECT amount_paid FROM center_series_payments
		WHERE assessment_center_id = $1 AND assessment_series_id = $2`,
		centerID, seriesID).Scan(&amount)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read payment ledger: %w", err)
	}
	return amount, nil
}

// GetInvoiceLines returns the billing-scope candidates for a (center,
// series) with the columns an invoice needs.
func GetInvoiceLines(db *sql.DB, centerID, seriesID string) ([]models.InvoiceLine, error) {
	query := `SELECT c.id, COALESCE(c.reg_number, ''), c.first_name || ' ' || c.last_name,
		c.registration_category,
		GREATEST(c.modular_module_count, (SELECT COUNT(*) FROM candidate_modules cm WHERE cm.candidate_id = c.id)),
		c.fees_balance, c.payment_cleared, c.payment_amount_cleared
		FROM candidates c
		WHERE c.deleted_at IS NULL
		AND c.assessment_center_id = $1
		AND c.assessment_series_id = $2
		AND ` + billingScope + `
		ORDER BY c.registration_category, c.reg_number`

	rows, err := db.Query(query, centerID, seriesID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice lines: %w", err)
	}
	defer rows.Close()

	var lines []models.InvoiceLine
	for rows.Next() {
		var line models.InvoiceLine
		err := rows.Scan(&line.CandidateID, &line.RegNumber, &line.CandidateName,
			&line.Category, &line.ModuleCount, &line.FeesBalance,
			&line.PaymentCleared, &line.AmountCleared)
		if err != nil {
			continue
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// ClearCandidatePayment marks a candidate paid and updates the payment
// ledger in the same transaction, keeping amount_paid equal to the sum
// of cleared candidate amounts at all times.
func ClearCandidatePayment(db *sql.DB, candidateID string, amount float64, clearedBy string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var centerID string
	var seriesID sql.NullString
	var alreadyCleared bool
	var balance float64
	err = tx.QueryRow(`SELECT assessment_center_id, assessment_series_id, payment_cleared, fees_balance
		FROM candidates WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`, candidateID).Scan(
		&centerID, &seriesID, &alreadyCleared, &balance)
	if err != nil {
		return err
	}
	if alreadyCleared {
		return ErrAlreadyCleared
	}
	if !seriesID.Valid {
		return fmt.Errorf("candidate %s has no assessment series; cannot post payment to ledger", candidateID)
	}

	newBalance := balance - amount
	if newBalance < 0 {
		newBalance = 0
	}

	ref := fmt.Sprintf("%s/%s", centerID, seriesID.String)
	_, err = tx.Exec(`UPDATE candidates SET payment_cleared = true, payment_amount_cleared = $1,
		payment_cleared_by = $2, payment_center_series_ref = $3, fees_balance = $4, updated_at = NOW()
		WHERE id = $5`, amount, clearedBy, ref, newBalance, candidateID)
	if err != nil {
		return fmt.Errorf("failed to mark candidate paid: %w", err)
	}

	_, err = tx.Exec(`INSERT INTO center_series_payments (assessment_center_id, assessment_series_id, amount_paid)
		VALUES ($1, $2, $3)
		ON CONFLICT (assessment_center_id, assessment_series_id)
		DO UPDATE SET amount_paid = center_series_payments.amount_paid + EXCLUDED.amount_paid, updated_at = NOW()`,
		centerID, seriesID.String, amount)
	if err != nil {
		return fmt.Errorf("failed to update payment ledger: %w", err)
	}

	return tx.Commit()
}

// FindLedgerDrift compares each ledger row against the sum of cleared
// candidate amounts in its (center, series) scope and returns mismatches.
// Centers with cleared candidates but no ledger row are included.
func FindLedgerDrift(db *sql.DB) ([]models.LedgerDrift, error) {
	query := `SELECT ac.id, ac.code, s.id, s.name,
		COALESCE(p.amount_paid, 0),
		COALESCE(SUM(CASE WHEN c.payment_cleared THEN c.payment_amount_cleared END), 0)
		FROM assessment_centers ac
		CROSS JOIN assessment_series s
		LEFT JOIN center_series_payments p
			ON p.assessment_center_id = ac.id AND p.assessment_series_id = s.id
		LEFT JOIN candidates c
			ON c.assessment_center_id = ac.id AND c.assessment_series_id = s.id AND c.deleted_at IS NULL
		WHERE ac.deleted_at IS NULL AND s.deleted_at IS NULL
		GROUP BY ac.id, ac.code, s.id, s.name, p.amount_paid
		HAVING COALESCE(p.amount_paid, 0) <>
			COALESCE(SUM(CASE WHEN c.payment_cleared THEN c.payment_amount_cleared END), 0)`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to audit payment ledger: %w", err)
	}
	defer rows.Close()

	var drifts []models.LedgerDrift
	for rows.Next() {
		var d models.LedgerDrift
		err := rows.Scan(&d.CenterID, &d.CenterCode, &d.SeriesID, &d.SeriesName,
			&d.LedgerAmount, &d.ClearedSum)
		if err != nil {
			continue
		}
		drifts = append(drifts, d)
	}
	return drifts, rows.Err()
}

// FixLedgerAmount overwrites a ledger row with the reconciled amount.
// Only the reconciliation command uses this; normal writes go through
// ClearCandidatePayment.
func FixLedgerAmount(db *sql.DB, centerID, seriesID string, amount float64) error {
	_, err := db.Exec(`INSERT INTO center_series_payments (assessment_center_id, assessment_series_id, amount_paid)
		VALUES ($1, $2, $3)
		ON CONFLICT (assessment_center_id, assessment_series_id)
		DO UPDATE SET amount_paid = EXCLUDED.amount_paid, updated_at = NOW()`,
		centerID, seriesID, amount)
	return err
}
