package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"uvtab-emis/app/models"
)

// ErrPaymentCleared is returned when a delete is refused because the
// candidate's payment has been cleared.
var ErrPaymentCleared = errors.New("candidate payment is cleared; record is protected")

// ErrDuplicateRegNumber is returned when an insert or update collides
// with an existing registration number. The serial counter makes this
// unreachable in normal operation.
var ErrDuplicateRegNumber = errors.New("registration number already exists")

// mapRegNumberError converts the unique-constraint violation on
// candidates.reg_number into the sentinel.
func mapRegNumberError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" && strings.Contains(pqErr.Constraint, "reg_number") {
		return ErrDuplicateRegNumber
	}
	return err
}

const candidateSelect = `SELECT c.id, c.first_name, c.last_name, c.gender, c.date_of_birth,
	c.nationality, c.phone, c.district, c.registration_category,
	c.occupation_id, c.assessment_center_id, c.assessment_series_id,
	c.intake, c.entry_year, c.reg_number, c.serial,
	c.modular_module_count, c.modular_billing_amount, c.fees_balance,
	c.payment_cleared, c.payment_amount_cleared, c.payment_cleared_by, c.payment_center_series_ref,
	c.created_at, c.updated_at,
	o.name, o.code, ac.name, ac.code, COALESCE(s.name, '')
	FROM candidates c
	JOIN occupations o ON c.occupation_id = o.id
	JOIN assessment_centers ac ON c.assessment_center_id = ac.id
	LEFT JOIN assessment_series s ON c.assessment_series_id = s.id
	WHERE c.deleted_at IS NULL`

func scanCandidateRow(scanner interface{ Scan(...interface{}) error }) (*models.CandidateRow, error) {
	row := &models.CandidateRow{}
	var dob sql.NullTime
	var phone, district, clearedBy, seriesRef, regNumber sql.NullString
	var seriesID sql.NullString
	var override sql.NullFloat64

	err := scanner.Scan(
		&row.ID, &row.FirstName, &row.LastName, &row.Gender, &dob,
		&row.Nationality, &phone, &district, &row.RegistrationCategory,
		&row.OccupationID, &row.AssessmentCenterID, &seriesID,
		&row.Intake, &row.EntryYear, &regNumber, &row.Serial,
		&row.ModularModuleCount, &override, &row.FeesBalance,
		&row.PaymentCleared, &row.PaymentAmountCleared, &clearedBy, &seriesRef,
		&row.CreatedAt, &row.UpdatedAt,
		&row.OccupationName, &row.OccupationCode, &row.CenterName, &row.CenterCode, &row.SeriesName,
	)
	if err != nil {
		return nil, err
	}

	if dob.Valid {
		row.DateOfBirth = &dob.Time
	}
	row.Phone = phone.String
	row.District = district.String
	if seriesID.Valid {
		row.AssessmentSeriesID = &seriesID.String
	}
	if regNumber.Valid {
		row.RegNumber = &regNumber.String
	}
	if override.Valid {
		row.ModularBillingAmount = &override.Float64
	}
	if clearedBy.Valid {
		row.PaymentClearedBy = &clearedBy.String
	}
	if seriesRef.Valid {
		row.PaymentCenterSeriesRef = &seriesRef.String
	}
	return row, nil
}

// GetCandidateByID fetches a candidate with joined display columns.
func GetCandidateByID(db *sql.DB, id string) (*models.CandidateRow, error) {
	return scanCandidateRow(db.QueryRow(candidateSelect+" AND c.id = $1", id))
}

// ListCandidates returns candidates matching the filter, newest first.
func ListCandidates(db *sql.DB, filter models.CandidateFilter) ([]*models.CandidateRow, error) {
	query := candidateSelect
	var args []interface{}

	if filter.CenterID != "" {
		args = append(args, filter.CenterID)
		query += fmt.Sprintf(" AND c.assessment_center_id = $%d", len(args))
	}
	if filter.SeriesID != "" {
		args = append(args, filter.SeriesID)
		query += fmt.Sprintf(" AND c.assessment_series_id = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, string(filter.Category))
		query += fmt.Sprintf(" AND c.registration_category = $%d", len(args))
	}
	if filter.OccupationID != "" {
		args = append(args, filter.OccupationID)
		query += fmt.Sprintf(" AND c.occupation_id = $%d", len(args))
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, pattern)
		n := len(args)
		query += fmt.Sprintf(` AND (LOWER(c.first_name) LIKE $%d
			OR LOWER(c.last_name) LIKE $%d
			OR LOWER(c.first_name || ' ' || c.last_name) LIKE $%d
			OR LOWER(COALESCE(c.reg_number, '')) LIKE $%d)`, n, n, n, n)
	}

	query += " ORDER BY c.created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*models.CandidateRow
	for rows.Next() {
		row, err := scanCandidateRow(rows)
		if err != nil {
			continue
		}
		candidates = append(candidates, row)
	}
	return candidates, rows.Err()
}

// InsertCandidate inserts a candidate inside an existing transaction.
// Serial and reg number must already be assigned by the caller.
func InsertCandidate(tx *sql.Tx, c *models.Candidate) error {
	query := `INSERT INTO candidates (first_name, last_name, gender, date_of_birth, nationality,
		phone, district, registration_category, occupation_id, assessment_center_id,
		assessment_series_id, intake, entry_year, reg_number, serial,
		modular_module_count, modular_billing_amount, fees_balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, created_at, updated_at`

	err := tx.QueryRow(query,
		c.FirstName, c.LastName, string(c.Gender), c.DateOfBirth, c.Nationality,
		nullString(c.Phone), nullString(c.District), string(c.RegistrationCategory),
		c.OccupationID, c.AssessmentCenterID, c.AssessmentSeriesID,
		c.Intake, c.EntryYear, c.RegNumber, c.Serial,
		c.ModularModuleCount, c.ModularBillingAmount, c.FeesBalance,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return mapRegNumberError(err)
	}
	return nil
}

// UpdateCandidate updates the editable identity and registration fields.
func UpdateCandidate(db *sql.DB, c *models.Candidate) error {
	query := `UPDATE candidates SET first_name = $1, last_name = $2, gender = $3,
		date_of_birth = $4, nationality = $5, phone = $6, district = $7,
		assessment_series_id = $8, modular_module_count = $9, modular_billing_amount = $10,
		updated_at = NOW()
		WHERE id = $11 AND deleted_at IS NULL`

	result, err := db.Exec(query,
		c.FirstName, c.LastName, string(c.Gender), c.DateOfBirth, c.Nationality,
		nullString(c.Phone), nullString(c.District), c.AssessmentSeriesID,
		c.ModularModuleCount, c.ModularBillingAmount, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// SoftDeleteCandidate marks a candidate deleted. Records with a cleared
// payment are protected and the delete is refused.
func SoftDeleteCandidate(db *sql.DB, id string) error {
	var cleared bool
	err := db.QueryRow(`SELECT payment_cleared FROM candidates WHERE id = $1 AND deleted_at IS NULL`, id).Scan(&cleared)
	if err != nil {
		return err
	}
	if cleared {
		return ErrPaymentCleared
	}

	_, err = db.Exec(`UPDATE candidates SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1`, id)
	return err
}

// UpdateFeesBalance persists a recomputed balance.
func UpdateFeesBalance(db *sql.DB, candidateID string, balance float64) error {
	_, err := db.Exec(`UPDATE candidates SET fees_balance = $1, updated_at = NOW() WHERE id = $2`, balance, candidateID)
	return err
}

// ClearRegNumber removes the registration number so the next save regenerates it.
func ClearRegNumber(db *sql.DB, candidateID string) error {
	_, err := db.Exec(`UPDATE candidates SET reg_number = NULL, serial = 0, updated_at = NOW() WHERE id = $1`, candidateID)
	return err
}

// SetRegNumber stores a freshly generated registration number.
func SetRegNumber(tx *sql.Tx, candidateID, regNumber string, serial int) error {
	_, err := tx.Exec(`UPDATE candidates SET reg_number = $1, serial = $2, updated_at = NOW() WHERE id = $3`,
		regNumber, serial, candidateID)
	return mapRegNumberError(err)
}

// NextSerial atomically draws the next serial for a registration scope.
// The counter upsert is safe under concurrent registration: two inserts
// in the same scope serialize on the counter row and get distinct values.
func NextSerial(tx *sql.Tx, scope models.RegScope) (int, error) {
	query := `INSERT INTO reg_serials (assessment_center_id, intake, entry_year, occupation_id, registration_category, last_serial)
		VALUES ($1, $2, $3, $4, $5, 1)
		ON CONFLICT (assessment_center_id, intake, entry_year, occupation_id, registration_category)
		DO UPDATE SET last_serial = reg_serials.last_serial + 1
		RETURNING last_serial`

	var serial int
	err := tx.QueryRow(query, scope.CenterID, scope.Intake, scope.EntryYear,
		scope.OccupationID, string(scope.Category)).Scan(&serial)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate serial: %w", err)
	}
	return serial, nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
