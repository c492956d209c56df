package services

import (
	"database/sql"
	"fmt"

	"uvtab-emis/app/database"
	"uvtab-emis/app/models"
)

// FormatRegNumber builds the seven-token registration number:
// {nationality}/{yy}/{intake}/{occupation_code}/{reg_type}/{serial}-{center_code}
// Serial is zero-padded to three digits.
func FormatRegNumber(nationality string, entryYear int, intake, occupationCode string,
	category models.RegistrationCategory, serial int, centerCode string) string {
	return fmt.Sprintf("%s/%02d/%s/%s/%s/%03d-%s",
		nationality, entryYear%100, intake, occupationCode, category.Code(), serial, centerCode)
}

// RegisterCandidate creates a candidate and assigns the registration
// number in one transaction. The serial comes from the per-scope counter,
// so two concurrent registrations in the same scope cannot collide.
func RegisterCandidate(db *sql.DB, c *models.Candidate) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var occupationCode, centerCode string
	if err := tx.QueryRow(`SELECT code FROM occupations WHERE id = $1 AND deleted_at IS NULL`,
		c.OccupationID).Scan(&occupationCode); err != nil {
		return fmt.Errorf("occupation not found: %w", err)
	}
	if err := tx.QueryRow(`SELECT code FROM assessment_centers WHERE id = $1 AND deleted_at IS NULL`,
		c.AssessmentCenterID).Scan(&centerCode); err != nil {
		return fmt.Errorf("assessment center not found: %w", err)
	}

	serial, err := database.NextSerial(tx, models.RegScope{
		CenterID:     c.AssessmentCenterID,
		Intake:       c.Intake,
		EntryYear:    c.EntryYear,
		OccupationID: c.OccupationID,
		Category:     c.RegistrationCategory,
	})
	if err != nil {
		return err
	}

	regNumber := FormatRegNumber(c.Nationality, c.EntryYear, c.Intake, occupationCode,
		c.RegistrationCategory, serial, centerCode)
	c.Serial = serial
	c.RegNumber = &regNumber

	if err := database.InsertCandidate(tx, c); err != nil {
		return fmt.Errorf("failed to insert candidate: %w", err)
	}

	return tx.Commit()
}

// RegenerateRegNumber rebuilds a candidate's registration number with a
// fresh serial from the current scope counter. Used when a candidate was
// registered under the wrong center, occupation or category and the
// identifier must be reissued. Serials stay monotonic per scope; the old
// serial is not reused.
func RegenerateRegNumber(db *sql.DB, candidateID string) (string, error) {
	tx, err := db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var c models.Candidate
	var occupationCode, centerCode string
	err = tx.QueryRow(`SELECT c.nationality, c.entry_year, c.intake, c.registration_category,
		c.occupation_id, c.assessment_center_id, o.code, ac.code
		FROM candidates c
		JOIN occupations o ON c.occupation_id = o.id
		JOIN assessment_centers ac ON c.assessment_center_id = ac.id
		WHERE c.id = $1 AND c.deleted_at IS NULL FOR UPDATE OF c`, candidateID).Scan(
		&c.Nationality, &c.EntryYear, &c.Intake, &c.RegistrationCategory,
		&c.OccupationID, &c.AssessmentCenterID, &occupationCode, &centerCode)
	if err != nil {
		return "", err
	}

	serial, err := database.NextSerial(tx, models.RegScope{
		CenterID:     c.AssessmentCenterID,
		Intake:       c.Intake,
		EntryYear:    c.EntryYear,
		OccupationID: c.OccupationID,
		Category:     c.RegistrationCategory,
	})
	if err != nil {
		return "", err
	}

	regNumber := FormatRegNumber(c.Nationality, c.EntryYear, c.Intake, occupationCode,
		c.RegistrationCategory, serial, centerCode)
	if err := database.SetRegNumber(tx, candidateID, regNumber, serial); err != nil {
		return "", fmt.Errorf("failed to store registration number: %w", err)
	}

	return regNumber, tx.Commit()
}
