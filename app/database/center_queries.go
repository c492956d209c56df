package database

import (
	"database/sql"
	"fmt"

	"uvtab-emis/app/models"
)

// GetCenters returns all active assessment centers ordered by code.
func GetCenters(db *sql.DB) ([]*models.AssessmentCenter, error) {
	query := `SELECT id, name, code, COALESCE(district, ''), is_active, created_at, updated_at
		FROM assessment_centers
		WHERE deleted_at IS NULL
		ORDER BY code`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch centers: %w", err)
	}
	defer rows.Close()

	var centers []*models.AssessmentCenter
	for rows.Next() {
		center := &models.AssessmentCenter{}
		err := rows.Scan(&center.ID, &center.Name, &center.Code, &center.District,
			&center.IsActive, &center.CreatedAt, &center.UpdatedAt)
		if err != nil {
			continue
		}
		centers = append(centers, center)
	}
	return centers, rows.Err()
}

// GetCenterByID fetches one center.
func GetCenterByID(db *sql.DB, id string) (*models.AssessmentCenter, error) {
	center := &models.AssessmentCenter{}
	err := db.QueryRow(`SELECT id, name, code, COALESCE(district, ''), is_active, created_at, updated_at
		FROM assessment_centers WHERE id = $1 AND deleted_at IS NULL`, id).Scan(
		&center.ID, &center.Name, &center.Code, &center.District,
		&center.IsActive, &center.CreatedAt, &center.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return center, nil
}

// CreateCenter inserts a new assessment center.
func CreateCenter(db *sql.DB, center *models.AssessmentCenter) error {
	query := `INSERT INTO assessment_centers (name, code, district, is_active)
		VALUES ($1, $2, $3, true)
		RETURNING id, is_active, created_at, updated_at`
	return db.QueryRow(query, center.Name, center.Code, nullString(center.District)).Scan(
		&center.ID, &center.IsActive, &center.CreatedAt, &center.UpdatedAt)
}

// UpdateCenter updates a center's editable fields.
func UpdateCenter(db *sql.DB, center *models.AssessmentCenter) error {
	result, err := db.Exec(`UPDATE assessment_centers SET name = $1, code = $2, district = $3,
		is_active = $4, updated_at = NOW() WHERE id = $5 AND deleted_at IS NULL`,
		center.Name, center.Code, nullString(center.District), center.IsActive, center.ID)
	if err != nil {
		return fmt.Errorf("failed to update center: %w", err)
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// GetCenterBalanceSummary aggregates outstanding and cleared amounts
// across a center's live candidates.
func GetCenterBalanceSummary(db *sql.DB, centerID string) (*models.CenterBalanceSummary, error) {
	query := `SELECT ac.id, ac.name, ac.code,
		COUNT(c.id),
		COALESCE(SUM(c.fees_balance), 0),
		COALESCE(SUM(CASE WHEN c.payment_cleared THEN c.payment_amount_cleared END), 0),
		COUNT(CASE WHEN c.payment_cleared THEN 1 END)
		FROM assessment_centers ac
		LEFT JOIN candidates c ON c.assessment_center_id = ac.id AND c.deleted_at IS NULL
		WHERE ac.id = $1 AND ac.deleted_at IS NULL
		GROUP BY ac.id, ac.name, ac.code`

	summary := &models.CenterBalanceSummary{}
	err := db.QueryRow(query, centerID).Scan(
		&summary.CenterID, &summary.CenterName, &summary.CenterCode,
		&summary.CandidateCount, &summary.TotalOutstanding,
		&summary.TotalCleared, &summary.ClearedCandidates)
	if err != nil {
		return nil, err
	}
	return summary, nil
}
