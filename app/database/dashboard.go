package database

import (
	"database/sql"

	"uvtab-emis/app/models"
)

// GetDashboardStats aggregates the board-wide landing-page figures.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	candidateQuery := `SELECT COUNT(*),
		COUNT(CASE WHEN payment_cleared THEN 1 END),
		COALESCE(SUM(fees_balance), 0),
		COALESCE(SUM(CASE WHEN payment_cleared THEN payment_amount_cleared END), 0),
		COUNT(CASE WHEN registration_category = 'Formal' THEN 1 END),
		COUNT(CASE WHEN registration_category = 'Modular' THEN 1 END),
		COUNT(CASE WHEN registration_category = 'Informal' THEN 1 END)
		FROM candidates WHERE deleted_at IS NULL`

	err := db.QueryRow(candidateQuery).Scan(
		&stats.TotalCandidates, &stats.ClearedCandidates,
		&stats.TotalOutstanding, &stats.TotalCleared,
		&stats.FormalCount, &stats.ModularCount, &stats.InformalCount)
	if err != nil {
		return nil, err
	}

	db.QueryRow(`SELECT COUNT(*) FROM assessment_centers WHERE deleted_at IS NULL`).Scan(&stats.TotalCenters)
	db.QueryRow(`SELECT COUNT(*) FROM occupations WHERE deleted_at IS NULL`).Scan(&stats.TotalOccupations)
	// zero counts on error keep the dashboard rendering

	return stats, nil
}
