package database

import (
	"database/sql"
	"errors"
	"fmt"

	"uvtab-emis/app/models"
)

// ErrNoCurrentSeries is returned when no assessment series is marked current.
var ErrNoCurrentSeries = errors.New("no current assessment series is set")

// GetAllSeries returns all assessment series, newest first.
func GetAllSeries(db *sql.DB) ([]*models.AssessmentSeries, error) {
	rows, err := db.Query(`SELECT id, name, start_date, end_date, is_current, created_at, updated_at
		FROM assessment_series WHERE deleted_at IS NULL ORDER BY start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch series: %w", err)
	}
	defer rows.Close()

	var series []*models.AssessmentSeries
	for rows.Next() {
		s := &models.AssessmentSeries{}
		err := rows.Scan(&s.ID, &s.Name, &s.StartDate.Time, &s.EndDate.Time,
			&s.IsCurrent, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			continue
		}
		series = append(series, s)
	}
	return series, rows.Err()
}

// GetSeriesByID fetches one series.
func GetSeriesByID(db *sql.DB, id string) (*models.AssessmentSeries, error) {
	s := &models.AssessmentSeries{}
	err := db.QueryRow(`SELECT id, name, start_date, end_date, is_current, created_at, updated_at
		FROM assessment_series WHERE id = $1 AND deleted_at IS NULL`, id).Scan(
		&s.ID, &s.Name, &s.StartDate.Time, &s.EndDate.Time,
		&s.IsCurrent, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetCurrentSeries returns the series marked current.
func GetCurrentSeries(db *sql.DB) (*models.AssessmentSeries, error) {
	s := &models.AssessmentSeries{}
	err := db.QueryRow(`SELECT id, name, start_date, end_date, is_current, created_at, updated_at
		FROM assessment_series WHERE is_current = true AND deleted_at IS NULL`).Scan(
		&s.ID, &s.Name, &s.StartDate.Time, &s.EndDate.Time,
		&s.IsCurrent, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNoCurrentSeries
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateSeries inserts a new series. New series are never current on
// creation; currency is switched explicitly via SetCurrentSeries.
func CreateSeries(db *sql.DB, s *models.AssessmentSeries) error {
	return db.QueryRow(`INSERT INTO assessment_series (name, start_date, end_date, is_current)
		VALUES ($1, $2, $3, false)
		RETURNING id, is_current, created_at, updated_at`,
		s.Name, s.StartDate.Time, s.EndDate.Time).Scan(
		&s.ID, &s.IsCurrent, &s.CreatedAt, &s.UpdatedAt)
}

// UpdateSeries updates a series' name and window.
func UpdateSeries(db *sql.DB, s *models.AssessmentSeries) error {
	result, err := db.Exec(`UPDATE assessment_series SET name = $1, start_date = $2, end_date = $3,
		updated_at = NOW() WHERE id = $4 AND deleted_at IS NULL`,
		s.Name, s.StartDate.Time, s.EndDate.Time, s.ID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// SetCurrentSeries makes one series current and clears all others, as a
// single transaction. At most one series is current at any time.
func SetCurrentSeries(db *sql.DB, seriesID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE assessment_series SET is_current = false, updated_at = NOW()
		WHERE is_current = true`); err != nil {
		return fmt.Errorf("failed to clear current series: %w", err)
	}

	result, err := tx.Exec(`UPDATE assessment_series SET is_current = true, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`, seriesID)
	if err != nil {
		return fmt.Errorf("failed to set current series: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}
