package database

import (
	"database/sql"
	"fmt"

	"uvtab-emis/app/models"
)

// CountPriorSittings counts existing results for a candidate on a paper
// or module, used to derive the sitting status of a new result.
func CountPriorSittings(db *sql.DB, candidateID string, paperID, moduleID *string) (int, error) {
	var count int
	var err error
	if paperID != nil {
		err = db.QueryRow(`SELECT COUNT(*) FROM results
			WHERE candidate_id = $1 AND paper_id = $2 AND deleted_at IS NULL`,
			candidateID, *paperID).Scan(&count)
	} else if moduleID != nil {
		err = db.QueryRow(`SELECT COUNT(*) FROM results
			WHERE candidate_id = $1 AND module_id = $2 AND deleted_at IS NULL`,
			candidateID, *moduleID).Scan(&count)
	} else {
		return 0, fmt.Errorf("result needs a paper or a module")
	}
	return count, err
}

// InsertResult stores a captured result.
func InsertResult(db *sql.DB, r *models.Result) error {
	query := `INSERT INTO results (candidate_id, paper_id, module_id, assessment_series_id,
		mark, grade, comment, status, sitting)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	return db.QueryRow(query, r.CandidateID, r.PaperID, r.ModuleID, r.AssessmentSeriesID,
		r.Mark, r.Grade, r.Comment, string(r.Status), r.Sitting).Scan(
		&r.ID, &r.CreatedAt, &r.UpdatedAt)
}

// UpdateResultMark re-marks a result, recomputed grade fields included.
func UpdateResultMark(db *sql.DB, r *models.Result) error {
	result, err := db.Exec(`UPDATE results SET mark = $1, grade = $2, comment = $3, status = $4,
		updated_at = NOW() WHERE id = $5 AND deleted_at IS NULL`,
		r.Mark, r.Grade, r.Comment, string(r.Status), r.ID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// GetResultByID fetches one result row.
func GetResultByID(db *sql.DB, id string) (*models.Result, error) {
	r := &models.Result{}
	var paperID, moduleID sql.NullString
	var mark sql.NullFloat64
	err := db.QueryRow(`SELECT id, candidate_id, paper_id, module_id, assessment_series_id,
		mark, grade, comment, status, sitting, created_at, updated_at
		FROM results WHERE id = $1 AND deleted_at IS NULL`, id).Scan(
		&r.ID, &r.CandidateID, &paperID, &moduleID, &r.AssessmentSeriesID,
		&mark, &r.Grade, &r.Comment, &r.Status, &r.Sitting, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if paperID.Valid {
		r.PaperID = &paperID.String
	}
	if moduleID.Valid {
		r.ModuleID = &moduleID.String
	}
	if mark.Valid {
		r.Mark = &mark.Float64
	}
	return r, nil
}

// ListResults returns result rows for a series, optionally narrowed to
// one center, with joined candidate and unit columns.
func ListResults(db *sql.DB, seriesID, centerID string) ([]*models.ResultRow, error) {
	query := `SELECT r.id, r.candidate_id, r.paper_id, r.module_id, r.assessment_series_id,
		r.mark, r.grade, r.comment, r.status, r.sitting, r.created_at, r.updated_at,
		c.first_name || ' ' || c.last_name, COALESCE(c.reg_number, ''),
		COALESCE(p.code, m.code, ''), COALESCE(p.name, m.name, '')
		FROM results r
		JOIN candidates c ON r.candidate_id = c.id
		LEFT JOIN papers p ON r.paper_id = p.id
		LEFT JOIN modules m ON r.module_id = m.id
		WHERE r.deleted_at IS NULL AND c.deleted_at IS NULL
		AND r.assessment_series_id = $1`

	args := []interface{}{seriesID}
	if centerID != "" {
		args = append(args, centerID)
		query += fmt.Sprintf(" AND c.assessment_center_id = $%d", len(args))
	}
	query += " ORDER BY c.reg_number, r.created_at"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch results: %w", err)
	}
	defer rows.Close()

	var results []*models.ResultRow
	for rows.Next() {
		rr := &models.ResultRow{}
		var paperID, moduleID sql.NullString
		var mark sql.NullFloat64
		err := rows.Scan(
			&rr.ID, &rr.CandidateID, &paperID, &moduleID, &rr.AssessmentSeriesID,
			&mark, &rr.Grade, &rr.Comment, &rr.Status, &rr.Sitting, &rr.CreatedAt, &rr.UpdatedAt,
			&rr.CandidateName, &rr.RegNumber, &rr.UnitCode, &rr.UnitName)
		if err != nil {
			continue
		}
		if paperID.Valid {
			rr.PaperID = &paperID.String
		}
		if moduleID.Valid {
			rr.ModuleID = &moduleID.String
		}
		if mark.Valid {
			rr.Mark = &mark.Float64
		}
		results = append(results, rr)
	}
	return results, rows.Err()
}

// GetCandidateResults returns all results for one candidate.
func GetCandidateResults(db *sql.DB, candidateID string) ([]*models.ResultRow, error) {
	query := `SELECT r.id, r.candidate_id, r.paper_id, r.module_id, r.assessment_series_id,
		r.mark, r.grade, r.comment, r.status, r.sitting, r.created_at, r.updated_at,
		c.first_name || ' ' || c.last_name, COALESCE(c.reg_number, ''),
		COALESCE(p.code, m.code, ''), COALESCE(p.name, m.name, '')
		FROM results r
		JOIN candidates c ON r.candidate_id = c.id
		LEFT JOIN papers p ON r.paper_id = p.id
		LEFT JOIN modules m ON r.module_id = m.id
		WHERE r.deleted_at IS NULL AND r.candidate_id = $1
		ORDER BY r.created_at`

	rows, err := db.Query(query, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate results: %w", err)
	}
	defer rows.Close()

	var results []*models.ResultRow
	for rows.Next() {
		rr := &models.ResultRow{}
		var paperID, moduleID sql.NullString
		var mark sql.NullFloat64
		err := rows.Scan(
			&rr.ID, &rr.CandidateID, &paperID, &moduleID, &rr.AssessmentSeriesID,
			&mark, &rr.Grade, &rr.Comment, &rr.Status, &rr.Sitting, &rr.CreatedAt, &rr.UpdatedAt,
			&rr.CandidateName, &rr.RegNumber, &rr.UnitCode, &rr.UnitName)
		if err != nil {
			continue
		}
		if paperID.Valid {
			rr.PaperID = &paperID.String
		}
		if moduleID.Valid {
			rr.ModuleID = &moduleID.String
		}
		if mark.Valid {
			rr.Mark = &mark.Float64
		}
		results = append(results, rr)
	}
	return results, rows.Err()
}
