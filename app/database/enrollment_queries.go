package database

import (
	"database/sql"
	"fmt"

	"uvtab-emis/app/models"
)

// AddCandidateLevel enrolls a candidate at a level.
func AddCandidateLevel(db *sql.DB, cl *models.CandidateLevel) error {
	query := `INSERT INTO candidate_levels (candidate_id, level_id, assessment_series_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (candidate_id, level_id) DO NOTHING
		RETURNING id, created_at`

	err := db.QueryRow(query, cl.CandidateID, cl.LevelID, cl.AssessmentSeriesID).Scan(&cl.ID, &cl.CreatedAt)
	if err == sql.ErrNoRows {
		// already enrolled
		return nil
	}
	return err
}

// AddCandidateModule enrolls a candidate in a module.
func AddCandidateModule(db *sql.DB, cm *models.CandidateModule) error {
	query := `INSERT INTO candidate_modules (candidate_id, module_id, assessment_series_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (candidate_id, module_id) DO NOTHING
		RETURNING id, created_at`

	err := db.QueryRow(query, cm.CandidateID, cm.ModuleID, cm.AssessmentSeriesID).Scan(&cm.ID, &cm.CreatedAt)
	if err == sql.ErrNoRows {
		return nil
	}
	return err
}

// AddCandidatePaper registers a candidate for a paper.
func AddCandidatePaper(db *sql.DB, cp *models.CandidatePaper) error {
	query := `INSERT INTO candidate_papers (candidate_id, paper_id, assessment_series_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (candidate_id, paper_id) DO NOTHING
		RETURNING id, created_at`

	err := db.QueryRow(query, cp.CandidateID, cp.PaperID, cp.AssessmentSeriesID).Scan(&cp.ID, &cp.CreatedAt)
	if err == sql.ErrNoRows {
		return nil
	}
	return err
}

// RemoveCandidateLevel withdraws a level enrollment.
func RemoveCandidateLevel(db *sql.DB, candidateID, levelID string) error {
	_, err := db.Exec(`DELETE FROM candidate_levels WHERE candidate_id = $1 AND level_id = $2`, candidateID, levelID)
	return err
}

// RemoveCandidateModule withdraws a module enrollment.
func RemoveCandidateModule(db *sql.DB, candidateID, moduleID string) error {
	_, err := db.Exec(`DELETE FROM candidate_modules WHERE candidate_id = $1 AND module_id = $2`, candidateID, moduleID)
	return err
}

// RemoveCandidatePaper withdraws a paper registration.
func RemoveCandidatePaper(db *sql.DB, candidateID, paperID string) error {
	_, err := db.Exec(`DELETE FROM candidate_papers WHERE candidate_id = $1 AND paper_id = $2`, candidateID, paperID)
	return err
}

// GetCandidateLevels returns a candidate's level enrollments with the
// level fee schedule attached.
func GetCandidateLevels(db *sql.DB, candidateID string) ([]*models.CandidateLevel, error) {
	query := `SELECT cl.id, cl.candidate_id, cl.level_id, cl.assessment_series_id, cl.created_at,
		l.id, l.name, l.rank, l.formal_fee, l.modular_fee_single, l.modular_fee_double,
		l.workers_pas_fee, l.workers_pas_module_fee
		FROM candidate_levels cl
		JOIN levels l ON cl.level_id = l.id
		WHERE cl.candidate_id = $1 AND l.deleted_at IS NULL
		ORDER BY l.rank`

	rows, err := db.Query(query, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate levels: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.CandidateLevel
	for rows.Next() {
		cl := &models.CandidateLevel{Level: &models.Level{}}
		var seriesID sql.NullString
		err := rows.Scan(
			&cl.ID, &cl.CandidateID, &cl.LevelID, &seriesID, &cl.CreatedAt,
			&cl.Level.ID, &cl.Level.Name, &cl.Level.Rank, &cl.Level.FormalFee,
			&cl.Level.ModularFeeSingle, &cl.Level.ModularFeeDouble,
			&cl.Level.WorkersPasFee, &cl.Level.WorkersPasModuleFee,
		)
		if err != nil {
			continue
		}
		if seriesID.Valid {
			cl.AssessmentSeriesID = &seriesID.String
		}
		enrollments = append(enrollments, cl)
	}
	return enrollments, rows.Err()
}

// GetCandidateModules returns a candidate's module enrollments, oldest first.
func GetCandidateModules(db *sql.DB, candidateID string) ([]*models.CandidateModule, error) {
	query := `SELECT cm.id, cm.candidate_id, cm.module_id, cm.assessment_series_id, cm.created_at,
		m.id, m.occupation_level_id, m.name, m.code
		FROM candidate_modules cm
		JOIN modules m ON cm.module_id = m.id
		WHERE cm.candidate_id = $1
		ORDER BY cm.created_at`

	rows, err := db.Query(query, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate modules: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.CandidateModule
	for rows.Next() {
		cm := &models.CandidateModule{Module: &models.Module{}}
		var seriesID sql.NullString
		err := rows.Scan(
			&cm.ID, &cm.CandidateID, &cm.ModuleID, &seriesID, &cm.CreatedAt,
			&cm.Module.ID, &cm.Module.OccupationLevelID, &cm.Module.Name, &cm.Module.Code,
		)
		if err != nil {
			continue
		}
		if seriesID.Valid {
			cm.AssessmentSeriesID = &seriesID.String
		}
		enrollments = append(enrollments, cm)
	}
	return enrollments, rows.Err()
}

// GetCandidatePapers returns a candidate's paper registrations.
func GetCandidatePapers(db *sql.DB, candidateID string) ([]*models.CandidatePaper, error) {
	query := `SELECT cp.id, cp.candidate_id, cp.paper_id, cp.assessment_series_id, cp.created_at,
		p.id, p.occupation_level_id, p.name, p.code
		FROM candidate_papers cp
		JOIN papers p ON cp.paper_id = p.id
		WHERE cp.candidate_id = $1
		ORDER BY cp.created_at`

	rows, err := db.Query(query, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate papers: %w", err)
	}
	defer rows.Close()

	var registrations []*models.CandidatePaper
	for rows.Next() {
		cp := &models.CandidatePaper{Paper: &models.Paper{}}
		var seriesID sql.NullString
		err := rows.Scan(
			&cp.ID, &cp.CandidateID, &cp.PaperID, &seriesID, &cp.CreatedAt,
			&cp.Paper.ID, &cp.Paper.OccupationLevelID, &cp.Paper.Name, &cp.Paper.Code,
		)
		if err != nil {
			continue
		}
		if seriesID.Valid {
			cp.AssessmentSeriesID = &seriesID.String
		}
		registrations = append(registrations, cp)
	}
	return registrations, rows.Err()
}

// GetModuleLevel resolves the level a module belongs to, including the
// fee schedule. Used by the fee engine for Modular and Worker's PAS billing.
func GetModuleLevel(db *sql.DB, moduleID string) (*models.Level, error) {
	query := `SELECT l.id, l.name, l.rank, l.formal_fee, l.modular_fee_single, l.modular_fee_double,
		l.workers_pas_fee, l.workers_pas_module_fee
		FROM modules m
		JOIN occupation_levels ol ON m.occupation_level_id = ol.id
		JOIN levels l ON ol.level_id = l.id
		WHERE m.id = $1 AND l.deleted_at IS NULL`

	level := &models.Level{}
	err := db.QueryRow(query, moduleID).Scan(
		&level.ID, &level.Name, &level.Rank, &level.FormalFee,
		&level.ModularFeeSingle, &level.ModularFeeDouble,
		&level.WorkersPasFee, &level.WorkersPasModuleFee,
	)
	if err != nil {
		return nil, err
	}
	return level, nil
}

// GetEnrollmentOptions lists the modules or papers selectable for an
// occupation, keyed by option ID. Registration screens build their
// fields from this map instead of injecting dynamically named inputs.
func GetEnrollmentOptions(db *sql.DB, occupationID string) (map[string]models.EnrollmentOption, error) {
	options := make(map[string]models.EnrollmentOption)

	moduleQuery := `SELECT m.id, m.code, m.name, l.id, l.name
		FROM modules m
		JOIN occupation_levels ol ON m.occupation_level_id = ol.id
		JOIN levels l ON ol.level_id = l.id
		WHERE ol.occupation_id = $1 AND ol.structure_type = 'modules' AND l.deleted_at IS NULL
		ORDER BY l.rank, m.code`

	rows, err := db.Query(moduleQuery, occupationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch module options: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		opt := models.EnrollmentOption{Kind: models.StructureModules}
		if err := rows.Scan(&opt.ID, &opt.Code, &opt.Name, &opt.LevelID, &opt.LevelName); err != nil {
			continue
		}
		options[opt.ID] = opt
	}

	paperQuery := `SELECT p.id, p.code, p.name, l.id, l.name
		FROM papers p
		JOIN occupation_levels ol ON p.occupation_level_id = ol.id
		JOIN levels l ON ol.level_id = l.id
		WHERE ol.occupation_id = $1 AND ol.structure_type = 'papers' AND l.deleted_at IS NULL
		ORDER BY l.rank, p.code`

	paperRows, err := db.Query(paperQuery, occupationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch paper options: %w", err)
	}
	defer paperRows.Close()
	for paperRows.Next() {
		opt := models.EnrollmentOption{Kind: models.StructurePapers}
		if err := paperRows.Scan(&opt.ID, &opt.Code, &opt.Name, &opt.LevelID, &opt.LevelName); err != nil {
			continue
		}
		options[opt.ID] = opt
	}

	return options, nil
}
