package database

import (
	"database/sql"
	"fmt"

	"uvtab-emis/app/models"
)

// GetOccupations returns all occupations ordered by code.
func GetOccupations(db *sql.DB) ([]*models.Occupation, error) {
	rows, err := db.Query(`SELECT id, name, code, created_at, updated_at
		FROM occupations WHERE deleted_at IS NULL ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch occupations: %w", err)
	}
	defer rows.Close()

	var occupations []*models.Occupation
	for rows.Next() {
		o := &models.Occupation{}
		if err := rows.Scan(&o.ID, &o.Name, &o.Code, &o.CreatedAt, &o.UpdatedAt); err != nil {
			continue
		}
		occupations = append(occupations, o)
	}
	return occupations, rows.Err()
}

// CreateOccupation inserts an occupation.
func CreateOccupation(db *sql.DB, o *models.Occupation) error {
	return db.QueryRow(`INSERT INTO occupations (name, code) VALUES ($1, $2)
		RETURNING id, created_at, updated_at`, o.Name, o.Code).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

// UpdateOccupation updates an occupation's name and code.
func UpdateOccupation(db *sql.DB, o *models.Occupation) error {
	result, err := db.Exec(`UPDATE occupations SET name = $1, code = $2, updated_at = NOW()
		WHERE id = $3 AND deleted_at IS NULL`, o.Name, o.Code, o.ID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// GetLevels returns all levels ordered by rank.
func GetLevels(db *sql.DB) ([]*models.Level, error) {
	rows, err := db.Query(`SELECT id, name, rank, formal_fee, modular_fee_single, modular_fee_double,
		workers_pas_fee, workers_pas_module_fee, created_at, updated_at
		FROM levels WHERE deleted_at IS NULL ORDER BY rank`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch levels: %w", err)
	}
	defer rows.Close()

	var levels []*models.Level
	for rows.Next() {
		l := &models.Level{}
		err := rows.Scan(&l.ID, &l.Name, &l.Rank, &l.FormalFee, &l.ModularFeeSingle,
			&l.ModularFeeDouble, &l.WorkersPasFee, &l.WorkersPasModuleFee,
			&l.CreatedAt, &l.UpdatedAt)
		if err != nil {
			continue
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}

// GetLevelByID fetches one level with its fee schedule.
func GetLevelByID(db *sql.DB, id string) (*models.Level, error) {
	l := &models.Level{}
	err := db.QueryRow(`SELECT id, name, rank, formal_fee, modular_fee_single, modular_fee_double,
		workers_pas_fee, workers_pas_module_fee, created_at, updated_at
		FROM levels WHERE id = $1 AND deleted_at IS NULL`, id).Scan(
		&l.ID, &l.Name, &l.Rank, &l.FormalFee, &l.ModularFeeSingle,
		&l.ModularFeeDouble, &l.WorkersPasFee, &l.WorkersPasModuleFee,
		&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// CreateLevel inserts a level with its fee schedule.
func CreateLevel(db *sql.DB, l *models.Level) error {
	return db.QueryRow(`INSERT INTO levels (name, rank, formal_fee, modular_fee_single,
		modular_fee_double, workers_pas_fee, workers_pas_module_fee)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		l.Name, l.Rank, l.FormalFee, l.ModularFeeSingle, l.ModularFeeDouble,
		l.WorkersPasFee, l.WorkersPasModuleFee).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

// UpdateLevelFees updates a level's fee schedule. The level fee columns
// are the single source of truth for billing; there are no per-center
// fee overrides.
func UpdateLevelFees(db *sql.DB, l *models.Level) error {
	result, err := db.Exec(`UPDATE levels SET formal_fee = $1, modular_fee_single = $2,
		modular_fee_double = $3, workers_pas_fee = $4, workers_pas_module_fee = $5, updated_at = NOW()
		WHERE id = $6 AND deleted_at IS NULL`,
		l.FormalFee, l.ModularFeeSingle, l.ModularFeeDouble,
		l.WorkersPasFee, l.WorkersPasModuleFee, l.ID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// GetOccupationLevels returns the level structure of an occupation.
func GetOccupationLevels(db *sql.DB, occupationID string) ([]*models.OccupationLevel, error) {
	query := `SELECT ol.id, ol.occupation_id, ol.level_id, ol.structure_type, ol.created_at,
		l.id, l.name, l.rank, l.formal_fee, l.modular_fee_single, l.modular_fee_double,
		l.workers_pas_fee, l.workers_pas_module_fee
		FROM occupation_levels ol
		JOIN levels l ON ol.level_id = l.id
		WHERE ol.occupation_id = $1 AND l.deleted_at IS NULL
		ORDER BY l.rank`

	rows, err := db.Query(query, occupationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch occupation levels: %w", err)
	}
	defer rows.Close()

	var links []*models.OccupationLevel
	for rows.Next() {
		ol := &models.OccupationLevel{Level: &models.Level{}}
		err := rows.Scan(&ol.ID, &ol.OccupationID, &ol.LevelID, &ol.StructureType, &ol.CreatedAt,
			&ol.Level.ID, &ol.Level.Name, &ol.Level.Rank, &ol.Level.FormalFee,
			&ol.Level.ModularFeeSingle, &ol.Level.ModularFeeDouble,
			&ol.Level.WorkersPasFee, &ol.Level.WorkersPasModuleFee)
		if err != nil {
			continue
		}
		links = append(links, ol)
	}
	return links, rows.Err()
}

// CreateOccupationLevel links an occupation to a level with a structure type.
func CreateOccupationLevel(db *sql.DB, ol *models.OccupationLevel) error {
	return db.QueryRow(`INSERT INTO occupation_levels (occupation_id, level_id, structure_type)
		VALUES ($1, $2, $3) RETURNING id, created_at`,
		ol.OccupationID, ol.LevelID, string(ol.StructureType)).Scan(&ol.ID, &ol.CreatedAt)
}

// CreateModule inserts a module under an occupation level.
func CreateModule(db *sql.DB, m *models.Module) error {
	return db.QueryRow(`INSERT INTO modules (occupation_level_id, name, code)
		VALUES ($1, $2, $3) RETURNING id, created_at`,
		m.OccupationLevelID, m.Name, m.Code).Scan(&m.ID, &m.CreatedAt)
}

// CreatePaper inserts a paper under an occupation level.
func CreatePaper(db *sql.DB, p *models.Paper) error {
	return db.QueryRow(`INSERT INTO papers (occupation_level_id, name, code)
		VALUES ($1, $2, $3) RETURNING id, created_at`,
		p.OccupationLevelID, p.Name, p.Code).Scan(&p.ID, &p.CreatedAt)
}

// GetModulesForOccupationLevel lists modules under one occupation level.
func GetModulesForOccupationLevel(db *sql.DB, occupationLevelID string) ([]*models.Module, error) {
	rows, err := db.Query(`SELECT id, occupation_level_id, name, code, created_at
		FROM modules WHERE occupation_level_id = $1 ORDER BY code`, occupationLevelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modules []*models.Module
	for rows.Next() {
		m := &models.Module{}
		if err := rows.Scan(&m.ID, &m.OccupationLevelID, &m.Name, &m.Code, &m.CreatedAt); err != nil {
			continue
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

// GetPapersForOccupationLevel lists papers under one occupation level.
func GetPapersForOccupationLevel(db *sql.DB, occupationLevelID string) ([]*models.Paper, error) {
	rows, err := db.Query(`SELECT id, occupation_level_id, name, code, created_at
		FROM papers WHERE occupation_level_id = $1 ORDER BY code`, occupationLevelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var papers []*models.Paper
	for rows.Next() {
		p := &models.Paper{}
		if err := rows.Scan(&p.ID, &p.OccupationLevelID, &p.Name, &p.Code, &p.CreatedAt); err != nil {
			continue
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}
