package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates missing tables and applies schema patches.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createTables(db); err != nil {
		return err
	}
	if err := addModularBillingAmountColumn(db); err != nil {
		return err
	}
	if err := addDistrictColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createTables(db *sql.DB) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'staff',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS assessment_centers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			code TEXT NOT NULL UNIQUE,
			district TEXT,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS occupations (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			code TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS levels (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			rank INT NOT NULL DEFAULT 1,
			formal_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			modular_fee_single NUMERIC(12,2) NOT NULL DEFAULT 0,
			modular_fee_double NUMERIC(12,2) NOT NULL DEFAULT 0,
			workers_pas_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			workers_pas_module_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS occupation_levels (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			occupation_id UUID NOT NULL REFERENCES occupations(id),
			level_id UUID NOT NULL REFERENCES levels(id),
			structure_type VARCHAR(10) NOT NULL CHECK (structure_type IN ('modules', 'papers')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (occupation_id, level_id)
		)`,

		`CREATE TABLE IF NOT EXISTS modules (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			occupation_level_id UUID NOT NULL REFERENCES occupation_levels(id),
			name TEXT NOT NULL,
			code TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS papers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			occupation_level_id UUID NOT NULL REFERENCES occupation_levels(id),
			name TEXT NOT NULL,
			code TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS assessment_series (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			is_current BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS candidates (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			gender VARCHAR(10) NOT NULL,
			date_of_birth DATE,
			nationality VARCHAR(2) NOT NULL DEFAULT 'U',
			phone TEXT,
			registration_category VARCHAR(10) NOT NULL CHECK (registration_category IN ('Formal', 'Modular', 'Informal')),
			occupation_id UUID NOT NULL REFERENCES occupations(id),
			assessment_center_id UUID NOT NULL REFERENCES assessment_centers(id),
			assessment_series_id UUID REFERENCES assessment_series(id),
			intake VARCHAR(10) NOT NULL,
			entry_year INT NOT NULL,
			reg_number TEXT UNIQUE,
			serial INT NOT NULL DEFAULT 0,
			modular_module_count INT NOT NULL DEFAULT 0,
			fees_balance NUMERIC(12,2) NOT NULL DEFAULT 0,
			payment_cleared BOOLEAN NOT NULL DEFAULT false,
			payment_amount_cleared NUMERIC(12,2) NOT NULL DEFAULT 0,
			payment_cleared_by TEXT,
			payment_center_series_ref TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS reg_serials (
			assessment_center_id UUID NOT NULL,
			intake VARCHAR(10) NOT NULL,
			entry_year INT NOT NULL,
			occupation_id UUID NOT NULL,
			registration_category VARCHAR(10) NOT NULL,
			last_serial INT NOT NULL DEFAULT 0,
			PRIMARY KEY (assessment_center_id, intake, entry_year, occupation_id, registration_category)
		)`,

		`CREATE TABLE IF NOT EXISTS candidate_levels (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			candidate_id UUID NOT NULL REFERENCES candidates(id),
			level_id UUID NOT NULL REFERENCES levels(id),
			assessment_series_id UUID REFERENCES assessment_series(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (candidate_id, level_id)
		)`,

		`CREATE TABLE IF NOT EXISTS candidate_modules (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			candidate_id UUID NOT NULL REFERENCES candidates(id),
			module_id UUID NOT NULL REFERENCES modules(id),
			assessment_series_id UUID REFERENCES assessment_series(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (candidate_id, module_id)
		)`,

		`CREATE TABLE IF NOT EXISTS candidate_papers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			candidate_id UUID NOT NULL REFERENCES candidates(id),
			paper_id UUID NOT NULL REFERENCES papers(id),
			assessment_series_id UUID REFERENCES assessment_series(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (candidate_id, paper_id)
		)`,

		`CREATE TABLE IF NOT EXISTS results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			candidate_id UUID NOT NULL REFERENCES candidates(id),
			paper_id UUID REFERENCES papers(id),
			module_id UUID REFERENCES modules(id),
			assessment_series_id UUID NOT NULL REFERENCES assessment_series(id),
			mark NUMERIC(5,2),
			grade VARCHAR(2) NOT NULL DEFAULT '',
			comment TEXT NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'Normal',
			sitting INT NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ,
			CHECK (paper_id IS NOT NULL OR module_id IS NOT NULL)
		)`,

		`CREATE TABLE IF NOT EXISTS center_series_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			assessment_center_id UUID NOT NULL REFERENCES assessment_centers(id),
			assessment_series_id UUID NOT NULL REFERENCES assessment_series(id),
			amount_paid NUMERIC(12,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (assessment_center_id, assessment_series_id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_candidates_center ON candidates (assessment_center_id)`,
		`CREATE INDEX IF NOT EXISTS idx_candidates_series ON candidates (assessment_series_id)`,
		`CREATE INDEX IF NOT EXISTS idx_candidates_occupation ON candidates (occupation_id)`,
		`CREATE INDEX IF NOT EXISTS idx_results_candidate ON results (candidate_id)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}
	return nil
}

func addModularBillingAmountColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'candidates'
				AND column_name = 'modular_billing_amount'
			) THEN
				ALTER TABLE candidates ADD COLUMN modular_billing_amount NUMERIC(12,2);
				RAISE NOTICE 'Added modular_billing_amount column to candidates';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to add modular_billing_amount column: %v", err)
	}
	return err
}

func addDistrictColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'candidates'
				AND column_name = 'district'
			) THEN
				ALTER TABLE candidates ADD COLUMN district TEXT;
				RAISE NOTICE 'Added district column to candidates';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to add district column: %v", err)
	}
	return err
}
