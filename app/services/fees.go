package services

import (
	"database/sql"
	"fmt"
	"log"

	"uvtab-emis/app/database"
	"uvtab-emis/app/models"
)

// BillingInput carries everything the fee rules need, loaded up front so
// the computation itself stays free of database access.
type BillingInput struct {
	Category             models.RegistrationCategory
	DeclaredModuleCount  int
	EnrolledModuleCount  int
	ModularBillingAmount *float64
	EnrolledLevels       []*models.Level
	// ModuleLevel is the level of the first enrolled module; nil when the
	// candidate has no module enrollments or the linkage is broken.
	ModuleLevel *models.Level
}

// moduleCount returns the effective module count: the declared count,
// falling back to the enrolled count when nothing was declared.
func (in BillingInput) moduleCount() int {
	if in.DeclaredModuleCount > 0 {
		return in.DeclaredModuleCount
	}
	return in.EnrolledModuleCount
}

// GrossFee computes the candidate's total assessment fee from the level
// fee schedule.
//
// Formal candidates pay the formal fee of every enrolled level. Modular
// candidates are tiered by module count, one module at the single rate
// and two or more at the double rate; a stored billing amount takes
// precedence over recomputation. Informal (Worker's PAS) candidates pay
// per module when the level configures a per-module fee, otherwise the
// flat Worker's PAS fee.
func GrossFee(in BillingInput) float64 {
	switch in.Category {
	case models.CategoryFormal:
		var total float64
		for _, level := range in.EnrolledLevels {
			total += level.FormalFee
		}
		return total

	case models.CategoryModular:
		if in.ModularBillingAmount != nil {
			return *in.ModularBillingAmount
		}
		count := in.moduleCount()
		if count == 0 {
			return 0
		}
		if in.ModuleLevel == nil {
			log.Printf("Billing anomaly: modular candidate with %d module(s) has no level linkage; fee set to 0", count)
			return 0
		}
		if count == 1 {
			return in.ModuleLevel.ModularFeeSingle
		}
		// counts above 2 still bill at the double-module rate
		return in.ModuleLevel.ModularFeeDouble

	case models.CategoryInformal:
		count := in.moduleCount()
		if count == 0 {
			return 0
		}
		if in.ModuleLevel == nil {
			log.Printf("Billing anomaly: informal candidate with %d module(s) has no level linkage; fee set to 0", count)
			return 0
		}
		if in.ModuleLevel.WorkersPasModuleFee > 0 {
			return in.ModuleLevel.WorkersPasModuleFee * float64(count)
		}
		return in.ModuleLevel.WorkersPasFee
	}
	return 0
}

// Balance derives the outstanding balance from the gross fee and any
// cleared payment. Never negative.
func Balance(gross float64, paymentCleared bool, amountCleared float64) float64 {
	if !paymentCleared {
		return gross
	}
	balance := gross - amountCleared
	if balance < 0 {
		return 0
	}
	return balance
}

// LoadBillingInput gathers a candidate's billing inputs from the database.
func LoadBillingInput(db *sql.DB, candidate *models.Candidate) (BillingInput, error) {
	in := BillingInput{
		Category:             candidate.RegistrationCategory,
		DeclaredModuleCount:  candidate.ModularModuleCount,
		ModularBillingAmount: candidate.ModularBillingAmount,
	}

	levels, err := database.GetCandidateLevels(db, candidate.ID)
	if err != nil {
		return in, fmt.Errorf("failed to load level enrollments: %w", err)
	}
	for _, cl := range levels {
		in.EnrolledLevels = append(in.EnrolledLevels, cl.Level)
	}

	modules, err := database.GetCandidateModules(db, candidate.ID)
	if err != nil {
		return in, fmt.Errorf("failed to load module enrollments: %w", err)
	}
	in.EnrolledModuleCount = len(modules)
	if len(modules) > 0 {
		level, err := database.GetModuleLevel(db, modules[0].ModuleID)
		if err != nil && err != sql.ErrNoRows {
			return in, fmt.Errorf("failed to resolve module level: %w", err)
		}
		in.ModuleLevel = level
	}

	return in, nil
}

// RecomputeFeesBalance recomputes and persists a candidate's balance,
// returning the new value.
func RecomputeFeesBalance(db *sql.DB, candidateID string) (float64, error) {
	row, err := database.GetCandidateByID(db, candidateID)
	if err != nil {
		return 0, err
	}

	in, err := LoadBillingInput(db, &row.Candidate)
	if err != nil {
		return 0, err
	}

	balance := Balance(GrossFee(in), row.PaymentCleared, row.PaymentAmountCleared)
	if err := database.UpdateFeesBalance(db, candidateID, balance); err != nil {
		return 0, fmt.Errorf("failed to persist balance: %w", err)
	}
	return balance, nil
}

// RecomputeCenterBalances recomputes every live candidate balance for a
// center (all centers when centerID is empty), in chunks. Returns the
// number of candidates whose stored balance changed.
func RecomputeCenterBalances(db *sql.DB, centerID string, apply bool) (checked, drifted int, err error) {
	const chunkSize = 200
	offset := 0
	for {
		filter := models.CandidateFilter{CenterID: centerID, Limit: chunkSize, Offset: offset}
		rows, err := database.ListCandidates(db, filter)
		if err != nil {
			return checked, drifted, err
		}
		if len(rows) == 0 {
			return checked, drifted, nil
		}
		for _, row := range rows {
			checked++
			in, err := LoadBillingInput(db, &row.Candidate)
			if err != nil {
				log.Printf("Skipping candidate %s: %v", row.ID, err)
				continue
			}
			want := Balance(GrossFee(in), row.PaymentCleared, row.PaymentAmountCleared)
			if want == row.FeesBalance {
				continue
			}
			drifted++
			log.Printf("Balance drift for %s: stored %.2f, computed %.2f", displayRef(row), row.FeesBalance, want)
			if apply {
				if err := database.UpdateFeesBalance(db, row.ID, want); err != nil {
					return checked, drifted, err
				}
			}
		}
		offset += chunkSize
	}
}

func displayRef(row *models.CandidateRow) string {
	if row.RegNumber != nil {
		return *row.RegNumber
	}
	return row.ID
}
