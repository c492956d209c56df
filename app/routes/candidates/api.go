package candidates

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"uvtab-emis/app/database"
	"uvtab-emis/app/models"
	"uvtab-emis/app/services"
)

var validate = validator.New()

// RegisterCandidateRequest is the registration form payload.
type RegisterCandidateRequest struct {
	FirstName            string   `json:"first_name" validate:"required"`
	LastName             string   `json:"last_name" validate:"required"`
	Gender               string   `json:"gender" validate:"required,oneof=male female"`
	DateOfBirth          string   `json:"date_of_birth,omitempty"`
	Nationality          string   `json:"nationality" validate:"required,min=1,max=2"`
	Phone                string   `json:"phone,omitempty"`
	District             string   `json:"district,omitempty"`
	RegistrationCategory string   `json:"registration_category" validate:"required,oneof=Formal Modular Informal"`
	OccupationID         string   `json:"occupation_id" validate:"required,uuid"`
	AssessmentCenterID   string   `json:"assessment_center_id" validate:"required,uuid"`
	AssessmentSeriesID   *string  `json:"assessment_series_id,omitempty" validate:"omitempty,uuid"`
	Intake               string   `json:"intake" validate:"required"`
	EntryYear            int      `json:"entry_year" validate:"required,gte=2000,lte=2100"`
	ModularModuleCount   int      `json:"modular_module_count" validate:"gte=0,lte=2"`
	ModularBillingAmount *float64 `json:"modular_billing_amount,omitempty" validate:"omitempty,gte=0"`
}

// GetCandidatesAPI returns candidates with optional filtering
func GetCandidatesAPI(c *fiber.Ctx, db *sql.DB) error {
	filter := models.CandidateFilter{
		CenterID:     c.Query("center_id"),
		SeriesID:     c.Query("series_id"),
		Category:     models.RegistrationCategory(c.Query("category")),
		OccupationID: c.Query("occupation_id"),
		Search:       c.Query("search"),
		Limit:        c.QueryInt("limit", 50),
		Offset:       c.QueryInt("offset", 0),
	}

	rows, err := database.ListCandidates(db, filter)
	if err != nil {
		log.Printf("Failed to list candidates: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch candidates")
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"data":        rows,
		"total_count": len(rows),
		"has_more":    filter.Limit > 0 && len(rows) == filter.Limit,
		"next_offset": filter.Offset + len(rows),
	})
}

// GetCandidateByIDAPI returns one candidate with joined display columns.
func GetCandidateByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	row, err := database.GetCandidateByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Candidate not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch candidate")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    row,
	})
}

// RegisterCandidateAPI registers a candidate and assigns the registration number.
func RegisterCandidateAPI(c *fiber.Ctx, db *sql.DB) error {
	var req RegisterCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}
	if req.RegistrationCategory == string(models.CategoryModular) && req.ModularModuleCount == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Modular candidates must declare 1 or 2 modules")
	}

	candidate := &models.Candidate{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Gender:               models.Gender(req.Gender),
		Nationality:          req.Nationality,
		Phone:                req.Phone,
		District:             req.District,
		RegistrationCategory: models.RegistrationCategory(req.RegistrationCategory),
		OccupationID:         req.OccupationID,
		AssessmentCenterID:   req.AssessmentCenterID,
		AssessmentSeriesID:   req.AssessmentSeriesID,
		Intake:               req.Intake,
		EntryYear:            req.EntryYear,
		ModularModuleCount:   req.ModularModuleCount,
		ModularBillingAmount: req.ModularBillingAmount,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid date_of_birth, expected YYYY-MM-DD")
		}
		candidate.DateOfBirth = &dob
	}

	// Default to the current series when none was selected
	if candidate.AssessmentSeriesID == nil {
		if series, err := database.GetCurrentSeries(db); err == nil {
			candidate.AssessmentSeriesID = &series.ID
		}
	}

	if err := services.RegisterCandidate(db, candidate); err != nil {
		if errors.Is(err, database.ErrDuplicateRegNumber) {
			return fiber.NewError(fiber.StatusConflict, "Registration number already exists")
		}
		log.Printf("Failed to register candidate: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register candidate")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    candidate,
		"message": "Candidate registered successfully",
	})
}

// UpdateCandidateAPI updates a candidate's editable fields.
func UpdateCandidateAPI(c *fiber.Ctx, db *sql.DB) error {
	row, err := database.GetCandidateByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Candidate not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch candidate")
	}

	var req RegisterCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	candidate := row.Candidate
	if req.FirstName != "" {
		candidate.FirstName = req.FirstName
	}
	if req.LastName != "" {
		candidate.LastName = req.LastName
	}
	if req.Gender != "" {
		candidate.Gender = models.Gender(req.Gender)
	}
	if req.Nationality != "" {
		candidate.Nationality = req.Nationality
	}
	candidate.Phone = req.Phone
	candidate.District = req.District
	if req.AssessmentSeriesID != nil {
		candidate.AssessmentSeriesID = req.AssessmentSeriesID
	}
	if req.ModularModuleCount > 0 {
		if req.ModularModuleCount > 2 {
			return fiber.NewError(fiber.StatusBadRequest, "Modular candidates may declare at most 2 modules")
		}
		candidate.ModularModuleCount = req.ModularModuleCount
	}
	candidate.ModularBillingAmount = req.ModularBillingAmount
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid date_of_birth, expected YYYY-MM-DD")
		}
		candidate.DateOfBirth = &dob
	}

	if err := database.UpdateCandidate(db, &candidate); err != nil {
		log.Printf("Failed to update candidate %s: %v", candidate.ID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update candidate")
	}

	// Billing inputs may have changed
	if _, err := services.RecomputeFeesBalance(db, candidate.ID); err != nil {
		log.Printf("Failed to recompute balance for %s: %v", candidate.ID, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Candidate updated successfully",
	})
}

// DeleteCandidateAPI soft deletes a candidate. Cleared candidates are protected.
func DeleteCandidateAPI(c *fiber.Ctx, db *sql.DB) error {
	err := database.SoftDeleteCandidate(db, c.Params("id"))
	if err != nil {
		if err == database.ErrPaymentCleared {
			return fiber.NewError(fiber.StatusConflict, "Cannot delete a candidate with a cleared payment")
		}
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Candidate not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete candidate")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Candidate deleted successfully",
	})
}

// RegenerateRegNumberAPI reissues a candidate's registration number.
func RegenerateRegNumberAPI(c *fiber.Ctx, db *sql.DB) error {
	regNumber, err := services.RegenerateRegNumber(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Candidate not found")
		}
		log.Printf("Failed to regenerate reg number: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to regenerate registration number")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"reg_number": regNumber,
		"message":    "Registration number regenerated",
	})
}

// ClearRegNumberAPI withdraws a candidate's registration number so a
// later regeneration issues a fresh one.
func ClearRegNumberAPI(c *fiber.Ctx, db *sql.DB) error {
	if _, err := database.GetCandidateByID(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Candidate not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch candidate")
	}
	if err := database.ClearRegNumber(db, c.Params("id")); err != nil {
		log.Printf("Failed to clear reg number: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to clear registration number")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Registration number cleared",
	})
}

// GetCandidateResultsAPI lists a candidate's results.
func GetCandidateResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	results, err := database.GetCandidateResults(db, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch results")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    results,
	})
}
