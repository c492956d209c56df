package candidates

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"

	"uvtab-emis/app/database"
	"uvtab-emis/app/models"
	"uvtab-emis/app/services"
)

// EnrollmentRequest selects one enrollment option by ID. Kind tells the
// handler which join table the option belongs to.
type EnrollmentRequest struct {
	Kind     string  `json:"kind" validate:"required,oneof=level modules papers"`
	OptionID string  `json:"option_id" validate:"required,uuid"`
	SeriesID *string `json:"series_id,omitempty" validate:"omitempty,uuid"`
}

// GetEnrollmentOptionsAPI returns the selectable modules/papers for an
// occupation as an explicit option-ID map. Registration forms build
// their fields from this map.
func GetEnrollmentOptionsAPI(c *fiber.Ctx, db *sql.DB) error {
	occupationID := c.Params("occupationId")

	options, err := database.GetEnrollmentOptions(db, occupationID)
	if err != nil {
		log.Printf("Failed to fetch enrollment options: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrollment options")
	}

	levels, err := database.GetOccupationLevels(db, occupationID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch occupation levels")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"options": options,
		"levels":  levels,
	})
}

// GetEnrollmentsAPI lists a candidate's level, module and paper enrollments.
func GetEnrollmentsAPI(c *fiber.Ctx, db *sql.DB) error {
	candidateID := c.Params("id")

	levels, err := database.GetCandidateLevels(db, candidateID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch level enrollments")
	}
	modules, err := database.GetCandidateModules(db, candidateID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch module enrollments")
	}
	papers, err := database.GetCandidatePapers(db, candidateID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch paper registrations")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"levels":  levels,
		"modules": modules,
		"papers":  papers,
	})
}

// AddEnrollmentAPI enrolls a candidate in a level, module or paper and
// recomputes the fee balance.
func AddEnrollmentAPI(c *fiber.Ctx, db *sql.DB) error {
	candidateID := c.Params("id")

	var req EnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	row, err := database.GetCandidateByID(db, candidateID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Candidate not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch candidate")
	}

	seriesID := req.SeriesID
	if seriesID == nil {
		seriesID = row.AssessmentSeriesID
	}

	switch req.Kind {
	case "level":
		err = database.AddCandidateLevel(db, &models.CandidateLevel{
			CandidateID: candidateID, LevelID: req.OptionID, AssessmentSeriesID: seriesID,
		})
	case "modules":
		if row.RegistrationCategory == models.CategoryModular {
			existing, countErr := database.GetCandidateModules(db, candidateID)
			if countErr == nil && len(existing) >= 2 {
				return fiber.NewError(fiber.StatusBadRequest, "Modular candidates may enroll in at most 2 modules")
			}
		}
		err = database.AddCandidateModule(db, &models.CandidateModule{
			CandidateID: candidateID, ModuleID: req.OptionID, AssessmentSeriesID: seriesID,
		})
	case "papers":
		err = database.AddCandidatePaper(db, &models.CandidatePaper{
			CandidateID: candidateID, PaperID: req.OptionID, AssessmentSeriesID: seriesID,
		})
	}
	if err != nil {
		log.Printf("Failed to add enrollment for %s: %v", candidateID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add enrollment")
	}

	balance, err := services.RecomputeFeesBalance(db, candidateID)
	if err != nil {
		log.Printf("Failed to recompute balance for %s: %v", candidateID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"fees_balance": balance,
		"message":      "Enrollment added",
	})
}

// RemoveEnrollmentAPI withdraws an enrollment and recomputes the balance.
func RemoveEnrollmentAPI(c *fiber.Ctx, db *sql.DB) error {
	candidateID := c.Params("id")

	var req EnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	var err error
	switch req.Kind {
	case "level":
		err = database.RemoveCandidateLevel(db, candidateID, req.OptionID)
	case "modules":
		err = database.RemoveCandidateModule(db, candidateID, req.OptionID)
	case "papers":
		err = database.RemoveCandidatePaper(db, candidateID, req.OptionID)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to remove enrollment")
	}

	balance, err := services.RecomputeFeesBalance(db, candidateID)
	if err != nil {
		log.Printf("Failed to recompute balance for %s: %v", candidateID, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"fees_balance": balance,
		"message":      "Enrollment removed",
	})
}
