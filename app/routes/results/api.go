package results

import (
	"database/sql"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"uvtab-emis/app/database"
	"uvtab-emis/app/models"
	"uvtab-emis/app/services"
)

var validate = validator.New()

// CaptureResultRequest is one mark entry. A nil mark records a missed sitting.
type CaptureResultRequest struct {
	CandidateID string   `json:"candidate_id" validate:"required,uuid"`
	PaperID     *string  `json:"paper_id,omitempty" validate:"omitempty,uuid"`
	ModuleID    *string  `json:"module_id,omitempty" validate:"omitempty,uuid"`
	SeriesID    string   `json:"series_id" validate:"required,uuid"`
	Mark        *float64 `json:"mark,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// GetResultsAPI lists results for a series, optionally filtered by center.
func GetResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	seriesID := c.Query("series_id")
	if seriesID == "" {
		current, err := database.GetCurrentSeries(db)
		if err != nil {
			if err == database.ErrNoCurrentSeries {
				return fiber.NewError(fiber.StatusBadRequest, "series_id is required when no current series is set")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve current series")
		}
		seriesID = current.ID
	}

	rows, err := database.ListResults(db, seriesID, c.Query("center_id"))
	if err != nil {
		log.Printf("Failed to fetch results: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch results")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    rows,
	})
}

// CaptureResultAPI stores one result with derived grade and sitting status.
func CaptureResultAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CaptureResultRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}
	if req.PaperID == nil && req.ModuleID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Either paper_id or module_id is required")
	}

	result := &models.Result{
		CandidateID:        req.CandidateID,
		PaperID:            req.PaperID,
		ModuleID:           req.ModuleID,
		AssessmentSeriesID: req.SeriesID,
		Mark:               req.Mark,
	}

	if err := services.CaptureResult(db, result); err != nil {
		log.Printf("Failed to capture result: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to capture result")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    result,
		"message": "Result captured successfully",
	})
}

// CaptureResultsBatchAPI stores a batch of results, reporting per-entry
// failures without aborting the batch.
func CaptureResultsBatchAPI(c *fiber.Ctx, db *sql.DB) error {
	var reqs []CaptureResultRequest
	if err := c.BodyParser(&reqs); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	captured := 0
	var failures []fiber.Map
	for i, req := range reqs {
		if err := validate.Struct(req); err != nil {
			failures = append(failures, fiber.Map{"index": i, "error": err.Error()})
			continue
		}
		if req.PaperID == nil && req.ModuleID == nil {
			failures = append(failures, fiber.Map{"index": i, "error": "paper_id or module_id required"})
			continue
		}
		result := &models.Result{
			CandidateID:        req.CandidateID,
			PaperID:            req.PaperID,
			ModuleID:           req.ModuleID,
			AssessmentSeriesID: req.SeriesID,
			Mark:               req.Mark,
		}
		if err := services.CaptureResult(db, result); err != nil {
			log.Printf("Failed to capture batch result %d: %v", i, err)
			failures = append(failures, fiber.Map{"index": i, "error": "capture failed"})
			continue
		}
		captured++
	}

	return c.JSON(fiber.Map{
		"success":  len(failures) == 0,
		"captured": captured,
		"failures": failures,
	})
}

// RemarkResultAPI updates the mark on an existing result.
func RemarkResultAPI(c *fiber.Ctx, db *sql.DB) error {
	type RemarkRequest struct {
		Mark *float64 `json:"mark,omitempty" validate:"omitempty,gte=0,lte=100"`
	}

	var req RemarkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if err := services.RemarkResult(db, c.Params("id"), req.Mark); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Result not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update result")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Result updated successfully",
	})
}
