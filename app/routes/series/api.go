package series

import (
	"database/sql"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"uvtab-emis/app/database"
	"uvtab-emis/app/models"
)

var validate = validator.New()

// GetSeriesAPI returns all assessment series
func GetSeriesAPI(c *fiber.Ctx, db *sql.DB) error {
	allSeries, err := database.GetAllSeries(db)
	if err != nil {
		log.Printf("Failed to fetch series: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch series")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    allSeries,
	})
}

// GetCurrentSeriesAPI returns the series marked current.
func GetCurrentSeriesAPI(c *fiber.Ctx, db *sql.DB) error {
	current, err := database.GetCurrentSeries(db)
	if err != nil {
		if err == database.ErrNoCurrentSeries {
			return fiber.NewError(fiber.StatusNotFound, "No current series is set")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch current series")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    current,
	})
}

// CreateSeriesAPI creates a series. New series are not current until
// explicitly switched.
func CreateSeriesAPI(c *fiber.Ctx, db *sql.DB) error {
	var s models.AssessmentSeries
	if err := c.BodyParser(&s); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(s); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}
	if !s.EndDate.After(s.StartDate.Time) {
		return fiber.NewError(fiber.StatusBadRequest, "end_date must be after start_date")
	}

	if err := database.CreateSeries(db, &s); err != nil {
		log.Printf("Failed to create series: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create series")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    s,
		"message": "Series created successfully",
	})
}

// UpdateSeriesAPI updates a series' name and window.
func UpdateSeriesAPI(c *fiber.Ctx, db *sql.DB) error {
	var s models.AssessmentSeries
	if err := c.BodyParser(&s); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	s.ID = c.Params("id")

	if err := database.UpdateSeries(db, &s); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Series not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update series")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Series updated successfully",
	})
}

// SetCurrentSeriesAPI makes one series current, clearing any other.
func SetCurrentSeriesAPI(c *fiber.Ctx, db *sql.DB) error {
	seriesID := c.Params("id")

	if err := database.SetCurrentSeries(db, seriesID); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Series not found")
		}
		log.Printf("Failed to set current series: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to set current series")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Current series updated",
	})
}
