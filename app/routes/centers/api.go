package centers

import (
	"database/sql"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"uvtab-emis/app/database"
	"uvtab-emis/app/models"
)

var validate = validator.New()

// GetCentersAPI returns all assessment centers
func GetCentersAPI(c *fiber.Ctx, db *sql.DB) error {
	centers, err := database.GetCenters(db)
	if err != nil {
		log.Printf("Failed to fetch centers: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch centers")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    centers,
	})
}

// GetCenterByIDAPI returns one center.
func GetCenterByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	center, err := database.GetCenterByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Center not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch center")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    center,
	})
}

// CreateCenterAPI creates an assessment center.
func CreateCenterAPI(c *fiber.Ctx, db *sql.DB) error {
	var center models.AssessmentCenter
	if err := c.BodyParser(&center); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(center); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if err := database.CreateCenter(db, &center); err != nil {
		log.Printf("Failed to create center: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create center")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    center,
		"message": "Center created successfully",
	})
}

// UpdateCenterAPI updates a center.
func UpdateCenterAPI(c *fiber.Ctx, db *sql.DB) error {
	var center models.AssessmentCenter
	if err := c.BodyParser(&center); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	center.ID = c.Params("id")
	if err := validate.Struct(center); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if err := database.UpdateCenter(db, &center); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Center not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update center")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Center updated successfully",
	})
}

// GetCenterBalanceAPI returns the aggregate fee position of a center.
func GetCenterBalanceAPI(c *fiber.Ctx, db *sql.DB) error {
	summary, err := database.GetCenterBalanceSummary(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Center not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch center balance")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}
