package occupations

import (
	"database/sql"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"uvtab-emis/app/database"
	"uvtab-emis/app/models"
)

var validate = validator.New()

// GetOccupationsAPI returns all occupations
func GetOccupationsAPI(c *fiber.Ctx, db *sql.DB) error {
	occupations, err := database.GetOccupations(db)
	if err != nil {
		log.Printf("Failed to fetch occupations: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch occupations")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    occupations,
	})
}

// CreateOccupationAPI creates an occupation.
func CreateOccupationAPI(c *fiber.Ctx, db *sql.DB) error {
	var occupation models.Occupation
	if err := c.BodyParser(&occupation); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(occupation); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if err := database.CreateOccupation(db, &occupation); err != nil {
		log.Printf("Failed to create occupation: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create occupation")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    occupation,
		"message": "Occupation created successfully",
	})
}

// UpdateOccupationAPI updates an occupation's name and code.
func UpdateOccupationAPI(c *fiber.Ctx, db *sql.DB) error {
	var occupation models.Occupation
	if err := c.BodyParser(&occupation); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	occupation.ID = c.Params("id")
	if err := validate.Struct(occupation); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if err := database.UpdateOccupation(db, &occupation); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Occupation not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update occupation")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Occupation updated successfully",
	})
}

// GetOccupationLevelsAPI returns an occupation's level structure.
func GetOccupationLevelsAPI(c *fiber.Ctx, db *sql.DB) error {
	links, err := database.GetOccupationLevels(db, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch occupation levels")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    links,
	})
}

// CreateOccupationLevelAPI links an occupation to a level.
func CreateOccupationLevelAPI(c *fiber.Ctx, db *sql.DB) error {
	var link models.OccupationLevel
	if err := c.BodyParser(&link); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	link.OccupationID = c.Params("id")
	if err := validate.Struct(link); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if err := database.CreateOccupationLevel(db, &link); err != nil {
		log.Printf("Failed to create occupation level: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create occupation level")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    link,
		"message": "Occupation level created successfully",
	})
}

// GetLevelsAPI returns all levels with their fee schedules.
func GetLevelsAPI(c *fiber.Ctx, db *sql.DB) error {
	levels, err := database.GetLevels(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch levels")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    levels,
	})
}

// CreateLevelAPI creates a level with its fee schedule.
func CreateLevelAPI(c *fiber.Ctx, db *sql.DB) error {
	var level models.Level
	if err := c.BodyParser(&level); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(level); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if err := database.CreateLevel(db, &level); err != nil {
		log.Printf("Failed to create level: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create level")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    level,
		"message": "Level created successfully",
	})
}

// UpdateLevelFeesAPI updates a level's fee schedule.
func UpdateLevelFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	var level models.Level
	if err := c.BodyParser(&level); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	level.ID = c.Params("id")

	if err := database.UpdateLevelFees(db, &level); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Level not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update level fees")
	}

	updated, err := database.GetLevelByID(db, level.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch updated level")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    updated,
		"message": "Level fees updated successfully",
	})
}

// CreateModuleAPI adds a module under an occupation level.
func CreateModuleAPI(c *fiber.Ctx, db *sql.DB) error {
	var module models.Module
	if err := c.BodyParser(&module); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	module.OccupationLevelID = c.Params("occupationLevelId")
	if err := validate.Struct(module); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if err := database.CreateModule(db, &module); err != nil {
		log.Printf("Failed to create module: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create module")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    module,
		"message": "Module created successfully",
	})
}

// GetModulesAPI lists modules under an occupation level.
func GetModulesAPI(c *fiber.Ctx, db *sql.DB) error {
	modules, err := database.GetModulesForOccupationLevel(db, c.Params("occupationLevelId"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch modules")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    modules,
	})
}

// CreatePaperAPI adds a paper under an occupation level.
func CreatePaperAPI(c *fiber.Ctx, db *sql.DB) error {
	var paper models.Paper
	if err := c.BodyParser(&paper); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	paper.OccupationLevelID = c.Params("occupationLevelId")
	if err := validate.Struct(paper); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if err := database.CreatePaper(db, &paper); err != nil {
		log.Printf("Failed to create paper: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create paper")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    paper,
		"message": "Paper created successfully",
	})
}

// GetPapersAPI lists papers under an occupation level.
func GetPapersAPI(c *fiber.Ctx, db *sql.DB) error {
	papers, err := database.GetPapersForOccupationLevel(db, c.Params("occupationLevelId"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch papers")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    papers,
	})
}
