package occupations

import (
	"github.com/gofiber/fiber/v2"

	"uvtab-emis/app/config"
	"uvtab-emis/app/routes/auth"
)

// SetupOccupationsRoutes sets up occupation, level, module and paper routes
func SetupOccupationsRoutes(app *fiber.App) {
	occupations := app.Group("/occupations")
	occupations.Use(auth.AuthMiddleware)

	occupationsAPI := app.Group("/api/occupations")
	occupationsAPI.Use(auth.AuthMiddleware)

	levelsAPI := app.Group("/api/levels")
	levelsAPI.Use(auth.AuthMiddleware)

	// Web routes
	occupations.Get("/", func(c *fiber.Ctx) error {
		return c.Render("occupations/index", fiber.Map{
			"Title":       "Occupations - UVTAB EMIS",
			"CurrentPage": "occupations",
		})
	})

	// Occupation API routes
	occupationsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetOccupationsAPI(c, config.GetDB())
	})

	occupationsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateOccupationAPI(c, config.GetDB())
	})

	occupationsAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateOccupationAPI(c, config.GetDB())
	})

	occupationsAPI.Get("/:id/levels", func(c *fiber.Ctx) error {
		return GetOccupationLevelsAPI(c, config.GetDB())
	})

	occupationsAPI.Post("/:id/levels", func(c *fiber.Ctx) error {
		return CreateOccupationLevelAPI(c, config.GetDB())
	})

	occupationsAPI.Post("/levels/:occupationLevelId/modules", func(c *fiber.Ctx) error {
		return CreateModuleAPI(c, config.GetDB())
	})

	occupationsAPI.Get("/levels/:occupationLevelId/modules", func(c *fiber.Ctx) error {
		return GetModulesAPI(c, config.GetDB())
	})

	occupationsAPI.Post("/levels/:occupationLevelId/papers", func(c *fiber.Ctx) error {
		return CreatePaperAPI(c, config.GetDB())
	})

	occupationsAPI.Get("/levels/:occupationLevelId/papers", func(c *fiber.Ctx) error {
		return GetPapersAPI(c, config.GetDB())
	})

	// Level fee schedule API routes
	levelsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetLevelsAPI(c, config.GetDB())
	})

	levelsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateLevelAPI(c, config.GetDB())
	})

	levelsAPI.Put("/:id/fees", func(c *fiber.Ctx) error {
		return UpdateLevelFeesAPI(c, config.GetDB())
	})
}
