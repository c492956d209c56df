package results

import (
	"github.com/gofiber/fiber/v2"

	"uvtab-emis/app/config"
	"uvtab-emis/app/routes/auth"
)

// SetupResultsRoutes sets up the results routes
func SetupResultsRoutes(app *fiber.App) {
	results := app.Group("/results")
	results.Use(auth.AuthMiddleware)

	resultsAPI := app.Group("/api/results")
	resultsAPI.Use(auth.AuthMiddleware)

	// Web routes
	results.Get("/", func(c *fiber.Ctx) error {
		return c.Render("results/index", fiber.Map{
			"Title":       "Results - UVTAB EMIS",
			"CurrentPage": "results",
		})
	})

	// API routes
	resultsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetResultsAPI(c, config.GetDB())
	})

	resultsAPI.Post("/", func(c *fiber.Ctx) error {
		return CaptureResultAPI(c, config.GetDB())
	})

	resultsAPI.Post("/batch", func(c *fiber.Ctx) error {
		return CaptureResultsBatchAPI(c, config.GetDB())
	})

	resultsAPI.Put("/:id/mark", func(c *fiber.Ctx) error {
		return RemarkResultAPI(c, config.GetDB())
	})
}
