package series

import (
	"github.com/gofiber/fiber/v2"

	"uvtab-emis/app/config"
	"uvtab-emis/app/routes/auth"
)

// SetupSeriesRoutes sets up the assessment series routes
func SetupSeriesRoutes(app *fiber.App) {
	series := app.Group("/series")
	series.Use(auth.AuthMiddleware)

	seriesAPI := app.Group("/api/series")
	seriesAPI.Use(auth.AuthMiddleware)

	// Web routes
	series.Get("/", func(c *fiber.Ctx) error {
		return c.Render("series/index", fiber.Map{
			"Title":       "Assessment Series - UVTAB EMIS",
			"CurrentPage": "series",
		})
	})

	// API routes
	seriesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetSeriesAPI(c, config.GetDB())
	})

	seriesAPI.Get("/current", func(c *fiber.Ctx) error {
		return GetCurrentSeriesAPI(c, config.GetDB())
	})

	seriesAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateSeriesAPI(c, config.GetDB())
	})

	seriesAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateSeriesAPI(c, config.GetDB())
	})

	// Switching the current series is an admin action
	seriesAPI.Post("/:id/set-current", auth.RequireAdmin, func(c *fiber.Ctx) error {
		return SetCurrentSeriesAPI(c, config.GetDB())
	})
}
