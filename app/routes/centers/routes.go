package centers

import (
	"github.com/gofiber/fiber/v2"

	"uvtab-emis/app/config"
	"uvtab-emis/app/routes/auth"
)

// SetupCentersRoutes sets up the assessment centers routes
func SetupCentersRoutes(app *fiber.App) {
	centers := app.Group("/centers")
	centers.Use(auth.AuthMiddleware)

	centersAPI := app.Group("/api/centers")
	centersAPI.Use(auth.AuthMiddleware)

	// Web routes
	centers.Get("/", func(c *fiber.Ctx) error {
		return c.Render("centers/index", fiber.Map{
			"Title":       "Assessment Centers - UVTAB EMIS",
			"CurrentPage": "centers",
		})
	})

	// API routes
	centersAPI.Get("/", func(c *fiber.Ctx) error {
		return GetCentersAPI(c, config.GetDB())
	})

	centersAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateCenterAPI(c, config.GetDB())
	})

	centersAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetCenterByIDAPI(c, config.GetDB())
	})

	centersAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateCenterAPI(c, config.GetDB())
	})

	centersAPI.Get("/:id/balance", func(c *fiber.Ctx) error {
		return GetCenterBalanceAPI(c, config.GetDB())
	})
}
