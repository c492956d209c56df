package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"uvtab-emis/app/config"
	"uvtab-emis/app/routes/auth"
)

// SetupDashboardRoutes sets up the dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	dash := app.Group("/dashboard")
	dash.Use(auth.AuthMiddleware)

	dashAPI := app.Group("/api/dashboard")
	dashAPI.Use(auth.AuthMiddleware)

	dash.Get("/", GetDashboard)

	dashAPI.Get("/stats", func(c *fiber.Ctx) error {
		return GetDashboardStatsAPI(c, config.GetDB())
	})
}
