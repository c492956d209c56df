package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"uvtab-emis/app/config"
	"uvtab-emis/app/database"
)

// GetDashboard handles the dashboard page
func GetDashboard(c *fiber.Ctx) error {
	userName, _ := c.Locals("user_name").(string)
	userEmail, _ := c.Locals("user_email").(string)

	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		stats = nil
	}

	currentSeries := ""
	if series, err := database.GetCurrentSeries(config.GetDB()); err == nil {
		currentSeries = series.Name
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":         "Dashboard - UVTAB EMIS",
		"CurrentPage":   "dashboard",
		"UserName":      userName,
		"UserEmail":     userEmail,
		"Stats":         stats,
		"CurrentSeries": currentSeries,
	})
}

// GetDashboardStatsAPI returns dashboard statistics as JSON
func GetDashboardStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch dashboard statistics",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
