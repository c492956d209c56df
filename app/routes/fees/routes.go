package fees

import (
	"github.com/gofiber/fiber/v2"

	"uvtab-emis/app/config"
	"uvtab-emis/app/routes/auth"
)

// SetupFeesRoutes sets up the fees and invoicing routes
func SetupFeesRoutes(app *fiber.App) {
	fees := app.Group("/fees")
	fees.Use(auth.AuthMiddleware)

	feesAPI := app.Group("/api/fees")
	feesAPI.Use(auth.AuthMiddleware)

	// Web routes
	fees.Get("/", func(c *fiber.Ctx) error {
		return c.Render("fees/index", fiber.Map{
			"Title":       "Fees & Billing - UVTAB EMIS",
			"CurrentPage": "fees",
		})
	})

	fees.Get("/invoices", func(c *fiber.Ctx) error {
		return c.Render("fees/invoices", fiber.Map{
			"Title":       "Center Invoices - UVTAB EMIS",
			"CurrentPage": "fees",
		})
	})

	// API routes
	feesAPI.Get("/stats", func(c *fiber.Ctx) error {
		return GetFeeStatsAPI(c, config.GetDB())
	})

	feesAPI.Post("/candidates/:id/recompute", func(c *fiber.Ctx) error {
		return RecomputeBalanceAPI(c, config.GetDB())
	})

	feesAPI.Post("/candidates/:id/clear", func(c *fiber.Ctx) error {
		return ClearPaymentAPI(c, config.GetDB())
	})

	feesAPI.Post("/centers/:id/recompute", func(c *fiber.Ctx) error {
		return RecomputeCenterBalancesAPI(c, config.GetDB())
	})

	feesAPI.Get("/invoice", func(c *fiber.Ctx) error {
		return GetInvoiceAPI(c, config.GetDB())
	})

	feesAPI.Get("/invoice/pdf", func(c *fiber.Ctx) error {
		return DownloadInvoicePDFAPI(c, config.GetDB())
	})

	feesAPI.Get("/audit", auth.RequireAdmin, func(c *fiber.Ctx) error {
		return AuditLedgerAPI(c, config.GetDB())
	})
}
