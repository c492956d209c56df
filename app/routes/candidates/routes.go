package candidates

import (
	"github.com/gofiber/fiber/v2"

	"uvtab-emis/app/config"
	"uvtab-emis/app/routes/auth"
)

// SetupCandidatesRoutes sets up the candidates routes
func SetupCandidatesRoutes(app *fiber.App) {
	candidates := app.Group("/candidates")
	candidates.Use(auth.AuthMiddleware)

	candidatesAPI := app.Group("/api/candidates")
	candidatesAPI.Use(auth.AuthMiddleware)

	// Web routes
	candidates.Get("/", func(c *fiber.Ctx) error {
		return c.Render("candidates/index", fiber.Map{
			"Title":       "Candidates - UVTAB EMIS",
			"CurrentPage": "candidates",
		})
	})

	candidates.Get("/register", func(c *fiber.Ctx) error {
		return c.Render("candidates/register", fiber.Map{
			"Title":       "Register Candidate - UVTAB EMIS",
			"CurrentPage": "candidates",
		})
	})

	// API routes
	candidatesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetCandidatesAPI(c, config.GetDB())
	})

	candidatesAPI.Get("/export", func(c *fiber.Ctx) error {
		return ExportCandidatesAPI(c, config.GetDB())
	})

	candidatesAPI.Post("/", func(c *fiber.Ctx) error {
		return RegisterCandidateAPI(c, config.GetDB())
	})

	candidatesAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetCandidateByIDAPI(c, config.GetDB())
	})

	candidatesAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateCandidateAPI(c, config.GetDB())
	})

	candidatesAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteCandidateAPI(c, config.GetDB())
	})

	candidatesAPI.Post("/:id/regenerate-reg-number", func(c *fiber.Ctx) error {
		return RegenerateRegNumberAPI(c, config.GetDB())
	})

	candidatesAPI.Post("/:id/clear-reg-number", auth.RequireAdmin, func(c *fiber.Ctx) error {
		return ClearRegNumberAPI(c, config.GetDB())
	})

	candidatesAPI.Get("/:id/enrollments", func(c *fiber.Ctx) error {
		return GetEnrollmentsAPI(c, config.GetDB())
	})

	candidatesAPI.Post("/:id/enrollments", func(c *fiber.Ctx) error {
		return AddEnrollmentAPI(c, config.GetDB())
	})

	candidatesAPI.Delete("/:id/enrollments", func(c *fiber.Ctx) error {
		return RemoveEnrollmentAPI(c, config.GetDB())
	})

	candidatesAPI.Get("/:id/results", func(c *fiber.Ctx) error {
		return GetCandidateResultsAPI(c, config.GetDB())
	})

	// Enrollment options for a registration form, keyed by option ID
	candidatesAPI.Get("/options/:occupationId", func(c *fiber.Ctx) error {
		return GetEnrollmentOptionsAPI(c, config.GetDB())
	})
}
