package candidates

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"uvtab-emis/app/database"
	"uvtab-emis/app/models"
	"uvtab-emis/app/reports"
)

// ExportCandidatesAPI streams the filtered candidate list as an XLSX
// workbook with the fixed board column order.
func ExportCandidatesAPI(c *fiber.Ctx, db *sql.DB) error {
	filter := models.CandidateFilter{
		CenterID:     c.Query("center_id"),
		SeriesID:     c.Query("series_id"),
		Category:     models.RegistrationCategory(c.Query("category")),
		OccupationID: c.Query("occupation_id"),
		Search:       c.Query("search"),
	}

	rows, err := database.ListCandidates(db, filter)
	if err != nil {
		log.Printf("Failed to list candidates for export: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch candidates")
	}

	data, err := reports.WriteCandidatesXLSX(rows)
	if err != nil {
		log.Printf("Failed to build candidate export: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build export")
	}

	filename := fmt.Sprintf("candidates_%s.xlsx", time.Now().Format("20060102"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
