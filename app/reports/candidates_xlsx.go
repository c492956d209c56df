package reports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"uvtab-emis/app/models"
)

// CandidateExportColumns is the fixed column order of the XLSX export.
// Downstream board tooling consumes these by position; do not reorder.
var CandidateExportColumns = []string{
	"Reg Number",
	"First Name",
	"Last Name",
	"Gender",
	"Nationality",
	"District",
	"Category",
	"Occupation",
	"Center Code",
	"Center Name",
	"Series",
	"Intake",
	"Entry Year",
	"Module Count",
	"Fees Balance",
	"Payment Cleared",
	"Amount Cleared",
}

// WriteCandidatesXLSX renders candidate rows to a spreadsheet.
func WriteCandidatesXLSX(rows []*models.CandidateRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Candidates"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range CandidateExportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range rows {
		regNumber := ""
		if row.RegNumber != nil {
			regNumber = *row.RegNumber
		}
		cleared := "No"
		if row.PaymentCleared {
			cleared = "Yes"
		}
		values := []interface{}{
			regNumber,
			row.FirstName,
			row.LastName,
			string(row.Gender),
			row.Nationality,
			row.District,
			string(row.RegistrationCategory),
			row.OccupationName,
			row.CenterCode,
			row.CenterName,
			row.SeriesName,
			row.Intake,
			row.EntryYear,
			row.ModularModuleCount,
			row.FeesBalance,
			cleared,
			row.PaymentAmountCleared,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}
