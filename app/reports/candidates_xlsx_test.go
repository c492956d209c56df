package reports

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"uvtab-emis/app/models"
)

func TestWriteCandidatesXLSXHeaderOrder(t *testing.T) {
	data, err := WriteCandidatesXLSX(nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Candidates")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, CandidateExportColumns, rows[0])
}

func TestWriteCandidatesXLSXRows(t *testing.T) {
	reg := "U/26/AUG/BCP/F/001-UVB001"
	rows := []*models.CandidateRow{
		{
			Candidate: models.Candidate{
				FirstName:            "Amina",
				LastName:             "Nakato",
				Gender:               models.Female,
				Nationality:          "U",
				District:             "Wakiso",
				RegistrationCategory: models.CategoryFormal,
				Intake:               "AUG",
				EntryYear:            2026,
				RegNumber:            &reg,
				FeesBalance:          150000,
			},
			OccupationName: "Building Construction",
			CenterCode:     "UVB001",
			CenterName:     "Kampala VTI",
			SeriesName:     "Aug 2026",
		},
	}

	data, err := WriteCandidatesXLSX(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Candidates")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, reg, got[1][0])
	assert.Equal(t, "Amina", got[1][1])
	assert.Equal(t, "Formal", got[1][6])
	assert.Equal(t, "UVB001", got[1][8])
	assert.Equal(t, "No", got[1][15])
}
