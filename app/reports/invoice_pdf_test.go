package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uvtab-emis/app/models"
)

func TestRenderInvoicePDF(t *testing.T) {
	inv := &models.Invoice{
		CenterName:  "Kampala VTI",
		CenterCode:  "UVB001",
		SeriesName:  "Aug 2026",
		AmountPaid:  200000,
		Outstanding: 300000,
		TotalBill:   500000,
		Breakdown: []models.CategoryBreakdown{
			{Category: models.CategoryFormal, Candidates: 3, Amount: 300000},
			{Category: models.CategoryInformal, Candidates: 2, Amount: 200000},
		},
		Lines: []models.InvoiceLine{
			{RegNumber: "U/26/AUG/BCP/F/001-UVB001", CandidateName: "Amina Nakato",
				Category: models.CategoryFormal, FeesBalance: 100000},
			{RegNumber: "U/26/AUG/BCP/W/002-UVB001", CandidateName: "Joseph Okello",
				Category: models.CategoryInformal, FeesBalance: 80000, PaymentCleared: true, AmountCleared: 20000},
		},
	}

	data, err := RenderInvoicePDF(inv, "Uganda Vocational and Technical Assessment Board", "UGX")
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// PDF magic bytes
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderInvoicePDFEmptyInvoice(t *testing.T) {
	inv := &models.Invoice{CenterName: "Kampala VTI", CenterCode: "UVB001", SeriesName: "Aug 2026"}
	data, err := RenderInvoicePDF(inv, "UVTAB", "UGX")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestCategoryTitle(t *testing.T) {
	assert.Equal(t, "Worker's PAS", categoryTitle(models.CategoryInformal))
	assert.Equal(t, "Formal", categoryTitle(models.CategoryFormal))
	assert.Equal(t, "Modular", categoryTitle(models.CategoryModular))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1,500,000", formatAmount(1500000))
	assert.Equal(t, "0", formatAmount(0))
	assert.Equal(t, "999", formatAmount(999))
	assert.Equal(t, "45,000", formatAmount(45000))
}
