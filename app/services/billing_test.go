package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uvtab-emis/app/models"
)

func TestComputeInvoiceNothingPaid(t *testing.T) {
	lines := []models.InvoiceLine{
		{Category: models.CategoryFormal, FeesBalance: 45000},
		{Category: models.CategoryFormal, FeesBalance: 45000},
		{Category: models.CategoryFormal, FeesBalance: 45000},
	}

	total, outstanding, breakdown := ComputeInvoice(lines, 0)
	assert.Equal(t, 135000.0, total)
	assert.Equal(t, 135000.0, outstanding)
	require.Len(t, breakdown, 1)
	assert.Equal(t, models.CategoryFormal, breakdown[0].Category)
	assert.Equal(t, 3, breakdown[0].Candidates)
	assert.Equal(t, 135000.0, breakdown[0].Amount)
}

func TestComputeInvoiceAllCleared(t *testing.T) {
	lines := []models.InvoiceLine{
		{Category: models.CategoryModular, FeesBalance: 0, PaymentCleared: true, AmountCleared: 60000},
		{Category: models.CategoryModular, FeesBalance: 0, PaymentCleared: true, AmountCleared: 100000},
	}

	total, outstanding, breakdown := ComputeInvoice(lines, 160000)
	assert.Equal(t, 160000.0, total)
	assert.Equal(t, 0.0, outstanding)
	require.Len(t, breakdown, 1)
	assert.Equal(t, 160000.0, breakdown[0].Amount)
}

func TestComputeInvoiceMixed(t *testing.T) {
	lines := []models.InvoiceLine{
		{Category: models.CategoryInformal, FeesBalance: 80000},
		{Category: models.CategoryFormal, FeesBalance: 0, PaymentCleared: true, AmountCleared: 100000},
		{Category: models.CategoryModular, FeesBalance: 60000},
	}

	total, outstanding, breakdown := ComputeInvoice(lines, 100000)
	assert.Equal(t, 240000.0, total)
	assert.Equal(t, 140000.0, outstanding)

	// breakdown keeps a fixed category order
	require.Len(t, breakdown, 3)
	assert.Equal(t, models.CategoryFormal, breakdown[0].Category)
	assert.Equal(t, models.CategoryModular, breakdown[1].Category)
	assert.Equal(t, models.CategoryInformal, breakdown[2].Category)
}

func TestComputeInvoiceEmpty(t *testing.T) {
	total, outstanding, breakdown := ComputeInvoice(nil, 0)
	assert.Equal(t, 0.0, total)
	assert.Equal(t, 0.0, outstanding)
	assert.Empty(t, breakdown)
}

func TestInvoiceAmountDue(t *testing.T) {
	inv := &models.Invoice{TotalBill: 500000, AmountPaid: 200000}
	assert.Equal(t, 300000.0, inv.AmountDue())
}
