package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"uvtab-emis/app/models"
)

func level(formal, single, double, pas, pasModule float64) *models.Level {
	return &models.Level{
		FormalFee:           formal,
		ModularFeeSingle:    single,
		ModularFeeDouble:    double,
		WorkersPasFee:       pas,
		WorkersPasModuleFee: pasModule,
	}
}

func TestGrossFeeFormalSumsEnrolledLevels(t *testing.T) {
	in := BillingInput{
		Category: models.CategoryFormal,
		EnrolledLevels: []*models.Level{
			level(100000, 0, 0, 0, 0),
			level(150000, 0, 0, 0, 0),
		},
	}
	assert.Equal(t, 250000.0, GrossFee(in))
}

func TestGrossFeeFormalNoLevelsIsZero(t *testing.T) {
	in := BillingInput{Category: models.CategoryFormal}
	assert.Equal(t, 0.0, GrossFee(in))
}

func TestGrossFeeModularTiering(t *testing.T) {
	lvl := level(0, 60000, 100000, 0, 0)

	single := BillingInput{Category: models.CategoryModular, DeclaredModuleCount: 1, ModuleLevel: lvl}
	assert.Equal(t, 60000.0, GrossFee(single))

	double := BillingInput{Category: models.CategoryModular, DeclaredModuleCount: 2, ModuleLevel: lvl}
	assert.Equal(t, 100000.0, GrossFee(double))

	// more than two modules still bill at the double rate
	triple := BillingInput{Category: models.CategoryModular, DeclaredModuleCount: 3, ModuleLevel: lvl}
	assert.Equal(t, 100000.0, GrossFee(triple))
}

func TestGrossFeeModularOverrideWins(t *testing.T) {
	override := 42000.0
	in := BillingInput{
		Category:             models.CategoryModular,
		DeclaredModuleCount:  2,
		ModularBillingAmount: &override,
		ModuleLevel:          level(0, 60000, 100000, 0, 0),
	}
	assert.Equal(t, 42000.0, GrossFee(in))
}

func TestGrossFeeModularFallsBackToEnrolledCount(t *testing.T) {
	in := BillingInput{
		Category:            models.CategoryModular,
		EnrolledModuleCount: 2,
		ModuleLevel:         level(0, 60000, 100000, 0, 0),
	}
	assert.Equal(t, 100000.0, GrossFee(in))
}

func TestGrossFeeModularMissingLevelLinkage(t *testing.T) {
	in := BillingInput{Category: models.CategoryModular, DeclaredModuleCount: 2}
	assert.Equal(t, 0.0, GrossFee(in))
}

func TestGrossFeeModularNoModulesIsZero(t *testing.T) {
	in := BillingInput{Category: models.CategoryModular, ModuleLevel: level(0, 60000, 100000, 0, 0)}
	assert.Equal(t, 0.0, GrossFee(in))
}

func TestGrossFeeInformalPerModule(t *testing.T) {
	in := BillingInput{
		Category:            models.CategoryInformal,
		EnrolledModuleCount: 3,
		ModuleLevel:         level(0, 0, 0, 80000, 25000),
	}
	assert.Equal(t, 75000.0, GrossFee(in))
}

func TestGrossFeeInformalFlatWhenNoModuleFee(t *testing.T) {
	in := BillingInput{
		Category:            models.CategoryInformal,
		EnrolledModuleCount: 3,
		ModuleLevel:         level(0, 0, 0, 80000, 0),
	}
	assert.Equal(t, 80000.0, GrossFee(in))
}

func TestBalance(t *testing.T) {
	assert.Equal(t, 100000.0, Balance(100000, false, 0))
	assert.Equal(t, 0.0, Balance(100000, true, 100000))
	assert.Equal(t, 40000.0, Balance(100000, true, 60000))
	// overpayment never goes negative
	assert.Equal(t, 0.0, Balance(100000, true, 150000))
}
