package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"uvtab-emis/app/models"
)

func TestFormatRegNumber(t *testing.T) {
	got := FormatRegNumber("U", 2026, "AUG", "BCP", models.CategoryFormal, 7, "UVB001")
	assert.Equal(t, "U/26/AUG/BCP/F/007-UVB001", got)
}

func TestFormatRegNumberCategoryCodes(t *testing.T) {
	assert.Equal(t, "U/25/MAR/PLB/M/012-KLA010",
		FormatRegNumber("U", 2025, "MAR", "PLB", models.CategoryModular, 12, "KLA010"))
	assert.Equal(t, "K/25/MAR/PLB/W/120-KLA010",
		FormatRegNumber("K", 2025, "MAR", "PLB", models.CategoryInformal, 120, "KLA010"))
}

func TestFormatRegNumberSerialPadding(t *testing.T) {
	assert.Equal(t, "U/26/AUG/BCP/F/001-UVB001",
		FormatRegNumber("U", 2026, "AUG", "BCP", models.CategoryFormal, 1, "UVB001"))
	// serials past three digits widen rather than truncate
	assert.Equal(t, "U/26/AUG/BCP/F/1042-UVB001",
		FormatRegNumber("U", 2026, "AUG", "BCP", models.CategoryFormal, 1042, "UVB001"))
}

func TestFormatRegNumberYearIsTwoDigits(t *testing.T) {
	assert.Equal(t, "U/05/AUG/BCP/F/001-UVB001",
		FormatRegNumber("U", 2005, "AUG", "BCP", models.CategoryFormal, 1, "UVB001"))
}
