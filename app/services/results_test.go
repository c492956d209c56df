package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"uvtab-emis/app/models"
)

func TestGradeForMark(t *testing.T) {
	cases := []struct {
		mark    float64
		grade   string
		comment string
	}{
		{95, "A", "Distinction"},
		{85, "A", "Distinction"},
		{84.9, "B", "Credit"},
		{75, "B", "Credit"},
		{65, "C", "Credit"},
		{64.9, "D", "Pass"},
		{55, "D", "Pass"},
		{50, "E", "Pass"},
		{49.9, "F", "Fail"},
		{0, "F", "Fail"},
	}
	for _, c := range cases {
		grade, comment := GradeForMark(c.mark)
		assert.Equal(t, c.grade, grade, "mark %.1f", c.mark)
		assert.Equal(t, c.comment, comment, "mark %.1f", c.mark)
	}
}

func TestSittingStatusFor(t *testing.T) {
	assert.Equal(t, models.SittingNormal, SittingStatusFor(0, true))
	assert.Equal(t, models.SittingRetake, SittingStatusFor(1, true))
	assert.Equal(t, models.SittingRetake, SittingStatusFor(3, true))
	assert.Equal(t, models.SittingMissingPaper, SittingStatusFor(0, false))
	assert.Equal(t, models.SittingMissingPaper, SittingStatusFor(2, false))
}
