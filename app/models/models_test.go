package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationCategoryCode(t *testing.T) {
	assert.Equal(t, "F", CategoryFormal.Code())
	assert.Equal(t, "M", CategoryModular.Code())
	assert.Equal(t, "W", CategoryInformal.Code())
	assert.Equal(t, "X", RegistrationCategory("bogus").Code())
}

func TestRegistrationCategoryValid(t *testing.T) {
	assert.True(t, CategoryFormal.Valid())
	assert.True(t, CategoryModular.Valid())
	assert.True(t, CategoryInformal.Valid())
	assert.False(t, RegistrationCategory("").Valid())
	assert.False(t, RegistrationCategory("formal").Valid())
}

func TestCustomDateUnmarshal(t *testing.T) {
	var cd CustomDate
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-15"`), &cd))
	assert.Equal(t, 2026, cd.Year())
	assert.Equal(t, time.August, cd.Month())
	assert.Equal(t, 15, cd.Day())

	assert.Error(t, json.Unmarshal([]byte(`"15/08/2026"`), &cd))
}

func TestSeriesRunningByDate(t *testing.T) {
	now := time.Now()
	running := &AssessmentSeries{
		StartDate: CustomDate{Time: now.AddDate(0, 0, -1)},
		EndDate:   CustomDate{Time: now.AddDate(0, 0, 1)},
	}
	assert.True(t, running.RunningByDate())

	past := &AssessmentSeries{
		StartDate: CustomDate{Time: now.AddDate(0, -2, 0)},
		EndDate:   CustomDate{Time: now.AddDate(0, -1, 0)},
	}
	assert.False(t, past.RunningByDate())
}

func TestCandidateFullName(t *testing.T) {
	c := &Candidate{FirstName: "Amina", LastName: "Nakato"}
	assert.Equal(t, "Amina Nakato", c.FullName())
}
