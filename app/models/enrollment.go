package models

import "time"

// CandidateLevel enrolls a candidate at a level, optionally tagged with a series.
type CandidateLevel struct {
	ID                 string    `json:"id"`
	CandidateID        string    `json:"candidate_id" validate:"required,uuid"`
	LevelID            string    `json:"level_id" validate:"required,uuid"`
	AssessmentSeriesID *string   `json:"assessment_series_id,omitempty" validate:"omitempty,uuid"`
	CreatedAt          time.Time `json:"created_at"`

	Level *Level `json:"level,omitempty"`
}

// CandidateModule enrolls a candidate in a module.
type CandidateModule struct {
	ID                 string    `json:"id"`
	CandidateID        string    `json:"candidate_id" validate:"required,uuid"`
	ModuleID           string    `json:"module_id" validate:"required,uuid"`
	AssessmentSeriesID *string   `json:"assessment_series_id,omitempty" validate:"omitempty,uuid"`
	CreatedAt          time.Time `json:"created_at"`

	Module *Module `json:"module,omitempty"`
}

// CandidatePaper enrolls a candidate for a paper.
type CandidatePaper struct {
	ID                 string    `json:"id"`
	CandidateID        string    `json:"candidate_id" validate:"required,uuid"`
	PaperID            string    `json:"paper_id" validate:"required,uuid"`
	AssessmentSeriesID *string   `json:"assessment_series_id,omitempty" validate:"omitempty,uuid"`
	CreatedAt          time.Time `json:"created_at"`

	Paper *Paper `json:"paper,omitempty"`
}

// EnrollmentOption is a typed descriptor for one selectable enrollment
// unit (module or paper) resolved from the candidate's occupation level.
// Registration forms are built from an explicit map of these rather than
// injecting dynamically named fields.
type EnrollmentOption struct {
	ID            string        `json:"id"`
	Code          string        `json:"code"`
	Name          string        `json:"name"`
	Kind          StructureType `json:"kind"`
	LevelID       string        `json:"level_id"`
	LevelName     string        `json:"level_name"`
}
