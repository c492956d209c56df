package models

import "time"

// Result stores a candidate's mark for a paper or module in a series.
// Exactly one of PaperID/ModuleID is set, matching the structure type of
// the candidate's occupation level.
type Result struct {
	ID                 string        `json:"id"`
	CandidateID        string        `json:"candidate_id" validate:"required,uuid"`
	PaperID            *string       `json:"paper_id,omitempty" validate:"omitempty,uuid"`
	ModuleID           *string       `json:"module_id,omitempty" validate:"omitempty,uuid"`
	AssessmentSeriesID string        `json:"assessment_series_id" validate:"required,uuid"`
	Mark               *float64      `json:"mark,omitempty" validate:"omitempty,gte=0,lte=100"`
	Grade              string        `json:"grade"`
	Comment            string        `json:"comment"`
	Status             SittingStatus `json:"status"`
	Sitting            int           `json:"sitting"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
	DeletedAt          *time.Time    `json:"deleted_at,omitempty"`

	Candidate *Candidate `json:"candidate,omitempty"`
	Paper     *Paper     `json:"paper,omitempty"`
	Module    *Module    `json:"module,omitempty"`
}
