package services

import (
	"database/sql"
	"fmt"

	"uvtab-emis/app/database"
	"uvtab-emis/app/models"
)

// GradeForMark maps a mark to the board grading scale.
func GradeForMark(mark float64) (grade, comment string) {
	switch {
	case mark >= 85:
		return "A", "Distinction"
	case mark >= 75:
		return "B", "Credit"
	case mark >= 65:
		return "C", "Credit"
	case mark >= 55:
		return "D", "Pass"
	case mark >= 50:
		return "E", "Pass"
	default:
		return "F", "Fail"
	}
}

// SittingStatusFor classifies a sitting from the candidate's history.
// The first sitting is Normal. A sitting recorded without a mark is a
// Missing Paper. A later sitting with a mark is a Retake.
func SittingStatusFor(priorSittings int, hasMark bool) models.SittingStatus {
	if !hasMark {
		return models.SittingMissingPaper
	}
	if priorSittings == 0 {
		return models.SittingNormal
	}
	return models.SittingRetake
}

// CaptureResult derives grade, comment, status and sitting number for a
// new result and stores it.
func CaptureResult(db *sql.DB, r *models.Result) error {
	if r.PaperID == nil && r.ModuleID == nil {
		return fmt.Errorf("result needs a paper or a module")
	}

	prior, err := database.CountPriorSittings(db, r.CandidateID, r.PaperID, r.ModuleID)
	if err != nil {
		return fmt.Errorf("failed to count prior sittings: %w", err)
	}

	r.Sitting = prior + 1
	r.Status = SittingStatusFor(prior, r.Mark != nil)
	if r.Mark != nil {
		r.Grade, r.Comment = GradeForMark(*r.Mark)
	} else {
		r.Grade, r.Comment = "", "Did not sit"
	}

	return database.InsertResult(db, r)
}

// RemarkResult updates the mark of an existing result and recomputes its
// derived fields. The sitting number and the first-sitting classification
// are preserved; only the mark-dependent fields change.
func RemarkResult(db *sql.DB, resultID string, mark *float64) error {
	r, err := database.GetResultByID(db, resultID)
	if err != nil {
		return err
	}

	r.Mark = mark
	if mark != nil {
		r.Grade, r.Comment = GradeForMark(*mark)
		if r.Status == models.SittingMissingPaper {
			if r.Sitting <= 1 {
				r.Status = models.SittingNormal
			} else {
				r.Status = models.SittingRetake
			}
		}
	} else {
		r.Grade, r.Comment = "", "Did not sit"
		r.Status = models.SittingMissingPaper
	}

	return database.UpdateResultMark(db, r)
}
