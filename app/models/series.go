package models

import "time"

// CustomDate handles date-only JSON parsing
type CustomDate struct {
	time.Time
}

func (cd *CustomDate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	cd.Time = t
	return nil
}

// AssessmentSeries is a named sitting period. At most one series is
// current at a time; switching is done in a single transaction.
type AssessmentSeries struct {
	ID        string     `json:"id"`
	Name      string     `json:"name" validate:"required"`
	StartDate CustomDate `json:"start_date"`
	EndDate   CustomDate `json:"end_date"`
	IsCurrent bool       `json:"is_current"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// RunningByDate checks if the series window covers today.
func (s *AssessmentSeries) RunningByDate() bool {
	now := time.Now()
	return now.After(s.StartDate.Time) && now.Before(s.EndDate.Time)
}
