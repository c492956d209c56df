package models

import "time"

// AssessmentCenter is a physical exam venue that owns registered candidates.
type AssessmentCenter struct {
	ID        string     `json:"id"`
	Name      string     `json:"name" validate:"required"`
	Code      string     `json:"code" validate:"required"`
	District  string     `json:"district,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// CenterBalanceSummary aggregates outstanding and cleared amounts for a center.
type CenterBalanceSummary struct {
	CenterID          string  `json:"center_id"`
	CenterName        string  `json:"center_name"`
	CenterCode        string  `json:"center_code"`
	CandidateCount    int     `json:"candidate_count"`
	TotalOutstanding  float64 `json:"total_outstanding"`
	TotalCleared      float64 `json:"total_cleared"`
	ClearedCandidates int     `json:"cleared_candidates"`
}
