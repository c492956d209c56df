package models

import "time"

// Candidate is a person registered for assessment at a center.
type Candidate struct {
	ID                      string               `json:"id"`
	FirstName               string               `json:"first_name" validate:"required"`
	LastName                string               `json:"last_name" validate:"required"`
	Gender                  Gender               `json:"gender" validate:"required,oneof=male female"`
	DateOfBirth             *time.Time           `json:"date_of_birth,omitempty"`
	Nationality             string               `json:"nationality" validate:"required,len=1|len=2"`
	Phone                   string               `json:"phone,omitempty"`
	District                string               `json:"district,omitempty"`
	RegistrationCategory    RegistrationCategory `json:"registration_category" validate:"required,oneof=Formal Modular Informal"`
	OccupationID            string               `json:"occupation_id" validate:"required,uuid"`
	AssessmentCenterID      string               `json:"assessment_center_id" validate:"required,uuid"`
	AssessmentSeriesID      *string              `json:"assessment_series_id,omitempty" validate:"omitempty,uuid"`
	Intake                  string               `json:"intake" validate:"required"`
	EntryYear               int                  `json:"entry_year" validate:"required,gte=2000"`
	RegNumber               *string              `json:"reg_number,omitempty"`
	Serial                  int                  `json:"serial"`
	ModularModuleCount      int                  `json:"modular_module_count" validate:"gte=0,lte=2"`
	ModularBillingAmount    *float64             `json:"modular_billing_amount,omitempty"`
	FeesBalance             float64              `json:"fees_balance"`
	PaymentCleared          bool                 `json:"payment_cleared"`
	PaymentAmountCleared    float64              `json:"payment_amount_cleared"`
	PaymentClearedBy        *string              `json:"payment_cleared_by,omitempty"`
	PaymentCenterSeriesRef  *string              `json:"payment_center_series_ref,omitempty"`
	CreatedAt               time.Time            `json:"created_at"`
	UpdatedAt               time.Time            `json:"updated_at"`
	DeletedAt               *time.Time           `json:"deleted_at,omitempty"`

	Occupation       *Occupation       `json:"occupation,omitempty"`
	AssessmentCenter *AssessmentCenter `json:"assessment_center,omitempty"`
	AssessmentSeries *AssessmentSeries `json:"assessment_series,omitempty"`
}

// FullName returns the candidate's display name.
func (c *Candidate) FullName() string {
	return c.FirstName + " " + c.LastName
}

// CandidateFilter narrows candidate listings.
type CandidateFilter struct {
	CenterID   string
	SeriesID   string
	Category   RegistrationCategory
	OccupationID string
	Search     string
	Limit      int
	Offset     int
}

// RegScope identifies the serial-number scope a candidate registers in.
// Serials are unique and monotonic within one scope.
type RegScope struct {
	CenterID     string
	Intake       string
	EntryYear    int
	OccupationID string
	Category     RegistrationCategory
}
