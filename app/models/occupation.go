package models

import "time"

// Occupation is a trade assessed by the board, e.g. Hairdressing.
type Occupation struct {
	ID        string     `json:"id"`
	Name      string     `json:"name" validate:"required"`
	Code      string     `json:"code" validate:"required"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Level is an assessment level. The fee schedule lives here: each
// registration category is billed from the level's fee columns.
type Level struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name" validate:"required"`
	Rank                int        `json:"rank"`
	FormalFee           float64    `json:"formal_fee"`
	ModularFeeSingle    float64    `json:"modular_fee_single"`
	ModularFeeDouble    float64    `json:"modular_fee_double"`
	WorkersPasFee       float64    `json:"workers_pas_fee"`
	WorkersPasModuleFee float64    `json:"workers_pas_module_fee"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	DeletedAt           *time.Time `json:"deleted_at,omitempty"`
}

// OccupationLevel links an occupation to a level and declares whether
// candidates at that level enroll in modules or sit papers.
type OccupationLevel struct {
	ID            string        `json:"id"`
	OccupationID  string        `json:"occupation_id" validate:"required,uuid"`
	LevelID       string        `json:"level_id" validate:"required,uuid"`
	StructureType StructureType `json:"structure_type" validate:"required,oneof=modules papers"`
	CreatedAt     time.Time     `json:"created_at"`

	Occupation *Occupation `json:"occupation,omitempty"`
	Level      *Level      `json:"level,omitempty"`
}

// Module is an assessable unit within an occupation level (modular structure).
type Module struct {
	ID                string    `json:"id"`
	OccupationLevelID string    `json:"occupation_level_id" validate:"required,uuid"`
	Name              string    `json:"name" validate:"required"`
	Code              string    `json:"code" validate:"required"`
	CreatedAt         time.Time `json:"created_at"`
}

// Paper is an exam paper within an occupation level (paper structure).
type Paper struct {
	ID                string    `json:"id"`
	OccupationLevelID string    `json:"occupation_level_id" validate:"required,uuid"`
	Name              string    `json:"name" validate:"required"`
	Code              string    `json:"code" validate:"required"`
	CreatedAt         time.Time `json:"created_at"`
}
