package models

// RegistrationCategory defines how a candidate registers and is billed.
type RegistrationCategory string

const (
	CategoryFormal   RegistrationCategory = "Formal"
	CategoryModular  RegistrationCategory = "Modular"
	CategoryInformal RegistrationCategory = "Informal"
)

// Code returns the registration-type token used inside registration numbers.
func (c RegistrationCategory) Code() string {
	switch c {
	case CategoryFormal:
		return "F"
	case CategoryModular:
		return "M"
	case CategoryInformal:
		return "W"
	}
	return "X"
}

// Valid reports whether the category is one of the known values.
func (c RegistrationCategory) Valid() bool {
	return c == CategoryFormal || c == CategoryModular || c == CategoryInformal
}

// StructureType governs whether candidates at an occupation level enroll
// in modules or sit papers.
type StructureType string

const (
	StructureModules StructureType = "modules"
	StructurePapers  StructureType = "papers"
)

// SittingStatus classifies a result relative to the candidate's sitting history.
type SittingStatus string

const (
	SittingNormal       SittingStatus = "Normal"
	SittingRetake       SittingStatus = "Retake"
	SittingMissingPaper SittingStatus = "Missing Paper"
)

// Gender defines the possible gender values for a candidate.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// UserRole defines the staff account roles.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleStaff   UserRole = "staff"
	RoleSupport UserRole = "support"
)
