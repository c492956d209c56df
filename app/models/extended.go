package models

// CandidateRow extends the base Candidate with joined display columns
// for list views and exports.
type CandidateRow struct {
	Candidate
	OccupationName string `json:"occupation_name"`
	OccupationCode string `json:"occupation_code"`
	CenterName     string `json:"center_name"`
	CenterCode     string `json:"center_code"`
	SeriesName     string `json:"series_name"`
}

// ResultRow extends a Result with joined candidate and unit columns.
type ResultRow struct {
	Result
	CandidateName string `json:"candidate_name"`
	RegNumber     string `json:"reg_number"`
	UnitCode      string `json:"unit_code"`
	UnitName      string `json:"unit_name"`
}

// InvoiceLine is one candidate's entry on a center invoice.
type InvoiceLine struct {
	CandidateID    string               `json:"candidate_id"`
	RegNumber      string               `json:"reg_number"`
	CandidateName  string               `json:"candidate_name"`
	Category       RegistrationCategory `json:"category"`
	ModuleCount    int                  `json:"module_count"`
	FeesBalance    float64              `json:"fees_balance"`
	PaymentCleared bool                 `json:"payment_cleared"`
	AmountCleared  float64              `json:"amount_cleared"`
}

// CategoryBreakdown totals one registration category on an invoice.
type CategoryBreakdown struct {
	Category   RegistrationCategory `json:"category"`
	Candidates int                  `json:"candidates"`
	Amount     float64              `json:"amount"`
}

// Invoice is the billing statement for a (center, series) pair.
type Invoice struct {
	CenterID    string              `json:"center_id"`
	CenterName  string              `json:"center_name"`
	CenterCode  string              `json:"center_code"`
	SeriesID    string              `json:"series_id"`
	SeriesName  string              `json:"series_name"`
	AmountPaid  float64             `json:"amount_paid"`
	Outstanding float64             `json:"outstanding"`
	TotalBill   float64             `json:"total_bill"`
	Breakdown   []CategoryBreakdown `json:"breakdown"`
	Lines       []InvoiceLine       `json:"lines"`
}

// AmountDue is what the center still owes on this invoice.
func (inv *Invoice) AmountDue() float64 {
	return inv.TotalBill - inv.AmountPaid
}

// DashboardStats aggregates board-wide figures for the landing page.
type DashboardStats struct {
	TotalCandidates   int     `json:"total_candidates"`
	TotalCenters      int     `json:"total_centers"`
	TotalOccupations  int     `json:"total_occupations"`
	ClearedCandidates int     `json:"cleared_candidates"`
	TotalOutstanding  float64 `json:"total_outstanding"`
	TotalCleared      float64 `json:"total_cleared"`
	FormalCount       int     `json:"formal_count"`
	ModularCount      int     `json:"modular_count"`
	InformalCount     int     `json:"informal_count"`
}
