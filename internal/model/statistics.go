package model

import "time"

// StatisticsResponse aggregates decision history into dashboard metrics
type StatisticsResponse struct {
	TotalRequests         int               `json:"total_requests"`
	ApprovedRequests      int               `json:"approved_requests"`
	PendingRequests       int               `json:"pending_requests"`
	RejectedRequests      int               `json:"rejected_requests"`
	ApprovalRate          float64           `json:"approval_rate"` // 0-100
	TotalValue            float64           `json:"total_value"`
	TotalPotentialSavings float64           `json:"total_potential_savings"`
	SpendByDepartment     []DepartmentSpend `json:"spend_by_department"`
	TopSuppliers          []SupplierRanking `json:"top_suppliers"`
	CandidatePipeline     []CandidateBucket `json:"candidate_pipeline"`
	TimeRangeStartDate    time.Time         `json:"time_range_start_date"`
	TimeRangeEndDate      time.Time         `json:"time_range_end_date"`
}

// DepartmentSpend is the accumulated request value for one department
type DepartmentSpend struct {
	Department   string  `json:"department"`
	RequestCount int     `json:"request_count"`
	TotalValue   float64 `json:"total_value"`
}

// SupplierRanking represents a recommended supplier ranked by usage
type SupplierRanking struct {
	Supplier    string  `json:"supplier"`
	TimesChosen int     `json:"times_chosen"`
	TotalValue  float64 `json:"total_value"`
	AvgLeadTime float64 `json:"avg_lead_time_days"`
}

// CandidateBucket counts candidates per pipeline status
type CandidateBucket struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}
