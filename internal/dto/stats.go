package dto

type BuyerStatsResponseDTO struct {
	TaskCount    int `json:"task_count" example:"12"`
	PendingSlots int `json:"pending_slots" example:"45"`
	TotalPaid    int `json:"total_paid" example:"380"`
}

type WorkerStatsResponseDTO struct {
	TotalSubmissions    int `json:"total_submissions" example:"30"`
	PendingSubmissions  int `json:"pending_submissions" example:"4"`
	ApprovedSubmissions int `json:"approved_submissions" example:"22"`
	RejectedSubmissions int `json:"rejected_submissions" example:"4"`
	TotalEarnings       int `json:"total_earnings" example:"110"`
}

type AdminStatsResponseDTO struct {
	BuyerCount    int     `json:"buyer_count" example:"40"`
	WorkerCount   int     `json:"worker_count" example:"180"`
	AdminCount    int     `json:"admin_count" example:"2"`
	TotalCoins    int     `json:"total_coins" example:"9150"`
	TotalPayments float64 `json:"total_payments" example:"612.5"`
}
