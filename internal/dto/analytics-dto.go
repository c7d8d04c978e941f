package dto

type HomeStats struct {
	Users        int64 `json:"users"`
	Applications int64 `json:"applications"`
	Scholarships int64 `json:"scholarships"`
}

type DashboardStats struct {
	Users                    int64            `json:"users"`
	Scholarships             int64            `json:"scholarships"`
	TotalPaidAmount          float64          `json:"totalPaidAmount"`
	ApplicationsByUniversity map[string]int64 `json:"applicationsByUniversity"`
}
