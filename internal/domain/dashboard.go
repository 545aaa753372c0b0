package domain

// DashboardOverview agrega os números do painel do CRM em uma única resposta
type DashboardOverview struct {
	TotalCustomers     int                  `json:"total_customers"`
	StageCounts        map[Stage]int        `json:"stage_counts"`
	TotalRevenue       float64              `json:"total_revenue"`
	RecentInteractions []*RecentInteraction `json:"recent_interactions"`
	RecentTransactions []*Transaction       `json:"recent_transactions"`
}
