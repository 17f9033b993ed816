package domain

// DashboardMetrics são os indicadores consolidados exibidos no topo do
// dashboard. ChurnRate é expresso em pontos percentuais (0-100).
type DashboardMetrics struct {
	TotalCustomers      int     `json:"total_customers"`
	HighRiskCustomers   int     `json:"high_risk_customers"`
	MediumRiskCustomers int     `json:"medium_risk_customers"`
	LowRiskCustomers    int     `json:"low_risk_customers"`
	TotalRevenue        float64 `json:"total_revenue"`
	AvgLifetimeValue    float64 `json:"avg_lifetime_value"`
	ChurnRate           float64 `json:"churn_rate"`
}
