package domain

type ChurnPrediction struct {
	CustomerID         string   `json:"customer_id"`
	Name               string   `json:"name"`
	ChurnProbability   float64  `json:"churn_probability"`
	KeyFactors         []string `json:"key_factors"`
	RecommendedActions []string `json:"recommended_actions"`
}
