package domain

// Tipos de insight derivados pelo motor de agregação
const (
	InsightAlert       = "alert"
	InsightOpportunity = "opportunity"
	InsightWarning     = "warning"
	InsightInfo        = "info"
)

// Níveis de impacto de um insight
const (
	ImpactHigh   = "High"
	ImpactMedium = "Medium"
	ImpactLow    = "Low"
)

// Insight é um cartão derivado exibido no dashboard. Produzido a cada passe
// de agregação, nunca persistido.
type Insight struct {
	Kind           string `json:"kind"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Impact         string `json:"impact"`
	Recommendation string `json:"recommendation"`
}

// Segment é o resultado da segmentação RFM de clientes.
//
// Percentage preserva o comportamento histórico do dashboard: é calculado
// sobre a própria contagem do segmento, portanto vale 100 para qualquer
// segmento não vazio. PopulationShare traz a fração real da base
// (contagem / total x 100) para consumidores novos.
type Segment struct {
	Name            string  `json:"name"`
	Count           int     `json:"count"`
	AvgValue        float64 `json:"avg_value"`
	Percentage      float64 `json:"percentage"`
	PopulationShare float64 `json:"population_share"`
}

// CohortBucket agrupa clientes pelo mês da última atividade.
//
// RetentionRate é a fração (0-100) de membros do bucket cujo risco de churn
// não é High.
type CohortBucket struct {
	Period         string  `json:"period"`
	Count          int     `json:"count"`
	TotalSpent     float64 `json:"total_spent"`
	AvgHealthScore float64 `json:"avg_health_score"`
	RetentionRate  float64 `json:"retention_rate"`
}

// ForecastPoint é um ponto da série de previsão de receita: os pontos reais
// vêm primeiro, seguidos das projeções rotuladas "Prediction N".
type ForecastPoint struct {
	Period    string  `json:"period"`
	Revenue   float64 `json:"revenue"`
	Projected bool    `json:"is_projected"`
}
