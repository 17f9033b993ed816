package scoring

import (
	"math"
	"time"

	"github.com/vfg2006/customer-health-api/internal/domain"
	"github.com/vfg2006/customer-health-api/pkg/utils"
)

// Dias assumidos desde o último pedido quando o cliente nunca comprou
const daysWithoutOrders = 365

// Limites de health score que definem as faixas de risco de churn
const (
	lowRiskThreshold    = 70.0
	mediumRiskThreshold = 40.0
)

// Input são os dados brutos do cliente usados no cálculo do health score
type Input struct {
	LastOrderDate  *time.Time
	TotalOrders    int
	TotalSpent     float64
	SupportTickets int
	AvgRating      float64
}

// Breakdown detalha a contribuição de cada fator para o score final
type Breakdown struct {
	Recency   float64 `json:"recency"`
	Frequency float64 `json:"frequency"`
	Monetary  float64 `json:"monetary"`
	Support   float64 `json:"support"`
	Rating    float64 `json:"rating"`
}

// Result é o resultado completo do scoring de um cliente
type Result struct {
	HealthScore   float64   `json:"health_score"`
	ChurnRisk     string    `json:"churn_risk"`
	LifetimeValue float64   `json:"lifetime_value"`
	Breakdown     Breakdown `json:"score_breakdown"`
}

// Scorer calcula o health score composto de um cliente
type Scorer interface {
	Score(input Input, now time.Time) Result
}

type Service struct{}

func NewService() Scorer {
	return &Service{}
}

// Score combina cinco fatores em um score de 0 a 100:
// recência (0-30), frequência (0-25), monetário (0-25), suporte (0-10,
// invertido: menos tickets é melhor) e avaliação (0-10).
func (s *Service) Score(input Input, now time.Time) Result {
	days := daysSinceLastOrder(input.LastOrderDate, now)

	recency := math.Max(0, 30-float64(days))
	frequency := math.Min(25, float64(input.TotalOrders)*2)
	monetary := math.Min(25, input.TotalSpent/100)
	support := math.Max(0, 10-float64(input.SupportTickets))
	rating := input.AvgRating * 2

	total := recency + frequency + monetary + support + rating

	risk := domain.RiskHigh
	switch {
	case total >= lowRiskThreshold:
		risk = domain.RiskLow
	case total >= mediumRiskThreshold:
		risk = domain.RiskMedium
	}

	return Result{
		HealthScore:   utils.RoundWithTwoDecimalPlace(total),
		ChurnRisk:     risk,
		LifetimeValue: utils.RoundWithTwoDecimalPlace(input.TotalSpent * (1 + total/100)),
		Breakdown: Breakdown{
			Recency:   utils.RoundWithTwoDecimalPlace(recency),
			Frequency: utils.RoundWithTwoDecimalPlace(frequency),
			Monetary:  utils.RoundWithTwoDecimalPlace(monetary),
			Support:   utils.RoundWithTwoDecimalPlace(support),
			Rating:    utils.RoundWithTwoDecimalPlace(rating),
		},
	}
}

func daysSinceLastOrder(lastOrderDate *time.Time, now time.Time) int {
	if lastOrderDate == nil {
		return daysWithoutOrders
	}
	return int(now.Sub(*lastOrderDate).Hours() / 24)
}
