package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/customer-health-api/internal/domain"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestScore_HealthyCustomer(t *testing.T) {
	service := NewService()

	lastOrder := now.AddDate(0, 0, -5)
	result := service.Score(Input{
		LastOrderDate:  &lastOrder,
		TotalOrders:    20,
		TotalSpent:     5000,
		SupportTickets: 0,
		AvgRating:      5,
	}, now)

	// recência 25 + frequência 25 + monetário 25 + suporte 10 + avaliação 10
	assert.Equal(t, 95.0, result.HealthScore)
	assert.Equal(t, domain.RiskLow, result.ChurnRisk)
	assert.Equal(t, 25.0, result.Breakdown.Recency)
	assert.Equal(t, 25.0, result.Breakdown.Frequency)
	assert.Equal(t, 25.0, result.Breakdown.Monetary)
	assert.Equal(t, 10.0, result.Breakdown.Support)
	assert.Equal(t, 10.0, result.Breakdown.Rating)
	// LTV = 5000 x (1 + 95/100)
	assert.Equal(t, 9750.0, result.LifetimeValue)
}

func TestScore_FactorCaps(t *testing.T) {
	service := NewService()

	lastOrder := now.AddDate(0, 0, -1)
	result := service.Score(Input{
		LastOrderDate:  &lastOrder,
		TotalOrders:    1000,
		TotalSpent:     1000000,
		SupportTickets: 0,
		AvgRating:      5,
	}, now)

	// Frequência e monetário saturam em 25 cada
	assert.Equal(t, 25.0, result.Breakdown.Frequency)
	assert.Equal(t, 25.0, result.Breakdown.Monetary)
	assert.LessOrEqual(t, result.HealthScore, 100.0)
}

func TestScore_NoOrdersDefaultsToYearOfInactivity(t *testing.T) {
	service := NewService()

	result := service.Score(Input{
		TotalOrders:    0,
		TotalSpent:     0,
		SupportTickets: 0,
		AvgRating:      0,
	}, now)

	// 365 dias de inatividade zeram a recência
	assert.Equal(t, 0.0, result.Breakdown.Recency)
	assert.Equal(t, 10.0, result.HealthScore) // somente o fator de suporte
	assert.Equal(t, domain.RiskHigh, result.ChurnRisk)
	assert.Equal(t, 0.0, result.LifetimeValue)
}

func TestScore_SupportTicketsReduceScore(t *testing.T) {
	service := NewService()

	result := service.Score(Input{
		SupportTickets: 15,
	}, now)

	// Mais tickets que o teto não pode deixar o fator negativo
	assert.Equal(t, 0.0, result.Breakdown.Support)
}

func TestScore_RiskBands(t *testing.T) {
	service := NewService()

	tests := []struct {
		name     string
		input    Input
		wantRisk string
	}{
		{
			name: "score alto é risco baixo",
			input: Input{
				LastOrderDate:  timePtr(now.AddDate(0, 0, -2)),
				TotalOrders:    15,
				TotalSpent:     2000,
				AvgRating:      4,
			},
			wantRisk: domain.RiskLow,
		},
		{
			name: "score médio é risco médio",
			input: Input{
				LastOrderDate: timePtr(now.AddDate(0, 0, -20)),
				TotalOrders:   5,
				TotalSpent:    1000,
				AvgRating:     2,
			},
			wantRisk: domain.RiskMedium,
		},
		{
			name:     "score baixo é risco alto",
			input:    Input{SupportTickets: 10},
			wantRisk: domain.RiskHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.Score(tt.input, now)
			assert.Equal(t, tt.wantRisk, result.ChurnRisk)
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
