package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/customer-health-api/internal/domain"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestDeriveInsights_EmptyInput(t *testing.T) {
	service := NewService()

	insights := service.DeriveInsights(nil, nil)

	assert.NotNil(t, insights)
	assert.Empty(t, insights)
}

func TestDeriveInsights_ChurnRateRule(t *testing.T) {
	service := NewService()

	tests := []struct {
		name       string
		churnRate  float64
		wantAlerts int
	}{
		{"churn rate acima do limite dispara o alerta", 20, 1},
		{"churn rate abaixo do limite não dispara", 10, 0},
		{"limite exato não dispara", 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := &domain.DashboardMetrics{ChurnRate: tt.churnRate}

			insights := service.DeriveInsights(metrics, nil)

			alerts := 0
			for _, ins := range insights {
				if ins.Kind == domain.InsightAlert {
					alerts++
					assert.Equal(t, domain.ImpactHigh, ins.Impact)
				}
			}
			assert.Equal(t, tt.wantAlerts, alerts)
		})
	}
}

func TestDeriveInsights_UpsellRule(t *testing.T) {
	service := NewService()

	customers := []*domain.Customer{
		{CustomerID: "C1", Region: "North", CustomerTier: domain.TierGold, ChurnRisk: domain.RiskLow},
		{CustomerID: "C2", Region: "North", CustomerTier: domain.TierGold, ChurnRisk: domain.RiskLow},
		{CustomerID: "C3", Region: "North", CustomerTier: domain.TierGold, ChurnRisk: domain.RiskLow},
		{CustomerID: "C4", Region: "North", CustomerTier: domain.TierGold, ChurnRisk: domain.RiskHigh},
		{CustomerID: "C5", Region: "North", CustomerTier: domain.TierBronze, ChurnRisk: domain.RiskLow},
	}

	insights := service.DeriveInsights(nil, customers)

	var opportunity *domain.Insight
	for _, ins := range insights {
		if ins.Kind == domain.InsightOpportunity {
			opportunity = ins
		}
	}

	assert.NotNil(t, opportunity)
	assert.Equal(t, domain.ImpactMedium, opportunity.Impact)
	// 3 clientes Gold de baixo risco x 500 = 1500
	assert.Contains(t, opportunity.Recommendation, "$1500")
}

func TestDeriveInsights_ActiveHighRiskRule(t *testing.T) {
	service := NewService()

	customers := []*domain.Customer{
		{CustomerID: "C1", Region: "North", TotalOrders: 3, ChurnRisk: domain.RiskHigh},
		{CustomerID: "C2", Region: "North", TotalOrders: 0, ChurnRisk: domain.RiskHigh},
	}

	insights := service.DeriveInsights(nil, customers)

	var warning *domain.Insight
	for _, ins := range insights {
		if ins.Kind == domain.InsightWarning {
			warning = ins
		}
	}

	assert.NotNil(t, warning)
	assert.Equal(t, domain.ImpactMedium, warning.Impact)
	// Apenas C1 tem pedidos, C2 nunca comprou
	assert.Contains(t, warning.Description, "1 customers")
}

func TestDeriveInsights_RegionalComparison(t *testing.T) {
	service := NewService()

	customers := []*domain.Customer{
		{CustomerID: "C1", Region: "A", HealthScore: 80},
		{CustomerID: "C2", Region: "A", HealthScore: 80},
		{CustomerID: "C3", Region: "B", HealthScore: 40},
	}

	insights := service.DeriveInsights(nil, customers)

	var info *domain.Insight
	for _, ins := range insights {
		if ins.Kind == domain.InsightInfo {
			info = ins
		}
	}

	assert.NotNil(t, info)
	assert.Contains(t, info.Description, "Region A leads with an average health score of 80.0")
	assert.Contains(t, info.Description, "B trails at 40.0")
	assert.Contains(t, info.Description, "gap of 40.0")
}

func TestDeriveInsights_RegionalTieKeepsFirstSeen(t *testing.T) {
	service := NewService()

	// Duas regiões com a mesma média: a primeira encontrada na entrada vence
	// tanto como melhor quanto como pior
	customers := []*domain.Customer{
		{CustomerID: "C1", Region: "East", HealthScore: 50},
		{CustomerID: "C2", Region: "West", HealthScore: 50},
	}

	insights := service.DeriveInsights(nil, customers)

	var info *domain.Insight
	for _, ins := range insights {
		if ins.Kind == domain.InsightInfo {
			info = ins
		}
	}

	assert.NotNil(t, info)
	assert.Contains(t, info.Description, "Region East leads")
	assert.Contains(t, info.Description, "East trails")
}

func TestDeriveInsights_RuleOrderIsStable(t *testing.T) {
	service := NewService()

	metrics := &domain.DashboardMetrics{ChurnRate: 30}
	customers := []*domain.Customer{
		{CustomerID: "C1", Region: "North", CustomerTier: domain.TierGold, ChurnRisk: domain.RiskLow, HealthScore: 90},
		{CustomerID: "C2", Region: "South", TotalOrders: 2, ChurnRisk: domain.RiskHigh, HealthScore: 20},
	}

	insights := service.DeriveInsights(metrics, customers)

	kinds := make([]string, 0, len(insights))
	for _, ins := range insights {
		kinds = append(kinds, ins.Kind)
	}
	assert.Equal(t, []string{
		domain.InsightAlert,
		domain.InsightOpportunity,
		domain.InsightWarning,
		domain.InsightInfo,
	}, kinds)
}

func TestDeriveSegmentation_EmptyInput(t *testing.T) {
	service := NewService()

	segments := service.DeriveSegmentation(nil)

	assert.NotNil(t, segments)
	assert.Empty(t, segments)
}

func TestDeriveSegmentation_Predicates(t *testing.T) {
	service := NewService()

	customers := []*domain.Customer{
		// Champions: health >= 80 e gasto > 1000
		{CustomerID: "champ", HealthScore: 85, TotalSpent: 1500, TotalOrders: 10, LifetimeValue: 3000},
		// Loyal Customers: 60 <= health < 80 e pedidos >= 5
		{CustomerID: "loyal", HealthScore: 70, TotalSpent: 800, TotalOrders: 6, LifetimeValue: 1200},
		// Potential Loyalists: 50 <= health < 60 e pedidos >= 2
		{CustomerID: "potential", HealthScore: 55, TotalSpent: 300, TotalOrders: 3, LifetimeValue: 450},
		// At Risk: 30 <= health < 50
		{CustomerID: "atrisk", HealthScore: 40, TotalSpent: 200, TotalOrders: 1, LifetimeValue: 250},
		// Cannot Lose Them: health < 30 e gasto > 1000
		{CustomerID: "cannotlose", HealthScore: 20, TotalSpent: 2000, TotalOrders: 8, LifetimeValue: 2400},
		// Hibernating: health < 30 e gasto <= 1000
		{CustomerID: "hibernating", HealthScore: 10, TotalSpent: 100, TotalOrders: 1, LifetimeValue: 110},
	}

	segments := service.DeriveSegmentation(customers)

	assert.Len(t, segments, 6)

	byName := make(map[string]*domain.Segment)
	for _, seg := range segments {
		byName[seg.Name] = seg
	}

	assert.Equal(t, 1, byName["Champions"].Count)
	assert.Equal(t, 1, byName["Loyal Customers"].Count)
	assert.Equal(t, 1, byName["Potential Loyalists"].Count)
	assert.Equal(t, 1, byName["At Risk"].Count)
	assert.Equal(t, 1, byName["Cannot Lose Them"].Count)
	assert.Equal(t, 1, byName["Hibernating"].Count)

	assert.Equal(t, 3000.0, byName["Champions"].AvgValue)
}

func TestDeriveSegmentation_OrderIsFixed(t *testing.T) {
	service := NewService()

	segments := service.DeriveSegmentation([]*domain.Customer{
		{CustomerID: "C1", HealthScore: 85, TotalSpent: 1500},
	})

	names := make([]string, 0, len(segments))
	for _, seg := range segments {
		names = append(names, seg.Name)
	}
	assert.Equal(t, []string{
		"Champions",
		"Loyal Customers",
		"Potential Loyalists",
		"At Risk",
		"Cannot Lose Them",
		"Hibernating",
	}, names)
}

func TestDeriveSegmentation_PercentagePreservesLegacyBehavior(t *testing.T) {
	service := NewService()

	customers := []*domain.Customer{
		{CustomerID: "C1", HealthScore: 85, TotalSpent: 1500, LifetimeValue: 2000},
		{CustomerID: "C2", HealthScore: 85, TotalSpent: 1200, LifetimeValue: 1800},
		{CustomerID: "C3", HealthScore: 40, TotalSpent: 100, LifetimeValue: 120},
		{CustomerID: "C4", HealthScore: 40, TotalSpent: 100, LifetimeValue: 130},
	}

	segments := service.DeriveSegmentation(customers)

	byName := make(map[string]*domain.Segment)
	for _, seg := range segments {
		byName[seg.Name] = seg
	}

	// Percentage herda o defeito histórico: contagem / contagem x 100
	assert.Equal(t, 100.0, byName["Champions"].Percentage)
	assert.Equal(t, 100.0, byName["At Risk"].Percentage)
	assert.Equal(t, 0.0, byName["Hibernating"].Percentage)

	// PopulationShare traz a fração real da base
	assert.Equal(t, 50.0, byName["Champions"].PopulationShare)
	assert.Equal(t, 50.0, byName["At Risk"].PopulationShare)
	assert.Equal(t, 0.0, byName["Hibernating"].PopulationShare)
}

func TestDeriveCohorts_EmptyInput(t *testing.T) {
	service := NewService()

	cohorts := service.DeriveCohorts(nil)

	assert.NotNil(t, cohorts)
	assert.Empty(t, cohorts)
}

func TestDeriveCohorts_BucketsByActivityMonth(t *testing.T) {
	service := NewService()

	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	janLate := time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)

	customers := []*domain.Customer{
		{CustomerID: "C1", LastActivity: timePtr(jan), HealthScore: 80, TotalSpent: 100, ChurnRisk: domain.RiskLow},
		{CustomerID: "C2", LastActivity: timePtr(janLate), HealthScore: 60, TotalSpent: 200, ChurnRisk: domain.RiskHigh},
		{CustomerID: "C3", LastActivity: timePtr(feb), HealthScore: 90, TotalSpent: 50, ChurnRisk: domain.RiskLow},
	}

	cohorts := service.DeriveCohorts(customers)

	assert.Len(t, cohorts, 2)

	assert.Equal(t, "Jan 2024", cohorts[0].Period)
	assert.Equal(t, 2, cohorts[0].Count)
	assert.Equal(t, 300.0, cohorts[0].TotalSpent)
	assert.Equal(t, 70.0, cohorts[0].AvgHealthScore)
	// Um dos dois membros está em alto risco
	assert.Equal(t, 50.0, cohorts[0].RetentionRate)

	assert.Equal(t, "Feb 2024", cohorts[1].Period)
	assert.Equal(t, 1, cohorts[1].Count)
	assert.Equal(t, 90.0, cohorts[1].AvgHealthScore)
	assert.Equal(t, 100.0, cohorts[1].RetentionRate)
}

func TestDeriveCohorts_FallsBackToRegistrationDate(t *testing.T) {
	service := NewService()

	customers := []*domain.Customer{
		{
			CustomerID:       "C1",
			RegistrationDate: time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC),
			ChurnRisk:        domain.RiskLow,
		},
	}

	cohorts := service.DeriveCohorts(customers)

	assert.Len(t, cohorts, 1)
	assert.Equal(t, "Nov 2023", cohorts[0].Period)
}

func TestDeriveRevenueForecast_EmptyInput(t *testing.T) {
	service := NewService()

	forecast := service.DeriveRevenueForecast(nil, 6)

	assert.NotNil(t, forecast)
	assert.Empty(t, forecast)
}

func TestDeriveRevenueForecast_CompoundsMeanGrowth(t *testing.T) {
	service := NewService()

	// Crescimento de 10% em cada período
	series := []*domain.RevenueTrendPoint{
		{Year: 2024, Month: 1, Revenue: 100},
		{Year: 2024, Month: 2, Revenue: 110},
		{Year: 2024, Month: 3, Revenue: 121},
	}

	forecast := service.DeriveRevenueForecast(series, 2)

	assert.Len(t, forecast, 5)

	assert.Equal(t, "Jan 2024", forecast[0].Period)
	assert.False(t, forecast[0].Projected)
	assert.Equal(t, 121.0, forecast[2].Revenue)

	assert.Equal(t, "Prediction 1", forecast[3].Period)
	assert.True(t, forecast[3].Projected)
	assert.InDelta(t, 133.1, forecast[3].Revenue, 0.001)

	assert.Equal(t, "Prediction 2", forecast[4].Period)
	assert.True(t, forecast[4].Projected)
	assert.InDelta(t, 146.41, forecast[4].Revenue, 0.001)
}

func TestDeriveRevenueForecast_UsesTrailingSixPoints(t *testing.T) {
	service := NewService()

	series := make([]*domain.RevenueTrendPoint, 0, 9)
	for month := 1; month <= 9; month++ {
		series = append(series, &domain.RevenueTrendPoint{Year: 2024, Month: month, Revenue: 100})
	}

	forecast := service.DeriveRevenueForecast(series, 3)

	// 6 pontos reais + 3 projeções
	assert.Len(t, forecast, 9)
	assert.Equal(t, "Apr 2024", forecast[0].Period)
	assert.False(t, forecast[5].Projected)
	assert.True(t, forecast[6].Projected)
}

func TestDeriveRevenueForecast_ZeroRevenueContributesZeroGrowth(t *testing.T) {
	service := NewService()

	series := []*domain.RevenueTrendPoint{
		{Year: 2024, Month: 1, Revenue: 0},
		{Year: 2024, Month: 2, Revenue: 100},
		{Year: 2024, Month: 3, Revenue: 100},
	}

	forecast := service.DeriveRevenueForecast(series, 1)

	// O passo com receita anterior zero entra como crescimento zero, então a
	// média de crescimento é zero e a projeção repete o último valor real
	assert.Len(t, forecast, 4)
	assert.Equal(t, 100.0, forecast[3].Revenue)
}

func TestDeriveRevenueForecast_SinglePoint(t *testing.T) {
	service := NewService()

	series := []*domain.RevenueTrendPoint{
		{Year: 2024, Month: 1, Revenue: 500},
	}

	forecast := service.DeriveRevenueForecast(series, 2)

	// Sem predecessor não há crescimento: projeções repetem o único valor
	assert.Len(t, forecast, 3)
	assert.Equal(t, 500.0, forecast[1].Revenue)
	assert.Equal(t, 500.0, forecast[2].Revenue)
}
